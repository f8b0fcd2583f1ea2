package labreport

import "strings"

// ReportType tags which of the four lab record shapes a document or entry carries.
type ReportType string

const (
	BloodPressure ReportType = "BloodPressure"
	BloodSugar    ReportType = "BloodSugar"
	LipidProfile  ReportType = "LipidProfile"
	FBC           ReportType = "FBC"
)

var reportTypeAliases = map[string]ReportType{
	"bloodpressure": BloodPressure,
	"bp":            BloodPressure,
	"bloodsugar":    BloodSugar,
	"sugar":         BloodSugar,
	"lipidprofile":  LipidProfile,
	"lipid":         LipidProfile,
	"fbc":           FBC,
}

func AllReportTypes() []ReportType {
	return []ReportType{BloodPressure, BloodSugar, LipidProfile, FBC}
}

// ParseReportType accepts canonical names and URL aliases, ignoring case, dashes and underscores.
func ParseReportType(raw string) (ReportType, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	reportType, ok := reportTypeAliases[key]
	return reportType, ok
}

func (t ReportType) Valid() bool {
	switch t {
	case BloodPressure, BloodSugar, LipidProfile, FBC:
		return true
	}
	return false
}

func (t ReportType) String() string {
	return string(t)
}

// Slug is the lowercase form used in URLs and object keys.
func (t ReportType) Slug() string {
	return strings.ToLower(string(t))
}

// RequiredFields lists the field names a record of this type must carry, in display order.
func (t ReportType) RequiredFields() []string {
	specs := fieldSpecs[t]
	names := make([]string, 0, len(specs))
	for _, spec := range specs {
		names = append(names, spec.name)
	}
	return names
}
