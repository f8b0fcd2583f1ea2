package labreport

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006.01.02",
	"2006/01/02",
	"02.01.2006",
	time.RFC3339,
}

// Candidate is a validated record ready to be stored.
type Candidate struct {
	ReportType ReportType
	Fields     FieldMap
	Date       time.Time
	Commented  bool
}

// ValidationError reports which required fields were absent or could not be coerced.
type ValidationError struct {
	ReportType ReportType
	Missing    []string
	Invalid    []string
	Partial    FieldMap
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("incomplete %s record: missing=%v invalid=%v", e.ReportType, e.Missing, e.Invalid)
}

// Normalize checks every required field of reportType and coerces it to its
// typed form. Fields outside the required set are dropped. A missing or
// unparseable date falls back to now.
func Normalize(reportType ReportType, raw FieldMap, now time.Time) (*Candidate, error) {
	specs, ok := fieldSpecs[reportType]
	if !ok {
		return nil, fmt.Errorf("unknown report type %q", reportType)
	}

	normalized := FieldMap{}
	var missing, invalid []string
	for _, spec := range specs {
		value, present := raw[spec.name]
		if !present || isBlank(value) {
			missing = append(missing, spec.name)
			continue
		}
		typed, ok := coerceField(spec.kind, value)
		if !ok {
			invalid = append(invalid, spec.name)
			continue
		}
		normalized[spec.name] = typed
	}

	if len(missing) > 0 || len(invalid) > 0 {
		return nil, &ValidationError{
			ReportType: reportType,
			Missing:    missing,
			Invalid:    invalid,
			Partial:    partialOf(raw),
		}
	}

	date, ok := parseDate(raw[FieldDate])
	if !ok {
		date = now
	}

	return &Candidate{
		ReportType: reportType,
		Fields:     normalized,
		Date:       date,
		Commented:  false,
	}, nil
}

func coerceField(kind fieldKind, value interface{}) (interface{}, bool) {
	switch kind {
	case kindBloodSugarType:
		raw, ok := value.(string)
		if !ok {
			return nil, false
		}
		sugarType, ok := ParseBloodSugarType(raw)
		return sugarType, ok
	case kindInteger:
		number, ok := coerceNumber(value)
		if !ok || number != math.Trunc(number) || number > math.MaxInt32 {
			return nil, false
		}
		return int(number), true
	default:
		return coerceNumber(value)
	}
}

// coerceNumber accepts finite, non-negative numbers given as Go numerics,
// json.Number or numeric strings.
func coerceNumber(value interface{}) (float64, bool) {
	var number float64
	switch v := value.(type) {
	case int:
		number = float64(v)
	case int32:
		number = float64(v)
	case int64:
		number = float64(v)
	case float32:
		number = float64(v)
	case float64:
		number = v
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		number = parsed
	case string:
		parsed, ok := parseDecimalString(v)
		if !ok {
			return 0, false
		}
		number = parsed
	default:
		return 0, false
	}

	if math.IsNaN(number) || math.IsInf(number, 0) || number < 0 {
		return 0, false
	}
	return number, true
}

// parseDecimalString only admits plain decimal notation; strconv alone would
// also take "NaN", "Inf" and hex floats.
func parseDecimalString(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	dots := 0
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
		case r == '.':
			dots++
		case (r == '-' || r == '+') && i == 0:
		default:
			return 0, false
		}
	}
	if dots > 1 {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

// ParseBloodSugarType maps the free-text reading kind printed on reports to the enum.
func ParseBloodSugarType(raw string) (BloodSugarType, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)
	switch {
	case key == "":
		return "", false
	case strings.Contains(key, "a1c"):
		return SugarHbA1c, true
	case strings.Contains(key, "fast"):
		return SugarFasting, true
	case strings.HasPrefix(key, "post"), strings.HasPrefix(key, "pp"), strings.Contains(key, "after"):
		return SugarPostprandial, true
	case strings.Contains(key, "random"):
		return SugarRandom, true
	}
	return "", false
}

func parseDate(value interface{}) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, !v.IsZero()
	case string:
		raw := strings.TrimSpace(v)
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, raw); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}

func isBlank(value interface{}) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func partialOf(raw FieldMap) FieldMap {
	partial := make(FieldMap, len(raw))
	for key, value := range raw {
		partial[key] = value
	}
	return partial
}
