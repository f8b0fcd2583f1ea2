package labreport

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Parser extracts raw field values from document text. A field whose pattern
// does not match is left out of the result.
type Parser interface {
	Parse(text string) FieldMap
}

func ParserFor(reportType ReportType) (Parser, error) {
	switch reportType {
	case BloodPressure:
		return bloodPressureParser{}, nil
	case BloodSugar:
		return bloodSugarParser{}, nil
	case LipidProfile:
		return lipidProfileParser{}, nil
	case FBC:
		return fbcParser{}, nil
	}
	return nil, fmt.Errorf("no parser for report type %q", reportType)
}

var (
	strictDatePattern = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
	looseDatePattern  = regexp.MustCompile(`(\d{4}.\d{2}.\d{2})`)
)

// firstSubmatch returns the trimmed first capture group of the first match.
func firstSubmatch(pattern *regexp.Regexp, text string) (string, bool) {
	match := pattern.FindStringSubmatch(text)
	if len(match) < 2 {
		return "", false
	}
	value := strings.TrimSpace(match[1])
	if value == "" {
		return "", false
	}
	return value, true
}

func setString(fields FieldMap, name string, pattern *regexp.Regexp, text string) {
	if value, ok := firstSubmatch(pattern, text); ok {
		fields[name] = value
	}
}

// asInt keeps the raw token when it is not a plain integer so it can be rejected later.
func asInt(raw string) interface{} {
	if value, err := strconv.Atoi(raw); err == nil {
		return value
	}
	return raw
}

func asFloat(raw string) interface{} {
	if value, err := strconv.ParseFloat(raw, 64); err == nil {
		return value
	}
	return raw
}
