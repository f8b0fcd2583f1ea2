package labreport

import (
	"regexp"
	"strings"
)

var (
	sugarTypePattern     = regexp.MustCompile(`(?i)blood\s+sugar\s+type:\s*([^\n]*?)\s*(?:value:|\n|$)`)
	sugarPercentPattern  = regexp.MustCompile(`(?i)value:\s*([\d.]+)\s*%`)
	sugarMgPerDLPattern  = regexp.MustCompile(`(?i)value:\s*(\d+)\s*mg/dl`)
	sugarDotsDatePattern = regexp.MustCompile(`(?i)date:\s*(\d[\d.]*\d)`)
)

type bloodSugarParser struct{}

func (bloodSugarParser) Parse(text string) FieldMap {
	fields := FieldMap{}

	sugarType, hasType := firstSubmatch(sugarTypePattern, text)
	if hasType {
		fields[FieldSugarType] = sugarType
	}

	if hasType && isHbA1c(sugarType) {
		if raw, ok := firstSubmatch(sugarPercentPattern, text); ok {
			fields[FieldSugarValue] = asFloat(raw)
		}
	} else if raw, ok := firstSubmatch(sugarMgPerDLPattern, text); ok {
		fields[FieldSugarValue] = asInt(raw)
	}

	setString(fields, FieldDate, sugarDotsDatePattern, text)
	return fields
}

func isHbA1c(raw string) bool {
	key := strings.ToLower(strings.ReplaceAll(raw, " ", ""))
	return strings.Contains(key, "hba1c") || strings.Contains(key, "a1c")
}
