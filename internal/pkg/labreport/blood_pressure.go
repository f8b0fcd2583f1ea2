package labreport

import "regexp"

// A value token may end in letters OCR confuses with digits, such as "12O".
// They are kept so the value is rejected instead of silently truncated. A
// glued unit or label ends the token.
var (
	systolicPattern  = regexp.MustCompile(`(?i)\bsystolic\b(?:\s+pressure)?\s*[:=\-]?\s*(\d+(?:\.\d+)?(?:[OoIlSB]+\b)?)`)
	diastolicPattern = regexp.MustCompile(`(?i)\bdiastolic\b(?:\s+pressure)?\s*[:=\-]?\s*(\d+(?:\.\d+)?(?:[OoIlSB]+\b)?)`)
	pulsePattern     = regexp.MustCompile(`(?i)\b(?:pulse|heart\s+rate)\b\s*[:=\-]?\s*(\d+(?:\.\d+)?(?:[OoIlSB]+\b)?)`)
	tripletPattern   = regexp.MustCompile(`\b(\d{2,3})\s+(\d{2,3})\s+(\d{2,3})\b`)
)

type bloodPressureParser struct{}

func (bloodPressureParser) Parse(text string) FieldMap {
	fields := FieldMap{}

	labeled := []struct {
		name    string
		pattern *regexp.Regexp
	}{
		{FieldSystolic, systolicPattern},
		{FieldDiastolic, diastolicPattern},
		{FieldPulse, pulsePattern},
	}
	for _, field := range labeled {
		if token, ok := firstSubmatch(field.pattern, text); ok {
			fields[field.name] = asInt(token)
		}
	}

	// Devices that print bare "systolic diastolic pulse" readings.
	if triplet := tripletPattern.FindStringSubmatch(text); triplet != nil {
		for i, field := range labeled {
			if _, ok := fields[field.name]; !ok {
				fields[field.name] = asInt(triplet[i+1])
			}
		}
	}

	setString(fields, FieldDate, strictDatePattern, text)
	return fields
}
