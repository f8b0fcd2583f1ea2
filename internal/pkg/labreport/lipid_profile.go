package labreport

import "regexp"

var (
	cholesterolPattern   = regexp.MustCompile(`(?i)cholesterol,?\s*total\s*[:\-]?\s*(\d+(?:\.\d+)?)\s*mg/dl`)
	hdlPattern           = regexp.MustCompile(`(?i)(?:^|[^\w-])HDL(?:\s+cholesterol)?\s*[:\-]?\s*(\d+(?:\.\d+)?)\s*mg/dl`)
	ldlPattern           = regexp.MustCompile(`(?i)(?:^|[^\w-])LDL(?:\s+cholesterol)?\s*[:\-]?\s*(\d+(?:\.\d+)?)\s*mg/dl`)
	triglyceridesPattern = regexp.MustCompile(`(?i)triglycerides\s*[:\-]?\s*(\d+(?:\.\d+)?)\s*mg/dl`)
)

type lipidProfileParser struct{}

// Parse leaves lipid values as the matched digit strings.
func (lipidProfileParser) Parse(text string) FieldMap {
	fields := FieldMap{}
	setString(fields, FieldCholesterol, cholesterolPattern, text)
	setString(fields, FieldHDL, hdlPattern, text)
	setString(fields, FieldLDL, ldlPattern, text)
	setString(fields, FieldTriglycerides, triglyceridesPattern, text)
	setString(fields, FieldDate, strictDatePattern, text)
	return fields
}
