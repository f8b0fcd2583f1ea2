package labreport

import "regexp"

var (
	rbcPattern         = regexp.MustCompile(`(?i)\bRBC\s*:?\s*(\d+(?:\.\d+)?)\s*million/ul`)
	wbcPattern         = regexp.MustCompile(`(?i)\bWBC\s*:?\s*(\d+(?:\.\d+)?)\s*thousand/ul`)
	haemoglobinPattern = regexp.MustCompile(`(?i)\bha?emoglobin\s*:?\s*(\d+(?:\.\d+)?)\s*g/dl`)
	plateletPattern    = regexp.MustCompile(`(?i)\bplatelets?\s*:?\s*(\d+(?:\.\d+)?)\s*thousand/ul`)
)

type fbcParser struct{}

func (fbcParser) Parse(text string) FieldMap {
	fields := FieldMap{}
	setString(fields, FieldRBC, rbcPattern, text)
	setString(fields, FieldWBC, wbcPattern, text)
	setString(fields, FieldHaemoglobin, haemoglobinPattern, text)
	setString(fields, FieldPlatelet, plateletPattern, text)
	setString(fields, FieldDate, looseDatePattern, text)
	return fields
}
