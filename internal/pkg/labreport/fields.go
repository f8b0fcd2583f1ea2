package labreport

// FieldMap holds raw or normalized field values keyed by field name.
type FieldMap map[string]interface{}

const FieldDate = "date"

const (
	FieldSystolic  = "systolic"
	FieldDiastolic = "diastolic"
	FieldPulse     = "pulse"

	FieldSugarType  = "type"
	FieldSugarValue = "value"

	FieldCholesterol   = "cholesterol"
	FieldHDL           = "hdl"
	FieldLDL           = "ldl"
	FieldTriglycerides = "triglycerides"

	FieldRBC         = "rbc"
	FieldWBC         = "wbc"
	FieldHaemoglobin = "haemoglobin"
	FieldPlatelet    = "platelet"
)

type fieldKind int

const (
	kindInteger fieldKind = iota
	kindDecimal
	kindBloodSugarType
)

type fieldSpec struct {
	name string
	kind fieldKind
}

var fieldSpecs = map[ReportType][]fieldSpec{
	BloodPressure: {
		{name: FieldSystolic, kind: kindInteger},
		{name: FieldDiastolic, kind: kindInteger},
		{name: FieldPulse, kind: kindInteger},
	},
	BloodSugar: {
		{name: FieldSugarType, kind: kindBloodSugarType},
		{name: FieldSugarValue, kind: kindDecimal},
	},
	LipidProfile: {
		{name: FieldCholesterol, kind: kindDecimal},
		{name: FieldHDL, kind: kindDecimal},
		{name: FieldLDL, kind: kindDecimal},
		{name: FieldTriglycerides, kind: kindDecimal},
	},
	FBC: {
		{name: FieldRBC, kind: kindDecimal},
		{name: FieldWBC, kind: kindDecimal},
		{name: FieldHaemoglobin, kind: kindDecimal},
		{name: FieldPlatelet, kind: kindDecimal},
	},
}

// BloodSugarType is the normalized reading kind of a blood sugar report.
type BloodSugarType string

const (
	SugarFasting      BloodSugarType = "fasting"
	SugarPostprandial BloodSugarType = "postprandial"
	SugarRandom       BloodSugarType = "random"
	SugarHbA1c        BloodSugarType = "HbA1c"
)
