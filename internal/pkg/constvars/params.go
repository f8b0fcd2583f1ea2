package constvars

const (
	URLParamReportType = "report_type"
	URLParamRecordID   = "record_id"
	URLParamPatientID  = "patient_id"
	URLParamDoctorID   = "doctor_id"
)

const (
	URLQueryParamParticipantA = "participant_a"
	URLQueryParamParticipantB = "participant_b"
)

const (
	FormFieldFile      = "file"
	FormFieldPatientID = "patientId"
	FormFieldDoctorID  = "doctorId"

	// Field names the first web client posted with.
	FormFieldLegacyPatientID = "userId"
	FormFieldLegacyDoctorID  = "docId"
)
