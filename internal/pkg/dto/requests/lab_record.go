package requests

import "healthtrack-service/internal/pkg/labreport"

// CreateManualLabRecord carries values typed in by hand when a document could not be read.
type CreateManualLabRecord struct {
	ReportType labreport.ReportType `json:"-"`
	PatientID  string               `json:"patientId"`
	DoctorID   string               `json:"doctorId"`
	Fields     labreport.FieldMap   `json:"fields"`
	Date       string               `json:"date,omitempty"`
}

// UploadLabReport is assembled from a multipart upload.
type UploadLabReport struct {
	ReportType labreport.ReportType
	PatientID  string
	DoctorID   string
	FileName   string
	FileSize   int64
	Document   []byte
}

type AttachDoctorComment struct {
	ReportType    labreport.ReportType `json:"-"`
	RecordID      string               `json:"-"`
	DoctorComment string               `json:"doctorComment" validate:"required,max=5000"`
}

type FindLabRecords struct {
	ReportType labreport.ReportType
	OwnerID    string
}
