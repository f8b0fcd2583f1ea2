package responses

import "time"

type LabRecord struct {
	ID            string                 `json:"id"`
	PatientID     string                 `json:"patientId"`
	DoctorID      string                 `json:"doctorId"`
	ReportType    string                 `json:"reportType"`
	Fields        map[string]interface{} `json:"fields"`
	Date          string                 `json:"date"`
	DoctorComment *string                `json:"doctorComment,omitempty"`
	Commented     bool                   `json:"commented"`
	Source        string                 `json:"source"`
	HasFile       bool                   `json:"hasFile"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

type ReportFileURL struct {
	RecordID  string    `json:"recordId"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IncompleteExtraction is attached to INCOMPLETE_EXTRACTION errors so the
// client can prefill a manual entry form.
type IncompleteExtraction struct {
	ReportType     string                 `json:"reportType"`
	RequiredFields []string               `json:"requiredFields"`
	MissingFields  []string               `json:"missingFields,omitempty"`
	InvalidFields  []string               `json:"invalidFields,omitempty"`
	Partial        map[string]interface{} `json:"partial,omitempty"`
}
