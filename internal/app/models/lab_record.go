package models

import (
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/dto/responses"
	"healthtrack-service/internal/pkg/labreport"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LabRecord struct {
	ID             string               `json:"id" bson:"_id,omitempty"`
	PatientID      string               `json:"patientId" bson:"patientId"`
	DoctorID       string               `json:"doctorId" bson:"doctorId"`
	ReportType     labreport.ReportType `json:"reportType" bson:"reportType"`
	Fields         labreport.FieldMap   `json:"fields" bson:"fields"`
	Date           time.Time            `json:"date" bson:"date"`
	DoctorComment  *string              `json:"doctorComment,omitempty" bson:"doctorComment,omitempty"`
	Commented      bool                 `json:"commented" bson:"commented"`
	Source         string               `json:"source" bson:"source"`
	FileObjectName string               `json:"fileObjectName,omitempty" bson:"fileObjectName,omitempty"`
	TimeModel      `bson:",inline"`
}

// NewLabRecordFromCandidate builds an uncommented record ready to be inserted.
func NewLabRecordFromCandidate(candidate *labreport.Candidate, patientID, doctorID, source string) *LabRecord {
	record := &LabRecord{
		PatientID:  patientID,
		DoctorID:   doctorID,
		ReportType: candidate.ReportType,
		Fields:     candidate.Fields,
		Date:       candidate.Date,
		Commented:  false,
		Source:     source,
	}
	record.SetCreatedAtUpdatedAt()
	return record
}

func (r *LabRecord) ConvertIntoResponse() responses.LabRecord {
	return responses.LabRecord{
		ID:            r.ID,
		PatientID:     r.PatientID,
		DoctorID:      r.DoctorID,
		ReportType:    r.ReportType.String(),
		Fields:        r.Fields,
		Date:          r.Date.Format(constvars.ReportDateLayout),
		DoctorComment: r.DoctorComment,
		Commented:     r.Commented,
		Source:        r.Source,
		HasFile:       r.FileObjectName != "",
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// ObjectIDFromHex is false for ids the store could never have issued, such as "zzz".
func ObjectIDFromHex(id string) (primitive.ObjectID, bool) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return objectID, true
}
