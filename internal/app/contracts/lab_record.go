package contracts

import (
	"context"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/dto/requests"
	"healthtrack-service/internal/pkg/dto/responses"
	"healthtrack-service/internal/pkg/labreport"
)

type LabRecordUsecase interface {
	IngestReportDocument(ctx context.Context, request *requests.UploadLabReport) (*responses.LabRecord, error)
	CreateManualRecord(ctx context.Context, request *requests.CreateManualLabRecord) (*responses.LabRecord, error)
	AttachDoctorComment(ctx context.Context, request *requests.AttachDoctorComment) (*responses.LabRecord, error)
	FindByID(ctx context.Context, reportType labreport.ReportType, recordID string) (*responses.LabRecord, error)
	FindByPatientID(ctx context.Context, request *requests.FindLabRecords) ([]responses.LabRecord, error)
	FindByDoctorID(ctx context.Context, request *requests.FindLabRecords) ([]responses.LabRecord, error)
	GetReportFileURL(ctx context.Context, reportType labreport.ReportType, recordID string) (*responses.ReportFileURL, error)
}

// LabRecordRepository returns nil, nil from FindByID when the record does not exist.
type LabRecordRepository interface {
	Create(ctx context.Context, record *models.LabRecord) (string, error)
	FindByID(ctx context.Context, reportType labreport.ReportType, recordID string) (*models.LabRecord, error)
	FindByPatientID(ctx context.Context, reportType labreport.ReportType, patientID string) ([]models.LabRecord, error)
	FindByDoctorID(ctx context.Context, reportType labreport.ReportType, doctorID string) ([]models.LabRecord, error)
	UpdateDoctorComment(ctx context.Context, reportType labreport.ReportType, recordID, comment string) error
}
