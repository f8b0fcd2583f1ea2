package labrecords

import (
	"context"
	"healthtrack-service/internal/app/contracts"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/labreport"
	"time"

	"github.com/stretchr/testify/mock"
)

type mockLabRecordRepository struct {
	mock.Mock
}

func (m *mockLabRecordRepository) Create(ctx context.Context, record *models.LabRecord) (string, error) {
	args := m.Called(ctx, record)
	return args.String(0), args.Error(1)
}

func (m *mockLabRecordRepository) FindByID(ctx context.Context, reportType labreport.ReportType, recordID string) (*models.LabRecord, error) {
	args := m.Called(ctx, reportType, recordID)
	record, _ := args.Get(0).(*models.LabRecord)
	return record, args.Error(1)
}

func (m *mockLabRecordRepository) FindByPatientID(ctx context.Context, reportType labreport.ReportType, patientID string) ([]models.LabRecord, error) {
	args := m.Called(ctx, reportType, patientID)
	records, _ := args.Get(0).([]models.LabRecord)
	return records, args.Error(1)
}

func (m *mockLabRecordRepository) FindByDoctorID(ctx context.Context, reportType labreport.ReportType, doctorID string) ([]models.LabRecord, error) {
	args := m.Called(ctx, reportType, doctorID)
	records, _ := args.Get(0).([]models.LabRecord)
	return records, args.Error(1)
}

func (m *mockLabRecordRepository) UpdateDoctorComment(ctx context.Context, reportType labreport.ReportType, recordID, comment string) error {
	args := m.Called(ctx, reportType, recordID, comment)
	return args.Error(0)
}

type mockTextExtractor struct {
	mock.Mock
}

func (m *mockTextExtractor) ExtractText(ctx context.Context, document []byte) (string, error) {
	args := m.Called(ctx, document)
	return args.String(0), args.Error(1)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) UploadObject(ctx context.Context, bucketName, objectName, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, bucketName, objectName, contentType, data)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) RemoveObject(ctx context.Context, bucketName, objectName string) error {
	args := m.Called(ctx, bucketName, objectName)
	return args.Error(0)
}

func (m *mockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

type mockQuotaLimiter struct {
	mock.Mock
}

func (m *mockQuotaLimiter) ApplyResourceLimiter(ctx context.Context, in *contracts.QuotaLimiterInput) (*contracts.QuotaLimiterOutput, error) {
	args := m.Called(ctx, in)
	output, _ := args.Get(0).(*contracts.QuotaLimiterOutput)
	return output, args.Error(1)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) Publish(ctx context.Context, queueName, eventType string, payload interface{}) error {
	args := m.Called(ctx, queueName, eventType, payload)
	return args.Error(0)
}
