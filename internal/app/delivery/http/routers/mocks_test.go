package routers

import (
	"context"
	"healthtrack-service/internal/pkg/dto/requests"
	"healthtrack-service/internal/pkg/dto/responses"
	"healthtrack-service/internal/pkg/labreport"

	"github.com/stretchr/testify/mock"
)

type MockLabRecordUsecase struct {
	mock.Mock
}

func (m *MockLabRecordUsecase) IngestReportDocument(ctx context.Context, request *requests.UploadLabReport) (*responses.LabRecord, error) {
	args := m.Called(ctx, request)
	record, _ := args.Get(0).(*responses.LabRecord)
	return record, args.Error(1)
}

func (m *MockLabRecordUsecase) CreateManualRecord(ctx context.Context, request *requests.CreateManualLabRecord) (*responses.LabRecord, error) {
	args := m.Called(ctx, request)
	record, _ := args.Get(0).(*responses.LabRecord)
	return record, args.Error(1)
}

func (m *MockLabRecordUsecase) AttachDoctorComment(ctx context.Context, request *requests.AttachDoctorComment) (*responses.LabRecord, error) {
	args := m.Called(ctx, request)
	record, _ := args.Get(0).(*responses.LabRecord)
	return record, args.Error(1)
}

func (m *MockLabRecordUsecase) FindByID(ctx context.Context, reportType labreport.ReportType, recordID string) (*responses.LabRecord, error) {
	args := m.Called(ctx, reportType, recordID)
	record, _ := args.Get(0).(*responses.LabRecord)
	return record, args.Error(1)
}

func (m *MockLabRecordUsecase) FindByPatientID(ctx context.Context, request *requests.FindLabRecords) ([]responses.LabRecord, error) {
	args := m.Called(ctx, request)
	records, _ := args.Get(0).([]responses.LabRecord)
	return records, args.Error(1)
}

func (m *MockLabRecordUsecase) FindByDoctorID(ctx context.Context, request *requests.FindLabRecords) ([]responses.LabRecord, error) {
	args := m.Called(ctx, request)
	records, _ := args.Get(0).([]responses.LabRecord)
	return records, args.Error(1)
}

func (m *MockLabRecordUsecase) GetReportFileURL(ctx context.Context, reportType labreport.ReportType, recordID string) (*responses.ReportFileURL, error) {
	args := m.Called(ctx, reportType, recordID)
	url, _ := args.Get(0).(*responses.ReportFileURL)
	return url, args.Error(1)
}

type MockNutritionUsecase struct {
	mock.Mock
}

func (m *MockNutritionUsecase) ListMeals(ctx context.Context) map[string]float64 {
	args := m.Called(ctx)
	meals, _ := args.Get(0).(map[string]float64)
	return meals
}

func (m *MockNutritionUsecase) CalculateMealCalories(ctx context.Context, request *requests.CalculateMealCalories) (*responses.MealCalories, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.MealCalories)
	return result, args.Error(1)
}

func (m *MockNutritionUsecase) CalculateDayCalories(ctx context.Context, request *requests.CalculateDayCalories) (*responses.DayCalories, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.DayCalories)
	return result, args.Error(1)
}

func (m *MockNutritionUsecase) CreateBMIRecord(ctx context.Context, request *requests.CreateBMIRecord) (*responses.BMIRecord, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.BMIRecord)
	return result, args.Error(1)
}

type MockChatUsecase struct {
	mock.Mock
}

func (m *MockChatUsecase) SendMessage(ctx context.Context, request *requests.SendChatMessage) (*responses.ChatMessage, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.ChatMessage)
	return result, args.Error(1)
}

func (m *MockChatUsecase) FindConversation(ctx context.Context, request *requests.FindConversation) ([]responses.ChatMessage, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).([]responses.ChatMessage)
	return result, args.Error(1)
}
