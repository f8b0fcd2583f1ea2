package routers

import (
	"bytes"
	"healthtrack-service/internal/app/config"
	"healthtrack-service/internal/app/delivery/http/controllers"
	"healthtrack-service/internal/app/delivery/http/middlewares"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/dto/requests"
	"healthtrack-service/internal/pkg/dto/responses"
	"healthtrack-service/internal/pkg/exceptions"
	"healthtrack-service/internal/pkg/labreport"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testServer struct {
	router    *chi.Mux
	labRecord *MockLabRecordUsecase
	nutrition *MockNutritionUsecase
	chat      *MockChatUsecase
}

func newTestServer() *testServer {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:             "/api",
			Version:                    "v1",
			AllowedOrigins:             "*",
			MaxRequests:                1000,
			RequestTimeoutInSeconds:    5,
			RequestBodyLimitInMegabyte: 1,
		},
		Minio:  config.AppMinio{ReportFileMaxUploadSizeInMB: 1},
		Upload: config.AppUpload{RateLimitPerMinute: 60, RateLimitBurst: 100, RateLimitBlockTimeSeconds: 60},
	}

	s := &testServer{
		router:    chi.NewRouter(),
		labRecord: new(MockLabRecordUsecase),
		nutrition: new(MockNutritionUsecase),
		chat:      new(MockChatUsecase),
	}
	SetupRoutes(
		s.router,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig),
		controllers.NewLabRecordController(logger, s.labRecord, internalConfig),
		controllers.NewNutritionController(logger, s.nutrition, internalConfig),
		controllers.NewChatController(logger, s.chat, internalConfig),
	)
	return s
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func multipartUpload(t *testing.T, fields map[string]string, file []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if file != nil {
		part, err := writer.CreateFormFile(constvars.FormFieldFile, "report.pdf")
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestLabRecordRouter_Upload(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		s := newTestServer()
		s.labRecord.On("IngestReportDocument", mock.Anything, mock.MatchedBy(func(r *requests.UploadLabReport) bool {
			return r.ReportType == labreport.BloodPressure &&
				r.PatientID == "p1" && r.DoctorID == "d1" &&
				string(r.Document) == "%PDF-1.4" && r.FileName == "report.pdf"
		})).Return(&responses.LabRecord{ID: "rec-1", ReportType: "BloodPressure"}, nil)

		body, contentType := multipartUpload(t, map[string]string{"patientId": "p1", "doctorId": "d1"}, []byte("%PDF-1.4"))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/records/bloodpressure/upload", body)
		req.Header.Set(constvars.HeaderContentType, contentType)

		rr := s.do(req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		response := decodeBody(t, rr)
		assert.Equal(t, true, response["success"])
		assert.Equal(t, "rec-1", response["data"].(map[string]interface{})["id"])
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
		s.labRecord.AssertExpectations(t)
	})

	t.Run("Legacy Field Names", func(t *testing.T) {
		s := newTestServer()
		s.labRecord.On("IngestReportDocument", mock.Anything, mock.MatchedBy(func(r *requests.UploadLabReport) bool {
			return r.ReportType == labreport.FBC && r.PatientID == "p9" && r.DoctorID == "d9"
		})).Return(&responses.LabRecord{ID: "rec-2"}, nil)

		body, contentType := multipartUpload(t, map[string]string{"userId": "p9", "docId": "d9"}, []byte("%PDF"))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/records/FBC/upload", body)
		req.Header.Set(constvars.HeaderContentType, contentType)

		assert.Equal(t, http.StatusCreated, s.do(req).Code)
		s.labRecord.AssertExpectations(t)
	})

	t.Run("Missing File Reaches Usecase Without Document", func(t *testing.T) {
		s := newTestServer()
		s.labRecord.On("IngestReportDocument", mock.Anything, mock.MatchedBy(func(r *requests.UploadLabReport) bool {
			return len(r.Document) == 0
		})).Return(nil, exceptions.ErrNoFileUploaded(nil))

		body, contentType := multipartUpload(t, map[string]string{"patientId": "p1", "doctorId": "d1"}, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/records/bloodsugar/upload", body)
		req.Header.Set(constvars.HeaderContentType, contentType)

		rr := s.do(req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, constvars.ErrCodeMissingInput, decodeBody(t, rr)["code"])
	})

	t.Run("Unknown Report Type", func(t *testing.T) {
		s := newTestServer()
		body, contentType := multipartUpload(t, map[string]string{"patientId": "p1", "doctorId": "d1"}, []byte("%PDF"))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/records/thyroid/upload", body)
		req.Header.Set(constvars.HeaderContentType, contentType)

		rr := s.do(req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, constvars.ErrCodeInvalidInput, decodeBody(t, rr)["code"])
		s.labRecord.AssertNotCalled(t, "IngestReportDocument", mock.Anything, mock.Anything)
	})

	t.Run("File Too Large", func(t *testing.T) {
		s := newTestServer()
		body, contentType := multipartUpload(t, map[string]string{"patientId": "p1", "doctorId": "d1"}, bytes.Repeat([]byte("a"), 1024*1024+10))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/records/bloodpressure/upload", body)
		req.Header.Set(constvars.HeaderContentType, contentType)

		rr := s.do(req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
		assert.Equal(t, constvars.ErrCodeFileTooLarge, decodeBody(t, rr)["code"])
	})

	t.Run("Incomplete Extraction Carries Partial Data", func(t *testing.T) {
		s := newTestServer()
		s.labRecord.On("IngestReportDocument", mock.Anything, mock.Anything).Return(nil,
			exceptions.ErrIncompleteExtraction("BloodPressure", []string{"pulse"}, nil).WithData(responses.IncompleteExtraction{
				ReportType:     "BloodPressure",
				RequiredFields: []string{"systolic", "diastolic", "pulse"},
				MissingFields:  []string{"pulse"},
			}))

		body, contentType := multipartUpload(t, map[string]string{"patientId": "p1", "doctorId": "d1"}, []byte("%PDF"))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/records/bloodpressure/upload", body)
		req.Header.Set(constvars.HeaderContentType, contentType)

		rr := s.do(req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		response := decodeBody(t, rr)
		assert.Equal(t, constvars.ErrCodeIncompleteExtraction, response["code"])
		assert.Equal(t, []interface{}{"pulse"}, response["data"].(map[string]interface{})["missingFields"])
	})
}

func TestLabRecordRouter_ManualEntry(t *testing.T) {
	s := newTestServer()
	s.labRecord.On("CreateManualRecord", mock.Anything, mock.MatchedBy(func(r *requests.CreateManualLabRecord) bool {
		systolic, ok := r.Fields["systolic"].(json.Number)
		return r.ReportType == labreport.BloodPressure && ok && systolic.String() == "120" && r.PatientID == "p1"
	})).Return(&responses.LabRecord{ID: "rec-3", Source: constvars.RecordSourceManual}, nil)

	payload := `{"patientId":" p1 ","doctorId":"d1","fields":{"systolic":120,"diastolic":80,"pulse":70}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/records/blood-pressure", strings.NewReader(payload))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	rr := s.do(req)
	assert.Equal(t, http.StatusCreated, rr.Code)
	s.labRecord.AssertExpectations(t)
}

func TestLabRecordRouter_Comment(t *testing.T) {
	t.Run("Empty Comment", func(t *testing.T) {
		s := newTestServer()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/records/lipidprofile/abc/comment", strings.NewReader(`{"doctorComment":"   "}`))

		rr := s.do(req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, constvars.ErrCodeMissingInput, decodeBody(t, rr)["code"])
		s.labRecord.AssertNotCalled(t, "AttachDoctorComment", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Record", func(t *testing.T) {
		s := newTestServer()
		s.labRecord.On("AttachDoctorComment", mock.Anything, mock.MatchedBy(func(r *requests.AttachDoctorComment) bool {
			return r.RecordID == "zzz" && r.DoctorComment == "ok"
		})).Return(nil, exceptions.ErrRecordNotFound("LipidProfile", "zzz"))

		req := httptest.NewRequest(http.MethodPut, "/api/v1/records/lipidprofile/zzz/comment", strings.NewReader(`{"doctorComment":"ok"}`))

		rr := s.do(req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, constvars.ErrCodeRecordNotFound, decodeBody(t, rr)["code"])
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		s := newTestServer()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/records/lipidprofile/abc/comment", strings.NewReader(`{"doctorComment":`))

		assert.Equal(t, http.StatusBadRequest, s.do(req).Code)
	})
}

func TestLabRecordRouter_Queries(t *testing.T) {
	s := newTestServer()
	s.labRecord.On("FindByPatientID", mock.Anything, &requests.FindLabRecords{ReportType: labreport.BloodSugar, OwnerID: "p1"}).
		Return([]responses.LabRecord{{ID: "a"}, {ID: "b"}}, nil)
	s.labRecord.On("FindByDoctorID", mock.Anything, &requests.FindLabRecords{ReportType: labreport.FBC, OwnerID: "d2"}).
		Return(nil, exceptions.ErrNoRecordsFound("FBC", "doctors", "d2"))
	s.labRecord.On("FindByID", mock.Anything, labreport.BloodPressure, "rec-1").
		Return(&responses.LabRecord{ID: "rec-1"}, nil)
	s.labRecord.On("GetReportFileURL", mock.Anything, labreport.BloodPressure, "rec-1").
		Return(&responses.ReportFileURL{RecordID: "rec-1", URL: "https://minio.local/x"}, nil)

	rr := s.do(httptest.NewRequest(http.MethodGet, "/api/v1/patients/p1/records/bloodsugar", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeBody(t, rr)["data"], 2)

	rr = s.do(httptest.NewRequest(http.MethodGet, "/api/v1/doctors/d2/records/fbc", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = s.do(httptest.NewRequest(http.MethodGet, "/api/v1/records/bloodpressure/rec-1", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = s.do(httptest.NewRequest(http.MethodGet, "/api/v1/records/bloodpressure/rec-1/file", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "https://minio.local/x", decodeBody(t, rr)["data"].(map[string]interface{})["url"])
}

func TestNutritionRouter(t *testing.T) {
	t.Run("List Meals", func(t *testing.T) {
		s := newTestServer()
		s.nutrition.On("ListMeals", mock.Anything).Return(map[string]float64{"Fruits > Apple": 52})

		rr := s.do(httptest.NewRequest(http.MethodGet, "/api/v1/nutrition/meals", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Meal Calories", func(t *testing.T) {
		s := newTestServer()
		s.nutrition.On("CalculateMealCalories", mock.Anything, mock.MatchedBy(func(r *requests.CalculateMealCalories) bool {
			return len(r.Meals) == 1 && r.Meals[0].Meal == "Fruits > Apple"
		})).Return(&responses.MealCalories{TotalCalories: 104}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/nutrition/meals/calories",
			strings.NewReader(`{"meals":[{"meal":" Fruits > Apple ","quantity":200}]}`))

		rr := s.do(req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, float64(104), decodeBody(t, rr)["data"].(map[string]interface{})["totalCalories"])
	})

	t.Run("Meal Calories Without Meals", func(t *testing.T) {
		s := newTestServer()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/nutrition/meals/calories", strings.NewReader(`{}`))

		rr := s.do(req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, constvars.ErrCodeMissingInput, decodeBody(t, rr)["code"])
	})

	t.Run("BMI Out Of Range", func(t *testing.T) {
		s := newTestServer()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/nutrition/bmi", strings.NewReader(`{"userId":"u1","height":-5,"weight":70}`))

		rr := s.do(req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, constvars.ErrCodeInvalidInput, decodeBody(t, rr)["code"])
		s.nutrition.AssertNotCalled(t, "CreateBMIRecord", mock.Anything, mock.Anything)
	})
}

func TestChatRouter(t *testing.T) {
	t.Run("Send", func(t *testing.T) {
		s := newTestServer()
		s.chat.On("SendMessage", mock.Anything, mock.MatchedBy(func(r *requests.SendChatMessage) bool {
			return r.SenderType == constvars.ParticipantTypeDoctor
		})).Return(&responses.ChatMessage{ID: "m1", Status: constvars.ChatMessageStatusSent}, nil)

		payload := `{"senderId":"d1","senderType":"Doctor","receiverId":"p1","receiverType":"patient","message":"hi"}`
		rr := s.do(httptest.NewRequest(http.MethodPost, "/api/v1/chats/messages", strings.NewReader(payload)))
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Send To Self", func(t *testing.T) {
		s := newTestServer()
		payload := `{"senderId":"d1","senderType":"doctor","receiverId":"d1","receiverType":"patient","message":"hi"}`

		rr := s.do(httptest.NewRequest(http.MethodPost, "/api/v1/chats/messages", strings.NewReader(payload)))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		s.chat.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
	})

	t.Run("Conversation Requires Both Participants", func(t *testing.T) {
		s := newTestServer()

		rr := s.do(httptest.NewRequest(http.MethodGet, "/api/v1/chats/conversations?participant_a=d1", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, constvars.ErrCodeMissingInput, decodeBody(t, rr)["code"])
	})

	t.Run("Conversation", func(t *testing.T) {
		s := newTestServer()
		s.chat.On("FindConversation", mock.Anything, &requests.FindConversation{ParticipantA: "d1", ParticipantB: "p1"}).
			Return([]responses.ChatMessage{{ID: "m1"}}, nil)

		rr := s.do(httptest.NewRequest(http.MethodGet, "/api/v1/chats/conversations?participant_a=d1&participant_b=p1", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
