package controllers

import (
	"context"
	"errors"
	"healthtrack-service/internal/app/config"
	"healthtrack-service/internal/app/contracts"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/dto/requests"
	"healthtrack-service/internal/pkg/dto/responses"
	"healthtrack-service/internal/pkg/exceptions"
	"healthtrack-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// multipartOverhead leaves room for form fields and boundaries around the file.
const multipartOverhead = 1 << 20

type LabRecordController struct {
	Log              *zap.Logger
	LabRecordUsecase contracts.LabRecordUsecase
	InternalConfig   *config.InternalConfig
}

func NewLabRecordController(logger *zap.Logger, labRecordUsecase contracts.LabRecordUsecase, internalConfig *config.InternalConfig) *LabRecordController {
	return &LabRecordController{
		Log:              logger,
		LabRecordUsecase: labRecordUsecase,
		InternalConfig:   internalConfig,
	}
}

func (ctrl *LabRecordController) UploadReport(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("LabRecordController.UploadReport requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("LabRecordController.UploadReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	reportType, err := reportTypeFromURL(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	maxSizeInMB := ctrl.InternalConfig.Minio.ReportFileMaxUploadSizeInMB
	maxFileBytes := maxSizeInMB * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxFileBytes+multipartOverhead)

	err = r.ParseMultipartForm(maxFileBytes)
	if err != nil {
		ctrl.Log.Error("LabRecordController.UploadReport error parsing multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrFileTooLarge(err, maxSizeInMB))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request := &requests.UploadLabReport{
		ReportType: reportType,
		PatientID:  utils.FirstFormValue(r, constvars.FormFieldPatientID, constvars.FormFieldLegacyPatientID),
		DoctorID:   utils.FirstFormValue(r, constvars.FormFieldDoctorID, constvars.FormFieldLegacyDoctorID),
	}

	document, fileHeader, err := utils.ReadFormFile(r, constvars.FormFieldFile, maxFileBytes)
	switch {
	case errors.Is(err, http.ErrMissingFile):
		ctrl.Log.Info("LabRecordController.UploadReport no file in form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
	case errors.Is(err, utils.ErrFormFileTooLarge):
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrFileTooLarge(err, maxSizeInMB))
		return
	case err != nil:
		ctrl.Log.Error("LabRecordController.UploadReport error reading uploaded file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotReadUploadedFile(err))
		return
	default:
		request.Document = document
		request.FileName = fileHeader.Filename
		request.FileSize = fileHeader.Size
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig.App.RequestTimeoutInSeconds))
	defer cancel()

	response, err := ctrl.LabRecordUsecase.IngestReportDocument(ctx, request)
	if err != nil {
		ctrl.Log.Error("LabRecordController.UploadReport error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("LabRecordController.UploadReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, response.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateLabRecordFromPDFSuccessMessage, response)
}

func (ctrl *LabRecordController) CreateManualRecord(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("LabRecordController.CreateManualRecord requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("LabRecordController.CreateManualRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	reportType, err := reportTypeFromURL(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateManualLabRecord)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("LabRecordController.CreateManualRecord error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.ReportType = reportType
	utils.SanitizeCreateManualLabRecordRequest(request)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig.App.RequestTimeoutInSeconds))
	defer cancel()

	response, err := ctrl.LabRecordUsecase.CreateManualRecord(ctx, request)
	if err != nil {
		ctrl.Log.Error("LabRecordController.CreateManualRecord error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("LabRecordController.CreateManualRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, response.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateLabRecordManualSuccessMessage, response)
}

func (ctrl *LabRecordController) AttachDoctorComment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("LabRecordController.AttachDoctorComment requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("LabRecordController.AttachDoctorComment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	reportType, err := reportTypeFromURL(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.AttachDoctorComment)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("LabRecordController.AttachDoctorComment error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.ReportType = reportType
	request.RecordID = chi.URLParam(r, constvars.URLParamRecordID)
	utils.SanitizeAttachDoctorCommentRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("LabRecordController.AttachDoctorComment validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig.App.RequestTimeoutInSeconds))
	defer cancel()

	response, err := ctrl.LabRecordUsecase.AttachDoctorComment(ctx, request)
	if err != nil {
		ctrl.Log.Error("LabRecordController.AttachDoctorComment error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("LabRecordController.AttachDoctorComment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AttachDoctorCommentSuccessMessage, response)
}

func (ctrl *LabRecordController) FindRecordByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("LabRecordController.FindRecordByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	reportType, err := reportTypeFromURL(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig.App.RequestTimeoutInSeconds))
	defer cancel()

	response, err := ctrl.LabRecordUsecase.FindByID(ctx, reportType, chi.URLParam(r, constvars.URLParamRecordID))
	if err != nil {
		ctrl.Log.Error("LabRecordController.FindRecordByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindLabRecordSuccessMessage, response)
}

func (ctrl *LabRecordController) GetReportFileURL(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("LabRecordController.GetReportFileURL requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	reportType, err := reportTypeFromURL(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig.App.RequestTimeoutInSeconds))
	defer cancel()

	response, err := ctrl.LabRecordUsecase.GetReportFileURL(ctx, reportType, chi.URLParam(r, constvars.URLParamRecordID))
	if err != nil {
		ctrl.Log.Error("LabRecordController.GetReportFileURL error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReportFileURLSuccessMessage, response)
}

func (ctrl *LabRecordController) FindRecordsByPatientID(w http.ResponseWriter, r *http.Request) {
	ctrl.findRecordsByOwner(w, r, "LabRecordController.FindRecordsByPatientID", constvars.URLParamPatientID,
		ctrl.LabRecordUsecase.FindByPatientID, constvars.FindLabRecordsByPatientSuccessMessage)
}

func (ctrl *LabRecordController) FindRecordsByDoctorID(w http.ResponseWriter, r *http.Request) {
	ctrl.findRecordsByOwner(w, r, "LabRecordController.FindRecordsByDoctorID", constvars.URLParamDoctorID,
		ctrl.LabRecordUsecase.FindByDoctorID, constvars.FindLabRecordsByDoctorSuccessMessage)
}

type findRecordsFunc func(ctx context.Context, request *requests.FindLabRecords) ([]responses.LabRecord, error)

func (ctrl *LabRecordController) findRecordsByOwner(w http.ResponseWriter, r *http.Request, name, ownerParam string, find findRecordsFunc, successMessage string) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error(name + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info(name+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	reportType, err := reportTypeFromURL(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.FindLabRecords{
		ReportType: reportType,
		OwnerID:    chi.URLParam(r, ownerParam),
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig.App.RequestTimeoutInSeconds))
	defer cancel()

	response, err := find(ctx, request)
	if err != nil {
		ctrl.Log.Error(name+" error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info(name+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, successMessage, response)
}
