package controllers

import (
	"context"
	"healthtrack-service/internal/app/config"
	"healthtrack-service/internal/app/contracts"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/dto/requests"
	"healthtrack-service/internal/pkg/exceptions"
	"healthtrack-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type NutritionController struct {
	Log              *zap.Logger
	NutritionUsecase contracts.NutritionUsecase
	InternalConfig   *config.InternalConfig
}

func NewNutritionController(logger *zap.Logger, nutritionUsecase contracts.NutritionUsecase, internalConfig *config.InternalConfig) *NutritionController {
	return &NutritionController{
		Log:              logger,
		NutritionUsecase: nutritionUsecase,
		InternalConfig:   internalConfig,
	}
}

func (ctrl *NutritionController) ListMeals(w http.ResponseWriter, r *http.Request) {
	response := ctrl.NutritionUsecase.ListMeals(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListMealsSuccessMessage, response)
}

func (ctrl *NutritionController) CalculateMealCalories(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("NutritionController.CalculateMealCalories requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("NutritionController.CalculateMealCalories called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CalculateMealCalories)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("NutritionController.CalculateMealCalories error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeMealPortions(request.Meals)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("NutritionController.CalculateMealCalories validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.NutritionUsecase.CalculateMealCalories(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CalculateMealCaloriesSuccessMessage, response)
}

func (ctrl *NutritionController) CalculateDayCalories(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("NutritionController.CalculateDayCalories requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("NutritionController.CalculateDayCalories called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CalculateDayCalories)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("NutritionController.CalculateDayCalories error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	for _, portions := range request.DayMeals {
		utils.SanitizeMealPortions(portions)
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("NutritionController.CalculateDayCalories validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.NutritionUsecase.CalculateDayCalories(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CalculateDayCaloriesSuccessMessage, response)
}

func (ctrl *NutritionController) CreateBMIRecord(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("NutritionController.CreateBMIRecord requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("NutritionController.CreateBMIRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateBMIRecord)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("NutritionController.CreateBMIRecord error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("NutritionController.CreateBMIRecord validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig.App.RequestTimeoutInSeconds))
	defer cancel()

	response, err := ctrl.NutritionUsecase.CreateBMIRecord(ctx, request)
	if err != nil {
		ctrl.Log.Error("NutritionController.CreateBMIRecord error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("NutritionController.CreateBMIRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateBMIRecordSuccessMessage, response)
}
