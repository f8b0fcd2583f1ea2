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
	"strings"

	"go.uber.org/zap"
)

type ChatController struct {
	Log            *zap.Logger
	ChatUsecase    contracts.ChatUsecase
	InternalConfig *config.InternalConfig
}

func NewChatController(logger *zap.Logger, chatUsecase contracts.ChatUsecase, internalConfig *config.InternalConfig) *ChatController {
	return &ChatController{
		Log:            logger,
		ChatUsecase:    chatUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *ChatController) SendMessage(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ChatController.SendMessage requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ChatController.SendMessage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.SendChatMessage)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("ChatController.SendMessage error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeSendChatMessageRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("ChatController.SendMessage validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig.App.RequestTimeoutInSeconds))
	defer cancel()

	response, err := ctrl.ChatUsecase.SendMessage(ctx, request)
	if err != nil {
		ctrl.Log.Error("ChatController.SendMessage error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ChatController.SendMessage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SendChatMessageSuccessMessage, response)
}

func (ctrl *ChatController) FindConversation(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ChatController.FindConversation requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ChatController.FindConversation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := r.URL.Query()
	request := &requests.FindConversation{
		ParticipantA: strings.TrimSpace(query.Get(constvars.URLQueryParamParticipantA)),
		ParticipantB: strings.TrimSpace(query.Get(constvars.URLQueryParamParticipantB)),
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("ChatController.FindConversation validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig.App.RequestTimeoutInSeconds))
	defer cancel()

	response, err := ctrl.ChatUsecase.FindConversation(ctx, request)
	if err != nil {
		ctrl.Log.Error("ChatController.FindConversation error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindConversationSuccessMessage, response)
}
