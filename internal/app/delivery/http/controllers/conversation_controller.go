package controllers

import (
	"context"
	"curaflow-service/internal/app/contracts"
	"curaflow-service/internal/pkg/constvars"
	"curaflow-service/internal/pkg/exceptions"
	"curaflow-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ConversationController struct {
	Log                 *zap.Logger
	ConversationUsecase contracts.ConversationUsecase
}

var (
	conversationControllerInstance *ConversationController
	onceConversationController     sync.Once
)

func NewConversationController(logger *zap.Logger, conversationUsecase contracts.ConversationUsecase) *ConversationController {
	onceConversationController.Do(func() {
		conversationControllerInstance = &ConversationController{
			Log:                 logger,
			ConversationUsecase: conversationUsecase,
		}
	})
	return conversationControllerInstance
}

func (ctrl *ConversationController) FindConversationMessages(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ConversationController.FindConversationMessages requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ConversationController.FindConversationMessages called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	conversationID := chi.URLParam(r, constvars.URLParamConversationID)
	if conversationID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamConversationID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ConversationUsecase.FindConversationMessages(ctx, conversationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindConversationMessagesSuccess, response)
}
