package conversations

import (
	"context"
	"curaflow-service/internal/app/contracts"
	"curaflow-service/internal/pkg/dto/responses"
	"curaflow-service/internal/pkg/exceptions"
	"curaflow-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type conversationUsecase struct {
	ConversationRepository contracts.ConversationRepository
	ChatLogRepository      contracts.ChatLogRepository
	Log                    *zap.Logger
}

var (
	conversationUsecaseInstance contracts.ConversationUsecase
	onceConversationUsecase     sync.Once
)

func NewConversationUsecase(
	conversationRepository contracts.ConversationRepository,
	chatLogRepository contracts.ChatLogRepository,
	logger *zap.Logger,
) contracts.ConversationUsecase {
	onceConversationUsecase.Do(func() {
		conversationUsecaseInstance = &conversationUsecase{
			ConversationRepository: conversationRepository,
			ChatLogRepository:      chatLogRepository,
			Log:                    logger,
		}
	})
	return conversationUsecaseInstance
}

func (uc *conversationUsecase) FindConversationMessages(ctx context.Context, conversationID string) (*responses.Conversation, error) {
	conversation, err := uc.ConversationRepository.FindByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, exceptions.ErrConversationNotFound(nil)
	}

	messages, err := uc.ChatLogRepository.FindByConversationID(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	return &responses.Conversation{
		ID:              conversation.ID,
		PatientID:       conversation.PatientID,
		QuestionnaireID: conversation.QuestionnaireID,
		Status:          conversation.Status,
		Messages:        utils.MapChatLogsToResponse(messages, time.Now()),
	}, nil
}
