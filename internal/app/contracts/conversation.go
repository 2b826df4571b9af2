package contracts

import (
	"context"
	"curaflow-service/internal/app/models"
	"curaflow-service/internal/pkg/dto/responses"
)

type ConversationUsecase interface {
	FindConversationMessages(ctx context.Context, conversationID string) (*responses.Conversation, error)
}

type ConversationRepository interface {
	CreateConversation(ctx context.Context, conversationModel *models.Conversation) (conversationID string, err error)
	FindByID(ctx context.Context, conversationID string) (*models.Conversation, error)
	FindActiveByPatientID(ctx context.Context, patientID string) (*models.Conversation, error)
	UpdateConversation(ctx context.Context, conversationModel *models.Conversation) error
}

type ChatLogRepository interface {
	CreateChatLogMessage(ctx context.Context, messageModel *models.ChatLogMessage) (messageID string, err error)
	FindByConversationID(ctx context.Context, conversationID string) ([]models.ChatLogMessage, error)
}
