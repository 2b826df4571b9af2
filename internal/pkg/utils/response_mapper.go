package utils

import (
	"curaflow-service/internal/app/models"
	"curaflow-service/internal/pkg/dto/responses"
	"time"
)

// MapQuestionnaireToResponse attaches the display strings the frontend
// renders next to each questionnaire: the creation date and a relative
// last-activity marker.
func MapQuestionnaireToResponse(questionnaire *models.Questionnaire, now time.Time) *responses.Questionnaire {
	lastActivity := questionnaire.UpdatedAt
	if lastActivity.IsZero() {
		lastActivity = questionnaire.CreatedAt
	}

	return &responses.Questionnaire{
		ID:            questionnaire.ID,
		PatientID:     questionnaire.PatientID,
		TemplateID:    questionnaire.TemplateID,
		UserID:        questionnaire.UserID,
		Instrument:    questionnaire.Instrument,
		CurrentStatus: questionnaire.CurrentStatus,
		Questions:     questionnaire.Questions,
		CreatedAt:     FormatDate(questionnaire.CreatedAt),
		LastActivity:  FormatTimeAgo(lastActivity, now),
	}
}

func MapQuestionnairesToResponse(questionnaires []models.Questionnaire, now time.Time) []responses.Questionnaire {
	mapped := make([]responses.Questionnaire, 0, len(questionnaires))
	for i := range questionnaires {
		mapped = append(mapped, *MapQuestionnaireToResponse(&questionnaires[i], now))
	}
	return mapped
}

func MapChatLogsToResponse(messages []models.ChatLogMessage, now time.Time) []responses.ChatLogMessage {
	mapped := make([]responses.ChatLogMessage, 0, len(messages))
	for _, message := range messages {
		mapped = append(mapped, responses.ChatLogMessage{
			ID:        message.ID,
			Role:      message.Role,
			Message:   message.MessageText,
			CreatedAt: FormatTimeAgo(message.CreatedAt, now),
		})
	}
	return mapped
}
