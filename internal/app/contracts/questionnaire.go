package contracts

import (
	"context"
	"curaflow-service/internal/app/models"
	"curaflow-service/internal/pkg/dto/requests"
	"curaflow-service/internal/pkg/dto/responses"
)

type QuestionnaireUsecase interface {
	InitQuestionnaire(ctx context.Context, request *requests.InitQuestionnaire) (*responses.Questionnaire, error)
	FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*responses.Questionnaire, error)
	FindQuestionnairesByPatientID(ctx context.Context, patientID string) ([]responses.Questionnaire, error)
	RecordAnswer(ctx context.Context, request *requests.RecordAnswer) (*responses.Questionnaire, error)
	CompleteQuestionnaire(ctx context.Context, questionnaireID string) (*responses.Score, error)
	ReopenQuestionnaire(ctx context.Context, questionnaireID string) (*responses.Questionnaire, error)
	ScoreQuestionnaire(ctx context.Context, questionnaireID string) (*responses.Score, error)
}

type QuestionnaireRepository interface {
	CreateQuestionnaire(ctx context.Context, questionnaireModel *models.Questionnaire) (questionnaireID string, err error)
	FindByID(ctx context.Context, questionnaireID string) (*models.Questionnaire, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Questionnaire, error)
	FindActiveByPatientAndTemplate(ctx context.Context, patientID, templateID string) (*models.Questionnaire, error)
	UpdateQuestionnaire(ctx context.Context, questionnaireModel *models.Questionnaire) error
}
