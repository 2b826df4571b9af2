package questionnaires

import (
	"context"
	"curaflow-service/internal/app/config"
	"curaflow-service/internal/app/contracts"
	"curaflow-service/internal/app/models"
	"curaflow-service/internal/pkg/constvars"
	"curaflow-service/internal/pkg/dto/requests"
	"curaflow-service/internal/pkg/dto/responses"
	"curaflow-service/internal/pkg/exceptions"
	"curaflow-service/internal/pkg/scoring"
	"curaflow-service/internal/pkg/utils"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

type questionnaireUsecase struct {
	QuestionnaireRepository contracts.QuestionnaireRepository
	TemplateUsecase         contracts.TemplateUsecase
	PatientRepository       contracts.PatientRepository
	ConversationRepository  contracts.ConversationRepository
	ChatLogRepository       contracts.ChatLogRepository
	NotificationPublisher   contracts.NotificationPublisher
	ReportArchive           contracts.ReportArchive
	RedisRepository         contracts.RedisRepository
	InternalConfig          *config.InternalConfig
	Log                     *zap.Logger
}

var (
	questionnaireUsecaseInstance contracts.QuestionnaireUsecase
	onceQuestionnaireUsecase     sync.Once
)

func NewQuestionnaireUsecase(
	questionnaireRepository contracts.QuestionnaireRepository,
	templateUsecase contracts.TemplateUsecase,
	patientRepository contracts.PatientRepository,
	conversationRepository contracts.ConversationRepository,
	chatLogRepository contracts.ChatLogRepository,
	notificationPublisher contracts.NotificationPublisher,
	reportArchive contracts.ReportArchive,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.QuestionnaireUsecase {
	onceQuestionnaireUsecase.Do(func() {
		questionnaireUsecaseInstance = &questionnaireUsecase{
			QuestionnaireRepository: questionnaireRepository,
			TemplateUsecase:         templateUsecase,
			PatientRepository:       patientRepository,
			ConversationRepository:  conversationRepository,
			ChatLogRepository:       chatLogRepository,
			NotificationPublisher:   notificationPublisher,
			ReportArchive:           reportArchive,
			RedisRepository:         redisRepository,
			InternalConfig:          internalConfig,
			Log:                     logger,
		}
	})
	return questionnaireUsecaseInstance
}

// InitQuestionnaire snapshots the template into a draft instance for the
// patient, opens a conversation and notifies the patient. A patient can
// have at most one non-completed instance per template at a time.
func (uc *questionnaireUsecase) InitQuestionnaire(ctx context.Context, request *requests.InitQuestionnaire) (*responses.Questionnaire, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	template, err := uc.TemplateUsecase.FindTemplateByID(ctx, request.TemplateID)
	if err != nil {
		return nil, err
	}

	active, err := uc.QuestionnaireRepository.FindActiveByPatientAndTemplate(ctx, request.PatientID, request.TemplateID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, exceptions.ErrQuestionnaireAlreadyActive(request.PatientID, request.TemplateID)
	}

	now := time.Now()
	questionnaire := models.NewQuestionnaireFromTemplate(request.PatientID, request.UserID, template)
	questionnaire.CreatedAt = now
	questionnaire.UpdatedAt = now

	questionnaireID, err := uc.QuestionnaireRepository.CreateQuestionnaire(ctx, questionnaire)
	if err != nil {
		return nil, err
	}
	questionnaire.ID = questionnaireID

	conversation := &models.Conversation{
		PatientID:       request.PatientID,
		QuestionnaireID: questionnaireID,
		Status:          constvars.ConversationStatusInitiated,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	conversationID, err := uc.ConversationRepository.CreateConversation(ctx, conversation)
	if err != nil {
		return nil, err
	}

	openingMessage := fmt.Sprintf(
		"Hello! Your clinician sent you the %q questionnaire. It takes about %s to finish.",
		template.Title, template.Duration,
	)
	_, err = uc.ChatLogRepository.CreateChatLogMessage(ctx, &models.ChatLogMessage{
		Role:           constvars.ChatLogRoleSystem,
		PatientID:      request.PatientID,
		MessageText:    openingMessage,
		ConversationID: conversationID,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	})
	if err != nil {
		return nil, err
	}

	sessionToken, err := uc.issueSession(ctx, questionnaireID)
	if err != nil {
		uc.Log.Warn("QuestionnaireUsecase.InitQuestionnaire failed to issue session token",
			zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
			zap.Error(err),
		)
	}

	notification := &contracts.PatientNotification{
		ID:          utils.GenerateRequestID(),
		Event:       constvars.NotificationEventBeginQuestionnaire,
		PatientID:   request.PatientID,
		PhoneNumber: patient.PhoneNumber,
		Message:     openingMessage,
		Token:       sessionToken,
	}
	if err := uc.NotificationPublisher.Publish(ctx, notification); err != nil {
		uc.Log.Warn("QuestionnaireUsecase.InitQuestionnaire failed to publish notification",
			zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
			zap.Error(err),
		)
	}

	return utils.MapQuestionnaireToResponse(questionnaire, time.Now()), nil
}

func (uc *questionnaireUsecase) FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*responses.Questionnaire, error) {
	questionnaire, err := uc.findExisting(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	return utils.MapQuestionnaireToResponse(questionnaire, time.Now()), nil
}

func (uc *questionnaireUsecase) FindQuestionnairesByPatientID(ctx context.Context, patientID string) ([]responses.Questionnaire, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	questionnaires, err := uc.QuestionnaireRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return utils.MapQuestionnairesToResponse(questionnaires, time.Now()), nil
}

func (uc *questionnaireUsecase) RecordAnswer(ctx context.Context, request *requests.RecordAnswer) (*responses.Questionnaire, error) {
	questionnaire, err := uc.findExisting(ctx, request.QuestionnaireID)
	if err != nil {
		return nil, err
	}

	if err := questionnaire.RecordAnswer(request.QuestionIndex, request.RawValue); err != nil {
		return nil, err
	}

	if err := uc.QuestionnaireRepository.UpdateQuestionnaire(ctx, questionnaire); err != nil {
		return nil, err
	}
	return utils.MapQuestionnaireToResponse(questionnaire, time.Now()), nil
}

// CompleteQuestionnaire closes the instance, scores it, archives the score
// report and notifies the patient. Archiving and notifying are best effort:
// the completion itself is already persisted when they run.
func (uc *questionnaireUsecase) CompleteQuestionnaire(ctx context.Context, questionnaireID string) (*responses.Score, error) {
	questionnaire, err := uc.findExisting(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}

	if err := questionnaire.MarkCompleted(); err != nil {
		return nil, err
	}
	if err := uc.QuestionnaireRepository.UpdateQuestionnaire(ctx, questionnaire); err != nil {
		return nil, err
	}

	score, err := uc.scoreCompleted(questionnaire)
	if err != nil {
		return nil, err
	}

	uc.endConversation(ctx, questionnaire)

	if _, err := uc.ReportArchive.ArchiveScoreReport(ctx, score); err != nil {
		uc.Log.Warn("QuestionnaireUsecase.CompleteQuestionnaire failed to archive score report",
			zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
			zap.Error(err),
		)
	}

	notification := &contracts.PatientNotification{
		ID:        utils.GenerateRequestID(),
		Event:     constvars.NotificationEventQuestionnaireCompleted,
		PatientID: questionnaire.PatientID,
		Message:   "Thank you, your questionnaire is complete. Your clinician will review the results.",
	}
	if err := uc.NotificationPublisher.Publish(ctx, notification); err != nil {
		uc.Log.Warn("QuestionnaireUsecase.CompleteQuestionnaire failed to publish notification",
			zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
			zap.Error(err),
		)
	}

	return score, nil
}

func (uc *questionnaireUsecase) ReopenQuestionnaire(ctx context.Context, questionnaireID string) (*responses.Questionnaire, error) {
	questionnaire, err := uc.findExisting(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}

	if err := questionnaire.Reopen(); err != nil {
		return nil, err
	}
	if err := uc.QuestionnaireRepository.UpdateQuestionnaire(ctx, questionnaire); err != nil {
		return nil, err
	}
	return utils.MapQuestionnaireToResponse(questionnaire, time.Now()), nil
}

func (uc *questionnaireUsecase) ScoreQuestionnaire(ctx context.Context, questionnaireID string) (*responses.Score, error) {
	questionnaire, err := uc.findExisting(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}

	if !questionnaire.IsCompleted() {
		return nil, exceptions.ErrQuestionnaireNotCompleted(questionnaire.CurrentStatus)
	}
	return uc.scoreCompleted(questionnaire)
}

func (uc *questionnaireUsecase) findExisting(ctx context.Context, questionnaireID string) (*models.Questionnaire, error) {
	questionnaire, err := uc.QuestionnaireRepository.FindByID(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(nil)
	}
	return questionnaire, nil
}

func (uc *questionnaireUsecase) scoreCompleted(questionnaire *models.Questionnaire) (*responses.Score, error) {
	total, interpretation, err := scoring.Evaluate(questionnaire.Instrument, questionnaire.Questions)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("QuestionnaireUsecase scored questionnaire",
		zap.String(constvars.LoggingQuestionnaireIDKey, questionnaire.ID),
		zap.String(constvars.LoggingInstrumentKey, questionnaire.Instrument),
		zap.Int(constvars.LoggingScoreKey, total),
	)

	return &responses.Score{
		QuestionnaireID: questionnaire.ID,
		Instrument:      questionnaire.Instrument,
		Score:           total,
		Interpretation:  interpretation,
	}, nil
}

// issueSession creates the redis-backed session the patient's answer link
// authenticates with and returns its signed token.
func (uc *questionnaireUsecase) issueSession(ctx context.Context, questionnaireID string) (string, error) {
	sessionID := utils.GenerateRequestID()
	sessionKey := fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
	sessionTTL := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour

	if err := uc.RedisRepository.Set(ctx, sessionKey, questionnaireID, sessionTTL); err != nil {
		return "", err
	}

	token, err := utils.GenerateSessionJWT(sessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return token, nil
}

func (uc *questionnaireUsecase) endConversation(ctx context.Context, questionnaire *models.Questionnaire) {
	conversation, err := uc.ConversationRepository.FindActiveByPatientID(ctx, questionnaire.PatientID)
	if err != nil || conversation == nil || conversation.QuestionnaireID != questionnaire.ID {
		return
	}

	now := time.Now()
	conversation.Status = constvars.ConversationStatusEnded
	conversation.EndedAt = &now
	conversation.UpdatedAt = now
	if err := uc.ConversationRepository.UpdateConversation(ctx, conversation); err != nil {
		uc.Log.Warn("QuestionnaireUsecase failed to end conversation",
			zap.String(constvars.LoggingQuestionnaireIDKey, questionnaire.ID),
			zap.Error(err),
		)
	}
}
