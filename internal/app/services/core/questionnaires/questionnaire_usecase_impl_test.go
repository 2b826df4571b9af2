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
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeQuestionnaireRepository struct {
	store  map[string]*models.Questionnaire
	nextID int
}

func newFakeQuestionnaireRepository() *fakeQuestionnaireRepository {
	return &fakeQuestionnaireRepository{store: make(map[string]*models.Questionnaire), nextID: 1}
}

func (f *fakeQuestionnaireRepository) CreateQuestionnaire(_ context.Context, questionnaireModel *models.Questionnaire) (string, error) {
	id := "questionnaire-" + strconv.Itoa(f.nextID)
	f.nextID++
	stored := *questionnaireModel
	stored.ID = id
	stored.Questions = questionnaireModel.Questions.Clone()
	f.store[id] = &stored
	return id, nil
}

func (f *fakeQuestionnaireRepository) FindByID(_ context.Context, questionnaireID string) (*models.Questionnaire, error) {
	stored, ok := f.store[questionnaireID]
	if !ok {
		return nil, nil
	}
	loaded := *stored
	loaded.Questions = stored.Questions.Clone()
	return &loaded, nil
}

func (f *fakeQuestionnaireRepository) FindByPatientID(_ context.Context, patientID string) ([]models.Questionnaire, error) {
	found := make([]models.Questionnaire, 0)
	for _, stored := range f.store {
		if stored.PatientID == patientID {
			found = append(found, *stored)
		}
	}
	return found, nil
}

func (f *fakeQuestionnaireRepository) FindActiveByPatientAndTemplate(_ context.Context, patientID, templateID string) (*models.Questionnaire, error) {
	for _, stored := range f.store {
		if stored.PatientID == patientID && stored.TemplateID == templateID && !stored.IsCompleted() {
			return stored, nil
		}
	}
	return nil, nil
}

func (f *fakeQuestionnaireRepository) UpdateQuestionnaire(_ context.Context, questionnaireModel *models.Questionnaire) error {
	if _, ok := f.store[questionnaireModel.ID]; !ok {
		return exceptions.ErrQuestionnaireNotFound(nil)
	}
	stored := *questionnaireModel
	stored.Questions = questionnaireModel.Questions.Clone()
	f.store[questionnaireModel.ID] = &stored
	return nil
}

type fakeTemplateUsecase struct {
	template *models.Template
}

func (f *fakeTemplateUsecase) CreateTemplate(context.Context, *requests.CreateTemplate) (*models.Template, error) {
	return f.template, nil
}

func (f *fakeTemplateUsecase) FindTemplateByID(_ context.Context, templateID string) (*models.Template, error) {
	if f.template == nil || f.template.ID != templateID {
		return nil, exceptions.ErrTemplateNotFound(nil)
	}
	return f.template, nil
}

func (f *fakeTemplateUsecase) FindAllTemplates(context.Context) ([]models.Template, error) {
	return []models.Template{*f.template}, nil
}

type fakePatientRepository struct {
	patients map[string]*models.Patient
}

func (f *fakePatientRepository) CreatePatient(_ context.Context, patientModel *models.Patient) (string, error) {
	f.patients[patientModel.ID] = patientModel
	return patientModel.ID, nil
}

func (f *fakePatientRepository) FindByID(_ context.Context, patientID string) (*models.Patient, error) {
	return f.patients[patientID], nil
}

func (f *fakePatientRepository) FindByPhoneNumber(context.Context, string) (*models.Patient, error) {
	return nil, nil
}

func (f *fakePatientRepository) FindAll(context.Context) ([]models.Patient, error) {
	return nil, nil
}

type fakeConversationRepository struct {
	conversations map[string]*models.Conversation
	nextID        int
}

func (f *fakeConversationRepository) CreateConversation(_ context.Context, conversationModel *models.Conversation) (string, error) {
	id := "conversation-" + strconv.Itoa(f.nextID)
	f.nextID++
	stored := *conversationModel
	stored.ID = id
	f.conversations[id] = &stored
	return id, nil
}

func (f *fakeConversationRepository) FindByID(_ context.Context, conversationID string) (*models.Conversation, error) {
	return f.conversations[conversationID], nil
}

func (f *fakeConversationRepository) FindActiveByPatientID(_ context.Context, patientID string) (*models.Conversation, error) {
	for _, conversation := range f.conversations {
		if conversation.PatientID == patientID && conversation.Status == constvars.ConversationStatusInitiated {
			return conversation, nil
		}
	}
	return nil, nil
}

func (f *fakeConversationRepository) UpdateConversation(_ context.Context, conversationModel *models.Conversation) error {
	f.conversations[conversationModel.ID] = conversationModel
	return nil
}

type fakeChatLogRepository struct {
	messages []models.ChatLogMessage
}

func (f *fakeChatLogRepository) CreateChatLogMessage(_ context.Context, messageModel *models.ChatLogMessage) (string, error) {
	id := "message-" + strconv.Itoa(len(f.messages)+1)
	stored := *messageModel
	stored.ID = id
	f.messages = append(f.messages, stored)
	return id, nil
}

func (f *fakeChatLogRepository) FindByConversationID(_ context.Context, conversationID string) ([]models.ChatLogMessage, error) {
	found := make([]models.ChatLogMessage, 0)
	for _, message := range f.messages {
		if message.ConversationID == conversationID {
			found = append(found, message)
		}
	}
	return found, nil
}

type fakeNotificationPublisher struct {
	published []contracts.PatientNotification
}

func (f *fakeNotificationPublisher) Publish(_ context.Context, notification *contracts.PatientNotification) error {
	f.published = append(f.published, *notification)
	return nil
}

type fakeReportArchive struct {
	archived []responses.Score
}

func (f *fakeReportArchive) ArchiveScoreReport(_ context.Context, score *responses.Score) (string, error) {
	f.archived = append(f.archived, *score)
	return "reports/test-object.json", nil
}

type fakeRedisRepository struct {
	store map[string]interface{}
}

func (f *fakeRedisRepository) Delete(_ context.Context, key string) error {
	delete(f.store, key)
	return nil
}

func (f *fakeRedisRepository) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.store[key] = value
	return nil
}

func (f *fakeRedisRepository) Get(_ context.Context, key string) (string, error) {
	if value, ok := f.store[key].(string); ok {
		return value, nil
	}
	return "", nil
}

type usecaseFixture struct {
	usecase       *questionnaireUsecase
	questionnaire *fakeQuestionnaireRepository
	conversations *fakeConversationRepository
	chatLogs      *fakeChatLogRepository
	notifications *fakeNotificationPublisher
	reports       *fakeReportArchive
}

func newUsecaseFixture(t *testing.T) *usecaseFixture {
	t.Helper()

	questions := make([]models.Question, 0, 7)
	for i := 1; i <= 7; i++ {
		questions = append(questions, models.Question{
			Text:  "item " + strconv.Itoa(i),
			Index: i,
		})
	}
	template, err := models.NewTemplate(
		"GAD-7 intake",
		"clinician-1",
		"team-1",
		"3 minutes",
		constvars.InstrumentGAD7,
		map[string]models.AnswerScheme{
			"item": {
				Type:            constvars.AnswerSchemeTypeRange,
				Range:           models.ScoreRange{Start: 0, End: 3},
				Interpretations: map[string]string{"0-3": "item score"},
			},
		},
		questions,
	)
	require.NoError(t, err)
	template.ID = "template-1"

	questionnaireRepository := newFakeQuestionnaireRepository()
	conversationRepository := &fakeConversationRepository{conversations: make(map[string]*models.Conversation), nextID: 1}
	chatLogRepository := &fakeChatLogRepository{}
	notificationPublisher := &fakeNotificationPublisher{}
	reportArchive := &fakeReportArchive{}

	usecase := &questionnaireUsecase{
		QuestionnaireRepository: questionnaireRepository,
		TemplateUsecase:         &fakeTemplateUsecase{template: template},
		PatientRepository: &fakePatientRepository{patients: map[string]*models.Patient{
			"patient-1": {ID: "patient-1", FirstName: "Ana", PhoneNumber: "+15550100"},
		}},
		ConversationRepository: conversationRepository,
		ChatLogRepository:      chatLogRepository,
		NotificationPublisher:  notificationPublisher,
		ReportArchive:          reportArchive,
		RedisRepository:        &fakeRedisRepository{store: make(map[string]interface{})},
		InternalConfig: &config.InternalConfig{
			JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
		},
		Log: zap.NewNop(),
	}

	return &usecaseFixture{
		usecase:       usecase,
		questionnaire: questionnaireRepository,
		conversations: conversationRepository,
		chatLogs:      chatLogRepository,
		notifications: notificationPublisher,
		reports:       reportArchive,
	}
}

func initRequest() *requests.InitQuestionnaire {
	return &requests.InitQuestionnaire{
		PatientID:  "patient-1",
		TemplateID: "template-1",
		UserID:     "user-1",
	}
}

func TestInitQuestionnaire(t *testing.T) {
	t.Run("creates a draft instance with conversation and notification", func(t *testing.T) {
		fixture := newUsecaseFixture(t)

		response, err := fixture.usecase.InitQuestionnaire(context.Background(), initRequest())
		require.NoError(t, err)

		assert.Equal(t, constvars.QuestionnaireStatusDraft, response.CurrentStatus)
		assert.Equal(t, constvars.InstrumentGAD7, response.Instrument)
		assert.Len(t, response.Questions.QuestionsList, 7)

		require.Len(t, fixture.chatLogs.messages, 1)
		assert.Equal(t, constvars.ChatLogRoleSystem, fixture.chatLogs.messages[0].Role)

		require.Len(t, fixture.notifications.published, 1)
		notification := fixture.notifications.published[0]
		assert.Equal(t, constvars.NotificationEventBeginQuestionnaire, notification.Event)
		assert.Equal(t, "+15550100", notification.PhoneNumber)
		assert.NotEmpty(t, notification.Token)
	})

	t.Run("rejects a second active instance for the same pair", func(t *testing.T) {
		fixture := newUsecaseFixture(t)

		_, err := fixture.usecase.InitQuestionnaire(context.Background(), initRequest())
		require.NoError(t, err)

		_, err = fixture.usecase.InitQuestionnaire(context.Background(), initRequest())
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientQuestionnaireAlreadyActive, customErr.ClientMessage)
	})

	t.Run("unknown patient", func(t *testing.T) {
		fixture := newUsecaseFixture(t)

		request := initRequest()
		request.PatientID = "patient-404"
		_, err := fixture.usecase.InitQuestionnaire(context.Background(), request)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientPatientNotFound, customErr.ClientMessage)
	})
}

func TestRecordAnswerPersistsProgress(t *testing.T) {
	fixture := newUsecaseFixture(t)

	initResponse, err := fixture.usecase.InitQuestionnaire(context.Background(), initRequest())
	require.NoError(t, err)

	response, err := fixture.usecase.RecordAnswer(context.Background(), &requests.RecordAnswer{
		QuestionnaireID: initResponse.ID,
		QuestionIndex:   1,
		RawValue:        "two",
	})
	require.NoError(t, err)
	assert.Equal(t, constvars.QuestionnaireStatusInProgress, response.CurrentStatus)

	stored, err := fixture.questionnaire.FindByID(context.Background(), initResponse.ID)
	require.NoError(t, err)
	question, err := stored.Questions.QuestionByIndex(1)
	require.NoError(t, err)
	require.True(t, question.IsAnswered())
	assert.Equal(t, "2", *question.Answer)
}

func TestCompleteQuestionnaire(t *testing.T) {
	t.Run("incomplete instance cannot complete", func(t *testing.T) {
		fixture := newUsecaseFixture(t)

		initResponse, err := fixture.usecase.InitQuestionnaire(context.Background(), initRequest())
		require.NoError(t, err)

		_, err = fixture.usecase.CompleteQuestionnaire(context.Background(), initResponse.ID)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientIncompleteQuestionnaire, customErr.ClientMessage)
	})

	t.Run("full instance completes, scores and archives", func(t *testing.T) {
		fixture := newUsecaseFixture(t)

		initResponse, err := fixture.usecase.InitQuestionnaire(context.Background(), initRequest())
		require.NoError(t, err)

		for i := 1; i <= 7; i++ {
			_, err := fixture.usecase.RecordAnswer(context.Background(), &requests.RecordAnswer{
				QuestionnaireID: initResponse.ID,
				QuestionIndex:   i,
				RawValue:        "2",
			})
			require.NoError(t, err)
		}

		score, err := fixture.usecase.CompleteQuestionnaire(context.Background(), initResponse.ID)
		require.NoError(t, err)
		assert.Equal(t, 14, score.Score)
		assert.Equal(t, "Moderate anxiety", score.Interpretation)

		stored, err := fixture.questionnaire.FindByID(context.Background(), initResponse.ID)
		require.NoError(t, err)
		assert.True(t, stored.IsCompleted())

		require.Len(t, fixture.reports.archived, 1)
		assert.Equal(t, initResponse.ID, fixture.reports.archived[0].QuestionnaireID)

		// The conversation opened at init time is closed again.
		active, err := fixture.conversations.FindActiveByPatientID(context.Background(), "patient-1")
		require.NoError(t, err)
		assert.Nil(t, active)

		require.Len(t, fixture.notifications.published, 2)
		assert.Equal(t, constvars.NotificationEventQuestionnaireCompleted, fixture.notifications.published[1].Event)
	})
}

func TestScoreQuestionnaire(t *testing.T) {
	fixture := newUsecaseFixture(t)

	initResponse, err := fixture.usecase.InitQuestionnaire(context.Background(), initRequest())
	require.NoError(t, err)

	t.Run("scoring requires completion", func(t *testing.T) {
		_, err := fixture.usecase.ScoreQuestionnaire(context.Background(), initResponse.ID)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientQuestionnaireNotCompleted, customErr.ClientMessage)
	})

	t.Run("completed instance scores on demand", func(t *testing.T) {
		answers := []string{"0", "1", "2", "3", "0", "1", "2"}
		for i, answer := range answers {
			_, err := fixture.usecase.RecordAnswer(context.Background(), &requests.RecordAnswer{
				QuestionnaireID: initResponse.ID,
				QuestionIndex:   i + 1,
				RawValue:        answer,
			})
			require.NoError(t, err)
		}
		_, err := fixture.usecase.CompleteQuestionnaire(context.Background(), initResponse.ID)
		require.NoError(t, err)

		score, err := fixture.usecase.ScoreQuestionnaire(context.Background(), initResponse.ID)
		require.NoError(t, err)
		assert.Equal(t, 9, score.Score)
		assert.Equal(t, "Mild anxiety", score.Interpretation)
	})
}

func TestReopenQuestionnaire(t *testing.T) {
	fixture := newUsecaseFixture(t)

	initResponse, err := fixture.usecase.InitQuestionnaire(context.Background(), initRequest())
	require.NoError(t, err)

	t.Run("reopen requires completion", func(t *testing.T) {
		_, err := fixture.usecase.ReopenQuestionnaire(context.Background(), initResponse.ID)
		require.Error(t, err)
	})

	t.Run("completed instance reopens to in_progress", func(t *testing.T) {
		for i := 1; i <= 7; i++ {
			_, err := fixture.usecase.RecordAnswer(context.Background(), &requests.RecordAnswer{
				QuestionnaireID: initResponse.ID,
				QuestionIndex:   i,
				RawValue:        "1",
			})
			require.NoError(t, err)
		}
		_, err := fixture.usecase.CompleteQuestionnaire(context.Background(), initResponse.ID)
		require.NoError(t, err)

		response, err := fixture.usecase.ReopenQuestionnaire(context.Background(), initResponse.ID)
		require.NoError(t, err)
		assert.Equal(t, constvars.QuestionnaireStatusInProgress, response.CurrentStatus)

		_, err = fixture.usecase.ScoreQuestionnaire(context.Background(), initResponse.ID)
		assert.Error(t, err)
	})
}
