package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
)

// Questionnaire lifecycle statuses. Transitions are monotonic; the only
// backward move is an explicit reopen from completed to in_progress.
const (
	QuestionnaireStatusDraft      = "draft"
	QuestionnaireStatusInProgress = "in_progress"
	QuestionnaireStatusCompleted  = "completed"
)

const (
	ConversationStatusInitiated = "Initiated"
	ConversationStatusEnded     = "Ended"
)

const (
	ChatLogRoleSystem  = "system"
	ChatLogRolePatient = "patient"
	ChatLogRoleUser    = "user"
)

// Answer scheme types.
const (
	AnswerSchemeTypeRange = "range"
)

// Instrument codes known to the scoring registry.
const (
	InstrumentGAD7 = "gad-7"
)

const (
	MongoCollectionTeams          = "teams"
	MongoCollectionUsers          = "users"
	MongoCollectionPatients       = "patients"
	MongoCollectionTemplates      = "templates"
	MongoCollectionQuestionnaires = "questionnaires"
	MongoCollectionConversations  = "conversations"
	MongoCollectionChatLogs       = "chat_logs"
)

const (
	RedisKeyTemplateCacheFormat = "template:%s"
	RedisKeySessionFormat       = "session:%s"
)

const (
	NotificationEventBeginQuestionnaire     = "begin_questionnaire"
	NotificationEventQuestionnaireCompleted = "questionnaire_completed"
)
