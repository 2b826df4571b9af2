package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientTeamNotFound                  = "team not found"
	ErrClientUserNotFound                  = "user not found"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientTemplateNotFound              = "template not found"
	ErrClientQuestionnaireNotFound         = "questionnaire not found"
	ErrClientConversationNotFound          = "conversation not found"
	ErrClientInvalidTemplate               = "the template definition is invalid"
	ErrClientInvalidScheme                 = "the answer scheme definition is invalid"
	ErrClientSchemeNotFound                = "answer scheme not found"
	ErrClientQuestionNotFound              = "question not found"
	ErrClientInvalidAnswer                 = "the answer does not match the question's expected format"
	ErrClientValueOutOfRange               = "the value is outside the allowed range"
	ErrClientInterpretationNotFound        = "no interpretation is defined for this value"
	ErrClientInvalidQuestionCount          = "the questionnaire does not have the number of answers the instrument requires"
	ErrClientIncompleteQuestionnaire       = "the questionnaire still has unanswered questions"
	ErrClientQuestionnaireNotCompleted     = "the questionnaire is not completed yet"
	ErrClientUnknownInstrument             = "the scoring instrument is not supported"
	ErrClientQuestionnaireAlreadyActive    = "an active questionnaire already exists for this patient and template"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded while processing the request"
	ErrDevURLParamIDValidationFail = "invalid %s url parameter"

	ErrDevAuthTokenMissing             = "authorization token is missing"
	ErrDevAuthTokenInvalidOrExpired    = "authorization token is invalid or expired"
	ErrDevAuthGenerateToken            = "failed to generate session token"
	ErrDevSessionQuestionnaireMismatch = "session token was issued for a different questionnaire"

	ErrDevDBFailedToFindDocument    = "mongodb failed to find document"
	ErrDevDBFailedToInsertDocument  = "mongodb failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "mongodb failed to update document"
	ErrDevDBFailedToDeleteDocument  = "mongodb failed to delete document"
	ErrDevDBFailedToIterateDocument = "mongodb failed to iterate documents"
	ErrDevDBStringNotObjectID       = "the given string is not a valid mongodb object id"

	ErrDevRedisSet       = "redis failed to set key"
	ErrDevRedisGetNoData = "redis failed to get data for key %s"
	ErrDevRedisDelete    = "redis failed to delete key"

	ErrDevQueuePublish      = "failed to publish message to queue"
	ErrDevMinioCreateObject = "minio failed to create object in bucket %s"

	ErrDevTeamNotFound          = "team does not exist"
	ErrDevUserNotFound          = "user does not exist"
	ErrDevPatientNotFound       = "patient does not exist"
	ErrDevTemplateNotFound      = "template does not exist"
	ErrDevQuestionnaireNotFound = "questionnaire does not exist"
	ErrDevConversationNotFound  = "conversation does not exist"

	ErrDevInvalidScheme             = "answer scheme is invalid"
	ErrDevSchemeNotFound            = "answer scheme key %s is not defined"
	ErrDevValueOutOfRange           = "value %d is outside scheme range [%d,%d]"
	ErrDevInterpretationNotFound    = "no interpretation band covers value %d"
	ErrDevInvalidTemplate           = "template definition is invalid"
	ErrDevQuestionNotFound          = "no question with index %d"
	ErrDevInvalidAnswer             = "answer is invalid for the question's scheme"
	ErrDevInvalidQuestionCount      = "instrument requires %d answered questions, got %d"
	ErrDevIncompleteQuestionnaire   = "question with index %d has no answer"
	ErrDevQuestionnaireNotCompleted = "questionnaire status is %s, scoring requires completed"
	ErrDevUnknownInstrument         = "instrument %s is not registered"

	ErrDevMissingRequestID           = "request id not found in request context"
	ErrDevQuestionnaireAlreadyActive = "patient %s already has an active questionnaire for template %s"
)
