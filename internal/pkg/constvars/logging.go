package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingMethodKey          = "method"
	LoggingEndpointKey        = "endpoint"
	LoggingRemoteAddrKey      = "remote_addr"
	LoggingUserAgentKey       = "user_agent"
	LoggingQueryKey           = "query"
	LoggingStatusCodeKey      = "status_code"
	LoggingDurationKey        = "duration"
	LoggingSuccessKey         = "success"
	LoggingPatientIDKey       = "patient_id"
	LoggingTemplateIDKey      = "template_id"
	LoggingQuestionnaireIDKey = "questionnaire_id"
	LoggingInstrumentKey      = "instrument"
	LoggingScoreKey           = "score"
	LoggingEventKey           = "event"
)
