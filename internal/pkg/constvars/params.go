package constvars

const (
	URLParamTeamID          = "team_id"
	URLParamUserID          = "user_id"
	URLParamPatientID       = "patient_id"
	URLParamTemplateID      = "template_id"
	URLParamQuestionnaireID = "questionnaire_id"
	URLParamConversationID  = "conversation_id"
)
