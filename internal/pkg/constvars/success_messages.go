package constvars

const (
	CreateTeamSuccessMessage     = "Successfully created team"
	FindTeamSuccessMessage       = "Successfully retrieved team"
	FindAllTeamsSuccessMessage   = "Successfully retrieved teams"
	CreateUserSuccessMessage     = "Successfully created user"
	FindUserSuccessMessage       = "Successfully retrieved user"
	FindAllUsersSuccessMessage   = "Successfully retrieved users"
	CreatePatientSuccessMessage  = "Successfully created patient"
	FindPatientSuccessMessage    = "Successfully retrieved patient"
	FindAllPatientsSuccess       = "Successfully retrieved patients"
	CreateTemplateSuccessMessage = "Successfully created template"
	FindTemplateSuccessMessage   = "Successfully retrieved template"
	FindAllTemplatesSuccess      = "Successfully retrieved templates"

	InitQuestionnaireSuccessMessage     = "Successfully initiated questionnaire"
	FindQuestionnaireSuccessMessage     = "Successfully retrieved questionnaire"
	FindAllQuestionnairesSuccess        = "Successfully retrieved questionnaires"
	RecordAnswerSuccessMessage          = "Successfully recorded answer"
	CompleteQuestionnaireSuccessMessage = "Successfully completed questionnaire"
	ReopenQuestionnaireSuccessMessage   = "Successfully reopened questionnaire"
	ScoreQuestionnaireSuccessMessage    = "Successfully scored questionnaire"
	FindConversationMessagesSuccess     = "Successfully retrieved conversation messages"
)
