package requests

type InitQuestionnaire struct {
	PatientID  string `json:"patient_id" validate:"required"`
	TemplateID string `json:"template_id" validate:"required"`
	UserID     string `json:"user_id" validate:"required"`
}

type RecordAnswer struct {
	QuestionnaireID string `json:"-"`
	QuestionIndex   int    `json:"question_index" validate:"gte=0"`
	RawValue        string `json:"raw_value" validate:"required"`
}
