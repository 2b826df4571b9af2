package responses

import "curaflow-service/internal/app/models"

// Questionnaire is the aggregated read shape the presentation layer
// consumes. CreatedAt/LastActivity carry the display strings produced by
// the formatting helpers.
type Questionnaire struct {
	ID            string                     `json:"id"`
	PatientID     string                     `json:"patient_id"`
	TemplateID    string                     `json:"template_id"`
	UserID        string                     `json:"user_id"`
	Instrument    string                     `json:"instrument"`
	CurrentStatus string                     `json:"current_status"`
	Questions     models.QuestionnaireResult `json:"questions"`
	CreatedAt     string                     `json:"created_at"`
	LastActivity  string                     `json:"last_activity"`
}

// Score is the result banner payload: the instrument's raw total and the
// matching interpretation band description.
type Score struct {
	QuestionnaireID string `json:"questionnaire_id"`
	Instrument      string `json:"instrument"`
	Score           int    `json:"score"`
	Interpretation  string `json:"interpretation"`
}

type Conversation struct {
	ID              string           `json:"id"`
	PatientID       string           `json:"patient_id"`
	QuestionnaireID string           `json:"questionnaire_id"`
	Status          string           `json:"status"`
	Messages        []ChatLogMessage `json:"messages,omitempty"`
}

type ChatLogMessage struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Message   string `json:"message_text"`
	CreatedAt string `json:"created_at"`
}
