package models

import "curaflow-service/internal/pkg/constvars"

// Template is a reusable questionnaire definition owned by a clinician or
// team. Once an instance has been created from it, the template is treated
// as immutable; instances snapshot its content at creation time.
type Template struct {
	ID         string              `json:"id" bson:"_id,omitempty"`
	Owner      string              `json:"owner" bson:"owner"`
	TeamID     string              `json:"team_id,omitempty" bson:"teamId,omitempty"`
	Title      string              `json:"title" bson:"title"`
	Duration   string              `json:"duration" bson:"duration"`
	Instrument string              `json:"instrument" bson:"instrument"`
	Questions  QuestionnaireResult `json:"questions" bson:"questions"`
	TimeModel  `bson:",inline"`
}

// NewTemplate builds a validated template. Scheme definitions, scheme-key
// bindings and index uniqueness are all checked here so instances can trust
// the shape they copy.
func NewTemplate(title, owner, teamID, duration, instrument string, answerSchemes map[string]AnswerScheme, questionsList []Question) (*Template, error) {
	result := QuestionnaireResult{
		AnswerSchemes: answerSchemes,
		QuestionsList: questionsList,
		Status:        constvars.QuestionnaireStatusDraft,
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}

	return &Template{
		Owner:      owner,
		TeamID:     teamID,
		Title:      title,
		Duration:   duration,
		Instrument: instrument,
		Questions:  result,
	}, nil
}
