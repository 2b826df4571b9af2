package requests

import "curaflow-service/internal/app/models"

type CreateTemplate struct {
	Owner         string                         `json:"owner" validate:"required"`
	TeamID        string                         `json:"team_id"`
	Title         string                         `json:"title" validate:"required"`
	Duration      string                         `json:"duration" validate:"required"`
	Instrument    string                         `json:"instrument" validate:"required"`
	AnswerSchemes map[string]models.AnswerScheme `json:"answer_schemes" validate:"required"`
	QuestionsList []models.Question              `json:"questions_list" validate:"required,min=1"`
}
