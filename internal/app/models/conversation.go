package models

import "time"

type Conversation struct {
	ID              string     `json:"id" bson:"_id,omitempty"`
	PatientID       string     `json:"patient_id" bson:"patientId"`
	QuestionnaireID string     `json:"questionnaire_id" bson:"questionnaireId"`
	Status          string     `json:"status" bson:"status"`
	EndedAt         *time.Time `json:"ended_at,omitempty" bson:"endedAt,omitempty"`
	TimeModel       `bson:",inline"`
}
