package models

import (
	"curaflow-service/internal/pkg/constvars"
	"curaflow-service/internal/pkg/exceptions"
	"errors"
	"fmt"
)

// Questionnaire is a patient-specific instance of a template. It owns its
// copied QuestionnaireResult exclusively: recording answers never touches
// the template or sibling instances.
type Questionnaire struct {
	ID            string              `json:"id" bson:"_id,omitempty"`
	PatientID     string              `json:"patient_id" bson:"patientId"`
	TemplateID    string              `json:"template_id" bson:"templateId"`
	UserID        string              `json:"user_id" bson:"userId"`
	Instrument    string              `json:"instrument" bson:"instrument"`
	Questions     QuestionnaireResult `json:"questions" bson:"questions"`
	CurrentStatus string              `json:"current_status" bson:"currentStatus"`
	TimeModel     `bson:",inline"`
}

// NewQuestionnaireFromTemplate snapshots the template's content into a new
// draft instance. The copy is deep: later template mutation cannot leak
// into instances created before it.
func NewQuestionnaireFromTemplate(patientID, userID string, template *Template) *Questionnaire {
	questions := template.Questions.Clone()
	questions.Status = constvars.QuestionnaireStatusDraft

	return &Questionnaire{
		PatientID:     patientID,
		TemplateID:    template.ID,
		UserID:        userID,
		Instrument:    template.Instrument,
		Questions:     questions,
		CurrentStatus: constvars.QuestionnaireStatusDraft,
	}
}

// RecordAnswer validates and stores one answer. The first answer advances
// the instance from draft to in_progress.
func (q *Questionnaire) RecordAnswer(questionIndex int, rawValue string) error {
	if err := q.Questions.RecordAnswer(questionIndex, rawValue); err != nil {
		return err
	}
	q.CurrentStatus = q.Questions.Status
	return nil
}

// MarkCompleted transitions the instance to completed, requiring every
// question to carry an answer.
func (q *Questionnaire) MarkCompleted() error {
	if err := q.Questions.MarkCompleted(); err != nil {
		return err
	}
	q.CurrentStatus = constvars.QuestionnaireStatusCompleted
	return nil
}

// Reopen is the explicit completed -> in_progress transition a clinician
// may take; any other starting state is rejected.
func (q *Questionnaire) Reopen() error {
	if q.CurrentStatus != constvars.QuestionnaireStatusCompleted {
		return exceptions.ErrQuestionnaireNotCompleted(q.CurrentStatus)
	}
	q.CurrentStatus = constvars.QuestionnaireStatusInProgress
	q.Questions.Status = constvars.QuestionnaireStatusInProgress
	return nil
}

// IsCompleted reports whether the instance may be scored.
func (q *Questionnaire) IsCompleted() bool {
	return q.CurrentStatus == constvars.QuestionnaireStatusCompleted
}

// Validate is the storage-boundary check applied when an instance document
// is loaded from an untrusted source.
func (q *Questionnaire) Validate() error {
	switch q.CurrentStatus {
	case constvars.QuestionnaireStatusDraft, constvars.QuestionnaireStatusInProgress, constvars.QuestionnaireStatusCompleted:
	default:
		return exceptions.ErrInvalidTemplate(fmt.Errorf("unknown status %q", q.CurrentStatus))
	}
	if len(q.Questions.QuestionsList) == 0 {
		return exceptions.ErrInvalidTemplate(errors.New("instance has no questions"))
	}
	return nil
}
