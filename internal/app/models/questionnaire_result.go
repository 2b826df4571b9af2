package models

import (
	"curaflow-service/internal/pkg/constvars"
	"curaflow-service/internal/pkg/exceptions"
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// QuestionnaireResult is the payload shared by templates and questionnaire
// instances: the instrument's answer-scheme vocabulary plus the ordered
// question list. It is stored as-is (JSON/BSON document) and its field
// names must not change.
type QuestionnaireResult struct {
	AnswerSchemes map[string]AnswerScheme `json:"answer_schemes" bson:"answer_schemes"`
	QuestionsList []Question              `json:"questions_list" bson:"questions_list"`
	Comments      []string                `json:"comments,omitempty" bson:"comments,omitempty"`
	Status        string                  `json:"status" bson:"status"`
}

// Validate checks the template-level invariants: every scheme is valid,
// every question resolves to a scheme, and question indices are unique.
func (r QuestionnaireResult) Validate() error {
	if len(r.QuestionsList) == 0 {
		return exceptions.ErrInvalidTemplate(errors.New("questions_list must not be empty"))
	}
	for key, scheme := range r.AnswerSchemes {
		if err := scheme.Validate(); err != nil {
			return exceptions.ErrInvalidTemplate(fmt.Errorf("answer scheme %q: %w", key, err))
		}
	}

	seen := make(map[int]bool, len(r.QuestionsList))
	for _, question := range r.QuestionsList {
		if seen[question.Index] {
			return exceptions.ErrInvalidTemplate(fmt.Errorf("duplicate question index %d", question.Index))
		}
		seen[question.Index] = true

		if _, err := r.SchemeForQuestion(question); err != nil {
			return exceptions.ErrInvalidTemplate(fmt.Errorf("question %d has no answer scheme", question.Index))
		}
	}
	return nil
}

// SchemeForQuestion resolves the scheme a question is bound to: the key
// matching the question's index, or the sole scheme when the instrument
// defines exactly one.
func (r QuestionnaireResult) SchemeForQuestion(question Question) (AnswerScheme, error) {
	if scheme, ok := r.AnswerSchemes[question.SchemeKey()]; ok {
		return scheme, nil
	}
	if len(r.AnswerSchemes) == 1 {
		for _, scheme := range r.AnswerSchemes {
			return scheme, nil
		}
	}
	return AnswerScheme{}, exceptions.ErrSchemeNotFound(question.SchemeKey())
}

// QuestionsOrdered returns the questions sorted by index ascending. The
// returned slice is a copy; indices need not be contiguous.
func (r QuestionnaireResult) QuestionsOrdered() []Question {
	ordered := make([]Question, len(r.QuestionsList))
	copy(ordered, r.QuestionsList)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Index < ordered[j].Index
	})
	return ordered
}

// QuestionByIndex returns a pointer into QuestionsList so callers may set
// the answer in place.
func (r *QuestionnaireResult) QuestionByIndex(index int) (*Question, error) {
	for i := range r.QuestionsList {
		if r.QuestionsList[i].Index == index {
			return &r.QuestionsList[i], nil
		}
	}
	return nil, exceptions.ErrQuestionNotFound(index)
}

// RecordAnswer validates raw against the question's scheme and sets the
// answer. A failed validation leaves any previously recorded answer
// untouched. The first recorded answer moves the result out of draft.
func (r *QuestionnaireResult) RecordAnswer(index int, raw string) error {
	question, err := r.QuestionByIndex(index)
	if err != nil {
		return err
	}

	scheme, err := r.SchemeForQuestion(*question)
	if err != nil {
		return err
	}

	answer := raw
	if scheme.Type == constvars.AnswerSchemeTypeRange {
		value, err := ParseNumericAnswer(raw)
		if err != nil {
			return exceptions.ErrInvalidAnswer(err)
		}
		if !scheme.Range.Contains(value) {
			return exceptions.ErrInvalidAnswer(fmt.Errorf("value %d is outside scheme range [%d,%d]", value, scheme.Range.Start, scheme.Range.End))
		}
		// Store the canonical digit form so "two" and "2" score the same.
		answer = strconv.Itoa(value)
	}

	question.Answer = &answer
	if r.Status == constvars.QuestionnaireStatusDraft || r.Status == "" {
		r.Status = constvars.QuestionnaireStatusInProgress
	}
	return nil
}

// MarkCompleted requires an answer on every question.
func (r *QuestionnaireResult) MarkCompleted() error {
	for _, question := range r.QuestionsOrdered() {
		if !question.IsAnswered() {
			return exceptions.ErrIncompleteQuestionnaire(question.Index)
		}
	}
	r.Status = constvars.QuestionnaireStatusCompleted
	return nil
}

// Clone deep-copies the result so questionnaire instances snapshot their
// template instead of aliasing it.
func (r QuestionnaireResult) Clone() QuestionnaireResult {
	cloned := QuestionnaireResult{
		Status: r.Status,
	}

	if r.AnswerSchemes != nil {
		cloned.AnswerSchemes = make(map[string]AnswerScheme, len(r.AnswerSchemes))
		for key, scheme := range r.AnswerSchemes {
			schemeCopy := scheme
			if scheme.Interpretations != nil {
				schemeCopy.Interpretations = make(map[string]string, len(scheme.Interpretations))
				for band, description := range scheme.Interpretations {
					schemeCopy.Interpretations[band] = description
				}
			}
			cloned.AnswerSchemes[key] = schemeCopy
		}
	}

	if r.QuestionsList != nil {
		cloned.QuestionsList = make([]Question, len(r.QuestionsList))
		for i, question := range r.QuestionsList {
			questionCopy := question
			if question.Answer != nil {
				answer := *question.Answer
				questionCopy.Answer = &answer
			}
			cloned.QuestionsList[i] = questionCopy
		}
	}

	if r.Comments != nil {
		cloned.Comments = make([]string, len(r.Comments))
		copy(cloned.Comments, r.Comments)
	}

	return cloned
}
