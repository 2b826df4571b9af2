package models

import (
	"curaflow-service/internal/pkg/constvars"
	"curaflow-service/internal/pkg/exceptions"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gad7Template(t *testing.T) *Template {
	t.Helper()
	result := gad7Result()
	template, err := NewTemplate(
		"GAD-7 intake",
		"clinician-1",
		"team-1",
		"3 minutes",
		constvars.InstrumentGAD7,
		result.AnswerSchemes,
		result.QuestionsList,
	)
	require.NoError(t, err)
	template.ID = "template-1"
	return template
}

func TestNewQuestionnaireFromTemplate(t *testing.T) {
	template := gad7Template(t)
	questionnaire := NewQuestionnaireFromTemplate("patient-1", "user-1", template)

	assert.Equal(t, constvars.QuestionnaireStatusDraft, questionnaire.CurrentStatus)
	assert.Equal(t, template.ID, questionnaire.TemplateID)
	assert.Equal(t, constvars.InstrumentGAD7, questionnaire.Instrument)

	// The instance owns a snapshot; answering never touches the template.
	require.NoError(t, questionnaire.RecordAnswer(1, "3"))
	templateQuestion, err := template.Questions.QuestionByIndex(1)
	require.NoError(t, err)
	assert.False(t, templateQuestion.IsAnswered())
}

func TestQuestionnaireLifecycle(t *testing.T) {
	template := gad7Template(t)

	t.Run("draft to in_progress on first answer", func(t *testing.T) {
		questionnaire := NewQuestionnaireFromTemplate("patient-1", "user-1", template)
		require.NoError(t, questionnaire.RecordAnswer(1, "0"))
		assert.Equal(t, constvars.QuestionnaireStatusInProgress, questionnaire.CurrentStatus)
	})

	t.Run("complete requires every answer", func(t *testing.T) {
		questionnaire := NewQuestionnaireFromTemplate("patient-1", "user-1", template)
		require.NoError(t, questionnaire.RecordAnswer(1, "1"))

		err := questionnaire.MarkCompleted()
		require.Error(t, err)
		assert.Equal(t, constvars.QuestionnaireStatusInProgress, questionnaire.CurrentStatus)

		for i := 2; i <= 7; i++ {
			require.NoError(t, questionnaire.RecordAnswer(i, "1"))
		}
		require.NoError(t, questionnaire.MarkCompleted())
		assert.True(t, questionnaire.IsCompleted())
	})

	t.Run("reopen only from completed", func(t *testing.T) {
		questionnaire := NewQuestionnaireFromTemplate("patient-1", "user-1", template)

		err := questionnaire.Reopen()
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientQuestionnaireNotCompleted, customErr.ClientMessage)

		for i := 1; i <= 7; i++ {
			require.NoError(t, questionnaire.RecordAnswer(i, "2"))
		}
		require.NoError(t, questionnaire.MarkCompleted())
		require.NoError(t, questionnaire.Reopen())
		assert.Equal(t, constvars.QuestionnaireStatusInProgress, questionnaire.CurrentStatus)

		// Answers survive the reopen and completing again works.
		require.NoError(t, questionnaire.RecordAnswer(4, "3"))
		require.NoError(t, questionnaire.MarkCompleted())
		assert.True(t, questionnaire.IsCompleted())
	})
}

func TestQuestionnaireValidate(t *testing.T) {
	template := gad7Template(t)
	questionnaire := NewQuestionnaireFromTemplate("patient-1", "user-1", template)
	assert.NoError(t, questionnaire.Validate())

	questionnaire.CurrentStatus = "archived"
	assert.Error(t, questionnaire.Validate())
}
