package scoring

import (
	"curaflow-service/internal/app/models"
	"curaflow-service/internal/pkg/constvars"
	"curaflow-service/internal/pkg/exceptions"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answeredGAD7Result(answers []string) models.QuestionnaireResult {
	questions := make([]models.Question, 0, len(answers))
	for i, answer := range answers {
		question := models.Question{
			Text:  "item " + strconv.Itoa(i+1),
			Index: i + 1,
		}
		if answer != "" {
			value := answer
			question.Answer = &value
		}
		questions = append(questions, question)
	}
	return models.QuestionnaireResult{
		AnswerSchemes: map[string]models.AnswerScheme{
			"item": {
				Type:            constvars.AnswerSchemeTypeRange,
				Range:           models.ScoreRange{Start: 0, End: 3},
				Interpretations: map[string]string{"0-3": "item score"},
			},
		},
		QuestionsList: questions,
		Status:        constvars.QuestionnaireStatusCompleted,
	}
}

func TestScoreGAD7(t *testing.T) {
	t.Run("raw sum of seven items", func(t *testing.T) {
		result := answeredGAD7Result([]string{"0", "1", "2", "3", "0", "1", "2"})
		score, err := ScoreGAD7(result)
		require.NoError(t, err)
		assert.Equal(t, 9, score)
	})

	t.Run("spelled-out answers count like digits", func(t *testing.T) {
		result := answeredGAD7Result([]string{"two", "2", "two", "2", "two", "2", "two"})
		score, err := ScoreGAD7(result)
		require.NoError(t, err)
		assert.Equal(t, 14, score)
	})

	t.Run("all minimum and all maximum", func(t *testing.T) {
		result := answeredGAD7Result([]string{"0", "0", "0", "0", "0", "0", "0"})
		score, err := ScoreGAD7(result)
		require.NoError(t, err)
		assert.Equal(t, 0, score)

		result = answeredGAD7Result([]string{"3", "3", "3", "3", "3", "3", "3"})
		score, err = ScoreGAD7(result)
		require.NoError(t, err)
		assert.Equal(t, 21, score)
	})

	t.Run("fewer than seven answers", func(t *testing.T) {
		result := answeredGAD7Result([]string{"1", "1", "1", "", "1", "1", "1"})
		_, err := ScoreGAD7(result)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientInvalidQuestionCount, customErr.ClientMessage)
	})

	t.Run("more than seven answers", func(t *testing.T) {
		result := answeredGAD7Result([]string{"1", "1", "1", "1", "1", "1", "1", "1"})
		_, err := ScoreGAD7(result)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientInvalidQuestionCount, customErr.ClientMessage)
	})

	t.Run("non-numeric answer", func(t *testing.T) {
		result := answeredGAD7Result([]string{"1", "1", "1", "often", "1", "1", "1"})
		_, err := ScoreGAD7(result)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientInvalidAnswer, customErr.ClientMessage)
	})
}

func TestInterpretGAD7(t *testing.T) {
	t.Run("band boundaries", func(t *testing.T) {
		cases := []struct {
			score int
			want  string
		}{
			{0, "Minimal anxiety"},
			{4, "Minimal anxiety"},
			{5, "Mild anxiety"},
			{9, "Mild anxiety"},
			{10, "Moderate anxiety"},
			{14, "Moderate anxiety"},
			{15, "Severe anxiety"},
			{21, "Severe anxiety"},
		}
		for _, tc := range cases {
			assert.Equal(t, tc.want, InterpretGAD7(tc.score), "score %d", tc.score)
		}
	})

	t.Run("every score in the valid domain has exactly one band", func(t *testing.T) {
		for score := 0; score <= 21; score++ {
			matches := 0
			for _, band := range gad7Bands {
				if score >= band.Min && score <= band.Max {
					matches++
				}
			}
			assert.Equal(t, 1, matches, "score %d", score)
		}
	})

	t.Run("out of domain scores yield the sentinel", func(t *testing.T) {
		assert.Equal(t, InvalidScoreSentinel, InterpretGAD7(-1))
		assert.Equal(t, InvalidScoreSentinel, InterpretGAD7(22))
		assert.Equal(t, "Invalid score", InterpretGAD7(100))
	})
}
