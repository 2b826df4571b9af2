package models

import (
	"curaflow-service/internal/pkg/constvars"
	"curaflow-service/internal/pkg/exceptions"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gad7Scheme() AnswerScheme {
	return AnswerScheme{
		Type:        constvars.AnswerSchemeTypeRange,
		Range:       ScoreRange{Start: 0, End: 3},
		Explanation: "0 = Not at all, 1 = Several days, 2 = More than half the days, 3 = Nearly every day",
		Interpretations: map[string]string{
			"0": "Not at all",
			"1": "Several days",
			"2": "More than half the days",
			"3": "Nearly every day",
		},
	}
}

func TestAnswerSchemeValidate(t *testing.T) {
	t.Run("valid scheme passes", func(t *testing.T) {
		assert.NoError(t, gad7Scheme().Validate())
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		scheme := gad7Scheme()
		scheme.Range = ScoreRange{Start: 3, End: 0}

		err := scheme.Validate()
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientInvalidScheme, customErr.ClientMessage)
	})

	t.Run("empty interpretations are rejected", func(t *testing.T) {
		scheme := gad7Scheme()
		scheme.Interpretations = nil

		err := scheme.Validate()
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientInvalidScheme, customErr.ClientMessage)
	})
}

func TestGetScheme(t *testing.T) {
	schemes := map[string]AnswerScheme{"1": gad7Scheme()}

	t.Run("existing key", func(t *testing.T) {
		scheme, err := GetScheme(schemes, "1")
		require.NoError(t, err)
		assert.Equal(t, constvars.AnswerSchemeTypeRange, scheme.Type)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := GetScheme(schemes, "99")
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientSchemeNotFound, customErr.ClientMessage)
	})
}

func TestResolveInterpretation(t *testing.T) {
	scheme := AnswerScheme{
		Type:  constvars.AnswerSchemeTypeRange,
		Range: ScoreRange{Start: 0, End: 21},
		Interpretations: map[string]string{
			"0-4":   "Minimal anxiety",
			"5-9":   "Mild anxiety",
			"10-14": "Moderate anxiety",
			"15-21": "Severe anxiety",
		},
	}

	t.Run("band boundaries resolve to the containing band", func(t *testing.T) {
		cases := []struct {
			value int
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
			got, err := scheme.ResolveInterpretation(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		}
	})

	t.Run("out of range value errors", func(t *testing.T) {
		_, err := scheme.ResolveInterpretation(22)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientValueOutOfRange, customErr.ClientMessage)

		_, err = scheme.ResolveInterpretation(-1)
		assert.Error(t, err)
	})

	t.Run("single value band key", func(t *testing.T) {
		got, err := gad7Scheme().ResolveInterpretation(2)
		require.NoError(t, err)
		assert.Equal(t, "More than half the days", got)
	})

	t.Run("in-range value in a band gap", func(t *testing.T) {
		gapped := AnswerScheme{
			Type:  constvars.AnswerSchemeTypeRange,
			Range: ScoreRange{Start: 0, End: 10},
			Interpretations: map[string]string{
				"0-4":  "low",
				"8-10": "high",
			},
		}

		_, err := gapped.ResolveInterpretation(6)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientInterpretationNotFound, customErr.ClientMessage)
	})

	t.Run("only malformed band keys", func(t *testing.T) {
		malformed := AnswerScheme{
			Type:            constvars.AnswerSchemeTypeRange,
			Range:           ScoreRange{Start: 0, End: 3},
			Interpretations: map[string]string{"low to high": "unusable"},
		}

		_, err := malformed.ResolveInterpretation(1)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientInterpretationNotFound, customErr.ClientMessage)
	})
}
