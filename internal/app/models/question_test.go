package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumericAnswer(t *testing.T) {
	t.Run("digits", func(t *testing.T) {
		value, err := ParseNumericAnswer("3")
		require.NoError(t, err)
		assert.Equal(t, 3, value)
	})

	t.Run("spelled-out numbers", func(t *testing.T) {
		cases := map[string]int{
			"zero": 0, "one": 1, "two": 2, "three": 3,
			"four": 4, "five": 5, "six": 6, "seven": 7,
			"eight": 8, "nine": 9, "ten": 10,
		}
		for raw, want := range cases {
			value, err := ParseNumericAnswer(raw)
			require.NoError(t, err)
			assert.Equal(t, want, value)
		}
	})

	t.Run("case and whitespace are ignored", func(t *testing.T) {
		value, err := ParseNumericAnswer("  Two ")
		require.NoError(t, err)
		assert.Equal(t, 2, value)
	})

	t.Run("non-numeric input", func(t *testing.T) {
		_, err := ParseNumericAnswer("sometimes")
		assert.Error(t, err)
	})
}

func TestQuestionSchemeKey(t *testing.T) {
	question := Question{Text: "Trouble relaxing", Index: 4}
	assert.Equal(t, "4", question.SchemeKey())
	assert.False(t, question.IsAnswered())
}
