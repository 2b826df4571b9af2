package scoring

import (
	"curaflow-service/internal/app/models"
	"curaflow-service/internal/pkg/constvars"
	"curaflow-service/internal/pkg/exceptions"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Run("gad-7 registers itself", func(t *testing.T) {
		instrument, err := Lookup(constvars.InstrumentGAD7)
		require.NoError(t, err)
		assert.Equal(t, 7, instrument.ItemCount)
	})

	t.Run("unknown instrument", func(t *testing.T) {
		_, err := Lookup("phq-99")
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientUnknownInstrument, customErr.ClientMessage)
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("dispatches by instrument code", func(t *testing.T) {
		result := answeredGAD7Result([]string{"3", "2", "3", "2", "3", "2", "3"})

		score, interpretation, err := Evaluate(constvars.InstrumentGAD7, result)
		require.NoError(t, err)
		assert.Equal(t, 18, score)
		assert.Equal(t, "Severe anxiety", interpretation)
	})

	t.Run("unknown code fails before scoring", func(t *testing.T) {
		_, _, err := Evaluate("unknown", models.QuestionnaireResult{})
		assert.Error(t, err)
	})

	t.Run("scoring failure propagates", func(t *testing.T) {
		result := answeredGAD7Result([]string{"1", "1", "1"})
		_, _, err := Evaluate(constvars.InstrumentGAD7, result)
		assert.Error(t, err)
	})
}

func TestInterpretWithBands(t *testing.T) {
	bands := []Band{
		{Min: 0, Max: 4, Label: "low"},
		{Min: 5, Max: 9, Label: "high"},
	}

	assert.Equal(t, "low", InterpretWithBands(bands, 0))
	assert.Equal(t, "low", InterpretWithBands(bands, 4))
	assert.Equal(t, "high", InterpretWithBands(bands, 5))
	assert.Equal(t, "high", InterpretWithBands(bands, 9))
	assert.Equal(t, InvalidScoreSentinel, InterpretWithBands(bands, 10))
	assert.Equal(t, InvalidScoreSentinel, InterpretWithBands(bands, -1))
}

func TestRegisterReplaces(t *testing.T) {
	Register(Instrument{
		Code:      "test-instrument",
		ItemCount: 1,
		Score:     func(models.QuestionnaireResult) (int, error) { return 1, nil },
		Interpret: func(int) string { return "first" },
	})
	Register(Instrument{
		Code:      "test-instrument",
		ItemCount: 1,
		Score:     func(models.QuestionnaireResult) (int, error) { return 1, nil },
		Interpret: func(int) string { return "second" },
	})

	_, interpretation, err := Evaluate("test-instrument", models.QuestionnaireResult{})
	require.NoError(t, err)
	assert.Equal(t, "second", interpretation)
}
