package scoring

import (
	"curaflow-service/internal/app/models"
	"curaflow-service/internal/pkg/exceptions"
	"sync"
)

// Instrument bundles one clinical instrument's scoring function and band
// table. New instruments register themselves; nothing here branches on
// item counts.
type Instrument struct {
	Code      string
	Name      string
	ItemCount int
	Score     func(result models.QuestionnaireResult) (int, error)
	Interpret func(score int) string
}

// Band is one closed interpretation range of an instrument's band table.
type Band struct {
	Min   int
	Max   int
	Label string
}

// InterpretWithBands evaluates the bands in order and returns the first
// match. Out-of-domain scores yield the sentinel "Invalid score" string
// rather than an error; upstream corruption degrades gracefully at this
// one boundary.
func InterpretWithBands(bands []Band, score int) string {
	for _, band := range bands {
		if score >= band.Min && score <= band.Max {
			return band.Label
		}
	}
	return InvalidScoreSentinel
}

const InvalidScoreSentinel = "Invalid score"

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Instrument)
)

// Register adds an instrument to the dispatch table. Later registrations
// with the same code replace earlier ones.
func Register(instrument Instrument) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[instrument.Code] = instrument
}

// Lookup returns the instrument registered under code.
func Lookup(code string) (Instrument, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	instrument, ok := registry[code]
	if !ok {
		return Instrument{}, exceptions.ErrUnknownInstrument(code)
	}
	return instrument, nil
}

// Evaluate scores a result with the instrument registered under code and
// resolves the interpretation band in one step.
func Evaluate(code string, result models.QuestionnaireResult) (score int, interpretation string, err error) {
	instrument, err := Lookup(code)
	if err != nil {
		return 0, "", err
	}
	score, err = instrument.Score(result)
	if err != nil {
		return 0, "", err
	}
	return score, instrument.Interpret(score), nil
}
