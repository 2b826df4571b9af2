package scoring

import (
	"curaflow-service/internal/app/models"
	"curaflow-service/internal/pkg/constvars"
	"curaflow-service/internal/pkg/exceptions"
)

// GAD7ItemCount is fixed by the instrument: seven items, each scored 0-3.
const GAD7ItemCount = 7

var gad7Bands = []Band{
	{Min: 0, Max: 4, Label: "Minimal anxiety"},
	{Min: 5, Max: 9, Label: "Mild anxiety"},
	{Min: 10, Max: 14, Label: "Moderate anxiety"},
	{Min: 15, Max: 21, Label: "Severe anxiety"},
}

func init() {
	Register(Instrument{
		Code:      constvars.InstrumentGAD7,
		Name:      "Generalized Anxiety Disorder 7-item scale",
		ItemCount: GAD7ItemCount,
		Score:     ScoreGAD7,
		Interpret: InterpretGAD7,
	})
}

// ScoreGAD7 sums the seven item scores of a filled-in result. Exactly
// seven answered questions are required; the total is the raw sum with no
// weighting or normalization, so valid scores lie in [0,21].
func ScoreGAD7(result models.QuestionnaireResult) (int, error) {
	answered := make([]string, 0, GAD7ItemCount)
	for _, question := range result.QuestionsOrdered() {
		if question.IsAnswered() {
			answered = append(answered, *question.Answer)
		}
	}

	if len(answered) != GAD7ItemCount {
		return 0, exceptions.ErrInvalidQuestionCount(GAD7ItemCount, len(answered))
	}

	total := 0
	for _, answer := range answered {
		value, err := models.ParseNumericAnswer(answer)
		if err != nil {
			return 0, exceptions.ErrInvalidAnswer(err)
		}
		total += value
	}
	return total, nil
}

// InterpretGAD7 maps a GAD-7 total to its severity band. Scores outside
// [0,21] return the "Invalid score" sentinel, not an error; callers depend
// on that exact string.
func InterpretGAD7(score int) string {
	return InterpretWithBands(gad7Bands, score)
}
