package models

import (
	"errors"
	"strconv"
	"strings"
)

// Question is one item in a questionnaire. Index is the stable ordinal
// assigned at template creation; it drives ordering and answer alignment
// and must be unique within a template. Answer stays nil until the patient
// responds.
type Question struct {
	Text           string  `json:"text" bson:"text"`
	Index          int     `json:"index" bson:"index"`
	ResponseFormat string  `json:"response_format" bson:"response_format"`
	Answer         *string `json:"answer,omitempty" bson:"answer,omitempty"`
}

func (q Question) IsAnswered() bool {
	return q.Answer != nil
}

// SchemeKey is the answer-scheme binding implied by a question's index.
// Questions reference schemes through the shared vocabulary on the owning
// QuestionnaireResult; an instrument that scores every item the same way
// may carry a single scheme instead of one per index.
func (q Question) SchemeKey() string {
	return strconv.Itoa(q.Index)
}

// Spelled-out numbers patients send over chat instead of digits.
var textToNum = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3,
	"four": 4, "five": 5, "six": 6, "seven": 7,
	"eight": 8, "nine": 9, "ten": 10,
}

// ParseNumericAnswer converts a raw answer into an integer. Digits are
// parsed directly; the words "zero" through "ten" are accepted as well.
func ParseNumericAnswer(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if value, err := strconv.Atoi(trimmed); err == nil {
		return value, nil
	}
	if value, ok := textToNum[strings.ToLower(trimmed)]; ok {
		return value, nil
	}
	return 0, errors.New("answer is not a number")
}
