package models

import (
	"curaflow-service/internal/pkg/exceptions"
	"errors"
	"strconv"
	"strings"
)

// AnswerScheme describes how one question's raw answer is validated and
// interpreted. The JSON field names are the stable wire/storage shape.
type AnswerScheme struct {
	Type            string            `json:"type" bson:"type"`
	Range           ScoreRange        `json:"range" bson:"range"`
	Explanation     string            `json:"explanation" bson:"explanation"`
	Interpretations map[string]string `json:"interpretations" bson:"interpretations"`
}

// ScoreRange is an inclusive numeric bound a valid answer must fall within.
type ScoreRange struct {
	Start int `json:"start" bson:"start"`
	End   int `json:"end" bson:"end"`
}

func (r ScoreRange) Contains(value int) bool {
	return value >= r.Start && value <= r.End
}

// GetScheme looks an answer scheme up by key.
func GetScheme(schemes map[string]AnswerScheme, key string) (AnswerScheme, error) {
	scheme, ok := schemes[key]
	if !ok {
		return AnswerScheme{}, exceptions.ErrSchemeNotFound(key)
	}
	return scheme, nil
}

// Validate rejects schemes with an inverted range or no interpretation
// bands at all.
func (s AnswerScheme) Validate() error {
	if s.Range.Start > s.Range.End {
		return exceptions.ErrInvalidScheme(errors.New("range start is greater than range end"))
	}
	if len(s.Interpretations) == 0 {
		return exceptions.ErrInvalidScheme(errors.New("interpretations must not be empty"))
	}
	return nil
}

// ResolveInterpretation returns the description of the band containing
// value. Band keys are inclusive "start-end" ranges; a bare "n" key
// matches the single value n.
func (s AnswerScheme) ResolveInterpretation(value int) (string, error) {
	if !s.Range.Contains(value) {
		return "", exceptions.ErrValueOutOfRange(value, s.Range.Start, s.Range.End)
	}
	for key, description := range s.Interpretations {
		start, end, err := parseBandKey(key)
		if err != nil {
			continue
		}
		if value >= start && value <= end {
			return description, nil
		}
	}
	return "", exceptions.ErrInterpretationNotFound(value)
}

func parseBandKey(key string) (start, end int, err error) {
	parts := strings.SplitN(strings.TrimSpace(key), "-", 2)
	start, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	if len(parts) == 1 {
		return start, start, nil
	}
	end, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}
