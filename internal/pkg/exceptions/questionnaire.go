package exceptions

import (
	"curaflow-service/internal/pkg/constvars"
	"fmt"
)

// Validation failures raised by the questionnaire core. Each constructor maps
// one taxonomy entry to a distinct client message so callers (and tests) can
// tell them apart without string matching on dev output.
var (
	ErrInvalidScheme = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientInvalidScheme, constvars.ErrDevInvalidScheme)
	}
	ErrSchemeNotFound = func(key string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientSchemeNotFound, fmt.Sprintf(constvars.ErrDevSchemeNotFound, key))
	}
	ErrValueOutOfRange = func(value, start, end int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, constvars.ErrClientValueOutOfRange, fmt.Sprintf(constvars.ErrDevValueOutOfRange, value, start, end))
	}
	ErrInterpretationNotFound = func(value int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, constvars.ErrClientInterpretationNotFound, fmt.Sprintf(constvars.ErrDevInterpretationNotFound, value))
	}
	ErrInvalidTemplate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientInvalidTemplate, constvars.ErrDevInvalidTemplate)
	}
	ErrQuestionNotFound = func(index int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientQuestionNotFound, fmt.Sprintf(constvars.ErrDevQuestionNotFound, index))
	}
	ErrInvalidAnswer = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientInvalidAnswer, constvars.ErrDevInvalidAnswer)
	}
	ErrInvalidQuestionCount = func(want, got int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, constvars.ErrClientInvalidQuestionCount, fmt.Sprintf(constvars.ErrDevInvalidQuestionCount, want, got))
	}
	ErrIncompleteQuestionnaire = func(index int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, constvars.ErrClientIncompleteQuestionnaire, fmt.Sprintf(constvars.ErrDevIncompleteQuestionnaire, index))
	}
	ErrQuestionnaireNotCompleted = func(status string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, constvars.ErrClientQuestionnaireNotCompleted, fmt.Sprintf(constvars.ErrDevQuestionnaireNotCompleted, status))
	}
	ErrUnknownInstrument = func(code string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientUnknownInstrument, fmt.Sprintf(constvars.ErrDevUnknownInstrument, code))
	}
	ErrQuestionnaireAlreadyActive = func(patientID, templateID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientQuestionnaireAlreadyActive, fmt.Sprintf(constvars.ErrDevQuestionnaireAlreadyActive, patientID, templateID))
	}
)
