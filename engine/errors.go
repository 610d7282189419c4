package engine

import "fmt"

// ValidationError reports a caller-fixable input problem. QuestionIndex is the
// zero-based index of the offending question, or -1 when the error is not tied
// to a single question.
type ValidationError struct {
	QuestionIndex int
	Reason        string
}

func (e *ValidationError) Error() string {
	if e.QuestionIndex >= 0 {
		return fmt.Sprintf("Question %d: %s", e.QuestionIndex+1, e.Reason)
	}
	return e.Reason
}

func newValidationError(questionIndex int, reason string) *ValidationError {
	return &ValidationError{QuestionIndex: questionIndex, Reason: reason}
}

// NotFoundError reports a missing entity
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found."
}
