package assessment

import "errors"

var (
	// ErrInvalidState is returned when an operation is not allowed in the
	// session's current state, e.g. answering after completion.
	ErrInvalidState = errors.New("invalid session state")

	// ErrInvalidAnswer is returned under AnswerPolicyStrict when the
	// submitted answer is not one of the current question's options.
	ErrInvalidAnswer = errors.New("answer is not one of the question's options")
)
