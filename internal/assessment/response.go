package assessment

import (
	"time"

	"github.com/abhisek/smartassess/internal/questionbank"
)

// Response records one answered question. Responses are immutable once
// appended to a session's log.
type Response struct {
	// Tier and Position identify the question within the tier pool that
	// was active when the answer was given.
	Tier     questionbank.Tier
	Position int

	// Question is a copy of the answered question.
	Question questionbank.Question

	// ChosenAnswer is the option string the learner submitted, verbatim.
	ChosenAnswer string

	// AnsweredAt is when the answer was recorded.
	AnsweredAt time.Time

	// RemainingSeconds is the countdown value at answer time.
	RemainingSeconds int
}

// Correct reports whether the chosen answer matches the question's answer.
func (r Response) Correct() bool {
	return r.Question.IsCorrect(r.ChosenAnswer)
}

// CorrectCount returns the number of correct responses.
func CorrectCount(responses []Response) int {
	n := 0
	for _, r := range responses {
		if r.Correct() {
			n++
		}
	}
	return n
}
