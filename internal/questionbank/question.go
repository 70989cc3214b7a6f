package questionbank

import "slices"

// Question is a single multiple-choice question in the bank.
type Question struct {
	// ID is the stable identifier of the question, unique within a bank.
	ID string `yaml:"id"`

	// Prompt is the question text displayed to the learner.
	Prompt string `yaml:"prompt"`

	// Options are the candidate answers in display order.
	// Duplicates are kept as authored.
	Options []string `yaml:"options"`

	// CorrectAnswer is value-equal to exactly one entry of Options.
	CorrectAnswer string `yaml:"answer"`

	// Tier is the difficulty tier this question belongs to.
	Tier Tier `yaml:"tier"`

	// Topic is an optional subject label, e.g. "Algorithms".
	Topic string `yaml:"topic,omitempty"`

	// Explanation is an optional worked answer shown after the assessment.
	Explanation string `yaml:"explanation,omitempty"`
}

// IsCorrect reports whether answer matches the correct answer exactly.
func (q Question) IsCorrect(answer string) bool {
	return answer == q.CorrectAnswer
}

// HasOption reports whether answer is one of the question's options.
func (q Question) HasOption(answer string) bool {
	return slices.Contains(q.Options, answer)
}

// clone returns a copy that shares no backing storage with q.
func (q Question) clone() Question {
	q.Options = slices.Clone(q.Options)
	return q
}
