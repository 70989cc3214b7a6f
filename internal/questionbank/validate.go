package questionbank

import (
	"fmt"
	"strings"
)

// ValidationError lists every structural problem found in a catalog.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("question bank validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

// validateQuestions performs all structural checks on the given catalog.
// Returns a *ValidationError describing all problems found, or nil if valid.
func validateQuestions(questions []Question) error {
	var errs []string

	idSet := make(map[string]bool, len(questions))
	tierSet := make(map[Tier]bool)

	for i, q := range questions {
		prefix := fmt.Sprintf("question %d", i)
		if q.ID != "" {
			prefix = fmt.Sprintf("question %q", q.ID)
		}

		if q.ID == "" {
			errs = append(errs, fmt.Sprintf("%s: missing ID", prefix))
		} else if idSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		idSet[q.ID] = true

		if strings.TrimSpace(q.Prompt) == "" {
			errs = append(errs, fmt.Sprintf("%s: empty prompt", prefix))
		}

		if !q.Tier.Valid() {
			errs = append(errs, fmt.Sprintf("%s: unknown tier %q", prefix, q.Tier))
		} else {
			tierSet[q.Tier] = true
		}

		if len(q.Options) < 2 {
			errs = append(errs, fmt.Sprintf("%s: needs at least 2 options, got %d", prefix, len(q.Options)))
		}

		matches := 0
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				matches++
			}
		}
		if matches != 1 {
			errs = append(errs, fmt.Sprintf("%s: correct answer %q must match exactly one option, matched %d", prefix, q.CorrectAnswer, matches))
		}
	}

	// Every tier must have a non-empty pool.
	for _, t := range AllTiers() {
		if !tierSet[t] {
			errs = append(errs, fmt.Sprintf("tier %q has no questions", t))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}
