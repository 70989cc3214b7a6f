package questionbank

import "fmt"

// Bank is an immutable question catalog with precomputed tier pools.
// A Bank is safe for concurrent use.
type Bank struct {
	questions []Question
	byID      map[string]int
	byTier    map[Tier][]int
}

// New validates questions and builds a Bank preserving catalog order.
// Returns a *ValidationError describing every problem found.
func New(questions []Question) (*Bank, error) {
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}

	b := &Bank{
		questions: make([]Question, len(questions)),
		byID:      make(map[string]int, len(questions)),
		byTier:    make(map[Tier][]int, len(AllTiers())),
	}
	for i, q := range questions {
		b.questions[i] = q.clone()
		b.byID[q.ID] = i
		b.byTier[q.Tier] = append(b.byTier[q.Tier], i)
	}
	return b, nil
}

// ForTier returns the pool for tier t in catalog order.
// The returned questions are copies; mutating them does not affect the bank.
func (b *Bank) ForTier(t Tier) []Question {
	idx := b.byTier[t]
	pool := make([]Question, len(idx))
	for i, qi := range idx {
		pool[i] = b.questions[qi].clone()
	}
	return pool
}

// Count returns the pool size for tier t.
func (b *Bank) Count(t Tier) int {
	return len(b.byTier[t])
}

// All returns every question in catalog order.
func (b *Bank) All() []Question {
	all := make([]Question, len(b.questions))
	for i, q := range b.questions {
		all[i] = q.clone()
	}
	return all
}

// Get returns the question with the given ID.
func (b *Bank) Get(id string) (Question, error) {
	i, ok := b.byID[id]
	if !ok {
		return Question{}, fmt.Errorf("question not found: %q", id)
	}
	return b.questions[i].clone(), nil
}

// Len returns the total number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// At returns the question at position i of tier t's pool.
func (b *Bank) At(t Tier, i int) (Question, bool) {
	idx := b.byTier[t]
	if i < 0 || i >= len(idx) {
		return Question{}, false
	}
	return b.questions[idx[i]].clone(), true
}
