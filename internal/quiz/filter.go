package quiz

import (
	"math/rand"

	"github.com/abhisek/quizdeck/internal/bank"
)

// Filter narrows the bank before a session starts. Zero values place no
// constraint, so the zero Filter selects from the whole bank.
type Filter struct {
	Category   string
	Difficulty bank.Difficulty
}

// Matches reports whether q satisfies every set constraint.
func (f Filter) Matches(q bank.Question) bool {
	if f.Category != "" && q.Category != f.Category {
		return false
	}
	if f.Difficulty != bank.DifficultyAny && q.Difficulty != f.Difficulty {
		return false
	}
	return true
}

// Select picks the questions for one session: filter, shuffle, then cap at
// max (max <= 0 means no cap). A filter that matches nothing falls back to
// the whole bank rather than starting an empty quiz; fellBack reports when
// that happened so the UI can say so. The input slice is never mutated.
func Select(questions []bank.Question, filter Filter, max int, rng *rand.Rand) (picked []bank.Question, fellBack bool) {
	if len(questions) == 0 {
		return nil, false
	}

	matched := make([]bank.Question, 0, len(questions))
	for _, q := range questions {
		if filter.Matches(q) {
			matched = append(matched, q)
		}
	}
	if len(matched) == 0 {
		matched = append(matched, questions...)
		fellBack = true
	}

	rng.Shuffle(len(matched), func(i, j int) {
		matched[i], matched[j] = matched[j], matched[i]
	})

	if max > 0 && len(matched) > max {
		matched = matched[:max]
	}
	return matched, fellBack
}
