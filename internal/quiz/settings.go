// Package quiz implements the quiz engine: selecting questions from the
// bank, running each one as a timed prompt, scoring the answers, and
// summarizing the result. It owns no I/O; the screens drive it and a clock
// and random source are injected so every rule is testable.
package quiz

import "time"

// Settings carries the tunable parameters of a quiz session.
type Settings struct {
	// TimeLimit is how long the player has to answer each question.
	TimeLimit time.Duration

	// QuickWindow is the quick-answer bonus window. Answers submitted
	// strictly inside it earn the bonus.
	QuickWindow time.Duration

	// MaxQuestions caps how many questions one session serves.
	MaxQuestions int
}

// DefaultSettings returns the stock quiz parameters.
func DefaultSettings() Settings {
	return Settings{
		TimeLimit:    10 * time.Second,
		QuickWindow:  5 * time.Second,
		MaxQuestions: 10,
	}
}
