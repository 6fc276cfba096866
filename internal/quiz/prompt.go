package quiz

import (
	"strings"
	"time"

	"github.com/abhisek/quizdeck/internal/bank"
)

// SkipSentinel is the input that skips the current question. It is matched
// before option letters, so a question can never claim it for an answer.
const SkipSentinel = "S"

// Outcome is the terminal state of one timed prompt.
type Outcome int

const (
	OutcomePending  Outcome = iota // still waiting for input
	OutcomeAnswered                // a valid option letter arrived in time
	OutcomeSkipped                 // the player skipped
	OutcomeTimedOut                // the deadline passed first
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAnswered:
		return "answered"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeTimedOut:
		return "timed_out"
	default:
		return "pending"
	}
}

// Response is how one prompt resolved. Letter is set only for Answered,
// Quick only for answers inside the quick window. Skips and timeouts carry
// neither, which is what keeps them out of the score and the review log.
type Response struct {
	Outcome Outcome
	Letter  string
	Quick   bool
	Elapsed time.Duration
}

// Prompt runs the timed life of a single question: presented once, then fed
// input until it resolves as answered, skipped, or timed out. A resolved
// prompt stays resolved; feeding it more input returns the same response.
type Prompt struct {
	question    bank.Question
	limit       time.Duration
	quickWindow time.Duration
	startedAt   time.Time
	now         func() time.Time
	resolved    bool
	response    Response
}

// PromptOption customizes a Prompt.
type PromptOption func(*Prompt)

// WithClock replaces the prompt's wall clock, for tests.
func WithClock(now func() time.Time) PromptOption {
	return func(p *Prompt) { p.now = now }
}

// NewPrompt presents q and starts its deadline clock.
func NewPrompt(q bank.Question, settings Settings, opts ...PromptOption) *Prompt {
	p := &Prompt{
		question:    q,
		limit:       settings.TimeLimit,
		quickWindow: settings.QuickWindow,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.startedAt = p.now()
	return p
}

// Question returns the question under the prompt.
func (p *Prompt) Question() bank.Question { return p.question }

// Elapsed returns how long the prompt has been open.
func (p *Prompt) Elapsed() time.Duration { return p.now().Sub(p.startedAt) }

// Remaining returns the time left before the deadline, never negative.
func (p *Prompt) Remaining() time.Duration {
	left := p.limit - p.Elapsed()
	if left < 0 {
		return 0
	}
	return left
}

// Submit feeds one input line to the prompt. Resolution order: a passed
// deadline times the prompt out even when the line holds a valid letter,
// the skip sentinel skips, a letter naming one of the question's options
// (any case) answers. Anything else leaves the prompt open and returns
// ok=false so the caller re-prompts without penalty.
func (p *Prompt) Submit(line string) (Response, bool) {
	if p.resolved {
		return p.response, true
	}

	elapsed := p.Elapsed()
	if elapsed >= p.limit {
		return p.resolve(Response{Outcome: OutcomeTimedOut, Elapsed: elapsed}), true
	}

	input := strings.ToUpper(strings.TrimSpace(line))
	if input == SkipSentinel {
		return p.resolve(Response{Outcome: OutcomeSkipped, Elapsed: elapsed}), true
	}
	if p.question.HasOption(input) {
		return p.resolve(Response{
			Outcome: OutcomeAnswered,
			Letter:  input,
			Quick:   elapsed < p.quickWindow,
			Elapsed: elapsed,
		}), true
	}

	return Response{Outcome: OutcomePending, Elapsed: elapsed}, false
}

// Expire resolves the prompt as TimedOut once its deadline has passed, with
// no input required. Safe to call on every clock tick; returns ok=false
// while time remains.
func (p *Prompt) Expire() (Response, bool) {
	if p.resolved {
		return p.response, true
	}

	elapsed := p.Elapsed()
	if elapsed < p.limit {
		return Response{Outcome: OutcomePending, Elapsed: elapsed}, false
	}
	return p.resolve(Response{Outcome: OutcomeTimedOut, Elapsed: elapsed}), true
}

func (p *Prompt) resolve(r Response) Response {
	p.resolved = true
	p.response = r
	return r
}
