package quiz

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizdeck/internal/bank"
)

// ErrNoQuestions means a session was asked to start with nothing to play.
var ErrNoQuestions = errors.New("quiz: no questions to play")

// Scoring accumulators. The quick bonus rewards speed alone; it is added
// whether or not the answer was correct.
const (
	CorrectPoints = 1.0
	QuickBonus    = 0.5
)

// AnswerRecord is the review log entry for one answered question. Skipped
// and timed out questions never produce one.
type AnswerRecord struct {
	Question      string
	Answer        string
	CorrectAnswer string
	Correct       bool
}

// Session walks a fixed question list front to back, scoring answered
// questions and logging them for review. One value per played quiz; it is
// not safe for concurrent use.
type Session struct {
	id        string
	questions []bank.Question
	settings  Settings
	index     int
	score     float64
	records   []AnswerRecord
	startedAt time.Time
	duration  time.Duration
	finalized bool
	now       func() time.Time
}

// SessionOption customizes a Session.
type SessionOption func(*Session)

// WithSessionClock replaces the session's wall clock, for tests. Prompts
// opened through NextPrompt share it.
func WithSessionClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// NewSession starts a session over questions, which must not be empty.
func NewSession(questions []bank.Question, settings Settings, opts ...SessionOption) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	s := &Session{
		id:        uuid.New().String(),
		questions: append([]bank.Question(nil), questions...),
		settings:  settings,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.startedAt = s.now()
	return s, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Settings returns the parameters the session runs under.
func (s *Session) Settings() Settings { return s.settings }

// Total returns how many questions the session serves.
func (s *Session) Total() int { return len(s.questions) }

// Number returns the 1-based position of the current question. It stays at
// Total once the session is done, for "question N of M" displays.
func (s *Session) Number() int {
	if s.index >= len(s.questions) {
		return len(s.questions)
	}
	return s.index + 1
}

// Current returns the active question, or ok=false once every question has
// been resolved.
func (s *Session) Current() (bank.Question, bool) {
	if s.index >= len(s.questions) {
		return bank.Question{}, false
	}
	return s.questions[s.index], true
}

// NextPrompt opens the timed prompt for the current question, sharing the
// session clock.
func (s *Session) NextPrompt() (*Prompt, bool) {
	q, ok := s.Current()
	if !ok {
		return nil, false
	}
	return NewPrompt(q, s.settings, WithClock(s.now)), true
}

// Advance moves past the current question. Returns false once the session
// has no more questions.
func (s *Session) Advance() bool {
	if s.index >= len(s.questions) {
		return false
	}
	s.index++
	return s.index < len(s.questions)
}

// Done reports whether every question has been resolved.
func (s *Session) Done() bool { return s.index >= len(s.questions) }

// Resolved returns how many questions the session has moved past. For a
// completed session this equals Total; a quiz abandoned early reports only
// what was actually seen.
func (s *Session) Resolved() int { return s.index }

// RecordAnswer scores the current question: CorrectPoints when letter is
// the correct answer, plus QuickBonus when quick, correct or not. Appends
// exactly one AnswerRecord. A no-op returning a zero record when the
// session is already done.
func (s *Session) RecordAnswer(letter string, quick bool) AnswerRecord {
	q, ok := s.Current()
	if !ok {
		return AnswerRecord{}
	}

	letter = strings.ToUpper(strings.TrimSpace(letter))
	correct := letter == q.Answer
	if correct {
		s.score += CorrectPoints
	}
	if quick {
		s.score += QuickBonus
	}

	rec := AnswerRecord{
		Question:      q.Text,
		Answer:        letter,
		CorrectAnswer: q.Answer,
		Correct:       correct,
	}
	s.records = append(s.records, rec)
	return rec
}

// Resolve applies a prompt response to the session: answers are scored and
// logged, skips and timeouts only advance. Returns the record and whether
// one was made.
func (s *Session) Resolve(resp Response) (AnswerRecord, bool) {
	var rec AnswerRecord
	recorded := false
	if resp.Outcome == OutcomeAnswered {
		rec = s.RecordAnswer(resp.Letter, resp.Quick)
		recorded = true
	}
	s.Advance()
	return rec, recorded
}

// Score returns the accumulated score.
func (s *Session) Score() float64 { return s.score }

// Answered returns how many questions received a scored answer.
func (s *Session) Answered() int { return len(s.records) }

// Records returns a copy of the answer log in quiz order.
func (s *Session) Records() []AnswerRecord {
	out := make([]AnswerRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Finalize stops the session clock and fixes its duration. Idempotent;
// later calls return the first duration.
func (s *Session) Finalize() time.Duration {
	if !s.finalized {
		s.duration = s.now().Sub(s.startedAt)
		s.finalized = true
	}
	return s.duration
}

// Duration returns the fixed duration after Finalize, or the live elapsed
// time while the session is still running.
func (s *Session) Duration() time.Duration {
	if s.finalized {
		return s.duration
	}
	return s.now().Sub(s.startedAt)
}
