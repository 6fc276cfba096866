package quiz

import (
	"iter"
	"time"
)

// Tier buckets a final percentage into a qualitative rating.
type Tier int

const (
	TierNeedsWork Tier = iota
	TierGood
	TierGreat
	TierExcellent
)

func (t Tier) String() string {
	switch t {
	case TierExcellent:
		return "Excellent"
	case TierGreat:
		return "Great"
	case TierGood:
		return "Good"
	default:
		return "Needs improvement"
	}
}

// Message returns the flavor line shown with the final score.
func (t Tier) Message() string {
	switch t {
	case TierExcellent:
		return "Excellent! You're a quiz master!"
	case TierGreat:
		return "Great job! You know your stuff!"
	case TierGood:
		return "Good effort! Keep learning!"
	default:
		return "Keep studying! You'll improve!"
	}
}

// Percentage converts a score over total questions to percent. A
// zero-question total is 0%, not a division error.
func Percentage(score float64, total int) float64 {
	if total == 0 {
		return 0
	}
	return score / float64(total) * 100
}

// TierFor maps a percentage to its rating. Thresholds are inclusive and
// checked top down: 90 and up Excellent, 70 and up Great, 50 and up Good,
// everything below NeedsWork.
func TierFor(percentage float64) Tier {
	switch {
	case percentage >= 90:
		return TierExcellent
	case percentage >= 70:
		return TierGreat
	case percentage >= 50:
		return TierGood
	default:
		return TierNeedsWork
	}
}

// Report is the immutable summary of a finished session.
type Report struct {
	Score      float64
	Total      int
	Answered   int
	Percentage float64
	Tier       Tier
	Duration   time.Duration

	records []AnswerRecord
}

// BuildReport snapshots a session into its report. Total counts the
// questions the session resolved, so a quiz abandoned early is summarized
// over what was actually seen.
func BuildReport(s *Session) *Report {
	score := s.Score()
	total := s.Resolved()
	pct := Percentage(score, total)
	return &Report{
		Score:      score,
		Total:      total,
		Answered:   s.Answered(),
		Percentage: pct,
		Tier:       TierFor(pct),
		Duration:   s.Duration(),
		records:    s.Records(),
	}
}

// ReviewCount returns how many entries Review yields.
func (r *Report) ReviewCount() int { return len(r.records) }

// Review yields the answer log in quiz order. The sequence can be ranged
// over any number of times; iterating never disturbs the report.
func (r *Report) Review() iter.Seq[AnswerRecord] {
	return func(yield func(AnswerRecord) bool) {
		for _, rec := range r.records {
			if !yield(rec) {
				return
			}
		}
	}
}
