package components

import (
	"fmt"
	"time"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// urgentThreshold is when the countdown bar switches to the warning color.
const urgentThreshold = 3 * time.Second

// TimerBar is the per-question countdown: a draining bar plus the seconds
// left, turning urgent as the deadline closes in.
type TimerBar struct {
	Remaining time.Duration
	Limit     time.Duration
	Width     int
}

// NewTimerBar creates a countdown bar.
func NewTimerBar(remaining, limit time.Duration, width int) TimerBar {
	return TimerBar{Remaining: remaining, Limit: limit, Width: width}
}

// View renders the countdown.
func (t TimerBar) View() string {
	fraction := 0.0
	if t.Limit > 0 {
		fraction = float64(t.Remaining) / float64(t.Limit)
	}

	bar := NewProgressBar(fmt.Sprintf("%4.1fs", t.Remaining.Seconds()), fraction, false, t.Width)
	if t.Remaining < urgentThreshold {
		bar = bar.WithFill(theme.TimerUrgent)
	}
	return bar.View()
}
