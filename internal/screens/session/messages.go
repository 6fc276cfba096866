package session

import "time"

// timerTickMsg drives the countdown display and the deadline check.
type timerTickMsg time.Time

// feedbackDoneMsg is sent when the player dismisses the feedback overlay.
type feedbackDoneMsg struct{}

// quizEndMsg is sent to trigger the end-of-quiz flow.
type quizEndMsg struct{}
