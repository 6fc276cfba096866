// Package session is the screen for an in-flight quiz: one timed question
// at a time, instant feedback, and the handoff to the results screen.
package session

import (
	"fmt"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/results"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
)

const tickInterval = 100 * time.Millisecond

// SessionScreen implements screen.Screen for the active quiz.
type SessionScreen struct {
	session *quiz.Session
	logger  *zap.Logger

	prompt  *quiz.Prompt
	input   components.AnswerInput
	options components.OptionList

	showingFeedback bool
	confirmQuit     bool
	lastResponse    quiz.Response
	finished        bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)

// New creates a SessionScreen over a prepared session. The first question's
// clock starts immediately.
func New(qs *quiz.Session, logger *zap.Logger) *SessionScreen {
	s := &SessionScreen{
		session: qs,
		logger:  logger,
		input:   components.NewAnswerInput(),
	}
	s.loadPrompt()
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	s.logger.Info("quiz started",
		zap.String("session_id", s.session.ID()),
		zap.Int("questions", s.session.Total()),
	)
	return tea.Batch(s.input.Init(), tickCmd())
}

func (s *SessionScreen) Title() string {
	return "Quiz"
}

// Status feeds the header's progress and score readout.
func (s *SessionScreen) Status() string {
	return fmt.Sprintf("Q %d/%d · Score %s",
		s.session.Number(), s.session.Total(), formatScore(s.session.Score()))
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "S", Description: "Skip"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SessionScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width, height)
	}
	if s.showingFeedback {
		return s.renderFeedback(width, height)
	}
	if s.prompt == nil {
		return renderScoring(width)
	}
	return s.renderQuestionView(width, height)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTimerTick()

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case quizEndMsg:
		return s.handleQuizEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward everything else (cursor blinks and the like) to the input.
	if s.prompt != nil && !s.showingFeedback && !s.confirmQuit {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// loadPrompt opens the next question's prompt, or clears it when the
// session has run out of questions.
func (s *SessionScreen) loadPrompt() {
	prompt, ok := s.session.NextPrompt()
	if !ok {
		s.prompt = nil
		return
	}
	s.prompt = prompt

	q := prompt.Question()
	items := make([]components.OptionItem, len(q.Options))
	for i, opt := range q.Options {
		items[i] = components.OptionItem{Letter: opt.Letter, Text: opt.Text}
	}
	s.options = components.NewOptionList(items)
	s.input.Reset()
}

func (s *SessionScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.finished {
		return s, nil
	}
	if s.prompt != nil && !s.showingFeedback {
		if resp, ok := s.prompt.Expire(); ok {
			s.beginFeedback(resp)
		}
	}
	return s, tickCmd()
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Quit confirmation dialog.
	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			return s, func() tea.Msg { return quizEndMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	// Feedback overlay: any key dismisses.
	if s.showingFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	if s.prompt == nil {
		return s, nil
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "enter":
		return s.submit()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit feeds the typed line to the prompt. Skips advance straight to the
// next question; answers and timeouts go through the feedback overlay.
func (s *SessionScreen) submit() (screen.Screen, tea.Cmd) {
	resp, ok := s.prompt.Submit(s.input.Value())
	if !ok {
		s.input.Reject()
		return s, nil
	}
	if resp.Outcome == quiz.OutcomeSkipped {
		return s.resolveAndContinue(resp)
	}
	s.beginFeedback(resp)
	return s, nil
}

func (s *SessionScreen) beginFeedback(resp quiz.Response) {
	q := s.prompt.Question()
	s.lastResponse = resp
	s.options = s.options.Reveal(resp.Letter, q.Answer)
	s.showingFeedback = true
}

func (s *SessionScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if !s.showingFeedback {
		return s, nil
	}
	s.showingFeedback = false
	return s.resolveAndContinue(s.lastResponse)
}

// resolveAndContinue scores the response, then either opens the next
// question or ends the quiz.
func (s *SessionScreen) resolveAndContinue(resp quiz.Response) (screen.Screen, tea.Cmd) {
	record, recorded := s.session.Resolve(resp)
	s.logResolve(resp, record, recorded)

	s.loadPrompt()
	if s.prompt == nil {
		return s, func() tea.Msg { return quizEndMsg{} }
	}
	return s, s.input.Init()
}

func (s *SessionScreen) handleQuizEnd() (screen.Screen, tea.Cmd) {
	if s.finished {
		return s, nil
	}
	s.finished = true

	s.session.Finalize()
	report := quiz.BuildReport(s.session)

	s.logger.Info("quiz finished",
		zap.String("session_id", s.session.ID()),
		zap.Float64("score", report.Score),
		zap.Int("total", report.Total),
		zap.Float64("percentage", report.Percentage),
		zap.Duration("duration", report.Duration),
	)

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results.New(report)}
	}
}

func (s *SessionScreen) logResolve(resp quiz.Response, record quiz.AnswerRecord, recorded bool) {
	fields := []zap.Field{
		zap.String("session_id", s.session.ID()),
		zap.Int("question", s.session.Resolved()),
		zap.String("outcome", resp.Outcome.String()),
	}
	if recorded {
		fields = append(fields,
			zap.String("answer", record.Answer),
			zap.Bool("correct", record.Correct),
			zap.Bool("quick", resp.Quick),
		)
	}
	s.logger.Debug("question resolved", fields...)
}

// formatScore trims trailing zeros so whole scores print without a decimal.
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// tickCmd returns the countdown tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
