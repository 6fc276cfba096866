package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// renderQuestionView renders the active question display.
func (s *SessionScreen) renderQuestionView(width, height int) string {
	q := s.prompt.Question()

	var b strings.Builder

	// Category and difficulty line, when the question carries them.
	var parts []string
	if q.Category != "" {
		parts = append(parts, q.Category)
	}
	if q.Difficulty != "" {
		parts = append(parts, string(q.Difficulty))
	}
	if len(parts) > 0 {
		info := lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render("  " + strings.Join(parts, " · "))
		b.WriteString(info)
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	// Countdown.
	timer := components.NewTimerBar(s.prompt.Remaining(), s.session.Settings().TimeLimit, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, timer.View()))
	b.WriteString("\n\n")

	// Question text (centered).
	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(q.Text))
	b.WriteString("\n\n")

	// Options.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View()))
	b.WriteString("\n\n")

	// Input area.
	answerLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Your answer: " + s.input.View())
	b.WriteString(answerLine)

	return b.String()
}

// renderFeedback renders the feedback overlay with the options revealed.
func (s *SessionScreen) renderFeedback(width, height int) string {
	q := s.prompt.Question()
	resp := s.lastResponse

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View()))
	b.WriteString("\n\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	switch {
	case resp.Outcome == quiz.OutcomeTimedOut:
		b.WriteString(center.
			Foreground(theme.Warn).
			Bold(true).
			Render("Time's up! Moving to next question."))
	case resp.Letter == q.Answer:
		b.WriteString(center.
			Foreground(theme.Success).
			Bold(true).
			Render("✅ Correct!"))
	default:
		b.WriteString(center.
			Foreground(theme.Error).
			Bold(true).
			Render(fmt.Sprintf("❌ Incorrect. The correct answer was %s.", q.Answer)))
	}

	if resp.Quick {
		b.WriteString("\n")
		b.WriteString(center.
			Foreground(theme.Accent).
			Render("+ Quick answer bonus!"))
	}

	b.WriteString("\n\n")
	b.WriteString(center.
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End the quiz early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Only the questions you answered will be scored."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end quiz"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderScoring renders the transient frame between the last answer and
// the results screen.
func renderScoring(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Scoring...")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
