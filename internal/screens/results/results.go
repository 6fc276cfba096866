// Package results shows the final score report and the optional
// answer-by-answer review.
package results

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// reviewEntryLines is the rendered height of one review entry, used to
// window the list against the available screen height.
const reviewEntryLines = 5

// ResultsScreen displays the quiz report.
type ResultsScreen struct {
	report    *quiz.Report
	records   []quiz.AnswerRecord
	reviewing bool
	offset    int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for a finished quiz.
func New(report *quiz.Report) *ResultsScreen {
	var records []quiz.AnswerRecord
	for rec := range report.Review() {
		records = append(records, rec)
	}
	return &ResultsScreen{report: report, records: records}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	if s.reviewing {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Esc", Description: "Results"},
			{Key: "Enter", Description: "Home"},
		}
	}
	hints := []layout.KeyHint{}
	if len(s.records) > 0 {
		hints = append(hints, layout.KeyHint{Key: "Y", Description: "Review"})
	}
	return append(hints, layout.KeyHint{Key: "Enter", Description: "Home"})
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.reviewing {
		switch kmsg.String() {
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			if s.offset < len(s.records)-1 {
				s.offset++
			}
		case "esc", "n", "N":
			s.reviewing = false
		case "enter":
			return s, goHome()
		}
		return s, nil
	}

	switch kmsg.String() {
	case "y", "Y":
		if len(s.records) > 0 {
			s.reviewing = true
			s.offset = 0
		}
	case "n", "N", "enter", "esc":
		return s, goHome()
	}
	return s, nil
}

func goHome() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *ResultsScreen) View(width, height int) string {
	if s.reviewing {
		return s.renderReview(width, height)
	}
	return s.renderReport(width, height)
}

func (s *ResultsScreen) renderReport(width, height int) string {
	r := s.report

	var b strings.Builder
	b.WriteString("\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString(center.
		Foreground(theme.Primary).
		Bold(true).
		Render("QUIZ RESULTS"))
	b.WriteString("\n\n")

	b.WriteString(center.
		Foreground(theme.Text).
		Render(fmt.Sprintf("Final Score: %s/%d", formatScore(r.Score), r.Total)))
	b.WriteString("\n")
	b.WriteString(center.
		Foreground(theme.Text).
		Render(fmt.Sprintf("Percentage: %.1f%%", r.Percentage)))
	b.WriteString("\n")
	b.WriteString(center.
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Time Taken: %.1f seconds", r.Duration.Seconds())))
	b.WriteString("\n\n")

	b.WriteString(center.
		Foreground(tierColor(r.Tier)).
		Bold(true).
		Render(tierEmoji(r.Tier) + " " + r.Tier.Message()))
	b.WriteString("\n\n")

	if len(s.records) > 0 {
		b.WriteString(center.
			Foreground(theme.TextDim).
			Italic(true).
			Render("Would you like to review your answers? (Y/N)"))
	} else {
		b.WriteString(center.
			Foreground(theme.TextDim).
			Italic(true).
			Render("Press Enter to return home"))
	}

	return b.String()
}

func (s *ResultsScreen) renderReview(width, height int) string {
	var b strings.Builder

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString(center.
		Foreground(theme.Primary).
		Bold(true).
		Render("ANSWER REVIEW"))
	b.WriteString("\n\n")

	visible := (height - 4) / reviewEntryLines
	if visible < 1 {
		visible = 1
	}
	end := s.offset + visible
	if end > len(s.records) {
		end = len(s.records)
	}

	if s.offset > 0 {
		b.WriteString(center.
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("↑ %d earlier", s.offset)))
		b.WriteString("\n")
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 50)))

	for i := s.offset; i < end; i++ {
		rec := s.records[i]

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
				Render(fmt.Sprintf("Question %d: %s", i+1, rec.Question))))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).
				Render(fmt.Sprintf("Your answer: %s    Correct answer: %s", rec.Answer, rec.CorrectAnswer))))
		b.WriteString("\n")

		verdict := lipgloss.NewStyle().Foreground(theme.Success).Render("✅ Correct")
		if !rec.Correct {
			verdict = lipgloss.NewStyle().Foreground(theme.Error).Render("❌ Incorrect")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, verdict))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")
	}

	if end < len(s.records) {
		b.WriteString(center.
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("↓ %d more", len(s.records)-end)))
	}

	return b.String()
}

func tierEmoji(t quiz.Tier) string {
	switch t {
	case quiz.TierExcellent:
		return "🏆"
	case quiz.TierGreat:
		return "👍"
	case quiz.TierGood:
		return "😊"
	default:
		return "📚"
	}
}

func tierColor(t quiz.Tier) color.Color {
	switch t {
	case quiz.TierExcellent:
		return theme.Accent
	case quiz.TierGreat:
		return theme.Success
	case quiz.TierGood:
		return theme.Secondary
	default:
		return theme.Warn
	}
}

// formatScore trims trailing zeros so whole scores print without a decimal.
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
