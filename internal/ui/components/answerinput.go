package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for answering a question: a single
// option letter, or S to skip.
type AnswerInput struct {
	Model  textinput.Model
	notice string
}

// NewAnswerInput creates a focused single-letter input.
func NewAnswerInput() AnswerInput {
	ti := textinput.New()
	ti.Placeholder = "letter, or S to skip"
	ti.CharLimit = 1
	ti.Focus()

	return AnswerInput{Model: ti}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages. Typing clears any pending rejection notice.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		a.notice = ""
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the input and, when set, the rejection notice below it.
func (a AnswerInput) View() string {
	view := a.Model.View()
	if a.notice != "" {
		view += "\n" + lipgloss.NewStyle().Foreground(theme.Warn).Render(a.notice)
	}
	return view
}

// Value returns the current input value.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// Reject flags the current value as unusable and clears it for another try.
func (a *AnswerInput) Reject() {
	a.notice = "Enter the letter of one of the options, or S to skip."
	a.Model.SetValue("")
}

// Reset clears the input for the next question.
func (a *AnswerInput) Reset() {
	a.notice = ""
	a.Model.SetValue("")
}
