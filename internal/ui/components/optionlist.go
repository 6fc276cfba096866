package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// OptionItem is one lettered answer choice.
type OptionItem struct {
	Letter string
	Text   string
}

// OptionList renders a question's lettered options. Answers are typed, not
// arrow-selected, so the list itself takes no input. Before the reveal all
// options look alike; after it the correct letter turns green, a wrongly
// chosen letter red, and the rest dim.
type OptionList struct {
	Options  []OptionItem
	Revealed bool
	Chosen   string // letter the player answered; empty for skip or timeout
	Correct  string // the correct letter
}

// NewOptionList creates an option list for one question.
func NewOptionList(options []OptionItem) OptionList {
	return OptionList{Options: options}
}

// Reveal returns the list colored for the answer reveal.
func (o OptionList) Reveal(chosen, correct string) OptionList {
	o.Revealed = true
	o.Chosen = chosen
	o.Correct = correct
	return o
}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for _, opt := range o.Options {
		line := fmt.Sprintf("  %s)  %s", opt.Letter, opt.Text)

		if o.Revealed {
			switch {
			case opt.Letter == o.Correct:
				s += theme.Correct.Render(line) + "\n"
			case opt.Letter == o.Chosen:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += theme.Dim.Render(line) + "\n"
			}
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
