// Package setup walks the player through quiz configuration: category,
// difficulty, then a confirmation step that shows what was drawn from
// the bank before the first question starts the clock.
package setup

import (
	"fmt"
	"math/rand"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizdeck/internal/bank"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	sessionscreen "github.com/abhisek/quizdeck/internal/screens/session"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// allCategoriesLabel is the synthetic last entry of the category menu.
const allCategoriesLabel = "All Categories"

type step int

const (
	stepCategory step = iota
	stepDifficulty
	stepReady
)

// SetupScreen collects the quiz filters and seeds the session.
type SetupScreen struct {
	bank     *bank.Bank
	settings quiz.Settings
	rng      *rand.Rand
	logger   *zap.Logger

	step          step
	hasCategories bool
	catMenu       components.Menu
	diffMenu      components.Menu
	startBtn      components.Button

	category   string          // empty means all categories
	difficulty bank.Difficulty // selection is always one concrete level
	picked     []bank.Question
	fellBack   bool
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen over the loaded bank. When the bank carries no
// categories the category step is skipped entirely.
func New(bnk *bank.Bank, settings quiz.Settings, rng *rand.Rand, logger *zap.Logger) *SetupScreen {
	s := &SetupScreen{
		bank:     bnk,
		settings: settings,
		rng:      rng,
		logger:   logger,
	}

	categories := bnk.Categories()
	s.hasCategories = len(categories) > 0
	if !s.hasCategories {
		s.step = stepDifficulty
	}

	var catItems []components.MenuItem
	for _, category := range categories {
		catItems = append(catItems, components.MenuItem{
			Label:  category,
			Action: s.pickCategory(category),
		})
	}
	catItems = append(catItems, components.MenuItem{
		Label:  allCategoriesLabel,
		Action: s.pickCategory(""),
	})
	s.catMenu = components.NewNumberedMenu(catItems)

	var diffItems []components.MenuItem
	for _, level := range bank.Difficulties() {
		diffItems = append(diffItems, components.MenuItem{
			Label:  string(level),
			Action: s.pickDifficulty(level),
		})
	}
	s.diffMenu = components.NewNumberedMenu(diffItems)

	return s
}

func (s *SetupScreen) pickCategory(category string) func() tea.Cmd {
	return func() tea.Cmd {
		s.category = category
		s.step = stepDifficulty
		return nil
	}
}

func (s *SetupScreen) pickDifficulty(level bank.Difficulty) func() tea.Cmd {
	return func() tea.Cmd {
		s.difficulty = level
		s.prepare()
		s.step = stepReady
		return nil
	}
}

// prepare draws the question selection for the chosen filters.
func (s *SetupScreen) prepare() {
	filter := quiz.Filter{Category: s.category, Difficulty: s.difficulty}
	s.picked, s.fellBack = quiz.Select(s.bank.Questions(), filter, s.settings.MaxQuestions, s.rng)
	s.startBtn = components.NewButton("START QUIZ", len(s.picked) > 0, s.startQuiz)
}

func (s *SetupScreen) startQuiz() tea.Cmd {
	qs, err := quiz.NewSession(s.picked, s.settings)
	if err != nil {
		return nil
	}
	scr := sessionscreen.New(qs, s.logger)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: scr}
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Quiz"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	if s.step == stepReady {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-9", Description: "Pick"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s.back()
	}

	var cmd tea.Cmd
	switch s.step {
	case stepCategory:
		s.catMenu, cmd = s.catMenu.Update(msg)
	case stepDifficulty:
		s.diffMenu, cmd = s.diffMenu.Update(msg)
	case stepReady:
		s.startBtn, cmd = s.startBtn.Update(msg)
	}
	return s, cmd
}

// back steps to the previous setup stage, or leaves the screen from the first.
func (s *SetupScreen) back() (screen.Screen, tea.Cmd) {
	switch s.step {
	case stepReady:
		s.step = stepDifficulty
		return s, nil
	case stepDifficulty:
		if s.hasCategories {
			s.step = stepCategory
			return s, nil
		}
	}
	return s, func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *SetupScreen) View(width, height int) string {
	var content string
	switch s.step {
	case stepCategory:
		content = s.renderStep("Available Categories", s.catMenu.View(), width)
	case stepDifficulty:
		content = s.renderStep("Select Difficulty Level", s.diffMenu.View(), width)
	case stepReady:
		content = s.renderReady(width)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *SetupScreen) renderStep(heading, body string, width int) string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(heading))
	b.WriteString("\n\n")
	b.WriteString(body)
	return b.String()
}

func (s *SetupScreen) renderReady(width int) string {
	category := s.category
	if category == "" {
		category = allCategoriesLabel
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("Category:    %s", category))
	lines = append(lines, fmt.Sprintf("Difficulty:  %s", s.difficulty))
	lines = append(lines, fmt.Sprintf("Questions:   %d", len(s.picked)))
	card := components.ArcadeCard(strings.Join(lines, "\n"), components.ContentWidth(width))

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Ready to Start"))
	b.WriteString("\n\n")
	b.WriteString(card)
	b.WriteString("\n")

	if s.fellBack {
		notice := lipgloss.NewStyle().Foreground(theme.Warn).
			Render("No questions match your selected criteria.\nShowing all questions instead.")
		b.WriteString("\n")
		b.WriteString(notice)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.startBtn.View())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render("Press Enter to start the quiz..."))

	// Center every line as a block.
	return lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
}
