// Package app assembles the screens into the root Bubble Tea model and
// runs the program.
package app

import (
	"fmt"
	"math/rand"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizdeck/internal/bank"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/home"
	sessionscreen "github.com/abhisek/quizdeck/internal/screens/session"
	"github.com/abhisek/quizdeck/internal/screens/welcome"
	"github.com/abhisek/quizdeck/internal/ui/layout"
)

// StartOptions requests a quiz straight from the command line, bypassing
// the category and difficulty screens.
type StartOptions struct {
	Category   string
	Difficulty bank.Difficulty
	Questions  int
}

// Options carries everything the UI needs to run.
type Options struct {
	Bank      *bank.Bank
	Settings  quiz.Settings
	Logger    *zap.Logger
	Rand      *rand.Rand
	AutoStart *StartOptions
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

// newAppModel builds the initial screen stack. The normal path opens on
// the welcome splash; an AutoStart request opens on home instead and
// pushes the quiz in Init, so finishing it lands back on the menu.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Bank, opts.Settings, opts.Rand, opts.Logger)
	}

	if opts.AutoStart != nil {
		return AppModel{opts: opts, router: router.New(homeFactory())}
	}
	return AppModel{opts: opts, router: router.New(welcome.New(homeFactory))}
}

func (m AppModel) Init() tea.Cmd {
	if m.opts.AutoStart != nil {
		return m.startQuiz(*m.opts.AutoStart)
	}
	return m.router.Active().Init()
}

// startQuiz selects questions for an AutoStart request and pushes the
// session screen.
func (m AppModel) startQuiz(start StartOptions) tea.Cmd {
	max := m.opts.Settings.MaxQuestions
	if start.Questions > 0 {
		max = start.Questions
	}

	filter := quiz.Filter{Category: start.Category, Difficulty: start.Difficulty}
	picked, fellBack := quiz.Select(m.opts.Bank.Questions(), filter, max, m.opts.Rand)
	if fellBack {
		m.opts.Logger.Warn("no questions match the requested filters, using the whole bank",
			zap.String("category", start.Category),
			zap.String("difficulty", string(start.Difficulty)))
	}

	qs, err := quiz.NewSession(picked, m.opts.Settings)
	if err != nil {
		m.opts.Logger.Error("cannot start quiz", zap.Error(err))
		return tea.Quit
	}

	scr := sessionscreen.New(qs, m.opts.Logger)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: scr}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Ctrl+C is the only global key. Esc belongs to the screens;
		// what leaving means depends on where you are, and the session
		// asks before ending a quiz early.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	status := ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints returns the active screen's hints, falling back to stock
// hints by stack depth.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		return hp.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
