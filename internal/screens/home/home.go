package home

import (
	"math/rand"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizdeck/internal/bank"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/setup"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	disabled   map[int]bool
	questions  int
	categories int
	mascot     MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen over the loaded question bank.
func New(bnk *bank.Bank, settings quiz.Settings, rng *rand.Rand, logger *zap.Logger) *HomeScreen {
	empty := bnk.Len() == 0

	menuLabels := []string{"START QUIZ", "EXIT"}
	disabled := map[int]bool{}
	if empty {
		disabled[0] = true
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Disabled: empty, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(bnk, settings, rng, logger)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	mascot := MascotIdle
	if empty {
		mascot = MascotAlert
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		disabled:   disabled,
		questions:  bnk.Len(),
		categories: len(bnk.Categories()),
		mascot:     mascot,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(h.mascot, cw))
	}

	sections = append(sections, renderStatsBar(h.questions, h.categories, cw, compact))

	if h.questions == 0 {
		sections = append(sections, renderEmptyBankBanner(cw))
	}

	sections = append(sections, renderArcadeMenu(h.menuLabels, h.menu.Selected, cw, h.disabled))

	content := strings.Join(sections, "\n\n")

	// Wrap in cabinet frame, centered in the full area
	return components.CabinetFrame(content, width, height)
}
