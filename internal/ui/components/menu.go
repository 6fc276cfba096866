package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu. Numbered menus also accept their
// item's digit as a hotkey that selects and activates in one press, the
// way a numbered console menu would.
type Menu struct {
	Items    []MenuItem
	Selected int
	Numbered bool
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// NewNumberedMenu creates a menu whose items answer to 1..9 hotkeys.
func NewNumberedMenu(items []MenuItem) Menu {
	m := NewMenu(items)
	m.Numbered = true
	return m
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter":
		return m.activate(m.Selected)
	default:
		if m.Numbered && len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			return m.activate(int(key[0] - '1'))
		}
	}

	return m, nil
}

func (m Menu) activate(index int) (Menu, tea.Cmd) {
	if index < 0 || index >= len(m.Items) {
		return m, nil
	}
	item := m.Items[index]
	if item.Disabled || item.Action == nil {
		return m, nil
	}
	m.Selected = index
	return m, item.Action()
}

// View renders the menu.
func (m Menu) View() string {
	var s string
	for i, item := range m.Items {
		label := item.Label
		if m.Numbered {
			label = fmt.Sprintf("%d. %s", i+1, item.Label)
		}

		switch {
		case item.Disabled:
			s += lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("    "+label) + "\n"
		case i == m.Selected:
			s += lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ "+label) + "\n"
		default:
			s += lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    "+label) + "\n"
		}
	}
	return s
}
