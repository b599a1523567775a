package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/billel/trivia/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

// Menu is a vertical menu that scrolls when it has more items than fit.
type Menu struct {
	Items    []MenuItem
	Selected int
	offset   int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Items)-1 {
			m.Selected++
		}
	case "home", "g":
		m.Selected = 0
	case "end", "G":
		m.Selected = len(m.Items) - 1
	case "enter":
		if item := m.Items[m.Selected]; item.Action != nil {
			return m, item.Action()
		}
	}

	return m, nil
}

// View renders at most height rows, keeping the selection visible.
func (m *Menu) View(height int) string {
	if len(m.Items) == 0 {
		return ""
	}
	if height <= 0 || height > len(m.Items) {
		height = len(m.Items)
	}

	if m.Selected < m.offset {
		m.offset = m.Selected
	}
	if m.Selected >= m.offset+height {
		m.offset = m.Selected - height + 1
	}

	var b strings.Builder
	for i := m.offset; i < m.offset+height; i++ {
		label := m.Items[i].Label
		if i == m.Selected {
			b.WriteString(theme.Selected.Render("  ▸ " + label))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("    " + label))
		}
		if i < m.offset+height-1 {
			b.WriteString("\n")
		}
	}

	if height < len(m.Items) {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("    %d/%d", m.Selected+1, len(m.Items))))
	}
	return b.String()
}
