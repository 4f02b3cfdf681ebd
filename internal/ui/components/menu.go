package components

import (
	"strconv"

	tea "charm.land/bubbletea/v2"
)

// MenuItem is one entry of a Menu.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

// Menu is a vertical list of entries. Arrow keys (or j/k) move the
// selection and wrap at the ends; Enter runs the selected entry and a digit
// runs the entry with that 1-based number.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the first entry selected.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

func (m Menu) Init() tea.Cmd {
	return nil
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter":
		return m, m.run()
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Items) {
			m.Selected = n - 1
			return m, m.run()
		}
	}
	return m, nil
}

func (m *Menu) move(delta int) {
	n := len(m.Items)
	m.Selected = ((m.Selected+delta)%n + n) % n
}

func (m Menu) run() tea.Cmd {
	if m.Selected < 0 || m.Selected >= len(m.Items) || m.Items[m.Selected].Action == nil {
		return nil
	}
	return m.Items[m.Selected].Action()
}

// Labels returns the entry labels in order.
func (m Menu) Labels() []string {
	labels := make([]string, len(m.Items))
	for i, item := range m.Items {
		labels[i] = item.Label
	}
	return labels
}
