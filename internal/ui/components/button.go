package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/ui/theme"
)

// Button is a styled button component.
type Button struct {
	Label   string
	Active  bool
	OnPress func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Active:  active,
		OnPress: onPress,
	}
}

// Press runs the button action.
func (b Button) Press() tea.Cmd {
	if b.OnPress == nil {
		return nil
	}
	return b.OnPress()
}

// View renders the button.
func (b Button) View() string {
	if b.Active {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}

// ButtonRow is a horizontal group of buttons with one active at a time.
type ButtonRow struct {
	Buttons []Button
}

// NewButtonRow creates a row with the first button active.
func NewButtonRow(buttons ...Button) ButtonRow {
	for i := range buttons {
		buttons[i].Active = i == 0
	}
	return ButtonRow{Buttons: buttons}
}

// Update moves the active button with left/right (or tab) and presses it on Enter.
func (r ButtonRow) Update(msg tea.Msg) (ButtonRow, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(r.Buttons) == 0 {
		return r, nil
	}

	active := r.active()
	switch kmsg.String() {
	case "left", "h", "shift+tab":
		r.setActive((active - 1 + len(r.Buttons)) % len(r.Buttons))
	case "right", "l", "tab":
		r.setActive((active + 1) % len(r.Buttons))
	case "enter":
		return r, r.Buttons[active].Press()
	}
	return r, nil
}

func (r ButtonRow) active() int {
	for i, b := range r.Buttons {
		if b.Active {
			return i
		}
	}
	return 0
}

func (r *ButtonRow) setActive(i int) {
	for j := range r.Buttons {
		r.Buttons[j].Active = j == i
	}
}

// View renders the buttons side by side.
func (r ButtonRow) View() string {
	parts := make([]string, 0, 2*len(r.Buttons))
	for i, b := range r.Buttons {
		if i > 0 {
			parts = append(parts, "   ")
		}
		parts = append(parts, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
