package components

import (
	"strconv"
	"strings"
	"unicode"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/trivia/internal/ui/theme"
)

// Accept reports whether a typed character may go into a TextInput.
type Accept func(r rune) bool

// Digits accepts 0-9 only.
func Digits(r rune) bool {
	return r >= '0' && r <= '9'
}

// AnswerChars accepts what an answer line can hold: option numbers and the
// letters of the skip and quit commands.
func AnswerChars(r rune) bool {
	return Digits(r) || unicode.IsLetter(r) || r == ' '
}

// TextInput is a single-line prompt on top of bubbles/textinput that drops
// characters its Accept func rejects.
type TextInput struct {
	Model  textinput.Model
	accept Accept
}

// NewTextInput creates a focused input holding at most limit characters
// (0 for no limit). A nil accept lets everything through.
func NewTextInput(placeholder string, limit int, accept Accept) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.CharLimit = max(limit, 0)
	ti.Focus()

	return TextInput{Model: ti, accept: accept}
}

// Init starts the cursor.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update filters typed text, then hands the message to the model.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok && t.accept != nil && k.Text != "" {
		for _, r := range k.Text {
			if !t.accept(r) {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) View() string {
	return theme.Body.Render(t.Model.View())
}

// Value returns the text with surrounding blanks removed.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// NumericValue parses Value as an integer.
func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(t.Value())
}

// Clear empties the input.
func (t *TextInput) Clear() {
	t.Model.Reset()
}
