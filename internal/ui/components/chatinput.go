package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"coursedeck/internal/ui/theme"
)

// ChatInput wraps bubbles/textinput for the tutor chat. While a request
// is in flight the input is disabled so submissions cannot overlap.
type ChatInput struct {
	Model    textinput.Model
	disabled bool
}

// NewChatInput creates a focused chat input.
func NewChatInput(placeholder string, charLimit int) ChatInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	ti.Focus()
	return ChatInput{Model: ti}
}

// Init returns the initial command.
func (c ChatInput) Init() tea.Cmd {
	return c.Model.Focus()
}

// Update handles messages. Keystrokes are dropped while disabled.
func (c ChatInput) Update(msg tea.Msg) (ChatInput, tea.Cmd) {
	if c.disabled {
		if _, ok := msg.(tea.KeyMsg); ok {
			return c, nil
		}
	}
	var cmd tea.Cmd
	c.Model, cmd = c.Model.Update(msg)
	return c, cmd
}

// SetDisabled toggles whether the input accepts keystrokes.
func (c *ChatInput) SetDisabled(disabled bool) {
	c.disabled = disabled
}

// Disabled reports whether the input is disabled.
func (c ChatInput) Disabled() bool {
	return c.disabled
}

// Value returns the current input text.
func (c ChatInput) Value() string {
	return c.Model.Value()
}

// Clear empties the input.
func (c *ChatInput) Clear() {
	c.Model.SetValue("")
}

// View renders the input with a thinking indicator while disabled.
func (c ChatInput) View() string {
	if c.disabled {
		return c.Model.View() + " " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("thinking…")
	}
	return c.Model.View()
}
