// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/calmskies/deskboard/internal/adapters/driving/tui/styles"
)

// NoteInput wraps a bubbles textinput for composing notes.
type NoteInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewNoteInput creates a new note input component.
func NewNoteInput(s *styles.Styles) *NoteInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Type a note and press enter..."
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 50

	return &NoteInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init initialises the note input.
func (n *NoteInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (n *NoteInput) Update(msg tea.Msg) (*NoteInput, tea.Cmd) {
	var cmd tea.Cmd
	n.textinput, cmd = n.textinput.Update(msg)
	return n, cmd
}

// View renders the note input.
func (n *NoteInput) View() string {
	return n.styles.InputField.Render(n.textinput.View())
}

// Value returns the current input value.
func (n *NoteInput) Value() string {
	return n.textinput.Value()
}

// SetValue sets the input value.
func (n *NoteInput) SetValue(value string) {
	n.textinput.SetValue(value)
}

// Reset clears the input.
func (n *NoteInput) Reset() {
	n.textinput.SetValue("")
}

// Focus sets focus on the input.
func (n *NoteInput) Focus() tea.Cmd {
	return n.textinput.Focus()
}

// Blur removes focus from the input.
func (n *NoteInput) Blur() {
	n.textinput.Blur()
}

// Focused returns whether the input is focused.
func (n *NoteInput) Focused() bool {
	return n.textinput.Focused()
}

// SetWidth sets the width of the input.
func (n *NoteInput) SetWidth(width int) {
	n.width = width
	inputWidth := width - 6
	if inputWidth < 20 {
		inputWidth = 20
	}
	n.textinput.Width = inputWidth
}
