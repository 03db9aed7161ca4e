// Package notes provides the notes panel for the dashboard.
package notes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calmskies/deskboard/internal/adapters/driving/tui/components/input"
	"github.com/calmskies/deskboard/internal/adapters/driving/tui/keymap"
	"github.com/calmskies/deskboard/internal/adapters/driving/tui/messages"
	"github.com/calmskies/deskboard/internal/adapters/driving/tui/styles"
	"github.com/calmskies/deskboard/internal/core/domain"
	"github.com/calmskies/deskboard/internal/core/ports/driving"
)

// View is the notes panel: a text input on top of the live note list.
// When the store is unavailable the panel renders a notice and ignores
// all input.
type View struct {
	styles       *styles.Styles
	keymap       *keymap.KeyMap
	notesService driving.NotesService

	input    *input.NoteInput
	notes    []domain.Note
	selected int
	width    int
	err      error
}

// NewView creates a new notes panel.
func NewView(s *styles.Styles, km *keymap.KeyMap, notesService driving.NotesService) *View {
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:       s,
		keymap:       km,
		notesService: notesService,
		input:        input.NewNoteInput(s),
	}
}

// Init initialises the notes panel.
func (v *View) Init() tea.Cmd {
	if !v.notesService.Available() {
		return nil
	}
	return v.input.Init()
}

// addNote returns a command that submits the current input text.
func (v *View) addNote(text string) tea.Cmd {
	return func() tea.Msg {
		note, err := v.notesService.Add(context.Background(), text)
		return messages.NoteAdded{Note: note, Err: err}
	}
}

// deleteNote returns a command that removes a note.
func (v *View) deleteNote(id string) tea.Cmd {
	return func() tea.Msg {
		err := v.notesService.Delete(context.Background(), id)
		return messages.NoteDeleted{ID: id, Err: err}
	}
}

// Update handles messages for the notes panel.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if !v.notesService.Available() {
		return v, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.input.SetWidth(msg.Width / 2)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.NotesSnapshot:
		v.notes = msg.Notes
		if v.selected >= len(v.notes) {
			v.selected = len(v.notes) - 1
		}
		if v.selected < 0 {
			v.selected = 0
		}
		return v, nil

	case messages.NoteAdded:
		switch {
		case msg.Err == nil:
			// Input is cleared only after the note is stored.
			v.input.Reset()
			v.err = nil
		case errors.Is(msg.Err, domain.ErrEmptyNote):
			// Whitespace-only submission: keep the input, no feedback.
		default:
			v.err = msg.Err
		}
		return v, nil

	case messages.NoteDeleted:
		if msg.Err != nil {
			v.err = msg.Err
		}
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses while the panel has focus.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Submit):
		return v, v.addNote(v.input.Value())
	case keymap.Matches(key, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
		return v, nil
	case keymap.Matches(key, v.keymap.Down):
		if v.selected < len(v.notes)-1 {
			v.selected++
		}
		return v, nil
	case keymap.Matches(key, v.keymap.DeleteNote):
		if len(v.notes) > 0 && v.selected < len(v.notes) {
			return v, v.deleteNote(v.notes[v.selected].ID)
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// Focus gives keyboard focus to the input field.
func (v *View) Focus() tea.Cmd {
	return v.input.Focus()
}

// Blur removes keyboard focus from the input field.
func (v *View) Blur() {
	v.input.Blur()
}

// Notes returns the current note list (for testing).
func (v *View) Notes() []domain.Note {
	return v.notes
}

// InputValue returns the current input text (for testing).
func (v *View) InputValue() string {
	return v.input.Value()
}

// SetInputValue sets the input text (for testing).
func (v *View) SetInputValue(value string) {
	v.input.SetValue(value)
}

// Selected returns the selected note index (for testing).
func (v *View) Selected() int {
	return v.selected
}

// Err returns the last error shown in the panel.
func (v *View) Err() error {
	return v.err
}

// View renders the notes panel.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Notes (%d)", len(v.notes))))
	b.WriteString("\n\n")

	if !v.notesService.Available() {
		b.WriteString(v.styles.Warning.Render("Notes are unavailable: the local store failed to open."))
		return b.String()
	}

	b.WriteString(v.input.View())
	b.WriteString("\n\n")

	if len(v.notes) == 0 {
		b.WriteString(v.styles.Muted.Render("No notes yet."))
	}

	for i, note := range v.notes {
		if i > 0 {
			b.WriteString("\n")
		}
		line := "  " + note.Text
		if i == v.selected {
			line = "> " + note.Text
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
	}

	if v.err != nil {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	}

	return b.String()
}
