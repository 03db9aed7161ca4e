package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calmskies/deskboard/internal/core/domain"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Manage notes",
	Long:  `List, add and remove notes without opening the dashboard.`,
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	RunE:  runNotesList,
}

var notesAddCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Add a note",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNotesAdd,
}

var notesRmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Remove a note by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotesRm,
}

func init() {
	notesCmd.AddCommand(notesListCmd)
	notesCmd.AddCommand(notesAddCmd)
	notesCmd.AddCommand(notesRmCmd)
	rootCmd.AddCommand(notesCmd)
}

func runNotesList(cmd *cobra.Command, _ []string) error {
	if notesService == nil {
		return errors.New("notes service not configured")
	}

	notes, err := notesService.List(context.Background())
	if err != nil {
		if errors.Is(err, domain.ErrNotesUnavailable) {
			return errors.New("notes are unavailable: the local store failed to open")
		}
		return fmt.Errorf("listing notes: %w", err)
	}

	if len(notes) == 0 {
		cmd.Println("No notes yet.")
		return nil
	}

	for _, note := range notes {
		cmd.Printf("%-36s  %s\n", note.ID, note.Text)
	}
	return nil
}

func runNotesAdd(cmd *cobra.Command, args []string) error {
	if notesService == nil {
		return errors.New("notes service not configured")
	}

	text := strings.Join(args, " ")
	note, err := notesService.Add(context.Background(), text)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyNote) {
			return errors.New("note text is empty")
		}
		if errors.Is(err, domain.ErrNotesUnavailable) {
			return errors.New("notes are unavailable: the local store failed to open")
		}
		return fmt.Errorf("adding note: %w", err)
	}

	cmd.Printf("Added note %s\n", note.ID)
	return nil
}

func runNotesRm(cmd *cobra.Command, args []string) error {
	if notesService == nil {
		return errors.New("notes service not configured")
	}

	if err := notesService.Delete(context.Background(), args[0]); err != nil {
		if errors.Is(err, domain.ErrNotesUnavailable) {
			return errors.New("notes are unavailable: the local store failed to open")
		}
		return fmt.Errorf("removing note: %w", err)
	}

	cmd.Printf("Removed note %s\n", args[0])
	return nil
}
