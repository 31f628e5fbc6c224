package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/misterclayt0n/ratlog/internal/storage"
	"github.com/spf13/cobra"
)

var deleteRoutineCmd = &cobra.Command{
	Use:   "delete-routine [name]",
	Short: "Delete a routine",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), offline)
		if err != nil {
			return err
		}
		defer a.Close()

		name := strings.Join(args, " ")
		r, ok := findRoutine(a, name)
		if !ok {
			return fmt.Errorf("Routine '%s' not found", name)
		}

		a.tracker.Machine().DeleteRoutine(r.ID)

		if cfg.HasDatabase() {
			if a.store == nil {
				if err := a.connect(cmd.Context()); err != nil {
					return fmt.Errorf("Routine deleted locally, database unavailable: %w", err)
				}
			}
			if err := a.store.DeleteRoutine(cmd.Context(), r.ID); err != nil && !errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("Failed to delete routine: %w", err)
			}
		}

		fmt.Printf("✅ Routine '%s' deleted successfully\n", r.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteRoutineCmd)
}
