package cmd

import (
	"errors"
	"fmt"

	"github.com/misterclayt0n/ratlog/internal/tracker"
	"github.com/spf13/cobra"
)

var deleteWorkoutCmd = &cobra.Command{
	Use:   "delete-workout [workout-id|index]",
	Short: "Delete a finished workout locally and from the database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), lazy)
		if err != nil {
			return err
		}
		defer a.Close()

		w, err := findWorkout(a.tracker.Machine().Workouts(), args[0])
		if err != nil {
			return err
		}

		if err := a.tracker.Delete(cmd.Context(), w.ID); err != nil {
			if !errors.Is(err, tracker.ErrSyncFailed) {
				return fmt.Errorf("Failed to delete workout: %w", err)
			}
			fmt.Printf("%s %v\n", red("Deleted locally, database delete failed:"), err)
			return nil
		}

		fmt.Printf("✅ Workout '%s' deleted\n", w.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteWorkoutCmd)
}
