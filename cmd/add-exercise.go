package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addExerciseCmd = &cobra.Command{
	Use:   "add-exercise [name-or-id...]",
	Short: "Add exercises to the current workout",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), offline)
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.activeWorkout(); err != nil {
			return err
		}

		// A single unquoted multi-word name arrives split.
		refs := args
		if _, err := a.resolveExercise(cmd.Context(), args[0]); err != nil && len(args) > 1 {
			refs = []string{strings.Join(args, " ")}
		}

		for _, ref := range refs {
			ex, err := a.resolveExercise(cmd.Context(), ref)
			if err != nil {
				return err
			}
			a.tracker.Machine().AddExerciseToWorkout(ex)
			fmt.Printf("✅ Added '%s' to the current workout\n", ex.Name)
		}
		return nil
	},
}

var removeExerciseCmd = &cobra.Command{
	Use:   "remove-exercise [exercise-index]",
	Short: "Remove an exercise and all of its sets from the current workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), offline)
		if err != nil {
			return err
		}
		defer a.Close()

		we, err := a.exerciseAt(args[0])
		if err != nil {
			return err
		}

		a.tracker.Machine().RemoveExerciseFromWorkout(we.ID)
		fmt.Printf("✅ Removed '%s' (%d sets) from the current workout\n", we.Exercise.Name, len(we.Sets))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addExerciseCmd)
	rootCmd.AddCommand(removeExerciseCmd)
}
