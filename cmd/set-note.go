package cmd

import (
	"fmt"

	"github.com/misterclayt0n/ratlog/internal/models"
	"github.com/spf13/cobra"
)

var noteText string

var setNoteCmd = &cobra.Command{
	Use:   "set-note [exercise-index] [set-index]",
	Short: "Set a note on a set, or on the whole workout when no index is given",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), offline)
		if err != nil {
			return err
		}
		defer a.Close()

		m := a.tracker.Machine()
		switch len(args) {
		case 0:
			if _, err := a.activeWorkout(); err != nil {
				return err
			}
			m.SetWorkoutNotes(noteText)
			fmt.Println("✅ Workout note set successfully")
		case 1:
			return fmt.Errorf("Pass both the exercise and set index, or neither for a workout note")
		default:
			we, set, err := a.setAt(args[0], args[1])
			if err != nil {
				return err
			}
			m.UpdateSet(we.ID, set.ID, models.SetPatch{Notes: &noteText})
			fmt.Println("✅ Note set successfully")
		}
		return nil
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename [name]",
	Short: "Rename the current workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), offline)
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.activeWorkout(); err != nil {
			return err
		}
		a.tracker.Machine().RenameWorkout(args[0])
		fmt.Printf("✅ Workout renamed to %s\n", green(args[0]))
		return nil
	},
}

func init() {
	setNoteCmd.Flags().StringVarP(&noteText, "note", "n", "", "Note text")
	setNoteCmd.MarkFlagRequired("note")
	rootCmd.AddCommand(setNoteCmd)
	rootCmd.AddCommand(renameCmd)
}
