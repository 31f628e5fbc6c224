package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var swapExCmd = &cobra.Command{
	Use:   "swap-ex [exercise-index] [new-exercise]",
	Short: "Swap an exercise in the current workout with another, keeping its sets",
	Args:  cobra.MinimumNArgs(2),
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

		ex, err := a.resolveExercise(cmd.Context(), strings.Join(args[1:], " "))
		if err != nil {
			return err
		}

		a.tracker.Machine().ReplaceExercise(we.ID, ex)
		fmt.Printf("✅ Swapped '%s' for '%s'\n", we.Exercise.Name, ex.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(swapExCmd)
}
