package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeSetCmd = &cobra.Command{
	Use:   "remove-set [exercise-index] [set-index]",
	Short: "Remove a set from the current workout",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), offline)
		if err != nil {
			return err
		}
		defer a.Close()

		we, set, err := a.setAt(args[0], args[1])
		if err != nil {
			return err
		}

		a.tracker.Machine().RemoveSet(we.ID, set.ID)
		fmt.Printf("✅ Removed set %s from '%s'\n", args[1], we.Exercise.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeSetCmd)
}
