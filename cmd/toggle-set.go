package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var toggleSetCmd = &cobra.Command{
	Use:   "toggle-set [exercise-index] [set-index]",
	Short: "Mark a set done, or not done if it already was",
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

		if !a.tracker.Machine().ToggleSetComplete(we.ID, set.ID) {
			fmt.Printf("Set %s of '%s' marked not done\n", args[1], we.Exercise.Name)
			return nil
		}

		rest := cfg.Session.RestSeconds
		if set.RestTime != nil {
			rest = *set.RestTime
		}
		fmt.Printf("✅ Set %s of '%s' done\n", args[1], we.Exercise.Name)
		if rest > 0 {
			ready := time.Now().Add(time.Duration(rest) * time.Second)
			fmt.Printf("%s %ds, next set at %s\n", cyan("Rest:"), rest, ready.In(cfg.Location()).Format("15:04:05"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toggleSetCmd)
}
