package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cancelSessionCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel the current workout without saving any data",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), offline)
		if err != nil {
			return err
		}
		defer a.Close()

		active := a.tracker.Machine().Active()
		if active == nil {
			return fmt.Errorf("No active workout to cancel")
		}

		a.tracker.Machine().Cancel()
		fmt.Printf("✅ Workout '%s' cancelled\n", active.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cancelSessionCmd)
}
