package cmd

import (
	"fmt"

	"github.com/misterclayt0n/ratlog/internal/state"
	"github.com/spf13/cobra"
)

var resetConfirm bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the local state: the active workout, local history and routines",
	Long: `Delete the local state: the active workout, local history and routines.

Workouts already pushed stay in the database; run 'ratlog pull' to get them back.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := stateDir()
		if err != nil {
			return fmt.Errorf("Failed to locate config directory: %w", err)
		}

		st := state.New(dir)
		if !st.Exists() {
			fmt.Println("Nothing to reset.")
			return nil
		}
		if !resetConfirm {
			return fmt.Errorf("This deletes %s. Re-run with --yes to confirm", st.Path())
		}

		if err := st.Clear(); err != nil {
			return fmt.Errorf("Failed to clear state: %w", err)
		}
		fmt.Println("✅ Local state cleared")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetConfirm, "yes", "y", false, "Confirm the reset")
	rootCmd.AddCommand(resetCmd)
}
