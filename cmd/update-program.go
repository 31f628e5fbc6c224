package cmd

import (
	"fmt"

	"github.com/misterclayt0n/ratlog/internal/utils"
	"github.com/spf13/cobra"
)

var updateRoutineCmd = &cobra.Command{
	Use:   "update-routine [file]",
	Short: "Replace the exercises of an existing routine from a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := utils.ParseRoutineFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("Failed to read routine: %w", err)
		}

		a, err := openApp(cmd.Context(), offline)
		if err != nil {
			return err
		}
		defer a.Close()

		existing, ok := findRoutine(a, rt.Name)
		if !ok {
			return fmt.Errorf("Routine '%s' not found. Use 'ratlog create-routine' first", rt.Name)
		}

		routine, err := routineFromTOML(cmd.Context(), a, rt)
		if err != nil {
			return err
		}
		routine.ID = existing.ID
		routine.CreatedAt = existing.CreatedAt
		routine.LastUsed = existing.LastUsed

		if err := storeRoutine(cmd.Context(), a, routine); err != nil {
			return fmt.Errorf("Failed to update routine: %w", err)
		}
		fmt.Println("✅ Routine updated successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateRoutineCmd)
}
