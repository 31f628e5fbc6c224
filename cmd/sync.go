package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

const defaultDumpFile = "ratlog_dump.toml"

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Save every local workout and routine to the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), online)
		if err != nil {
			return err
		}
		defer a.Close()

		pushed, err := a.tracker.Push(cmd.Context())
		for _, r := range a.tracker.Machine().Routines() {
			err = multierr.Append(err, a.store.SaveRoutine(cmd.Context(), r, cfg.User.ID))
		}

		fmt.Printf("✅ Pushed %d workouts and %d routines\n", pushed, len(a.tracker.Machine().Routines()))
		if err != nil {
			for _, e := range multierr.Errors(err) {
				fmt.Printf("%s %v\n", red("Failed:"), e)
			}
			return fmt.Errorf("Push finished with %d errors", len(multierr.Errors(err)))
		}
		return nil
	},
}

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Replace the local history with the workouts and routines in the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), online)
		if err != nil {
			return err
		}
		defer a.Close()

		n, err := a.tracker.Pull(cmd.Context())
		if err != nil {
			return err
		}

		routines, err := a.store.ListRoutines(cmd.Context(), cfg.User.ID)
		if err != nil {
			return fmt.Errorf("Failed to fetch routines: %w", err)
		}
		m := a.tracker.Machine()
		for _, r := range routines {
			m.AddRoutine(r)
		}

		fmt.Printf("✅ Pulled %d workouts and %d routines\n", n, len(routines))
		return nil
	},
}

var backupCmd = &cobra.Command{
	Use:   "backup [output-file]",
	Short: "Dump all database tables to a TOML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile := defaultDumpFile
		if len(args) == 1 {
			outputFile = args[0]
		}

		a, err := openApp(cmd.Context(), online)
		if err != nil {
			return err
		}
		defer a.Close()

		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("Failed to create %s: %w", outputFile, err)
		}
		defer f.Close()

		if err := a.store.Backup(cmd.Context(), f); err != nil {
			return fmt.Errorf("Error exporting database: %w", err)
		}

		fmt.Printf("✅ Database exported successfully to %s\n", outputFile)
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore [dump-file]",
	Short: "Rebuild the database from a TOML dump",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("Failed to open %s: %w", args[0], err)
		}
		defer f.Close()

		a, err := openApp(cmd.Context(), online)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.store.Restore(cmd.Context(), f); err != nil {
			return fmt.Errorf("Failed to restore database: %w", err)
		}
		fmt.Println("✅ Database restored. Run 'ratlog pull' to refresh the local history.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}
