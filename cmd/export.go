package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/misterclayt0n/ratlog/internal/export"
	"github.com/misterclayt0n/ratlog/internal/models"
	"github.com/spf13/cobra"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export the workout history as JSON or CSV",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(exportFormat)
		if format != "json" && format != "csv" {
			return fmt.Errorf("Invalid format '%s'. Use json or csv", exportFormat)
		}

		outputFile := strings.TrimSuffix(export.DefaultJSONFile, ".json") + "." + format
		if len(args) == 1 {
			outputFile = args[0]
		}

		a, err := openApp(cmd.Context(), offline)
		if err != nil {
			return err
		}
		defer a.Close()

		workouts := a.tracker.Machine().Workouts()

		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("Failed to create %s: %w", outputFile, err)
		}
		defer f.Close()

		if format == "csv" {
			err = export.WriteCSV(f, workouts)
		} else {
			err = export.WriteJSON(f, workouts)
		}
		if err != nil {
			return fmt.Errorf("Failed to export workouts: %w", err)
		}

		fmt.Printf("✅ Exported %d workouts to %s\n", len(workouts), outputFile)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import workouts from a JSON or CSV export into the local history",
	Long: `Import workouts from a JSON or CSV export into the local history.

Workouts whose id already exists locally are replaced. Run 'ratlog push'
afterwards to save them to the database.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("Failed to open %s: %w", args[0], err)
		}
		defer f.Close()

		imported, err := readExport(f, args[0])
		if err != nil {
			return fmt.Errorf("Failed to import workouts: %w", err)
		}

		a, err := openApp(cmd.Context(), offline)
		if err != nil {
			return err
		}
		defer a.Close()

		m := a.tracker.Machine()
		m.Hydrate(mergeWorkouts(m.Workouts(), imported))

		fmt.Printf("✅ Imported %d workouts (%d in history)\n", len(imported), len(m.Workouts()))
		return nil
	},
}

func readExport(r io.Reader, name string) ([]models.Workout, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return export.ReadCSV(r)
	case ".json":
		return export.ReadJSON(r)
	default:
		return nil, fmt.Errorf("unknown file type %q, expected .json or .csv", filepath.Ext(name))
	}
}

// mergeWorkouts returns existing plus imported, with imported winning on id.
func mergeWorkouts(existing, imported []models.Workout) []models.Workout {
	byID := make(map[string]bool, len(imported))
	for _, w := range imported {
		byID[w.ID] = true
	}

	out := make([]models.Workout, 0, len(existing)+len(imported))
	for _, w := range existing {
		if !byID[w.ID] {
			out = append(out, w)
		}
	}
	return append(out, imported...)
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format (json or csv)")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
