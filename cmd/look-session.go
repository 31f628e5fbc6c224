package cmd

import (
	"fmt"
	"strconv"

	"github.com/misterclayt0n/ratlog/internal/models"
	"github.com/misterclayt0n/ratlog/internal/stats"
	"github.com/misterclayt0n/ratlog/internal/utils"
	"github.com/spf13/cobra"
)

var lookCmd = &cobra.Command{
	Use:   "look [workout-id|index]",
	Short: "Display a finished workout by its ID or its position in 'ratlog history'",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), offline)
		if err != nil {
			return err
		}
		defer a.Close()

		w, err := findWorkout(a.tracker.Machine().Workouts(), args[0])
		if err != nil {
			return err
		}

		loc := cfg.Location()
		fmt.Println(green(w.Name))
		fmt.Printf("%s %s\n", cyan("ID:"), w.ID)
		fmt.Printf("%s %s\n", cyan("Date:"), utils.FormatLocal(w.Date, loc))
		if w.Duration != nil {
			fmt.Printf("%s %s\n", cyan("Duration:"), utils.FormatMinutes(*w.Duration))
		}
		fmt.Printf("%s %skg\n", cyan("Volume:"), utils.FormatWeight(stats.WorkoutVolume(w)))
		if w.Notes != "" {
			fmt.Printf("%s %s\n", cyan("Notes:"), w.Notes)
		}
		fmt.Println()

		for i, we := range w.Exercises {
			fmt.Printf("%s %s\n", cyan(fmt.Sprintf("%d.", i+1)), yellow(we.Exercise.Name))
			for j, s := range we.Sets {
				status := red("✗")
				if s.Completed {
					status = green("✓")
				}
				fmt.Printf("   %s Set %d: %skg × %d (%s)", status, j+1, utils.FormatWeight(s.Weight), s.Reps, s.Type.Label())
				if e := stats.Estimate1RM(s.Weight, s.Reps); e > 0 {
					fmt.Printf(" %s", faint("e1RM "+utils.FormatWeight(e)+"kg"))
				}
				fmt.Println()
				if s.Notes != "" {
					fmt.Printf("     %s %s\n", faint("Note:"), s.Notes)
				}
			}
		}
		return nil
	},
}

// findWorkout resolves ref as a workout id, or as a 1-based position in the
// history (newest first).
func findWorkout(workouts []models.Workout, ref string) (models.Workout, error) {
	for _, w := range workouts {
		if w.ID == ref {
			return w, nil
		}
	}
	if idx, err := strconv.Atoi(ref); err == nil && idx >= 1 && idx <= len(workouts) {
		return workouts[idx-1], nil
	}
	return models.Workout{}, fmt.Errorf("Workout '%s' not found", ref)
}

func init() {
	rootCmd.AddCommand(lookCmd)
}
