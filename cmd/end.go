package cmd

import (
	"errors"
	"fmt"

	"github.com/misterclayt0n/ratlog/internal/models"
	"github.com/misterclayt0n/ratlog/internal/stats"
	"github.com/misterclayt0n/ratlog/internal/tracker"
	"github.com/misterclayt0n/ratlog/internal/utils"
	"github.com/spf13/cobra"
)

var finishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Finish the current workout and sync it",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), lazy)
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.activeWorkout(); err != nil {
			return err
		}

		before := stats.PersonalRecords(a.tracker.Machine().Workouts())

		finished, err := a.tracker.Finish(cmd.Context())
		if err != nil && !errors.Is(err, tracker.ErrSyncFailed) {
			return err
		}

		done, total := stats.CompletedSets(*finished)
		fmt.Printf("✅ %s finished in %s\n", green(finished.Name), utils.FormatMinutes(*finished.Duration))
		fmt.Printf("%s %d/%d sets, %skg volume\n", cyan("Summary:"), done, total,
			utils.FormatWeight(stats.WorkoutVolume(*finished)))

		for _, pr := range newRecords(before, stats.PersonalRecords(a.tracker.Machine().Workouts())) {
			fmt.Printf("%s %s %skg × %d (e1RM %skg)\n", yellow("★ New PR:"), pr.ExerciseName,
				utils.FormatWeight(pr.Weight), pr.Reps, utils.FormatWeight(pr.Estimated1RM))
		}

		if err != nil {
			fmt.Printf("%s %v\n", red("Saved locally, sync failed:"), err)
			fmt.Println("Run 'ratlog push' to retry.")
		} else if !a.tracker.Online() {
			fmt.Println(faint("Saved locally. No database configured."))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(finishCmd)
}

// newRecords returns the records in after that beat, or did not exist in, before.
func newRecords(before, after []models.PersonalRecord) []models.PersonalRecord {
	prev := make(map[string]float64, len(before))
	for _, pr := range before {
		prev[pr.ExerciseName] = pr.Estimated1RM
	}

	var out []models.PersonalRecord
	for _, pr := range after {
		if old, ok := prev[pr.ExerciseName]; !ok || pr.Estimated1RM > old {
			out = append(out, pr)
		}
	}
	return out
}
