package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/misterclayt0n/ratlog/internal/models"
	"github.com/misterclayt0n/ratlog/internal/stats"
	"github.com/misterclayt0n/ratlog/internal/utils"
	"github.com/spf13/cobra"
)

var (
	filterName     string
	filterDay      string
	filterExercise string
	historyLimit   int
)

// historyCmd lists finished workouts grouped by month, newest first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display workout history, optionally filtered by name, day or exercise",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), offline)
		if err != nil {
			return err
		}
		defer a.Close()

		loc := cfg.Location()
		workouts, err := filterWorkouts(a.tracker.Machine().Workouts(), loc)
		if err != nil {
			return err
		}
		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}
		if historyLimit > 0 && len(workouts) > historyLimit {
			workouts = workouts[:historyLimit]
		}

		month := ""
		for i, w := range workouts {
			m := w.Date.In(loc).Format("January 2006")
			if m != month {
				if month != "" {
					fmt.Println()
				}
				month = m
				fmt.Println(green(m))
			}

			duration := "-"
			if w.Duration != nil {
				duration = utils.FormatMinutes(*w.Duration)
			}
			done, _ := stats.CompletedSets(w)
			fmt.Printf("  %s %s %s | %s | %d sets | %skg %s\n",
				cyan(fmt.Sprintf("%d.", i+1)),
				utils.FormatLocal(w.Date, loc),
				yellow(w.Name),
				duration,
				done,
				utils.FormatWeight(stats.WorkoutVolume(w)),
				faint(w.ID),
			)
		}
		return nil
	},
}

func filterWorkouts(workouts []models.Workout, loc *time.Location) ([]models.Workout, error) {
	var day string
	if filterDay != "" {
		parsed, err := time.ParseInLocation("2006-01-02", filterDay, loc)
		if err != nil {
			parsed, err = time.ParseInLocation("02/01/06", filterDay, loc)
		}
		if err != nil {
			return nil, fmt.Errorf("Failed to parse day, use YYYY-MM-DD or DD/MM/YY: %w", err)
		}
		day = parsed.Format("2006-01-02")
	}

	var out []models.Workout
	for _, w := range workouts {
		if filterName != "" && !strings.Contains(strings.ToLower(w.Name), strings.ToLower(filterName)) {
			continue
		}
		if day != "" && w.Date.In(loc).Format("2006-01-02") != day {
			continue
		}
		if filterExercise != "" && !hasExercise(w, filterExercise) {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

func hasExercise(w models.Workout, name string) bool {
	for _, we := range w.Exercises {
		if strings.EqualFold(we.Exercise.Name, name) || we.Exercise.ID == name {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVarP(&filterName, "name", "n", "", "Filter by workout name (case insensitive substring)")
	historyCmd.Flags().StringVarP(&filterDay, "day", "d", "", "Filter by day (e.g. 2025-02-07 or 07/02/25)")
	historyCmd.Flags().StringVarP(&filterExercise, "exercise", "e", "", "Only workouts containing this exercise")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 0, "Show at most this many workouts")
}
