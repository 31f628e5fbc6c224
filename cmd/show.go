package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/misterclayt0n/ratlog/internal/models"
	"github.com/misterclayt0n/ratlog/internal/stats"
	"github.com/misterclayt0n/ratlog/internal/utils"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), offline)
		if err != nil {
			return err
		}
		defer a.Close()

		active, err := a.activeWorkout()
		if err != nil {
			return err
		}

		history := a.tracker.Machine().Workouts()
		loc := cfg.Location()

		fmt.Printf("%s\n", green(active.Name))
		fmt.Printf("\n%s %s\n", red("Started:"), utils.FormatLocal(active.Date, loc))
		fmt.Printf("%s %s\n", red("Elapsed:"), utils.Elapsed(active.Date, time.Now()))
		if active.Notes != "" {
			fmt.Printf("%s %s\n", cyan("Notes:"), active.Notes)
		}
		done, total := stats.CompletedSets(*active)
		fmt.Printf("%s %d/%d sets, %skg\n\n", cyan("Progress:"), done, total,
			utils.FormatWeight(stats.WorkoutVolume(*active)))

		if len(active.Exercises) == 0 {
			fmt.Println("No exercises yet. Add one with 'ratlog add-exercise'")
			return nil
		}

		for i, we := range active.Exercises {
			printWorkoutExercise(i, we, history)
		}
		return nil
	},
}

// printWorkoutExercise prints one exercise of the active workout with the
// sets from the last time it was performed alongside.
func printWorkoutExercise(i int, we models.WorkoutExercise, history []models.Workout) {
	ex := we.Exercise
	fmt.Printf("%s %s %s\n", cyan(fmt.Sprintf("%d.", i+1)), yellow(ex.Name), faint("("+ex.MuscleGroup.Label()+")"))

	prev, when, ok := stats.LastPerformance(history, ex.ID)
	if ok {
		fmt.Printf("   %s %s\n", cyan("Last performed:"), utils.FormatDate(when, cfg.Location()))
	}

	best := 0.0
	if pr, ok := stats.RecordFor(history, ex.Name); ok {
		best = pr.Estimated1RM
		fmt.Printf("   %s %skg × %d (1RM: %skg)\n", cyan("All-time PR:"),
			utils.FormatWeight(pr.Weight), pr.Reps, utils.FormatWeight(pr.Estimated1RM))
	}

	t := newTable(7, 10, 17, 15, 6)
	fmt.Println()
	t.printHeader(" Set", " Type", " Current", " Prev", " Done")
	for j, s := range we.Sets {
		current := fmt.Sprintf(" %skg × %d", utils.FormatWeight(s.Weight), s.Reps)
		if s.Weight == 0 && s.Reps == 0 {
			current = " -"
		}
		colored := ""
		if s.Completed && stats.Estimate1RM(s.Weight, s.Reps) > best && best > 0 {
			current += " ★"
			colored = yellow(current)
		}

		previous := " N/A"
		if ok && j < len(prev) {
			previous = fmt.Sprintf(" %skg × %d", utils.FormatWeight(prev[j].Weight), prev[j].Reps)
		}

		doneMark, doneColored := " ", ""
		if s.Completed {
			doneMark = " ✓"
			doneColored = green(doneMark)
		}

		t.printRow(
			[]string{" " + strconv.Itoa(j+1), " " + s.Type.Label(), current, previous, doneMark},
			[]string{"", "", colored, "", doneColored},
		)
	}
	t.printFooter()

	for j, s := range we.Sets {
		if s.Notes != "" {
			fmt.Printf("   %s %s\n", cyan(fmt.Sprintf("Set %d:", j+1)), s.Notes)
		}
	}
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(showCmd)
}
