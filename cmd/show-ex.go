package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/misterclayt0n/ratlog/internal/models"
	"github.com/misterclayt0n/ratlog/internal/stats"
	"github.com/misterclayt0n/ratlog/internal/utils"
	"github.com/spf13/cobra"
)

var (
	limitSessions int
	historyOnly   bool
	recordsLimit  int
)

var showExCmd = &cobra.Command{
	Use:   "show-ex [exercise]",
	Short: "Display information and training history for an exercise",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), offline)
		if err != nil {
			return err
		}
		defer a.Close()

		ex, err := a.resolveExercise(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		history := a.tracker.Machine().Workouts()
		loc := cfg.Location()

		if !historyOnly {
			fmt.Println(green("Exercise Information:"))
			fmt.Printf("  %s: %s\n", cyan("Name"), ex.Name)
			fmt.Printf("  %s: %s\n", cyan("Primary Muscle"), ex.MuscleGroup.Label())
			if len(ex.SecondaryMuscles) > 0 {
				labels := make([]string, len(ex.SecondaryMuscles))
				for i, m := range ex.SecondaryMuscles {
					labels[i] = m.Label()
				}
				fmt.Printf("  %s: %s\n", cyan("Secondary"), strings.Join(labels, ", "))
			}
			fmt.Printf("  %s: %s\n", cyan("Equipment"), ex.Equipment.Label())
			if ex.IsCustom {
				fmt.Printf("  %s\n", faint("Custom exercise"))
			}
			if ex.Instructions != "" {
				fmt.Printf("  %s: %s\n", cyan("Instructions"), ex.Instructions)
			}
			if pr, ok := stats.RecordFor(history, ex.Name); ok {
				fmt.Printf("  %s: %skg × %d (%s: %skg)\n", cyan("All-time PR"),
					utils.FormatWeight(pr.Weight), pr.Reps,
					yellow("Estimated 1RM"), utils.FormatWeight(pr.Estimated1RM))
			}
			fmt.Println()
		}

		fmt.Printf("%s %s:\n", green("History for"), ex.Name)
		shown := 0
		for _, w := range history {
			if limitSessions > 0 && shown == limitSessions {
				break
			}
			idx := exerciseIndex(w, ex)
			if idx < 0 {
				continue
			}
			shown++

			fmt.Printf("\n  %s %s\n", utils.FormatLocal(w.Date, loc), yellow(w.Name))
			for j, s := range w.Exercises[idx].Sets {
				if !s.Completed {
					continue
				}
				fmt.Printf("    Set %d: %skg × %d %s\n", j+1, utils.FormatWeight(s.Weight), s.Reps,
					faint("e1RM "+utils.FormatWeight(stats.Estimate1RM(s.Weight, s.Reps))+"kg"))
			}
		}
		if shown == 0 {
			fmt.Println(faint("  No workouts found."))
		}
		return nil
	},
}

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "List personal records ranked by estimated 1RM",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), offline)
		if err != nil {
			return err
		}
		defer a.Close()

		records := stats.PersonalRecords(a.tracker.Machine().Workouts())
		if len(records) == 0 {
			fmt.Println("No personal records yet. Finish a workout with completed sets first.")
			return nil
		}
		if recordsLimit > 0 && len(records) > recordsLimit {
			records = records[:recordsLimit]
		}

		loc := cfg.Location()
		t := newTable(5, 28, 15, 12, 12)
		t.printHeader(" #", " Exercise", " Best set", " e1RM", " Date")
		for i, pr := range records {
			e1rm := " " + utils.FormatWeight(pr.Estimated1RM) + "kg"
			t.printRow(
				[]string{" " + strconv.Itoa(i+1), " " + pr.ExerciseName,
					fmt.Sprintf(" %skg × %d", utils.FormatWeight(pr.Weight), pr.Reps),
					e1rm, " " + utils.FormatDate(pr.Date, loc)},
				[]string{"", "", "", yellow(e1rm), ""},
			)
		}
		t.printFooter()
		return nil
	},
}

// exerciseIndex finds ex in w by id, or by name for workouts logged before
// the exercise had a stable id.
func exerciseIndex(w models.Workout, ex models.Exercise) int {
	for i, we := range w.Exercises {
		if we.Exercise.ID == ex.ID || strings.EqualFold(we.Exercise.Name, ex.Name) {
			return i
		}
	}
	return -1
}

func init() {
	showExCmd.Flags().IntVarP(&limitSessions, "limit", "l", 0, "Limit the number of workouts shown")
	showExCmd.Flags().BoolVar(&historyOnly, "history-only", false, "Only show the history")
	recordsCmd.Flags().IntVarP(&recordsLimit, "limit", "l", 0, "Show at most this many records")
	rootCmd.AddCommand(showExCmd)
	rootCmd.AddCommand(recordsCmd)
}
