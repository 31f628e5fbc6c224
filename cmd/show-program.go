package cmd

import (
	"fmt"
	"strings"

	"github.com/misterclayt0n/ratlog/internal/stats"
	"github.com/misterclayt0n/ratlog/internal/utils"
	"github.com/spf13/cobra"
)

var showRoutineCmd = &cobra.Command{
	Use:   "show-routine [name]",
	Short: "Display a routine with the last performance of each exercise",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), offline)
		if err != nil {
			return err
		}
		defer a.Close()

		name := strings.Join(args, " ")
		r, ok := findRoutine(a, name)
		if !ok {
			return fmt.Errorf("Routine '%s' not found", name)
		}

		loc := cfg.Location()
		history := a.tracker.Machine().Workouts()

		fmt.Printf("\n%s\n", green(strings.ToUpper(r.Name)))
		fmt.Printf("%s: %s\n", cyan("Created At"), utils.FormatLocal(r.CreatedAt, loc))
		if r.LastUsed != nil {
			fmt.Printf("%s: %s\n", cyan("Last Used"), utils.FormatLocal(*r.LastUsed, loc))
		}
		fmt.Println(strings.Repeat("=", 60))

		for i, re := range r.Exercises {
			fmt.Printf("%d. %s %s\n", i+1, yellow(re.Exercise.Name), faint(re.Exercise.MuscleGroup.Label()))
			fmt.Printf("   %s: %d\n", cyan("Sets"), re.DefaultSets)

			sets, when, ok := stats.LastPerformance(history, re.Exercise.ID)
			if !ok {
				continue
			}
			parts := make([]string, 0, len(sets))
			for _, s := range sets {
				parts = append(parts, fmt.Sprintf("%s×%d", utils.FormatWeight(s.Weight), s.Reps))
			}
			fmt.Printf("   %s (%s): %s\n", cyan("Last"), utils.FormatDate(when, loc), strings.Join(parts, ", "))
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showRoutineCmd)
}
