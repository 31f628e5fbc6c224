package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/misterclayt0n/ratlog/internal/stats"
	"github.com/misterclayt0n/ratlog/internal/utils"
	"github.com/spf13/cobra"
)

// details is a flag to list the workouts of the month below the grid.
var details bool

// calendarCmd prints a Monday-first month grid with training days marked.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of training days",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		loc := cfg.Location()
		now := time.Now().In(loc)
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("Invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("Invalid year: %s", args[1])
			}
			year = y
		}

		a, err := openApp(cmd.Context(), offline)
		if err != nil {
			return err
		}
		defer a.Close()

		workouts := a.tracker.Machine().Workouts()

		fmt.Println(centerText(fmt.Sprintf("%s %d", month.String(), year), 20, false))
		fmt.Println("Mo Tu We Th Fr Sa Su")
		for i, cell := range stats.CalendarMonth(workouts, year, month, loc) {
			switch {
			case !cell.InMonth:
				fmt.Print("   ")
			case cell.HasWorkout:
				fmt.Print(green(fmt.Sprintf("%2d", cell.Day)) + " ")
			case year == now.Year() && month == now.Month() && cell.Day == now.Day():
				fmt.Print(yellow(fmt.Sprintf("%2d", cell.Day)) + " ")
			default:
				fmt.Printf("%2d ", cell.Day)
			}
			if (i+1)%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Printf("\n\n%s %d workouts\n", cyan("Total:"), stats.WorkoutsInMonth(workouts, year, month, loc))

		if details {
			fmt.Println("\nWorkouts:")
			for i := len(workouts) - 1; i >= 0; i-- {
				w := workouts[i]
				d := w.Date.In(loc)
				if d.Year() != year || d.Month() != month {
					continue
				}
				fmt.Printf("  %s %s", d.Format("Mon, 02 Jan 15:04"), yellow(w.Name))
				if w.Duration != nil {
					fmt.Printf(" (%s)", utils.FormatMinutes(*w.Duration))
				}
				fmt.Println()
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&details, "details", "d", false, "List the month's workouts")
}
