package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ratlog/internal/models"
	"github.com/misterclayt0n/ratlog/internal/stats"
	"github.com/misterclayt0n/ratlog/internal/utils"
	"github.com/spf13/cobra"
)

var statsWeeks int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show totals, weekly activity, streak, consistency and muscle distribution",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), offline)
		if err != nil {
			return err
		}
		defer a.Close()

		workouts := a.tracker.Machine().Workouts()
		now := time.Now().In(cfg.Location())
		weeks := cfg.Analytics.Weeks
		if cmd.Flags().Changed("weeks") {
			weeks = statsWeeks
		}

		totalMinutes := 0
		for _, w := range workouts {
			if w.Duration != nil {
				totalMinutes += *w.Duration
			}
		}

		printBoxedHeader("STATS")
		printMetric("Total workouts", len(workouts))
		printMetric("Total volume", utils.FormatWeight(stats.TotalVolume(workouts))+" kg")
		printMetric("Total time at gym", utils.FormatMinutes(totalMinutes))
		printMetric("This month", fmt.Sprintf("%d workouts", stats.WorkoutsInMonth(workouts, now.Year(), now.Month(), now.Location())))
		printMetric("Day streak", fmt.Sprintf("%d days", stats.Streak(workouts, now)))
		printMetric("Consistency", fmt.Sprintf("%d%% over %d weeks",
			stats.ConsistencyScore(workouts, cfg.Analytics.ConsistencyWeeks, now), cfg.Analytics.ConsistencyWeeks))
		fmt.Println()

		printSection("Weekly activity:")
		buckets := stats.WeeklyActivity(workouts, weeks, now)
		maxCount := 0
		for _, b := range buckets {
			maxCount = max(maxCount, b.Count)
		}
		for _, b := range buckets {
			bar := ""
			if maxCount > 0 {
				bar = strings.Repeat("█", b.Count*20/maxCount)
			}
			fmt.Printf("  %-6s %s %d (%skg)\n", b.Label, cyan(bar), b.Count, utils.FormatWeight(b.Volume))
		}
		fmt.Println()

		printSection("Sets per muscle (last 30 days):")
		recent := stats.RecentWorkouts(workouts, now, 30)
		dist := stats.MuscleGroupDistribution(recent)
		pct := stats.DistributionPercentages(dist)
		if len(dist) == 0 {
			fmt.Println(faint("  No workouts in the last 30 days."))
		}
		for _, m := range models.MuscleGroups {
			if dist[m] == 0 {
				continue
			}
			fmt.Printf("  • %s: %d sets (%.0f%%)\n",
				color.New(color.FgMagenta, color.Bold).Sprint(m.Label()), dist[m], pct[m])
		}
		fmt.Println()

		top := stats.TopMuscles(workouts, 3)
		if len(top) > 0 {
			labels := make([]string, len(top))
			for i, m := range top {
				labels[i] = m.Label()
			}
			printMetric("Most trained", strings.Join(labels, ", "))
		}

		printSection(fmt.Sprintf("Monthly volume %d:", now.Year()))
		for i, v := range stats.MonthlyVolume(workouts, now.Year(), now.Location()) {
			if v == 0 {
				continue
			}
			fmt.Printf("  %-4s %skg\n", time.Month(i+1).String()[:3], utils.FormatWeight(v))
		}
		return nil
	},
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + centerText(title, width, true) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

func printSection(title string) {
	fmt.Println(color.New(color.FgGreen, color.Bold).Sprint(title))
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value any) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

// centerText centers s in a field of width; fill pads the right side too.
func centerText(s string, width int, fill bool) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	out := strings.Repeat(" ", padding) + s
	if fill {
		out += strings.Repeat(" ", width-len(s)-padding)
	}
	return out
}

func init() {
	statsCmd.Flags().IntVarP(&statsWeeks, "weeks", "w", 0, "Weeks of activity to show (default from config)")
	rootCmd.AddCommand(statsCmd)
}
