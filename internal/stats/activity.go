package stats

import (
	"math"
	"time"

	"github.com/misterclayt0n/ratlog/internal/models"
)

// maxStreakDays caps how far back Streak walks.
const maxStreakDays = 365

type WeekBucket struct {
	Label  string    `json:"week"` // Start date as M/D.
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Count  int       `json:"count"`
	Volume float64   `json:"volume"`
}

// WeeklyActivity splits [now - weeks×7d, now) into 7-day buckets aligned to now,
// oldest first. There is always one bucket per requested week.
func WeeklyActivity(workouts []models.Workout, weeks int, now time.Time) []WeekBucket {
	if weeks <= 0 {
		return []WeekBucket{}
	}

	buckets := make([]WeekBucket, 0, weeks)
	for i := weeks - 1; i >= 0; i-- {
		start := now.AddDate(0, 0, -(i+1)*7)
		end := now.AddDate(0, 0, -i*7)

		b := WeekBucket{
			Label: start.Format("1/2"),
			Start: start,
			End:   end,
		}
		for _, w := range workouts {
			if w.Date.Before(start) || !w.Date.Before(end) {
				continue
			}
			b.Count++
			b.Volume += WorkoutVolume(w)
		}
		buckets = append(buckets, b)
	}
	return buckets
}

// Streak counts consecutive calendar days with a workout, walking back from
// today. An empty today does not break the streak; the first gap after it does.
func Streak(workouts []models.Workout, now time.Time) int {
	days := workoutDays(workouts, now.Location())

	count := 0
	for i := 0; i < maxStreakDays; i++ {
		if days[dayKey(now.AddDate(0, 0, -i), now.Location())] {
			count++
		} else if i > 0 {
			break
		}
	}
	return count
}

// ConsistencyScore is the percentage (0-100) of the last weeks×7 calendar days,
// today included, that have at least one workout.
func ConsistencyScore(workouts []models.Workout, weeks int, now time.Time) int {
	totalDays := weeks * 7
	if totalDays <= 0 {
		return 0
	}

	days := workoutDays(workouts, now.Location())
	active := 0
	for i := 0; i < totalDays; i++ {
		if days[dayKey(now.AddDate(0, 0, -i), now.Location())] {
			active++
		}
	}

	return int(math.Round(float64(active) / float64(totalDays) * 100))
}

// MonthlyVolume sums workout volume per calendar month of the given year.
func MonthlyVolume(workouts []models.Workout, year int, loc *time.Location) [12]float64 {
	var months [12]float64
	for _, w := range workouts {
		d := w.Date.In(loc)
		if d.Year() != year {
			continue
		}
		months[d.Month()-1] += WorkoutVolume(w)
	}
	return months
}

// WorkoutsInMonth counts the workouts dated in the given month.
func WorkoutsInMonth(workouts []models.Workout, year int, month time.Month, loc *time.Location) int {
	n := 0
	for _, w := range workouts {
		d := w.Date.In(loc)
		if d.Year() == year && d.Month() == month {
			n++
		}
	}
	return n
}

type CalendarDay struct {
	Day        int // 0 for padding cells.
	InMonth    bool
	HasWorkout bool
}

// CalendarMonth lays out a month grid starting on Monday. Leading cells
// before the 1st are padding.
func CalendarMonth(workouts []models.Workout, year int, month time.Month, loc *time.Location) []CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)
	pad := (int(first.Weekday()) + 6) % 7

	days := workoutDays(workouts, loc)
	cells := make([]CalendarDay, 0, pad+last.Day())
	for i := 0; i < pad; i++ {
		cells = append(cells, CalendarDay{})
	}
	for d := 1; d <= last.Day(); d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, loc)
		cells = append(cells, CalendarDay{
			Day:        d,
			InMonth:    true,
			HasWorkout: days[dayKey(date, loc)],
		})
	}
	return cells
}

func workoutDays(workouts []models.Workout, loc *time.Location) map[string]bool {
	days := make(map[string]bool, len(workouts))
	for _, w := range workouts {
		days[dayKey(w.Date, loc)] = true
	}
	return days
}

func dayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}
