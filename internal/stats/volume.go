package stats

import (
	"time"

	"github.com/misterclayt0n/ratlog/internal/models"
)

// SetsVolume sums weight × reps over every set, completed or not.
// Personal records, in contrast, only look at completed sets.
func SetsVolume(sets []models.Set) float64 {
	var total float64
	for _, s := range sets {
		total += s.Volume()
	}
	return total
}

func WorkoutVolume(w models.Workout) float64 {
	var total float64
	for _, we := range w.Exercises {
		total += SetsVolume(we.Sets)
	}
	return total
}

func TotalVolume(workouts []models.Workout) float64 {
	var total float64
	for _, w := range workouts {
		total += WorkoutVolume(w)
	}
	return total
}

// CompletedSets returns how many sets of the workout are marked done, and the total.
func CompletedSets(w models.Workout) (done, total int) {
	for _, we := range w.Exercises {
		for _, s := range we.Sets {
			total++
			if s.Completed {
				done++
			}
		}
	}
	return done, total
}

// RecentWorkouts keeps the workouts dated at most `days` days before now.
func RecentWorkouts(workouts []models.Workout, now time.Time, days int) []models.Workout {
	limit := time.Duration(days) * 24 * time.Hour
	var out []models.Workout
	for _, w := range workouts {
		if now.Sub(w.Date) <= limit {
			out = append(out, w)
		}
	}
	return out
}
