package stats

import (
	"sort"
	"time"

	"github.com/misterclayt0n/ratlog/internal/models"
)

// PersonalRecords returns the best completed set per exercise name, ranked by
// estimated 1RM (highest first). A record is only replaced by a strictly
// greater estimate, so on ties the entry seen first in the input wins.
func PersonalRecords(workouts []models.Workout) []models.PersonalRecord {
	best := make(map[string]int)
	var records []models.PersonalRecord

	for _, w := range workouts {
		for _, we := range w.Exercises {
			for _, s := range we.Sets {
				if !s.Completed || s.Weight <= 0 {
					continue
				}
				e1rm := Estimate1RM(s.Weight, s.Reps)
				if e1rm <= 0 {
					continue
				}

				name := we.Exercise.Name
				pr := models.PersonalRecord{
					ExerciseName: name,
					Weight:       s.Weight,
					Reps:         s.Reps,
					Date:         w.Date,
					Estimated1RM: e1rm,
				}
				idx, ok := best[name]
				if !ok {
					best[name] = len(records)
					records = append(records, pr)
					continue
				}
				if e1rm > records[idx].Estimated1RM {
					records[idx] = pr
				}
			}
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Estimated1RM > records[j].Estimated1RM
	})
	return records
}

// RecordFor returns the personal record for a single exercise name.
func RecordFor(workouts []models.Workout, exerciseName string) (models.PersonalRecord, bool) {
	for _, pr := range PersonalRecords(workouts) {
		if pr.ExerciseName == exerciseName {
			return pr, true
		}
	}
	return models.PersonalRecord{}, false
}

// LastPerformance returns the sets logged for the exercise in the most recent
// workout that contains it.
func LastPerformance(workouts []models.Workout, exerciseID string) ([]models.Set, time.Time, bool) {
	var (
		latest time.Time
		sets   []models.Set
		found  bool
	)
	for _, w := range workouts {
		if found && !w.Date.After(latest) {
			continue
		}
		for _, we := range w.Exercises {
			if we.Exercise.ID != exerciseID {
				continue
			}
			latest = w.Date
			sets = we.Sets
			found = true
			break
		}
	}
	return sets, latest, found
}
