package stats

import (
	"sort"

	"github.com/misterclayt0n/ratlog/internal/models"
)

// MuscleGroupDistribution counts sets per primary muscle group. Every set
// counts, completed or not; secondary muscles are ignored here.
func MuscleGroupDistribution(workouts []models.Workout) map[models.MuscleGroup]int {
	dist := make(map[models.MuscleGroup]int)
	for _, w := range workouts {
		for _, we := range w.Exercises {
			dist[we.Exercise.MuscleGroup] += len(we.Sets)
		}
	}
	return dist
}

// DistributionPercentages turns set counts into percentages of the total.
func DistributionPercentages(dist map[models.MuscleGroup]int) map[models.MuscleGroup]float64 {
	total := 0
	for _, n := range dist {
		total += n
	}

	out := make(map[models.MuscleGroup]float64, len(dist))
	for mg, n := range dist {
		if total == 0 {
			out[mg] = 0
			continue
		}
		out[mg] = float64(n) / float64(total) * 100
	}
	return out
}

// MuscleFrequency is the looser "most trained" heuristic: each exercise adds
// 1 to its primary muscle and 0.5 to each secondary muscle, regardless of sets.
func MuscleFrequency(workouts []models.Workout) map[models.MuscleGroup]float64 {
	freq := make(map[models.MuscleGroup]float64)
	for _, w := range workouts {
		for _, we := range w.Exercises {
			freq[we.Exercise.MuscleGroup]++
			for _, m := range we.Exercise.SecondaryMuscles {
				freq[m] += 0.5
			}
		}
	}
	return freq
}

// TopMuscles returns up to n muscle groups ranked by MuscleFrequency.
func TopMuscles(workouts []models.Workout, n int) []models.MuscleGroup {
	freq := MuscleFrequency(workouts)

	order := make(map[models.MuscleGroup]int, len(models.MuscleGroups))
	for i, m := range models.MuscleGroups {
		order[m] = i
	}

	muscles := make([]models.MuscleGroup, 0, len(freq))
	for m := range freq {
		muscles = append(muscles, m)
	}
	sort.Slice(muscles, func(i, j int) bool {
		if freq[muscles[i]] != freq[muscles[j]] {
			return freq[muscles[i]] > freq[muscles[j]]
		}
		oi, iok := order[muscles[i]]
		oj, jok := order[muscles[j]]
		if iok != jok {
			return iok
		}
		if oi != oj {
			return oi < oj
		}
		return muscles[i] < muscles[j]
	})

	if n >= 0 && len(muscles) > n {
		muscles = muscles[:n]
	}
	return muscles
}
