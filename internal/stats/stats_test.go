package stats_test

import (
	"testing"
	"time"

	"github.com/misterclayt0n/ratlog/internal/models"
	"github.com/misterclayt0n/ratlog/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 16, 18, 0, 0, 0, time.UTC)

func set(weight float64, reps int, completed bool) models.Set {
	return models.Set{Weight: weight, Reps: reps, Type: models.SetTypeNormal, Completed: completed}
}

func workoutOn(date time.Time, exercises ...models.WorkoutExercise) models.Workout {
	return models.Workout{
		ID:        date.Format(time.RFC3339),
		Name:      "Push",
		Date:      date,
		Exercises: exercises,
		Completed: true,
	}
}

func exercise(name string, mg models.MuscleGroup, sets ...models.Set) models.WorkoutExercise {
	return models.WorkoutExercise{
		ID:       name,
		Exercise: models.Exercise{ID: name, Name: name, MuscleGroup: mg, Equipment: models.EquipmentBarbell},
		Sets:     sets,
	}
}

func TestEstimate1RM(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		reps   int
		want   float64
	}{
		{"single rep is the weight", 140, 1, 140},
		{"epley rounds", 100, 5, 117},
		{"epley three reps", 110, 3, 121},
		{"zero reps", 100, 0, 0},
		{"zero weight", 0, 10, 0},
		{"negative weight", -20, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stats.Estimate1RM(tt.weight, tt.reps))
		})
	}
}

func TestPersonalRecords_OrderInvariant(t *testing.T) {
	a := workoutOn(testNow.AddDate(0, 0, -1), exercise("Bench Press", models.MuscleChest, set(100, 5, true)))
	b := workoutOn(testNow.AddDate(0, 0, -2), exercise("Bench Press", models.MuscleChest, set(110, 3, true)))

	for _, input := range [][]models.Workout{{a, b}, {b, a}} {
		records := stats.PersonalRecords(input)
		require.Len(t, records, 1)
		assert.Equal(t, "Bench Press", records[0].ExerciseName)
		assert.Equal(t, 110.0, records[0].Weight)
		assert.Equal(t, 3, records[0].Reps)
		assert.Equal(t, 121.0, records[0].Estimated1RM)
		assert.Equal(t, b.Date, records[0].Date)
	}
}

func TestPersonalRecords_TieKeepsFirstSeen(t *testing.T) {
	newer := workoutOn(testNow, exercise("Squat", models.MuscleQuads, set(120, 1, true)))
	older := workoutOn(testNow.AddDate(0, 0, -7), exercise("Squat", models.MuscleQuads, set(120, 1, true)))

	records := stats.PersonalRecords([]models.Workout{newer, older})
	require.Len(t, records, 1)
	assert.Equal(t, newer.Date, records[0].Date)
}

func TestPersonalRecords_SkipsIncompleteAndEmptySets(t *testing.T) {
	w := workoutOn(testNow,
		exercise("Deadlift", models.MuscleBack, set(200, 5, false), set(0, 0, true), set(80, 0, true)),
		exercise("Curl", models.MuscleBiceps, set(20, 10, true)),
		exercise("Row", models.MuscleBack, set(90, 8, true)),
	)

	records := stats.PersonalRecords([]models.Workout{w})
	require.Len(t, records, 2)
	assert.Equal(t, "Row", records[0].ExerciseName)
	assert.Equal(t, 114.0, records[0].Estimated1RM)
	assert.Equal(t, "Curl", records[1].ExerciseName)

	_, ok := stats.RecordFor([]models.Workout{w}, "Deadlift")
	assert.False(t, ok)
}

func TestPersonalRecords_Empty(t *testing.T) {
	assert.Empty(t, stats.PersonalRecords(nil))
}

func TestWorkoutVolume_CountsIncompleteSets(t *testing.T) {
	w := workoutOn(testNow, exercise("Bench Press", models.MuscleChest, set(60, 10, true), set(0, 0, false)))
	assert.Equal(t, 600.0, stats.WorkoutVolume(w))

	w.Exercises[0].Sets[1] = set(50, 10, false)
	assert.Equal(t, 1100.0, stats.WorkoutVolume(w))
	assert.Equal(t, 2200.0, stats.TotalVolume([]models.Workout{w, w}))

	done, total := stats.CompletedSets(w)
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, total)
}

func TestMuscleGroupDistribution(t *testing.T) {
	bench := exercise("Bench Press", models.MuscleChest, set(60, 10, true), set(60, 10, false))
	bench.Exercise.SecondaryMuscles = []models.MuscleGroup{models.MuscleTriceps}
	workouts := []models.Workout{
		workoutOn(testNow, bench, exercise("Row", models.MuscleBack, set(50, 10, true))),
		workoutOn(testNow.AddDate(0, 0, -1), exercise("Fly", models.MuscleChest, set(10, 12, true))),
	}

	dist := stats.MuscleGroupDistribution(workouts)
	assert.Equal(t, map[models.MuscleGroup]int{
		models.MuscleChest: 3,
		models.MuscleBack:  1,
	}, dist)

	pct := stats.DistributionPercentages(dist)
	assert.InDelta(t, 75.0, pct[models.MuscleChest], 0.001)
	assert.InDelta(t, 25.0, pct[models.MuscleBack], 0.001)
}

func TestDistributionPercentages_ZeroTotal(t *testing.T) {
	pct := stats.DistributionPercentages(map[models.MuscleGroup]int{models.MuscleCore: 0})
	assert.Equal(t, 0.0, pct[models.MuscleCore])
	assert.Empty(t, stats.DistributionPercentages(nil))
}

func TestTopMuscles_WeightsSecondaryAtHalf(t *testing.T) {
	bench := exercise("Bench Press", models.MuscleChest)
	bench.Exercise.SecondaryMuscles = []models.MuscleGroup{models.MuscleTriceps, models.MuscleShoulders}
	dips := exercise("Dips", models.MuscleTriceps)

	workouts := []models.Workout{workoutOn(testNow, bench, dips)}

	freq := stats.MuscleFrequency(workouts)
	assert.Equal(t, 1.0, freq[models.MuscleChest])
	assert.Equal(t, 1.5, freq[models.MuscleTriceps])
	assert.Equal(t, 0.5, freq[models.MuscleShoulders])

	assert.Equal(t,
		[]models.MuscleGroup{models.MuscleTriceps, models.MuscleChest},
		stats.TopMuscles(workouts, 2),
	)
	assert.Empty(t, stats.TopMuscles(nil, 5))
}

func TestWeeklyActivity_EmptyHistory(t *testing.T) {
	for _, weeks := range []int{1, 8, 12} {
		buckets := stats.WeeklyActivity(nil, weeks, testNow)
		require.Len(t, buckets, weeks)
		for _, b := range buckets {
			assert.Zero(t, b.Count)
			assert.Zero(t, b.Volume)
		}
	}
	assert.Empty(t, stats.WeeklyActivity(nil, 0, testNow))
}

func TestWeeklyActivity_Buckets(t *testing.T) {
	workouts := []models.Workout{
		workoutOn(testNow.Add(-time.Hour), exercise("Squat", models.MuscleQuads, set(100, 5, true))),
		workoutOn(testNow.AddDate(0, 0, -3), exercise("Squat", models.MuscleQuads, set(100, 3, false))),
		workoutOn(testNow.AddDate(0, 0, -10), exercise("Squat", models.MuscleQuads, set(90, 5, true))),
		workoutOn(testNow.AddDate(0, 0, -30), exercise("Squat", models.MuscleQuads, set(90, 5, true))),
		workoutOn(testNow, exercise("Squat", models.MuscleQuads, set(200, 1, true))), // now is exclusive
	}

	buckets := stats.WeeklyActivity(workouts, 2, testNow)
	require.Len(t, buckets, 2)

	assert.Equal(t, "10/2", buckets[0].Label)
	assert.Equal(t, 1, buckets[0].Count)
	assert.Equal(t, 450.0, buckets[0].Volume)

	assert.Equal(t, "10/9", buckets[1].Label)
	assert.Equal(t, 2, buckets[1].Count)
	assert.Equal(t, 800.0, buckets[1].Volume)
	assert.True(t, buckets[0].End.Equal(buckets[1].Start))
}

func TestStreak(t *testing.T) {
	day := func(offset int) models.Workout {
		return workoutOn(testNow.AddDate(0, 0, -offset))
	}

	tests := []struct {
		name     string
		workouts []models.Workout
		want     int
	}{
		{"today and yesterday", []models.Workout{day(0), day(1)}, 2},
		{"yesterday and the day before", []models.Workout{day(1), day(2)}, 2},
		{"gap after today", []models.Workout{day(0), day(3)}, 1},
		{"two workouts same day", []models.Workout{day(0), day(0), day(1)}, 2},
		{"gap before yesterday", []models.Workout{day(2), day(3)}, 0},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stats.Streak(tt.workouts, testNow))
		})
	}
}

func TestStreak_UsesCalendarDays(t *testing.T) {
	// 23:30 yesterday and 00:30 today are 1h apart but on two calendar days.
	today := time.Date(2026, 10, 16, 0, 30, 0, 0, time.UTC)
	workouts := []models.Workout{
		workoutOn(today),
		workoutOn(today.Add(-time.Hour)),
	}
	assert.Equal(t, 2, stats.Streak(workouts, today.Add(time.Hour)))
}

func TestStreak_CappedAtAYear(t *testing.T) {
	var workouts []models.Workout
	for i := 0; i < 400; i++ {
		workouts = append(workouts, workoutOn(testNow.AddDate(0, 0, -i)))
	}
	assert.Equal(t, 365, stats.Streak(workouts, testNow))
}

func TestConsistencyScore(t *testing.T) {
	assert.Equal(t, 0, stats.ConsistencyScore(nil, 4, testNow))
	assert.Equal(t, 0, stats.ConsistencyScore(nil, 0, testNow))

	var workouts []models.Workout
	for i := 0; i < 7; i++ {
		workouts = append(workouts, workoutOn(testNow.AddDate(0, 0, -i*4)))
	}
	// 7 of the last 28 days.
	assert.Equal(t, 25, stats.ConsistencyScore(workouts, 4, testNow))

	// Days outside the window are ignored.
	workouts = append(workouts, workoutOn(testNow.AddDate(0, 0, -40)))
	assert.Equal(t, 25, stats.ConsistencyScore(workouts, 4, testNow))

	var daily []models.Workout
	for i := 0; i < 14; i++ {
		daily = append(daily, workoutOn(testNow.AddDate(0, 0, -i)))
	}
	assert.Equal(t, 100, stats.ConsistencyScore(daily, 2, testNow))
}

func TestMonthlyVolume(t *testing.T) {
	workouts := []models.Workout{
		workoutOn(time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC), exercise("Squat", models.MuscleQuads, set(100, 5, true))),
		workoutOn(time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC), exercise("Squat", models.MuscleQuads, set(100, 5, true))),
		workoutOn(time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC), exercise("Squat", models.MuscleQuads, set(50, 2, true))),
		workoutOn(time.Date(2025, 10, 1, 10, 0, 0, 0, time.UTC), exercise("Squat", models.MuscleQuads, set(50, 2, true))),
	}

	months := stats.MonthlyVolume(workouts, 2026, time.UTC)
	assert.Equal(t, 1000.0, months[0])
	assert.Equal(t, 100.0, months[9])
	assert.Zero(t, months[11])

	assert.Equal(t, 2, stats.WorkoutsInMonth(workouts, 2026, time.January, time.UTC))
	assert.Equal(t, 0, stats.WorkoutsInMonth(workouts, 2026, time.March, time.UTC))
}

func TestCalendarMonth(t *testing.T) {
	workouts := []models.Workout{
		workoutOn(time.Date(2026, 10, 5, 7, 0, 0, 0, time.UTC)),
	}

	cells := stats.CalendarMonth(workouts, 2026, time.October, time.UTC)
	// October 1st 2026 is a Thursday: three padding cells before it.
	require.Len(t, cells, 3+31)
	for _, c := range cells[:3] {
		assert.False(t, c.InMonth)
	}
	assert.Equal(t, 1, cells[3].Day)
	assert.True(t, cells[3+4].HasWorkout)
	assert.Equal(t, 5, cells[3+4].Day)
	assert.False(t, cells[3+5].HasWorkout)
}

func TestRecentWorkouts(t *testing.T) {
	workouts := []models.Workout{
		workoutOn(testNow.AddDate(0, 0, -1)),
		workoutOn(testNow.AddDate(0, 0, -7)),
		workoutOn(testNow.AddDate(0, 0, -8)),
	}
	assert.Len(t, stats.RecentWorkouts(workouts, testNow, 7), 2)
}

func TestLastPerformance(t *testing.T) {
	older := workoutOn(testNow.AddDate(0, 0, -7), exercise("Bench Press", models.MuscleChest, set(90, 5, true)))
	newer := workoutOn(testNow.AddDate(0, 0, -2),
		exercise("Squat", models.MuscleQuads, set(120, 5, true)),
		exercise("Bench Press", models.MuscleChest, set(95, 5, true), set(95, 4, false)),
	)
	unrelated := workoutOn(testNow.AddDate(0, 0, -1), exercise("Deadlift", models.MuscleBack, set(180, 3, true)))

	sets, date, ok := stats.LastPerformance([]models.Workout{older, unrelated, newer}, "Bench Press")

	require.True(t, ok)
	assert.Equal(t, newer.Date, date)
	require.Len(t, sets, 2)
	assert.Equal(t, 95.0, sets[0].Weight)

	_, _, ok = stats.LastPerformance([]models.Workout{older}, "Row")
	assert.False(t, ok)
}
