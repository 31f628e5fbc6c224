package models_test

import (
	"testing"
	"time"

	"github.com/misterclayt0n/ratlog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPatch_Apply(t *testing.T) {
	rest := 60
	s := models.Set{ID: "s1", Weight: 100, Reps: 5, Type: models.SetTypeNormal, RestTime: &rest}

	w := 102.5
	done := true
	out := models.SetPatch{Weight: &w, Completed: &done}.Apply(s)

	assert.Equal(t, 102.5, out.Weight)
	assert.Equal(t, 5, out.Reps)
	assert.True(t, out.Completed)
	assert.Equal(t, "s1", out.ID)

	// The input set is untouched and no pointer is shared.
	assert.Equal(t, 100.0, s.Weight)
	assert.False(t, s.Completed)
	require.NotNil(t, out.RestTime)
	*out.RestTime = 90
	assert.Equal(t, 60, rest)
}

func TestSetPatch_IsEmpty(t *testing.T) {
	assert.True(t, models.SetPatch{}.IsEmpty())

	notes := ""
	assert.False(t, models.SetPatch{Notes: &notes}.IsEmpty())
}

func TestWorkout_CloneIsDeep(t *testing.T) {
	d := 45
	w := models.Workout{
		ID:       "w1",
		Date:     time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Duration: &d,
		Exercises: []models.WorkoutExercise{{
			ID: "we1",
			Exercise: models.Exercise{
				ID:               "bench-press",
				Name:             "Bench Press",
				MuscleGroup:      models.MuscleChest,
				SecondaryMuscles: []models.MuscleGroup{models.MuscleTriceps},
			},
			Sets: []models.Set{{ID: "s1", Weight: 80, Reps: 8}},
		}},
	}

	c := w.Clone()
	c.Exercises[0].Sets[0].Weight = 200
	c.Exercises[0].Exercise.SecondaryMuscles[0] = models.MuscleBack
	*c.Duration = 90

	assert.Equal(t, 80.0, w.Exercises[0].Sets[0].Weight)
	assert.Equal(t, models.MuscleTriceps, w.Exercises[0].Exercise.SecondaryMuscles[0])
	assert.Equal(t, 45, *w.Duration)
}

func TestWorkout_FindExercise(t *testing.T) {
	w := models.Workout{Exercises: []models.WorkoutExercise{{ID: "a"}, {ID: "b"}}}
	assert.Equal(t, 1, w.FindExercise("b"))
	assert.Equal(t, -1, w.FindExercise("c"))
}

func TestEnums(t *testing.T) {
	assert.True(t, models.SetTypeDrop.IsValid())
	assert.False(t, models.SetType("giant").IsValid())
	assert.Equal(t, "Warm-up", models.SetTypeWarmup.Label())

	assert.True(t, models.MuscleChest.IsValid())
	assert.False(t, models.MuscleGroup("neck").IsValid())
	assert.True(t, models.EquipmentSmithMachine.IsValid())

	assert.Equal(t, 500.0, models.Set{Weight: 100, Reps: 5}.Volume())
}
