package export_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/misterclayt0n/ratlog/internal/export"
	"github.com/misterclayt0n/ratlog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func history() []models.Workout {
	return []models.Workout{
		{
			ID:   "w2",
			Name: "Push, heavy",
			Date: time.Date(2026, 10, 16, 18, 0, 0, 0, time.UTC),
			Exercises: []models.WorkoutExercise{
				{
					ID: "we1",
					Exercise: models.Exercise{
						ID:               "bench-press",
						Name:             "Bench Press",
						MuscleGroup:      models.MuscleChest,
						SecondaryMuscles: []models.MuscleGroup{models.MuscleTriceps, models.MuscleShoulders},
						Equipment:        models.EquipmentBarbell,
					},
					Sets: []models.Set{
						{ID: "s1", Weight: 60, Reps: 10, Type: models.SetTypeWarmup, Completed: true},
						{ID: "s2", Weight: 102.5, Reps: 5, Type: models.SetTypeNormal, Completed: true, RestTime: intPtr(180), Notes: "paused \"first\" rep"},
					},
				},
				{
					ID:       "we2",
					Exercise: models.Exercise{ID: "dips", Name: "Dips", MuscleGroup: models.MuscleTriceps, Equipment: models.EquipmentBodyweight},
					Sets:     []models.Set{},
				},
			},
			Duration:  intPtr(71),
			Notes:     "new PR\nfelt great",
			Completed: true,
		},
		{
			ID:        "w1",
			Name:      "Rest day walk",
			Date:      time.Date(2026, 10, 14, 7, 30, 0, 0, time.UTC),
			Exercises: []models.WorkoutExercise{},
			Completed: true,
		},
	}
}

func TestCSVRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, history()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "workout_id,workout_name,date"))

	got, err := export.ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, history(), got)
}

func TestCSVRoundTrip_FakeHistory(t *testing.T) {
	faker := gofakeit.New(42)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var workouts []models.Workout
	for i := 0; i < 20; i++ {
		w := models.Workout{
			ID:        faker.UUID(),
			Name:      faker.Sentence(3),
			Date:      start.Add(time.Duration(faker.Number(0, 300*24*60)) * time.Minute),
			Duration:  intPtr(faker.Number(0, 150)),
			Notes:     faker.Phrase(),
			Exercises: []models.WorkoutExercise{},
			Completed: true,
		}
		for j := 0; j < faker.Number(0, 4); j++ {
			we := models.WorkoutExercise{
				ID: faker.UUID(),
				Exercise: models.Exercise{
					ID:          faker.UUID(),
					Name:        faker.Word() + ", " + faker.Word(),
					MuscleGroup: models.MuscleGroups[faker.Number(0, len(models.MuscleGroups)-1)],
					Equipment:   models.EquipmentDumbbell,
				},
				Sets: []models.Set{},
			}
			for k := 0; k < faker.Number(0, 5); k++ {
				we.Sets = append(we.Sets, models.Set{
					ID:        faker.UUID(),
					Weight:    float64(faker.Number(0, 400)) / 2,
					Reps:      faker.Number(0, 20),
					Type:      models.SetTypeNormal,
					Completed: faker.Bool(),
					Notes:     faker.Sentence(4),
				})
			}
			w.Exercises = append(w.Exercises, we)
		}
		workouts = append(workouts, w)
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, workouts))

	got, err := export.ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, workouts, got)
}

func TestReadCSV_Empty(t *testing.T) {
	got, err := export.ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadCSV_Errors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, history()))
	valid := buf.String()

	tests := []struct {
		name  string
		input string
	}{
		{"wrong header", strings.Replace(valid, "workout_id", "id", 1)},
		{"bad weight", strings.Replace(valid, ",102.5,", ",heavy,", 1)},
		{"bad date", strings.Replace(valid, "2026-10-14T07:30:00Z", "yesterday", 1)},
		{"short row", valid + "w3,Legs\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := export.ReadCSV(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteJSON(&buf, history()))

	out := buf.String()
	assert.Contains(t, out, `"muscleGroup": "chest"`)
	assert.Contains(t, out, `"restTime": 180`)
	assert.True(t, strings.HasPrefix(out, "[\n  {"))

	got, err := export.ReadJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, history(), got)
}

func TestWriteJSON_Nil(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}
