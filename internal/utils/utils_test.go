package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoutineFromTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upper.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
name = "Upper"

[[exercise]]
name = "Bench Press"
sets = 4

[[exercise]]
name = "pullup"
sets = 3
`), 0o644))

	routine, err := ParseRoutineFromTOML(path)
	require.NoError(t, err)

	assert.Equal(t, "Upper", routine.Name)
	require.Len(t, routine.Exercises, 2)
	assert.Equal(t, "Bench Press", routine.Exercises[0].Name)
	assert.Equal(t, 4, routine.Exercises[0].Sets)
	assert.Equal(t, "pullup", routine.Exercises[1].Name)
}

func TestParseRoutineFromTOML_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ParseRoutineFromTOML(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	nameless := filepath.Join(dir, "nameless.toml")
	require.NoError(t, os.WriteFile(nameless, []byte("[[exercise]]\nname = \"Squat\"\n"), 0o644))
	_, err = ParseRoutineFromTOML(nameless)
	assert.Error(t, err)
}

func TestParseExercisesFromTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exercises.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[exercise]]
name = "Landmine Press"
muscle_group = "shoulders"
secondary_muscles = ["chest", "triceps"]
equipment = "barbell"
`), 0o644))

	imp, err := ParseExercisesFromTOML(path)
	require.NoError(t, err)
	require.Len(t, imp.Exercises, 1)
	assert.Equal(t, []string{"chest", "triceps"}, imp.Exercises[0].SecondaryMuscles)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "1h 05m", FormatMinutes(65))
	assert.Equal(t, "100", FormatWeight(100))
	assert.Equal(t, "22.5", FormatWeight(22.5))

	start := time.Date(2026, 10, 16, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, "01:02:03", Elapsed(start, start.Add(time.Hour+2*time.Minute+3*time.Second)))
	assert.Equal(t, "00:00:00", Elapsed(start, start.Add(-time.Minute)))
	assert.Equal(t, "2026-10-16", FormatDate(start, time.UTC))
}
