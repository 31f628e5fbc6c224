// Package export writes workout history as JSON or CSV and reads the
// JSON and CSV forms back.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/misterclayt0n/ratlog/internal/models"
)

const DefaultJSONFile = "ratlog-export.json"

// CSV has one row per set. A workout without exercises is a single row with
// empty exercise columns; an exercise without sets is a row with empty set
// columns.
var csvHeader = []string{
	"workout_id",
	"workout_name",
	"date",
	"duration_minutes",
	"workout_notes",
	"workout_exercise_id",
	"exercise_id",
	"exercise_name",
	"muscle_group",
	"secondary_muscles",
	"equipment",
	"set_id",
	"set_type",
	"weight",
	"reps",
	"completed",
	"rest_seconds",
	"set_notes",
}

// WriteJSON writes the workouts as an indented JSON array.
func WriteJSON(w io.Writer, workouts []models.Workout) error {
	if workouts == nil {
		workouts = []models.Workout{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(workouts); err != nil {
		return fmt.Errorf("Failed to encode workouts: %w", err)
	}
	return nil
}

func ReadJSON(r io.Reader) ([]models.Workout, error) {
	var workouts []models.Workout
	if err := json.NewDecoder(r).Decode(&workouts); err != nil {
		return nil, fmt.Errorf("Failed to decode workouts: %w", err)
	}
	return workouts, nil
}

func WriteCSV(w io.Writer, workouts []models.Workout) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, wo := range workouts {
		base := []string{
			wo.ID,
			wo.Name,
			wo.Date.UTC().Format(time.RFC3339Nano),
			optionalInt(wo.Duration),
			wo.Notes,
		}

		if len(wo.Exercises) == 0 {
			if err := cw.Write(pad(base)); err != nil {
				return err
			}
			continue
		}

		for _, we := range wo.Exercises {
			exercise := append(append([]string{}, base...),
				we.ID,
				we.Exercise.ID,
				we.Exercise.Name,
				string(we.Exercise.MuscleGroup),
				joinMuscles(we.Exercise.SecondaryMuscles),
				string(we.Exercise.Equipment),
			)

			if len(we.Sets) == 0 {
				if err := cw.Write(pad(exercise)); err != nil {
					return err
				}
				continue
			}

			for _, s := range we.Sets {
				row := append(append([]string{}, exercise...),
					s.ID,
					string(s.Type),
					strconv.FormatFloat(s.Weight, 'f', -1, 64),
					strconv.Itoa(s.Reps),
					strconv.FormatBool(s.Completed),
					optionalInt(s.RestTime),
					s.Notes,
				)
				if err := cw.Write(row); err != nil {
					return err
				}
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses the output of WriteCSV. Imported workouts are marked
// completed. Rows of one workout must be contiguous.
func ReadCSV(r io.Reader) ([]models.Workout, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	header, err := cr.Read()
	if err == io.EOF {
		return []models.Workout{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Failed to read CSV header: %w", err)
	}
	for i, col := range csvHeader {
		if header[i] != col {
			return nil, fmt.Errorf("unexpected column %q at position %d, want %q", header[i], i+1, col)
		}
	}

	workouts := []models.Workout{}
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		if err := addRecord(&workouts, record); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	return workouts, nil
}

func addRecord(workouts *[]models.Workout, rec []string) error {
	n := len(*workouts)
	if n == 0 || (*workouts)[n-1].ID != rec[0] {
		if rec[0] == "" {
			return fmt.Errorf("missing workout id")
		}
		date, err := time.Parse(time.RFC3339Nano, rec[2])
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", rec[2], err)
		}
		duration, err := parseOptionalInt(rec[3])
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", rec[3], err)
		}
		*workouts = append(*workouts, models.Workout{
			ID:        rec[0],
			Name:      rec[1],
			Date:      date,
			Duration:  duration,
			Notes:     rec[4],
			Exercises: []models.WorkoutExercise{},
			Completed: true,
		})
		n++
	}
	wo := &(*workouts)[n-1]

	if rec[5] == "" {
		return nil
	}
	m := len(wo.Exercises)
	if m == 0 || wo.Exercises[m-1].ID != rec[5] {
		wo.Exercises = append(wo.Exercises, models.WorkoutExercise{
			ID: rec[5],
			Exercise: models.Exercise{
				ID:               rec[6],
				Name:             rec[7],
				MuscleGroup:      models.MuscleGroup(rec[8]),
				SecondaryMuscles: splitMuscles(rec[9]),
				Equipment:        models.Equipment(rec[10]),
			},
			Sets: []models.Set{},
		})
		m++
	}
	we := &wo.Exercises[m-1]

	if rec[11] == "" {
		return nil
	}
	weight, err := strconv.ParseFloat(rec[13], 64)
	if err != nil {
		return fmt.Errorf("invalid weight %q: %w", rec[13], err)
	}
	reps, err := strconv.Atoi(rec[14])
	if err != nil {
		return fmt.Errorf("invalid reps %q: %w", rec[14], err)
	}
	completed, err := strconv.ParseBool(rec[15])
	if err != nil {
		return fmt.Errorf("invalid completed flag %q: %w", rec[15], err)
	}
	rest, err := parseOptionalInt(rec[16])
	if err != nil {
		return fmt.Errorf("invalid rest time %q: %w", rec[16], err)
	}

	setType := models.SetType(rec[12])
	if !setType.IsValid() {
		setType = models.SetTypeNormal
	}

	we.Sets = append(we.Sets, models.Set{
		ID:        rec[11],
		Weight:    weight,
		Reps:      reps,
		Type:      setType,
		Completed: completed,
		RestTime:  rest,
		Notes:     rec[17],
	})
	return nil
}

func pad(row []string) []string {
	out := make([]string, len(csvHeader))
	copy(out, row)
	return out
}

func optionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func parseOptionalInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func joinMuscles(muscles []models.MuscleGroup) string {
	parts := make([]string, len(muscles))
	for i, m := range muscles {
		parts[i] = string(m)
	}
	return strings.Join(parts, ";")
}

func splitMuscles(s string) []models.MuscleGroup {
	if s == "" {
		return nil
	}
	var out []models.MuscleGroup
	for _, p := range strings.Split(s, ";") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, models.MuscleGroup(p))
		}
	}
	return out
}
