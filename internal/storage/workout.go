package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/misterclayt0n/ratlog/internal/models"
	"github.com/misterclayt0n/ratlog/internal/utils"
	"github.com/sirupsen/logrus"
)

// SaveWorkout writes the workout with its exercises and sets for userID and
// returns its id. Saving an id that already exists replaces the stored copy.
func (s *Storage) SaveWorkout(ctx context.Context, workout models.Workout, userID string) (string, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := deleteWorkoutRows(ctx, tx, workout.ID); err != nil {
		return "", err
	}

	var duration sql.NullInt64
	if workout.Duration != nil {
		duration = sql.NullInt64{Int64: int64(*workout.Duration), Valid: true}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO workouts
        (id, user_id, name, date, duration, notes, completed, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		workout.ID,
		userID,
		workout.Name,
		workout.Date.UTC().Format(timeLayout),
		duration,
		workout.Notes,
		utils.BoolToInt(workout.Completed),
		time.Now().UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("Failed to create workout: %w", err)
	}

	for i, we := range workout.Exercises {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO workout_exercises
            (id, workout_id, exercise_id, exercise_name, muscle_group, secondary_muscles, equipment, sort_order)
            VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			we.ID,
			workout.ID,
			we.Exercise.ID,
			we.Exercise.Name,
			string(we.Exercise.MuscleGroup),
			joinMuscles(we.Exercise.SecondaryMuscles),
			string(we.Exercise.Equipment),
			i,
		)
		if err != nil {
			return "", fmt.Errorf("Failed to save exercise %s: %w", we.Exercise.Name, err)
		}

		for j, set := range we.Sets {
			var rest sql.NullInt64
			if set.RestTime != nil {
				rest = sql.NullInt64{Int64: int64(*set.RestTime), Valid: true}
			}

			_, err = tx.ExecContext(ctx,
				`INSERT INTO exercise_sets
                (id, workout_exercise_id, weight, reps, set_type, completed, rest_time, notes, sort_order)
                VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				set.ID,
				we.ID,
				set.Weight,
				set.Reps,
				string(set.Type),
				utils.BoolToInt(set.Completed),
				rest,
				set.Notes,
				j,
			)
			if err != nil {
				return "", fmt.Errorf("Failed to save set: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("Failed to commit transaction: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"workout_id": workout.ID,
		"exercises":  len(workout.Exercises),
	}).Debug("Workout saved")
	return workout.ID, nil
}

// FetchWorkouts returns every workout of userID, newest first, with exercises
// and sets in the order they were logged.
func (s *Storage) FetchWorkouts(ctx context.Context, userID string) ([]models.Workout, error) {
	rows, err := s.DB.QueryContext(ctx, `
        SELECT id, name, date, duration, notes, completed
        FROM workouts
        WHERE user_id = ?
        ORDER BY date DESC
    `, userID)
	if err != nil {
		return nil, fmt.Errorf("Failed to query workouts: %w", err)
	}
	defer rows.Close()

	workouts := []models.Workout{}
	index := make(map[string]int)
	for rows.Next() {
		var (
			w         models.Workout
			date      string
			duration  sql.NullInt64
			notes     sql.NullString
			completed int
		)
		if err := rows.Scan(&w.ID, &w.Name, &date, &duration, &notes, &completed); err != nil {
			return nil, fmt.Errorf("Failed to scan workout: %w", err)
		}

		w.Date, err = time.Parse(time.RFC3339Nano, date)
		if err != nil {
			return nil, fmt.Errorf("Invalid date %q on workout %s: %w", date, w.ID, err)
		}
		if duration.Valid {
			d := int(duration.Int64)
			w.Duration = &d
		}
		w.Notes = notes.String
		w.Completed = completed != 0
		w.Exercises = []models.WorkoutExercise{}

		index[w.ID] = len(workouts)
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Failed to iterate workouts: %w", err)
	}
	if len(workouts) == 0 {
		return workouts, nil
	}

	if err := s.loadExercises(ctx, userID, workouts, index); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (s *Storage) loadExercises(ctx context.Context, userID string, workouts []models.Workout, index map[string]int) error {
	rows, err := s.DB.QueryContext(ctx, `
        SELECT we.id, we.workout_id, we.exercise_id, we.exercise_name, we.muscle_group,
               we.secondary_muscles, we.equipment
        FROM workout_exercises we
        JOIN workouts w ON w.id = we.workout_id
        WHERE w.user_id = ?
        ORDER BY we.workout_id, we.sort_order
    `, userID)
	if err != nil {
		return fmt.Errorf("Failed to query workout exercises: %w", err)
	}
	defer rows.Close()

	// workout exercise id -> (workout index, exercise index)
	type position struct{ workout, exercise int }
	positions := make(map[string]position)

	for rows.Next() {
		var (
			we        models.WorkoutExercise
			workoutID string
			secondary sql.NullString
		)
		if err := rows.Scan(
			&we.ID,
			&workoutID,
			&we.Exercise.ID,
			&we.Exercise.Name,
			&we.Exercise.MuscleGroup,
			&secondary,
			&we.Exercise.Equipment,
		); err != nil {
			return fmt.Errorf("Failed to scan workout exercise: %w", err)
		}
		we.Exercise.SecondaryMuscles = splitMuscles(secondary.String)
		we.Sets = []models.Set{}

		wi, ok := index[workoutID]
		if !ok {
			continue
		}
		positions[we.ID] = position{workout: wi, exercise: len(workouts[wi].Exercises)}
		workouts[wi].Exercises = append(workouts[wi].Exercises, we)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("Failed to iterate workout exercises: %w", err)
	}

	setRows, err := s.DB.QueryContext(ctx, `
        SELECT es.id, es.workout_exercise_id, es.weight, es.reps, es.set_type,
               es.completed, es.rest_time, es.notes
        FROM exercise_sets es
        JOIN workout_exercises we ON we.id = es.workout_exercise_id
        JOIN workouts w ON w.id = we.workout_id
        WHERE w.user_id = ?
        ORDER BY es.workout_exercise_id, es.sort_order
    `, userID)
	if err != nil {
		return fmt.Errorf("Failed to query sets: %w", err)
	}
	defer setRows.Close()

	for setRows.Next() {
		var (
			set        models.Set
			exerciseID string
			completed  int
			rest       sql.NullInt64
			notes      sql.NullString
		)
		if err := setRows.Scan(
			&set.ID,
			&exerciseID,
			&set.Weight,
			&set.Reps,
			&set.Type,
			&completed,
			&rest,
			&notes,
		); err != nil {
			return fmt.Errorf("Failed to scan set: %w", err)
		}
		set.Completed = completed != 0
		set.Notes = notes.String
		if rest.Valid {
			r := int(rest.Int64)
			set.RestTime = &r
		}

		pos, ok := positions[exerciseID]
		if !ok {
			continue
		}
		we := &workouts[pos.workout].Exercises[pos.exercise]
		we.Sets = append(we.Sets, set)
	}
	if err := setRows.Err(); err != nil {
		return fmt.Errorf("Failed to iterate sets: %w", err)
	}
	return nil
}

// DeleteWorkout removes the workout with its exercises and sets. It returns
// ErrNotFound when no such workout exists.
func (s *Storage) DeleteWorkout(ctx context.Context, workoutID string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM workouts WHERE id = ?)",
		workoutID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("Failed to check workout existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("workout %s: %w", workoutID, ErrNotFound)
	}

	if err := deleteWorkoutRows(ctx, tx, workoutID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Failed to commit transaction: %w", err)
	}

	s.log.WithField("workout_id", workoutID).Debug("Workout deleted")
	return nil
}

// deleteWorkoutRows removes children explicitly since sqlite only cascades
// with foreign_keys enabled on the connection.
func deleteWorkoutRows(ctx context.Context, tx *sql.Tx, workoutID string) error {
	_, err := tx.ExecContext(ctx, `
        DELETE FROM exercise_sets
        WHERE workout_exercise_id IN (SELECT id FROM workout_exercises WHERE workout_id = ?)
    `, workoutID)
	if err != nil {
		return fmt.Errorf("Failed to delete sets: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM workout_exercises WHERE workout_id = ?", workoutID); err != nil {
		return fmt.Errorf("Failed to delete workout exercises: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM workouts WHERE id = ?", workoutID); err != nil {
		return fmt.Errorf("Failed to delete workout: %w", err)
	}
	return nil
}

func joinMuscles(muscles []models.MuscleGroup) string {
	parts := make([]string, len(muscles))
	for i, m := range muscles {
		parts[i] = string(m)
	}
	return strings.Join(parts, ",")
}

func splitMuscles(s string) []models.MuscleGroup {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	muscles := make([]models.MuscleGroup, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			muscles = append(muscles, models.MuscleGroup(p))
		}
	}
	return muscles
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
