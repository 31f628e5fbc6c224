package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/misterclayt0n/ratlog/internal/models"
)

// SaveRoutine stores the routine for userID, replacing any routine with the
// same id.
func (s *Storage) SaveRoutine(ctx context.Context, routine models.Routine, userID string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM routine_exercises WHERE routine_id = ?", routine.ID); err != nil {
		return fmt.Errorf("Failed to clear routine exercises: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM routines WHERE id = ?", routine.ID); err != nil {
		return fmt.Errorf("Failed to clear routine: %w", err)
	}

	var lastUsed sql.NullString
	if routine.LastUsed != nil {
		lastUsed = sql.NullString{String: routine.LastUsed.UTC().Format(timeLayout), Valid: true}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO routines (id, user_id, name, created_at, last_used)
         VALUES (?, ?, ?, ?, ?)`,
		routine.ID,
		userID,
		routine.Name,
		routine.CreatedAt.UTC().Format(timeLayout),
		lastUsed,
	)
	if err != nil {
		return fmt.Errorf("Failed to create routine: %w", err)
	}

	for i, re := range routine.Exercises {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO routine_exercises
             (routine_id, exercise_id, exercise_name, muscle_group, secondary_muscles, equipment, default_sets, sort_order)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			routine.ID,
			re.Exercise.ID,
			re.Exercise.Name,
			string(re.Exercise.MuscleGroup),
			joinMuscles(re.Exercise.SecondaryMuscles),
			string(re.Exercise.Equipment),
			re.DefaultSets,
			i,
		)
		if err != nil {
			return fmt.Errorf("Failed to add %s to routine: %w", re.Exercise.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Failed to commit transaction: %w", err)
	}
	return nil
}

// ListRoutines returns the routines of userID ordered by name.
func (s *Storage) ListRoutines(ctx context.Context, userID string) ([]models.Routine, error) {
	rows, err := s.DB.QueryContext(ctx, `
        SELECT id, name, created_at, last_used
        FROM routines
        WHERE user_id = ?
        ORDER BY name COLLATE NOCASE
    `, userID)
	if err != nil {
		return nil, fmt.Errorf("Failed to query routines: %w", err)
	}
	defer rows.Close()

	routines := []models.Routine{}
	for rows.Next() {
		var (
			r         models.Routine
			createdAt string
			lastUsed  sql.NullString
		)
		if err := rows.Scan(&r.ID, &r.Name, &createdAt, &lastUsed); err != nil {
			return nil, fmt.Errorf("Failed to scan routine: %w", err)
		}

		r.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		if lastUsed.Valid {
			if t, err := time.Parse(time.RFC3339Nano, lastUsed.String); err == nil {
				r.LastUsed = &t
			}
		}
		r.Exercises = []models.RoutineExercise{}
		routines = append(routines, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Failed to iterate routines: %w", err)
	}

	for i := range routines {
		exercises, err := s.routineExercises(ctx, routines[i].ID)
		if err != nil {
			return nil, err
		}
		routines[i].Exercises = exercises
	}
	return routines, nil
}

// RoutineByName looks a routine up case-insensitively.
func (s *Storage) RoutineByName(ctx context.Context, userID, name string) (*models.Routine, error) {
	routines, err := s.ListRoutines(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, r := range routines {
		if strings.EqualFold(r.Name, name) {
			return &r, nil
		}
	}
	return nil, fmt.Errorf("routine %q: %w", name, ErrNotFound)
}

func (s *Storage) routineExercises(ctx context.Context, routineID string) ([]models.RoutineExercise, error) {
	rows, err := s.DB.QueryContext(ctx, `
        SELECT exercise_id, exercise_name, muscle_group, secondary_muscles, equipment, default_sets
        FROM routine_exercises
        WHERE routine_id = ?
        ORDER BY sort_order
    `, routineID)
	if err != nil {
		return nil, fmt.Errorf("Failed to load routine exercises: %w", err)
	}
	defer rows.Close()

	exercises := []models.RoutineExercise{}
	for rows.Next() {
		var (
			re        models.RoutineExercise
			secondary sql.NullString
		)
		if err := rows.Scan(
			&re.Exercise.ID,
			&re.Exercise.Name,
			&re.Exercise.MuscleGroup,
			&secondary,
			&re.Exercise.Equipment,
			&re.DefaultSets,
		); err != nil {
			return nil, fmt.Errorf("Failed to scan routine exercise: %w", err)
		}
		re.Exercise.SecondaryMuscles = splitMuscles(secondary.String)
		exercises = append(exercises, re)
	}
	return exercises, rows.Err()
}

// DeleteRoutine removes the routine. It returns ErrNotFound when no such
// routine exists.
func (s *Storage) DeleteRoutine(ctx context.Context, routineID string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM routine_exercises WHERE routine_id = ?", routineID); err != nil {
		return fmt.Errorf("Failed to delete routine exercises: %w", err)
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM routines WHERE id = ?", routineID)
	if err != nil {
		return fmt.Errorf("Failed to delete routine: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("routine %s: %w", routineID, ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Failed to commit transaction: %w", err)
	}
	return nil
}
