package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/misterclayt0n/ratlog/internal/models"
)

// CreateExercise stores a user defined exercise. An exercise with the same
// name for the same user is updated in place.
func (s *Storage) CreateExercise(ctx context.Context, ex models.Exercise, userID string) error {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO custom_exercises
			(id, user_id, name, muscle_group, secondary_muscles, equipment, instructions, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(user_id, name) DO UPDATE SET
				muscle_group = excluded.muscle_group,
				secondary_muscles = excluded.secondary_muscles,
				equipment = excluded.equipment,
				instructions = excluded.instructions`,
		ex.ID,
		userID,
		ex.Name,
		string(ex.MuscleGroup),
		joinMuscles(ex.SecondaryMuscles),
		string(ex.Equipment),
		ex.Instructions,
		time.Now().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("Failed to create exercise %s: %w", ex.Name, err)
	}
	return nil
}

func (s *Storage) ExerciseExists(ctx context.Context, userID, name string) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM custom_exercises WHERE user_id = ? AND name = ? COLLATE NOCASE)",
		userID, name,
	).Scan(&exists)

	if err != nil && !isNoRows(err) {
		return false, fmt.Errorf("Failed to check exercise existence: %w", err)
	}
	return exists, nil
}

// ListCustomExercises returns the user's exercises ordered by name.
func (s *Storage) ListCustomExercises(ctx context.Context, userID string) ([]models.Exercise, error) {
	rows, err := s.DB.QueryContext(ctx, `
        SELECT id, name, muscle_group, secondary_muscles, equipment, instructions
        FROM custom_exercises
        WHERE user_id = ?
        ORDER BY name COLLATE NOCASE
    `, userID)
	if err != nil {
		return nil, fmt.Errorf("Failed to query exercises: %w", err)
	}
	defer rows.Close()

	exercises := []models.Exercise{}
	for rows.Next() {
		var (
			ex           models.Exercise
			secondary    sql.NullString
			instructions sql.NullString
		)
		if err := rows.Scan(
			&ex.ID,
			&ex.Name,
			&ex.MuscleGroup,
			&secondary,
			&ex.Equipment,
			&instructions,
		); err != nil {
			return nil, fmt.Errorf("Failed to scan exercise: %w", err)
		}
		ex.SecondaryMuscles = splitMuscles(secondary.String)
		ex.Instructions = instructions.String
		ex.IsCustom = true
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Failed to iterate exercises: %w", err)
	}
	return exercises, nil
}
