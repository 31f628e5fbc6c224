package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/ratlog/internal/models"
)

func ParseRoutineFromTOML(path string) (*models.RoutineTOML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var routine models.RoutineTOML
	if err := toml.Unmarshal(data, &routine); err != nil {
		return nil, fmt.Errorf("Invalid TOML format: %w", err)
	}
	if strings.TrimSpace(routine.Name) == "" {
		return nil, fmt.Errorf("routine in %s has no name", path)
	}

	return &routine, nil
}

func ParseExercisesFromTOML(path string) (*models.ExerciseImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var imp models.ExerciseImport
	if err := toml.Unmarshal(data, &imp); err != nil {
		return nil, fmt.Errorf("Invalid TOML format: %w", err)
	}

	return &imp, nil
}

func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// FormatWeight drops the decimals of whole numbers: 100 -> "100", 22.5 -> "22.5".
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
