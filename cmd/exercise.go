package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/misterclayt0n/ratlog/internal/models"
	"github.com/misterclayt0n/ratlog/internal/utils"
	"github.com/spf13/cobra"
)

var (
	exerciseName      string
	exerciseMuscle    string
	exerciseSecondary []string
	exerciseEquipment string
	exerciseNotes     string
	filterMuscle      string
)

var exercisesCmd = &cobra.Command{
	Use:   "exercises [query]",
	Short: "Search the exercise catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), offline)
		if err != nil {
			return err
		}
		defer a.Close()

		if cfg.HasDatabase() {
			if err := a.connect(cmd.Context()); err != nil {
				a.log.WithError(err).Warn("Custom exercises unavailable")
			}
		}

		muscle := models.MuscleGroup(filterMuscle)
		if filterMuscle != "" && !muscle.IsValid() {
			return fmt.Errorf("Invalid muscle group '%s'", filterMuscle)
		}

		found := a.catalog.Search(strings.Join(args, " "), muscle)
		if len(found) == 0 {
			fmt.Println("No exercises found.")
			return nil
		}

		for _, ex := range found {
			name := ex.Name
			if ex.IsCustom {
				name += " " + faint("(custom)")
			}
			fmt.Printf("  %s %s %s\n", yellow(name), cyan(ex.MuscleGroup.Label()), faint(ex.Equipment.Label()))
		}
		fmt.Printf("\n%d exercises\n", len(found))
		return nil
	},
}

var createExerciseCmd = &cobra.Command{
	Use:   "create-exercise",
	Short: "Create a custom exercise",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), offline)
		if err != nil {
			return err
		}
		defer a.Close()

		ex, err := newCustomExercise(models.ExerciseDefTOML{
			Name:             exerciseName,
			MuscleGroup:      exerciseMuscle,
			SecondaryMuscles: exerciseSecondary,
			Equipment:        exerciseEquipment,
			Instructions:     exerciseNotes,
		})
		if err != nil {
			return err
		}

		updated, err := saveCustomExercises(cmd.Context(), a, []models.Exercise{ex})
		if err != nil {
			return err
		}
		if updated > 0 {
			fmt.Printf("✅ Updated exercise: %s\n", ex.Name)
		} else {
			fmt.Printf("✅ Created exercise: %s\n", ex.Name)
		}
		return nil
	},
}

var importExercisesCmd = &cobra.Command{
	Use:   "import-exercises [file]",
	Short: "Import custom exercises from a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		imp, err := utils.ParseExercisesFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("Failed to read exercises: %w", err)
		}

		exercises := make([]models.Exercise, 0, len(imp.Exercises))
		for _, def := range imp.Exercises {
			ex, err := newCustomExercise(def)
			if err != nil {
				return err
			}
			exercises = append(exercises, ex)
		}

		a, err := openApp(cmd.Context(), offline)
		if err != nil {
			return err
		}
		defer a.Close()

		updated, err := saveCustomExercises(cmd.Context(), a, exercises)
		if err != nil {
			return err
		}
		fmt.Printf("✅ Imported %d exercises (%d updated)\n", len(exercises), updated)
		return nil
	},
}

// newCustomExercise validates a definition and gives it a fresh id.
func newCustomExercise(def models.ExerciseDefTOML) (models.Exercise, error) {
	name := strings.TrimSpace(def.Name)
	if name == "" {
		return models.Exercise{}, fmt.Errorf("Exercise name is required")
	}

	ex := models.Exercise{
		ID:           uuid.New().String(),
		Name:         name,
		MuscleGroup:  models.MuscleGroup(def.MuscleGroup),
		Equipment:    models.Equipment(def.Equipment),
		Instructions: def.Instructions,
		IsCustom:     true,
	}
	if !ex.MuscleGroup.IsValid() {
		return ex, fmt.Errorf("Invalid muscle group '%s' for %s", def.MuscleGroup, name)
	}
	if ex.Equipment == "" {
		ex.Equipment = models.EquipmentBodyweight
	}
	if !ex.Equipment.IsValid() {
		return ex, fmt.Errorf("Invalid equipment '%s' for %s", def.Equipment, name)
	}
	for _, m := range def.SecondaryMuscles {
		mg := models.MuscleGroup(m)
		if !mg.IsValid() {
			return ex, fmt.Errorf("Invalid secondary muscle '%s' for %s", m, name)
		}
		ex.SecondaryMuscles = append(ex.SecondaryMuscles, mg)
	}
	return ex, nil
}

// saveCustomExercises stores exercises in the database and returns how many
// replaced an existing custom exercise. Names that clash with the built-in
// catalog are rejected.
func saveCustomExercises(ctx context.Context, a *app, exercises []models.Exercise) (int, error) {
	if a.store == nil {
		if err := a.connect(ctx); err != nil {
			return 0, err
		}
	}

	updated := 0
	for _, ex := range exercises {
		if builtin, ok := a.catalog.ByName(ex.Name); ok && !builtin.IsCustom {
			return updated, fmt.Errorf("Exercise '%s' already exists in the catalog", ex.Name)
		}
		exists, err := a.store.ExerciseExists(ctx, cfg.User.ID, ex.Name)
		if err != nil {
			return updated, err
		}
		if err := a.store.CreateExercise(ctx, ex, cfg.User.ID); err != nil {
			return updated, err
		}
		if exists {
			updated++
		}
	}
	return updated, nil
}

func init() {
	exercisesCmd.Flags().StringVarP(&filterMuscle, "muscle", "m", "", "Filter by muscle group")

	createExerciseCmd.Flags().StringVarP(&exerciseName, "name", "n", "", "Exercise name")
	createExerciseCmd.Flags().StringVarP(&exerciseMuscle, "muscle", "m", "", "Primary muscle group")
	createExerciseCmd.Flags().StringSliceVarP(&exerciseSecondary, "secondary", "s", nil, "Secondary muscle groups")
	createExerciseCmd.Flags().StringVarP(&exerciseEquipment, "equipment", "e", "", "Equipment")
	createExerciseCmd.Flags().StringVarP(&exerciseNotes, "instructions", "i", "", "Instructions")
	createExerciseCmd.MarkFlagRequired("name")
	createExerciseCmd.MarkFlagRequired("muscle")

	rootCmd.AddCommand(exercisesCmd)
	rootCmd.AddCommand(createExerciseCmd)
	rootCmd.AddCommand(importExercisesCmd)
}
