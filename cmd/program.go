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

var createRoutineCmd = &cobra.Command{
	Use:   "create-routine [file]",
	Short: "Create a new routine from a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := utils.ParseRoutineFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("Failed to read routine: %w", err)
		}

		a, err := openApp(cmd.Context(), offline)
		if err != nil {
			return err
		}
		defer a.Close()

		if _, ok := findRoutine(a, rt.Name); ok {
			return fmt.Errorf("Routine '%s' already exists. Use 'ratlog update-routine' to change it", rt.Name)
		}

		routine, err := routineFromTOML(cmd.Context(), a, rt)
		if err != nil {
			return err
		}
		routine.ID = uuid.New().String()

		if err := storeRoutine(cmd.Context(), a, routine); err != nil {
			return err
		}
		fmt.Printf("✅ Routine '%s' created with %d exercises\n", routine.Name, len(routine.Exercises))
		return nil
	},
}

var listRoutinesCmd = &cobra.Command{
	Use:   "list-routines",
	Short: "List all routines",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), offline)
		if err != nil {
			return err
		}
		defer a.Close()

		routines := a.tracker.Machine().Routines()
		if len(routines) == 0 {
			fmt.Println("No routines yet. Create one with 'ratlog create-routine'")
			return nil
		}

		for _, r := range routines {
			used := "never used"
			if r.LastUsed != nil {
				used = "last used " + utils.FormatDate(*r.LastUsed, cfg.Location())
			}
			fmt.Printf("%s - %d exercises %s\n", yellow(r.Name), len(r.Exercises), faint("("+used+")"))
		}
		return nil
	},
}

func findRoutine(a *app, name string) (models.Routine, bool) {
	for _, r := range a.tracker.Machine().Routines() {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return models.Routine{}, false
}

// routineFromTOML resolves every exercise name against the catalog.
func routineFromTOML(ctx context.Context, a *app, rt *models.RoutineTOML) (models.Routine, error) {
	routine := models.Routine{Name: rt.Name}
	for _, re := range rt.Exercises {
		ex, err := a.resolveExercise(ctx, re.Name)
		if err != nil {
			return routine, err
		}
		sets := re.Sets
		if sets <= 0 {
			sets = 1
		}
		routine.Exercises = append(routine.Exercises, models.RoutineExercise{Exercise: ex, DefaultSets: sets})
	}
	return routine, nil
}

// storeRoutine keeps the routine in the local state and mirrors it to the
// database when one is configured.
func storeRoutine(ctx context.Context, a *app, routine models.Routine) error {
	m := a.tracker.Machine()
	m.AddRoutine(routine)
	if !cfg.HasDatabase() {
		return nil
	}

	if a.store == nil {
		if err := a.connect(ctx); err != nil {
			return err
		}
	}
	for _, r := range m.Routines() {
		if r.ID == routine.ID {
			return a.store.SaveRoutine(ctx, r, cfg.User.ID)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(createRoutineCmd)
	rootCmd.AddCommand(listRoutinesCmd)
}
