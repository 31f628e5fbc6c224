package cmd

import (
	"errors"
	"fmt"

	"github.com/misterclayt0n/ratlog/internal/models"
	"github.com/misterclayt0n/ratlog/internal/session"
	"github.com/misterclayt0n/ratlog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	routineName string
	forceStart  bool
)

var startCmd = &cobra.Command{
	Use:   "start [name]",
	Short: "Start a new workout, empty or from a routine",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), offline)
		if err != nil {
			return err
		}
		defer a.Close()

		m := a.tracker.Machine()
		if m.State() == session.Active && !forceStart {
			return fmt.Errorf("A workout is already in progress (%s). Finish or cancel it, or use --force to discard it", m.Active().Name)
		}

		if routineName == "" {
			name := "Workout"
			if len(args) == 1 {
				name = args[0]
			}
			m.Start(name)
			fmt.Printf("✅ Started %s\n", green(name))
			return nil
		}

		r, ok := findRoutine(a, routineName)
		if !ok {
			if r, ok = remoteRoutine(cmd, a, routineName); !ok {
				return fmt.Errorf("Routine '%s' not found. See 'ratlog list-routines'", routineName)
			}
			m.AddRoutine(r)
		}

		m.StartFromRoutine(r)
		if len(args) == 1 {
			m.RenameWorkout(args[0])
		}
		fmt.Printf("✅ Started %s with %d exercises\n", green(m.Active().Name), len(r.Exercises))

		if cfg.HasDatabase() {
			syncRoutineUsage(cmd, a, r.ID)
		}
		return nil
	},
}

// remoteRoutine looks the routine up in the database when it is missing
// locally, e.g. created on another machine and not pulled yet.
func remoteRoutine(cmd *cobra.Command, a *app, name string) (models.Routine, bool) {
	if !cfg.HasDatabase() {
		return models.Routine{}, false
	}
	if a.store == nil {
		if err := a.connect(cmd.Context()); err != nil {
			a.log.WithError(err).Warn("Routine lookup in database failed")
			return models.Routine{}, false
		}
	}

	r, err := a.store.RoutineByName(cmd.Context(), cfg.User.ID, name)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			a.log.WithError(err).Warn("Routine lookup in database failed")
		}
		return models.Routine{}, false
	}
	return *r, true
}

// syncRoutineUsage pushes the routine's new LastUsed stamp. Failures only warn.
func syncRoutineUsage(cmd *cobra.Command, a *app, routineID string) {
	st := a.store
	if st == nil {
		if err := a.connect(cmd.Context()); err != nil {
			a.log.WithError(err).Warn("Routine usage not synced")
			return
		}
		st = a.store
	}
	for _, r := range a.tracker.Machine().Routines() {
		if r.ID == routineID {
			if err := st.SaveRoutine(cmd.Context(), r, cfg.User.ID); err != nil {
				a.log.WithError(err).Warn("Routine usage not synced")
			}
			return
		}
	}
}

func init() {
	// Registers the command as a subcommand of rootCmd.
	rootCmd.AddCommand(startCmd)

	// Define flags.
	startCmd.Flags().StringVarP(&routineName, "routine", "r", "", "Routine to pre-fill the workout from")
	startCmd.Flags().BoolVarP(&forceStart, "force", "f", false, "Discard the workout in progress")
}
