package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ratlog/internal/catalog"
	"github.com/misterclayt0n/ratlog/internal/models"
	"github.com/misterclayt0n/ratlog/internal/state"
	"github.com/misterclayt0n/ratlog/internal/storage"
	"github.com/misterclayt0n/ratlog/internal/tracker"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

var (
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	faint  = color.New(color.Faint).SprintFunc()
)

// app bundles what a command needs: the tracker over the local snapshot and,
// when connected, the database.
type app struct {
	log     *logrus.Entry
	store   *storage.Storage
	tracker *tracker.Tracker
	catalog *catalog.Catalog
}

type connectMode int

const (
	// offline never hands the database to the tracker.
	offline connectMode = iota
	// lazy connects on the first remote operation; local changes go first.
	lazy
	// online connects up front and fails the command when that fails.
	online
)

// openApp restores the local state. In online mode it also connects to the
// configured database and merges the user's custom exercises into the
// catalog; in lazy mode that happens only when the tracker needs the store.
func openApp(ctx context.Context, mode connectMode) (*app, error) {
	dir, err := stateDir()
	if err != nil {
		return nil, fmt.Errorf("Failed to locate config directory: %w", err)
	}

	a := &app{
		log:     logrus.WithField("user_id", cfg.User.ID),
		catalog: catalog.New(),
	}

	snapshots := state.New(dir)
	switch {
	case mode == lazy && cfg.HasDatabase():
		a.tracker, err = tracker.OpenLazy(snapshots, a.dial, cfg.User.ID, a.log)
	case mode == online:
		if err := a.connect(ctx); err != nil {
			return nil, err
		}
		a.tracker, err = tracker.Open(snapshots, a.store, cfg.User.ID, a.log)
	default:
		// A nil interface, not a nil *storage.Storage.
		a.tracker, err = tracker.Open(snapshots, nil, cfg.User.ID, a.log)
	}
	if err != nil {
		if a.store != nil {
			a.store.Close()
		}
		return nil, err
	}
	return a, nil
}

func (a *app) connect(ctx context.Context) error {
	if !cfg.HasDatabase() {
		return fmt.Errorf("No database configured. Set [database] connection_string or TURSO_DATABASE_URL")
	}

	st, err := storage.New(cfg.DB.ConnectionString, a.log)
	if err != nil {
		return err
	}

	custom, err := st.ListCustomExercises(ctx, cfg.User.ID)
	if err != nil {
		st.Close()
		return err
	}

	a.store = st
	a.catalog = a.catalog.Merge(custom)
	return nil
}

// dial hands the tracker the database connection, reusing one opened earlier
// by the command.
func (a *app) dial(ctx context.Context) (tracker.WorkoutStore, error) {
	if a.store == nil {
		if err := a.connect(ctx); err != nil {
			return nil, err
		}
	}
	return a.store, nil
}

// resolveExercise looks ref up in the built-in catalog first and falls back
// to the database for custom exercises.
func (a *app) resolveExercise(ctx context.Context, ref string) (models.Exercise, error) {
	if ex, ok := a.catalog.Resolve(ref); ok {
		return ex, nil
	}
	if a.store == nil && cfg.HasDatabase() {
		if err := a.connect(ctx); err != nil {
			return models.Exercise{}, err
		}
		if ex, ok := a.catalog.Resolve(ref); ok {
			return ex, nil
		}
	}
	return models.Exercise{}, fmt.Errorf("Exercise '%s' not found. Try 'ratlog exercises %s'", ref, ref)
}

// Close reports snapshot save failures and closes the database. The tracker
// closes the store when it holds it.
func (a *app) Close() error {
	err := a.tracker.Close()
	if a.store != nil && !a.tracker.Connected() {
		err = multierr.Append(err, a.store.Close())
	}
	return err
}

// activeWorkout returns the in-progress workout or an error for the user.
func (a *app) activeWorkout() (*models.Workout, error) {
	active := a.tracker.Machine().Active()
	if active == nil {
		return nil, fmt.Errorf("No active workout. Start one with 'ratlog start'")
	}
	return active, nil
}

// exerciseAt resolves a 1-based exercise index in the active workout.
func (a *app) exerciseAt(arg string) (models.WorkoutExercise, error) {
	active, err := a.activeWorkout()
	if err != nil {
		return models.WorkoutExercise{}, err
	}

	idx, err := parseIndex(arg, len(active.Exercises), "exercise")
	if err != nil {
		return models.WorkoutExercise{}, err
	}
	return active.Exercises[idx], nil
}

// setAt resolves 1-based exercise and set indexes in the active workout.
func (a *app) setAt(exArg, setArg string) (models.WorkoutExercise, models.Set, error) {
	we, err := a.exerciseAt(exArg)
	if err != nil {
		return models.WorkoutExercise{}, models.Set{}, err
	}

	idx, err := parseIndex(setArg, len(we.Sets), "set")
	if err != nil {
		return models.WorkoutExercise{}, models.Set{}, err
	}
	return we, we.Sets[idx], nil
}

func parseIndex(arg string, n int, what string) (int, error) {
	idx, err := strconv.Atoi(arg)
	if err != nil || idx < 1 {
		return 0, fmt.Errorf("Invalid %s index. Must be a positive integer", what)
	}
	if idx > n {
		return 0, fmt.Errorf("%s index out of range (have %d)", what, n)
	}
	return idx - 1, nil
}
