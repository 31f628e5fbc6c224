// Package tracker hosts a session.Machine for the CLI: it restores the local
// snapshot, saves it after every change and forwards finished workouts to
// the remote store.
package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/misterclayt0n/ratlog/internal/models"
	"github.com/misterclayt0n/ratlog/internal/session"
	"github.com/misterclayt0n/ratlog/internal/storage"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

var (
	// ErrSyncFailed wraps remote failures after the local state was updated.
	ErrSyncFailed = errors.New("sync failed")
	ErrNoStore    = errors.New("no database configured")
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=tracker_test

type WorkoutStore interface {
	SaveWorkout(ctx context.Context, workout models.Workout, userID string) (string, error)
	FetchWorkouts(ctx context.Context, userID string) ([]models.Workout, error)
	DeleteWorkout(ctx context.Context, workoutID string) error
	Close() error
}

type SnapshotStore interface {
	Load() (session.Snapshot, error)
	Save(snap session.Snapshot) error
}

// Dialer opens the remote store. It is called at most once, on the first
// remote operation.
type Dialer func(ctx context.Context) (WorkoutStore, error)

type Tracker struct {
	machine   *session.Machine
	store     WorkoutStore
	dial      Dialer
	snapshots SnapshotStore
	userID    string
	log       *logrus.Entry

	saveErr error
}

// Open restores the machine from snapshots. store may be nil, in which case
// the tracker works offline and remote operations return ErrNoStore.
func Open(snapshots SnapshotStore, store WorkoutStore, userID string, log *logrus.Entry, opts ...session.Option) (*Tracker, error) {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	snap, err := snapshots.Load()
	if err != nil {
		return nil, fmt.Errorf("Failed to load state: %w", err)
	}

	opts = append([]session.Option{session.WithLogger(log)}, opts...)
	machine := session.New(opts...)
	machine.Restore(snap)

	t := &Tracker{
		machine:   machine,
		store:     store,
		snapshots: snapshots,
		userID:    userID,
		log:       log,
	}
	machine.OnChange(t.save)
	return t, nil
}

// OpenLazy is Open with a remote store that is only connected when a remote
// operation needs it. Local changes never wait on the connection, so an
// unreachable database cannot block them.
func OpenLazy(snapshots SnapshotStore, dial Dialer, userID string, log *logrus.Entry, opts ...session.Option) (*Tracker, error) {
	t, err := Open(snapshots, nil, userID, log, opts...)
	if err != nil {
		return nil, err
	}
	t.dial = dial
	return t, nil
}

// remote returns the store, dialing it on first use.
func (t *Tracker) remote(ctx context.Context) (WorkoutStore, error) {
	if t.store != nil {
		return t.store, nil
	}
	if t.dial == nil {
		return nil, ErrNoStore
	}

	store, err := t.dial(ctx)
	if err != nil {
		return nil, err
	}
	t.store = store
	t.dial = nil
	return store, nil
}

func (t *Tracker) save(snap session.Snapshot) {
	if err := t.snapshots.Save(snap); err != nil {
		t.log.WithError(err).Error("Failed to save state")
		t.saveErr = multierr.Append(t.saveErr, err)
	}
}

// Machine exposes the session for mutations. Changes are saved through the
// snapshot store as they happen.
func (t *Tracker) Machine() *session.Machine {
	return t.machine
}

// Online reports whether a remote store is configured, connected or not.
func (t *Tracker) Online() bool {
	return t.store != nil || t.dial != nil
}

// Connected reports whether the remote store is open. The tracker closes it
// on Close.
func (t *Tracker) Connected() bool {
	return t.store != nil
}

// Finish completes the active workout locally and then saves it remotely.
// The returned workout is kept in the local history even when the remote
// save fails; that failure is reported as ErrSyncFailed.
func (t *Tracker) Finish(ctx context.Context) (*models.Workout, error) {
	finished := t.machine.Finish()
	if finished == nil {
		return nil, nil
	}
	if !t.Online() {
		return finished, nil
	}

	store, err := t.remote(ctx)
	if err != nil {
		t.log.WithError(err).WithField("workout_id", finished.ID).Warn("Workout kept locally, database unreachable")
		return finished, fmt.Errorf("%w: %w", ErrSyncFailed, err)
	}
	if _, err := store.SaveWorkout(ctx, *finished, t.userID); err != nil {
		t.log.WithError(err).WithField("workout_id", finished.ID).Warn("Workout kept locally, remote save failed")
		return finished, fmt.Errorf("%w: %w", ErrSyncFailed, err)
	}
	return finished, nil
}

// Pull merges the remote history into the local one and returns the size of
// the resulting history. Remote copies win on id; workouts that only exist
// locally, such as ones whose sync failed, are kept.
func (t *Tracker) Pull(ctx context.Context) (int, error) {
	store, err := t.remote(ctx)
	if err != nil {
		return 0, err
	}

	workouts, err := store.FetchWorkouts(ctx, t.userID)
	if err != nil {
		return 0, fmt.Errorf("Failed to fetch workouts: %w", err)
	}

	remote := make(map[string]bool, len(workouts))
	for _, w := range workouts {
		remote[w.ID] = true
	}
	for _, w := range t.machine.Workouts() {
		if !remote[w.ID] {
			t.log.WithField("workout_id", w.ID).Debug("Keeping local-only workout")
			workouts = append(workouts, w)
		}
	}

	t.machine.Hydrate(workouts)
	return len(t.machine.Workouts()), nil
}

// Push saves every local workout remotely. It keeps going after a failure and
// returns how many were saved along with all errors.
func (t *Tracker) Push(ctx context.Context) (int, error) {
	store, err := t.remote(ctx)
	if err != nil {
		return 0, err
	}

	var (
		pushed int
		errs   error
	)
	for _, w := range t.machine.Workouts() {
		if err := ctx.Err(); err != nil {
			return pushed, multierr.Append(errs, err)
		}
		if _, err := store.SaveWorkout(ctx, w, t.userID); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("workout %s: %w", w.ID, err))
			continue
		}
		pushed++
	}
	return pushed, errs
}

// Delete removes the workout locally and then remotely. A workout the remote
// store never had is not an error.
func (t *Tracker) Delete(ctx context.Context, workoutID string) error {
	if _, ok := t.machine.Workout(workoutID); !ok {
		return fmt.Errorf("workout %s: %w", workoutID, storage.ErrNotFound)
	}
	t.machine.DeleteWorkout(workoutID)

	if !t.Online() {
		return nil
	}
	store, err := t.remote(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSyncFailed, err)
	}
	if err := store.DeleteWorkout(ctx, workoutID); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrSyncFailed, err)
	}
	return nil
}

// Close reports any snapshot save failures and closes the store if it was
// opened.
func (t *Tracker) Close() error {
	err := t.saveErr
	if t.store != nil {
		err = multierr.Append(err, t.store.Close())
	}
	return err
}
