package tracker_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/misterclayt0n/ratlog/internal/models"
	"github.com/misterclayt0n/ratlog/internal/session"
	"github.com/misterclayt0n/ratlog/internal/state"
	"github.com/misterclayt0n/ratlog/internal/storage"
	"github.com/misterclayt0n/ratlog/internal/tracker"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

const userID = "user-1"

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var squat = models.Exercise{ID: "squat", Name: "Barbell Squat", MuscleGroup: models.MuscleQuads, Equipment: models.EquipmentBarbell}

func nullLog() *logrus.Entry {
	logger, _ := test.NewNullLogger()
	return logrus.NewEntry(logger)
}

func clockAt(t time.Time) session.Option {
	return session.WithClock(func() time.Time { return t })
}

func openTracker(t *testing.T, dir string, store tracker.WorkoutStore) *tracker.Tracker {
	t.Helper()

	tr, err := tracker.Open(state.New(dir), store, userID, nullLog(),
		clockAt(time.Date(2026, 10, 16, 18, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	return tr
}

func TestOpen_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first := openTracker(t, dir, nil)
	first.Machine().Start("Legs")
	first.Machine().AddExerciseToWorkout(squat)
	require.NoError(t, first.Close())

	second := openTracker(t, dir, nil)
	active := second.Machine().Active()
	require.NotNil(t, active)
	assert.Equal(t, "Legs", active.Name)
	require.Len(t, active.Exercises, 1)
	assert.Equal(t, "Barbell Squat", active.Exercises[0].Exercise.Name)
	assert.Len(t, active.Exercises[0].Sets, 1)
}

func TestOpen_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	snapshots := NewMockSnapshotStore(ctrl)
	snapshots.EXPECT().Load().Return(session.Snapshot{}, errors.New("disk on fire"))

	_, err := tracker.Open(snapshots, nil, userID, nullLog())

	assert.ErrorContains(t, err, "disk on fire")
}

func TestFinish_SavesRemotely(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockWorkoutStore(ctrl)
	tr := openTracker(t, t.TempDir(), store)
	tr.Machine().Start("Legs")

	store.EXPECT().
		SaveWorkout(gomock.Any(), gomock.Any(), userID).
		DoAndReturn(func(_ context.Context, w models.Workout, _ string) (string, error) {
			assert.True(t, w.Completed)
			assert.Equal(t, "Legs", w.Name)
			return w.ID, nil
		})

	finished, err := tr.Finish(context.Background())

	require.NoError(t, err)
	require.NotNil(t, finished)
	assert.Len(t, tr.Machine().Workouts(), 1)
}

func TestFinish_KeepsWorkoutWhenSyncFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockWorkoutStore(ctrl)
	dir := t.TempDir()
	tr := openTracker(t, dir, store)
	tr.Machine().Start("Legs")

	store.EXPECT().SaveWorkout(gomock.Any(), gomock.Any(), userID).Return("", errors.New("connection refused"))

	finished, err := tr.Finish(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, tracker.ErrSyncFailed)
	require.NotNil(t, finished)
	assert.Equal(t, session.Idle, tr.Machine().State())

	reopened := openTracker(t, dir, nil)
	history := reopened.Machine().Workouts()
	require.Len(t, history, 1)
	assert.Equal(t, finished.ID, history[0].ID)
}

func TestFinish_Idle(t *testing.T) {
	ctrl := gomock.NewController(t)
	tr := openTracker(t, t.TempDir(), NewMockWorkoutStore(ctrl))

	finished, err := tr.Finish(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, finished)
}

func TestFinish_Offline(t *testing.T) {
	tr := openTracker(t, t.TempDir(), nil)
	tr.Machine().Start("Legs")

	finished, err := tr.Finish(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, finished)
	assert.False(t, tr.Online())
}

func TestPull(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockWorkoutStore(ctrl)
	tr := openTracker(t, t.TempDir(), store)

	store.EXPECT().FetchWorkouts(gomock.Any(), userID).Return([]models.Workout{
		{ID: "a", Date: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), Completed: true},
		{ID: "b", Date: time.Date(2026, 10, 8, 0, 0, 0, 0, time.UTC), Completed: true},
		{ID: "c", Date: time.Date(2026, 10, 9, 0, 0, 0, 0, time.UTC), Completed: false},
	}, nil)

	n, err := tr.Pull(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	history := tr.Machine().Workouts()
	require.Len(t, history, 2)
	assert.Equal(t, "b", history[0].ID)
}

func TestPull_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockWorkoutStore(ctrl)
	tr := openTracker(t, t.TempDir(), store)
	tr.Machine().Hydrate([]models.Workout{{ID: "local", Completed: true}})

	store.EXPECT().FetchWorkouts(gomock.Any(), userID).Return(nil, errors.New("timeout"))

	_, err := tr.Pull(context.Background())

	assert.Error(t, err)
	assert.Len(t, tr.Machine().Workouts(), 1, "local history untouched")
}

func TestPush_CollectsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockWorkoutStore(ctrl)
	tr := openTracker(t, t.TempDir(), store)

	var workouts []models.Workout
	for i := 0; i < 3; i++ {
		workouts = append(workouts, models.Workout{
			ID:        fmt.Sprintf("w%d", i),
			Date:      time.Date(2026, 10, 1+i, 0, 0, 0, 0, time.UTC),
			Completed: true,
		})
	}
	tr.Machine().Hydrate(workouts)

	store.EXPECT().SaveWorkout(gomock.Any(), gomock.Any(), userID).
		DoAndReturn(func(_ context.Context, w models.Workout, _ string) (string, error) {
			if w.ID == "w1" {
				return "", errors.New("constraint failed")
			}
			return w.ID, nil
		}).Times(3)

	pushed, err := tr.Push(context.Background())

	assert.Equal(t, 2, pushed)
	assert.ErrorContains(t, err, "workout w1")
}

func TestRemoteOpsOffline(t *testing.T) {
	tr := openTracker(t, t.TempDir(), nil)

	_, err := tr.Pull(context.Background())
	assert.ErrorIs(t, err, tracker.ErrNoStore)

	_, err = tr.Push(context.Background())
	assert.ErrorIs(t, err, tracker.ErrNoStore)
}

func TestDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockWorkoutStore(ctrl)
	tr := openTracker(t, t.TempDir(), store)
	tr.Machine().Hydrate([]models.Workout{
		{ID: "a", Completed: true},
		{ID: "b", Completed: true},
	})

	store.EXPECT().DeleteWorkout(gomock.Any(), "a").Return(nil)
	store.EXPECT().DeleteWorkout(gomock.Any(), "b").Return(fmt.Errorf("workout b: %w", storage.ErrNotFound))

	require.NoError(t, tr.Delete(context.Background(), "a"))
	require.NoError(t, tr.Delete(context.Background(), "b"), "missing remotely is fine")
	assert.Empty(t, tr.Machine().Workouts())

	err := tr.Delete(context.Background(), "a")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDelete_RemoteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockWorkoutStore(ctrl)
	tr := openTracker(t, t.TempDir(), store)
	tr.Machine().Hydrate([]models.Workout{{ID: "a", Completed: true}})

	store.EXPECT().DeleteWorkout(gomock.Any(), "a").Return(errors.New("offline"))

	err := tr.Delete(context.Background(), "a")

	assert.ErrorIs(t, err, tracker.ErrSyncFailed)
	assert.Empty(t, tr.Machine().Workouts())
}

func TestClose_CombinesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	snapshots := NewMockSnapshotStore(ctrl)
	store := NewMockWorkoutStore(ctrl)

	snapshots.EXPECT().Load().Return(session.Snapshot{}, nil)
	snapshots.EXPECT().Save(gomock.Any()).Return(errors.New("read-only file system"))
	store.EXPECT().Close().Return(errors.New("already closed"))

	tr, err := tracker.Open(snapshots, store, userID, nullLog())
	require.NoError(t, err)
	tr.Machine().Start("Push")

	err = tr.Close()

	assert.ErrorContains(t, err, "read-only file system")
	assert.ErrorContains(t, err, "already closed")
}

func TestPull_KeepsWorkoutWhoseSyncFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockWorkoutStore(ctrl)
	tr := openTracker(t, t.TempDir(), store)
	tr.Machine().Start("Legs")

	store.EXPECT().SaveWorkout(gomock.Any(), gomock.Any(), userID).Return("", errors.New("offline"))
	finished, err := tr.Finish(context.Background())
	require.ErrorIs(t, err, tracker.ErrSyncFailed)

	store.EXPECT().FetchWorkouts(gomock.Any(), userID).Return([]models.Workout{
		{ID: "remote", Name: "Push", Date: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), Completed: true},
	}, nil)

	n, err := tr.Pull(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	history := tr.Machine().Workouts()
	require.Len(t, history, 2)
	assert.Equal(t, finished.ID, history[0].ID, "local-only workout kept, newest first")
	assert.Equal(t, "remote", history[1].ID)
}

func TestPull_RemoteCopyWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockWorkoutStore(ctrl)
	tr := openTracker(t, t.TempDir(), store)
	date := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	tr.Machine().Hydrate([]models.Workout{{ID: "a", Name: "Old name", Date: date, Completed: true}})

	store.EXPECT().FetchWorkouts(gomock.Any(), userID).Return([]models.Workout{
		{ID: "a", Name: "Renamed elsewhere", Date: date, Completed: true},
	}, nil)

	_, err := tr.Pull(context.Background())

	require.NoError(t, err)
	history := tr.Machine().Workouts()
	require.Len(t, history, 1)
	assert.Equal(t, "Renamed elsewhere", history[0].Name)
}

func openLazy(t *testing.T, dir string, dial tracker.Dialer) *tracker.Tracker {
	t.Helper()

	tr, err := tracker.OpenLazy(state.New(dir), dial, userID, nullLog(),
		clockAt(time.Date(2026, 10, 16, 18, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	return tr
}

func TestOpenLazy_UnreachableStore(t *testing.T) {
	dir := t.TempDir()
	dials := 0
	tr := openLazy(t, dir, func(context.Context) (tracker.WorkoutStore, error) {
		dials++
		return nil, errors.New("unable to open database file")
	})

	tr.Machine().Start("Legs")
	tr.Machine().AddExerciseToWorkout(squat)
	assert.Zero(t, dials, "local edits never connect")
	assert.True(t, tr.Online())
	assert.False(t, tr.Connected())

	finished, err := tr.Finish(context.Background())

	assert.ErrorIs(t, err, tracker.ErrSyncFailed)
	assert.ErrorContains(t, err, "unable to open database file")
	require.NotNil(t, finished)
	assert.Equal(t, session.Idle, tr.Machine().State())

	err = tr.Delete(context.Background(), finished.ID)
	assert.ErrorIs(t, err, tracker.ErrSyncFailed)
	assert.Empty(t, tr.Machine().Workouts())

	_, err = tr.Pull(context.Background())
	assert.Error(t, err)
	require.NoError(t, tr.Close())

	reopened := openTracker(t, dir, nil)
	assert.Empty(t, reopened.Machine().Workouts())
	assert.Nil(t, reopened.Machine().Active())
}

func TestOpenLazy_FinishKeptAcrossInstancesWhenUnreachable(t *testing.T) {
	dir := t.TempDir()
	tr := openLazy(t, dir, func(context.Context) (tracker.WorkoutStore, error) {
		return nil, errors.New("no route to host")
	})
	tr.Machine().Start("Push")

	finished, err := tr.Finish(context.Background())
	require.ErrorIs(t, err, tracker.ErrSyncFailed)
	require.NoError(t, tr.Close())

	reopened := openTracker(t, dir, nil)
	history := reopened.Machine().Workouts()
	require.Len(t, history, 1)
	assert.Equal(t, finished.ID, history[0].ID)
}

func TestOpenLazy_DialsOnceAndClosesStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockWorkoutStore(ctrl)
	dials := 0
	tr := openLazy(t, t.TempDir(), func(context.Context) (tracker.WorkoutStore, error) {
		dials++
		return store, nil
	})
	tr.Machine().Start("Legs")

	store.EXPECT().SaveWorkout(gomock.Any(), gomock.Any(), userID).DoAndReturn(
		func(_ context.Context, w models.Workout, _ string) (string, error) { return w.ID, nil })
	store.EXPECT().DeleteWorkout(gomock.Any(), gomock.Any()).Return(nil)
	store.EXPECT().Close().Return(nil)

	finished, err := tr.Finish(context.Background())
	require.NoError(t, err)
	require.NoError(t, tr.Delete(context.Background(), finished.ID))

	assert.Equal(t, 1, dials)
	assert.True(t, tr.Connected())
	assert.NoError(t, tr.Close())
}
