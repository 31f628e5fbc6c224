// Package session holds the in-progress workout and the workout history.
//
// A Machine is either Idle or Active. Every mutation is a no-op when it does
// not apply (no active workout, unknown exercise or set id) and never returns
// an error. Mutations replace the slices they touch instead of editing them in
// place, so a previously taken Snapshot never changes underneath its holder.
package session

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/ratlog/internal/models"
	"github.com/sirupsen/logrus"
)

type State int

const (
	Idle State = iota
	Active
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

// Snapshot is a deep copy of the machine's state.
type Snapshot struct {
	Active   *models.Workout  `toml:"active,omitempty"`
	Workouts []models.Workout `toml:"workouts"`
	Routines []models.Routine `toml:"routines"`
}

type Option func(*Machine)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) {
		m.now = now
	}
}

// WithIDGenerator replaces the uuid based id generator.
func WithIDGenerator(gen func() string) Option {
	return func(m *Machine) {
		m.newID = gen
	}
}

func WithLogger(log *logrus.Entry) Option {
	return func(m *Machine) {
		m.log = log
	}
}

type Machine struct {
	active   *models.Workout
	workouts []models.Workout // Newest first.
	routines []models.Routine

	now       func() time.Time
	newID     func() string
	log       *logrus.Entry
	listeners []func(Snapshot)
}

func New(opts ...Option) *Machine {
	m := &Machine{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
		log:   logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// OnChange registers fn to be called with a fresh snapshot after every
// mutation that changed something.
func (m *Machine) OnChange(fn func(Snapshot)) {
	m.listeners = append(m.listeners, fn)
}

func (m *Machine) State() State {
	if m.active == nil {
		return Idle
	}
	return Active
}

// Active returns a copy of the in-progress workout, or nil when idle.
func (m *Machine) Active() *models.Workout {
	if m.active == nil {
		return nil
	}
	w := m.active.Clone()
	return &w
}

// Workouts returns a copy of the finished workouts, newest first.
func (m *Machine) Workouts() []models.Workout {
	return cloneWorkouts(m.workouts)
}

func (m *Machine) Workout(id string) (models.Workout, bool) {
	for _, w := range m.workouts {
		if w.ID == id {
			return w.Clone(), true
		}
	}
	return models.Workout{}, false
}

func (m *Machine) Routines() []models.Routine {
	return cloneRoutines(m.routines)
}

func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Active:   m.Active(),
		Workouts: cloneWorkouts(m.workouts),
		Routines: cloneRoutines(m.routines),
	}
}

// Restore replaces the whole state without notifying listeners.
func (m *Machine) Restore(s Snapshot) {
	m.active = nil
	if s.Active != nil {
		w := s.Active.Clone()
		w.Completed = false
		m.active = &w
	}
	m.workouts = cloneWorkouts(s.Workouts)
	m.routines = cloneRoutines(s.Routines)
}

// Hydrate replaces the history with workouts loaded from storage. Only
// completed workouts are kept, sorted newest first. The active workout is
// left alone.
func (m *Machine) Hydrate(workouts []models.Workout) {
	next := make([]models.Workout, 0, len(workouts))
	for _, w := range workouts {
		if !w.Completed {
			m.log.WithField("workout_id", w.ID).Warn("Skipping incomplete workout from storage")
			continue
		}
		next = append(next, w.Clone())
	}
	sort.SliceStable(next, func(i, j int) bool {
		return next[i].Date.After(next[j].Date)
	})

	m.workouts = next
	m.changed()
}

// Start begins a new empty workout. An already active workout is replaced
// and lost; callers that care must check State first.
func (m *Machine) Start(name string) {
	m.begin(name, []models.WorkoutExercise{})
}

// StartFromRoutine begins a workout pre-filled from the routine, with
// DefaultSets empty sets per exercise, and stamps the routine's LastUsed.
func (m *Machine) StartFromRoutine(routine models.Routine) {
	exercises := make([]models.WorkoutExercise, 0, len(routine.Exercises))
	for _, re := range routine.Exercises {
		n := re.DefaultSets
		if n < 0 {
			n = 0
		}
		sets := make([]models.Set, 0, n)
		for i := 0; i < n; i++ {
			sets = append(sets, models.NewEmptySet(m.newID()))
		}
		we := models.WorkoutExercise{ID: m.newID(), Exercise: re.Exercise, Sets: sets}
		exercises = append(exercises, we.Clone())
	}

	now := m.now()
	for i, r := range m.routines {
		if r.ID != routine.ID {
			continue
		}
		routines := cloneRoutines(m.routines)
		routines[i].LastUsed = &now
		m.routines = routines
		break
	}

	m.begin(routine.Name, exercises)
}

func (m *Machine) begin(name string, exercises []models.WorkoutExercise) {
	if m.active != nil {
		m.log.WithField("workout_id", m.active.ID).Warn("Replacing active workout")
	}

	m.active = &models.Workout{
		ID:        m.newID(),
		Name:      name,
		Date:      m.now(),
		Exercises: exercises,
		Completed: false,
	}
	m.log.WithFields(logrus.Fields{
		"workout_id": m.active.ID,
		"exercises":  len(exercises),
	}).Debug("Workout started")
	m.changed()
}

// Cancel drops the active workout without keeping it anywhere.
func (m *Machine) Cancel() {
	if m.active == nil {
		return
	}
	m.log.WithField("workout_id", m.active.ID).Debug("Workout cancelled")
	m.active = nil
	m.changed()
}

// Finish completes the active workout, prepends it to the history and returns
// a copy of it. It returns nil when idle.
func (m *Machine) Finish() *models.Workout {
	if m.active == nil {
		return nil
	}

	minutes := int(math.Round(m.now().Sub(m.active.Date).Minutes()))
	if minutes < 0 {
		minutes = 0
	}

	finished := m.active.Clone()
	finished.Completed = true
	finished.Duration = &minutes

	workouts := make([]models.Workout, 0, len(m.workouts)+1)
	workouts = append(workouts, finished)
	workouts = append(workouts, m.workouts...)
	m.workouts = workouts
	m.active = nil

	m.log.WithFields(logrus.Fields{
		"workout_id": finished.ID,
		"duration":   minutes,
	}).Debug("Workout finished")
	m.changed()

	out := finished.Clone()
	return &out
}

func (m *Machine) RenameWorkout(name string) {
	m.updateActive(func(w *models.Workout) {
		w.Name = name
	})
}

func (m *Machine) SetWorkoutNotes(notes string) {
	m.updateActive(func(w *models.Workout) {
		w.Notes = notes
	})
}

// AddExerciseToWorkout appends the exercise with one empty set.
func (m *Machine) AddExerciseToWorkout(exercise models.Exercise) {
	m.updateActive(func(w *models.Workout) {
		we := models.WorkoutExercise{
			ID:       m.newID(),
			Exercise: exercise,
			Sets:     []models.Set{models.NewEmptySet(m.newID())},
		}
		exercises := make([]models.WorkoutExercise, len(w.Exercises), len(w.Exercises)+1)
		copy(exercises, w.Exercises)
		w.Exercises = append(exercises, we.Clone())
	})
}

// RemoveExerciseFromWorkout removes the workout exercise and all of its sets.
func (m *Machine) RemoveExerciseFromWorkout(workoutExerciseID string) {
	if m.active == nil || m.active.FindExercise(workoutExerciseID) < 0 {
		return
	}
	m.updateActive(func(w *models.Workout) {
		exercises := make([]models.WorkoutExercise, 0, len(w.Exercises))
		for _, we := range w.Exercises {
			if we.ID != workoutExerciseID {
				exercises = append(exercises, we)
			}
		}
		w.Exercises = exercises
	})
}

// ReplaceExercise swaps the exercise of a workout entry, keeping its sets.
func (m *Machine) ReplaceExercise(workoutExerciseID string, exercise models.Exercise) {
	m.updateExercise(workoutExerciseID, func(we *models.WorkoutExercise) bool {
		we.Exercise = models.WorkoutExercise{Exercise: exercise}.Clone().Exercise
		return true
	})
}

// AddSet appends a set that carries over the previous set's weight and reps.
func (m *Machine) AddSet(workoutExerciseID string) {
	m.updateExercise(workoutExerciseID, func(we *models.WorkoutExercise) bool {
		next := models.NewEmptySet(m.newID())
		if n := len(we.Sets); n > 0 {
			next.Weight = we.Sets[n-1].Weight
			next.Reps = we.Sets[n-1].Reps
		}
		sets := make([]models.Set, len(we.Sets), len(we.Sets)+1)
		copy(sets, we.Sets)
		we.Sets = append(sets, next)
		return true
	})
}

// UpdateSet merges the patch into the set. Values are not validated.
func (m *Machine) UpdateSet(workoutExerciseID, setID string, patch models.SetPatch) {
	if patch.IsEmpty() {
		return
	}
	m.updateSet(workoutExerciseID, setID, func(s models.Set) models.Set {
		return patch.Apply(s)
	})
}

func (m *Machine) RemoveSet(workoutExerciseID, setID string) {
	m.updateExercise(workoutExerciseID, func(we *models.WorkoutExercise) bool {
		sets := make([]models.Set, 0, len(we.Sets))
		for _, s := range we.Sets {
			if s.ID != setID {
				sets = append(sets, s)
			}
		}
		if len(sets) == len(we.Sets) {
			return false
		}
		we.Sets = sets
		return true
	})
}

// ToggleSetComplete flips the set's completion flag. It reports true only
// when the set went from incomplete to complete, which is when a rest timer
// should start.
func (m *Machine) ToggleSetComplete(workoutExerciseID, setID string) bool {
	completed := false
	m.updateSet(workoutExerciseID, setID, func(s models.Set) models.Set {
		s.Completed = !s.Completed
		completed = s.Completed
		return s
	})
	return completed
}

// DeleteWorkout removes a finished workout from the history, in any state.
func (m *Machine) DeleteWorkout(workoutID string) {
	workouts := make([]models.Workout, 0, len(m.workouts))
	for _, w := range m.workouts {
		if w.ID != workoutID {
			workouts = append(workouts, w)
		}
	}
	if len(workouts) == len(m.workouts) {
		return
	}
	m.workouts = workouts
	m.log.WithField("workout_id", workoutID).Debug("Workout deleted")
	m.changed()
}

// AddRoutine stores the routine, replacing one with the same id.
func (m *Machine) AddRoutine(routine models.Routine) {
	if routine.ID == "" {
		routine.ID = m.newID()
	}
	if routine.CreatedAt.IsZero() {
		routine.CreatedAt = m.now()
	}

	routines := cloneRoutines(m.routines)
	for i, r := range routines {
		if r.ID == routine.ID {
			routines[i] = routine.Clone()
			m.routines = routines
			m.changed()
			return
		}
	}
	m.routines = append(routines, routine.Clone())
	m.changed()
}

func (m *Machine) DeleteRoutine(routineID string) {
	routines := make([]models.Routine, 0, len(m.routines))
	for _, r := range m.routines {
		if r.ID != routineID {
			routines = append(routines, r)
		}
	}
	if len(routines) == len(m.routines) {
		return
	}
	m.routines = routines
	m.changed()
}

func (m *Machine) updateActive(fn func(w *models.Workout)) {
	if m.active == nil {
		return
	}
	next := *m.active
	fn(&next)
	m.active = &next
	m.changed()
}

func (m *Machine) updateExercise(workoutExerciseID string, fn func(we *models.WorkoutExercise) bool) {
	if m.active == nil {
		return
	}
	idx := m.active.FindExercise(workoutExerciseID)
	if idx < 0 {
		m.log.WithField("workout_exercise_id", workoutExerciseID).Debug("Workout exercise not found")
		return
	}

	we := m.active.Exercises[idx]
	if !fn(&we) {
		return
	}

	m.updateActive(func(w *models.Workout) {
		exercises := make([]models.WorkoutExercise, len(w.Exercises))
		copy(exercises, w.Exercises)
		exercises[idx] = we
		w.Exercises = exercises
	})
}

func (m *Machine) updateSet(workoutExerciseID, setID string, fn func(s models.Set) models.Set) {
	m.updateExercise(workoutExerciseID, func(we *models.WorkoutExercise) bool {
		for i, s := range we.Sets {
			if s.ID != setID {
				continue
			}
			sets := make([]models.Set, len(we.Sets))
			copy(sets, we.Sets)
			sets[i] = fn(s)
			we.Sets = sets
			return true
		}
		m.log.WithField("set_id", setID).Debug("Set not found")
		return false
	})
}

func (m *Machine) changed() {
	if len(m.listeners) == 0 {
		return
	}
	snap := m.Snapshot()
	for _, fn := range m.listeners {
		fn(snap)
	}
}

func cloneWorkouts(in []models.Workout) []models.Workout {
	out := make([]models.Workout, len(in))
	for i, w := range in {
		out[i] = w.Clone()
	}
	return out
}

func cloneRoutines(in []models.Routine) []models.Routine {
	out := make([]models.Routine, len(in))
	for i, r := range in {
		out[i] = r.Clone()
	}
	return out
}
