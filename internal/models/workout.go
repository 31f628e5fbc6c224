package models

import "time"

type SetType string

const (
	SetTypeWarmup   SetType = "warmup"
	SetTypeNormal   SetType = "normal"
	SetTypeFailure  SetType = "failure"
	SetTypeDrop     SetType = "drop"
	SetTypeSuperset SetType = "superset"
	SetTypeAssisted SetType = "assisted"
	SetTypeTempo    SetType = "tempo"
)

var setTypeLabels = map[SetType]string{
	SetTypeWarmup:   "Warm-up",
	SetTypeNormal:   "Normal",
	SetTypeFailure:  "Failure",
	SetTypeDrop:     "Drop",
	SetTypeSuperset: "Superset",
	SetTypeAssisted: "Assisted",
	SetTypeTempo:    "Tempo",
}

func (t SetType) String() string {
	return string(t)
}

func (t SetType) IsValid() bool {
	_, ok := setTypeLabels[t]
	return ok
}

func (t SetType) Label() string {
	if l, ok := setTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

// Set is a single performance of an exercise. Weight is in kilograms.
// A 0kg × 0 set is a placeholder waiting to be filled in.
type Set struct {
	ID        string  `json:"id" toml:"id"`
	Weight    float64 `json:"weight" toml:"weight"`
	Reps      int     `json:"reps" toml:"reps"`
	Type      SetType `json:"type" toml:"type"`
	Completed bool    `json:"completed" toml:"completed"`
	RestTime  *int    `json:"restTime,omitempty" toml:"rest_time,omitempty"` // Seconds.
	Notes     string  `json:"notes,omitempty" toml:"notes,omitempty"`
}

func (s Set) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

// NewEmptySet returns the placeholder set used when exercises are added.
func NewEmptySet(id string) Set {
	return Set{ID: id, Type: SetTypeNormal}
}

func (s Set) clone() Set {
	if s.RestTime != nil {
		r := *s.RestTime
		s.RestTime = &r
	}
	return s
}

// SetPatch is a partial update of a Set. Nil fields are left untouched.
type SetPatch struct {
	Weight    *float64
	Reps      *int
	Type      *SetType
	Completed *bool
	RestTime  *int
	Notes     *string
}

func (p SetPatch) IsEmpty() bool {
	return p.Weight == nil && p.Reps == nil && p.Type == nil &&
		p.Completed == nil && p.RestTime == nil && p.Notes == nil
}

// Apply merges the patch into s and returns the result; s itself is not modified.
func (p SetPatch) Apply(s Set) Set {
	out := s.clone()
	if p.Weight != nil {
		out.Weight = *p.Weight
	}
	if p.Reps != nil {
		out.Reps = *p.Reps
	}
	if p.Type != nil {
		out.Type = *p.Type
	}
	if p.Completed != nil {
		out.Completed = *p.Completed
	}
	if p.RestTime != nil {
		r := *p.RestTime
		out.RestTime = &r
	}
	if p.Notes != nil {
		out.Notes = *p.Notes
	}
	return out
}

type WorkoutExercise struct {
	ID       string   `json:"id" toml:"id"`
	Exercise Exercise `json:"exercise" toml:"exercise"`
	Sets     []Set    `json:"sets" toml:"sets"`
}

func (we WorkoutExercise) Clone() WorkoutExercise {
	out := WorkoutExercise{ID: we.ID, Exercise: we.Exercise.clone()}
	if we.Sets != nil {
		out.Sets = make([]Set, len(we.Sets))
		for i, s := range we.Sets {
			out.Sets[i] = s.clone()
		}
	}
	return out
}

type Workout struct {
	ID        string            `json:"id" toml:"id"`
	Name      string            `json:"name" toml:"name"`
	Date      time.Time         `json:"date" toml:"date"` // Session start.
	Exercises []WorkoutExercise `json:"exercises" toml:"exercises"`
	Duration  *int              `json:"duration,omitempty" toml:"duration,omitempty"` // Minutes, set on finish.
	Notes     string            `json:"notes,omitempty" toml:"notes,omitempty"`
	Completed bool              `json:"completed" toml:"completed"`
}

// Clone returns a deep copy so callers never share slices with the original.
func (w Workout) Clone() Workout {
	out := w
	if w.Duration != nil {
		d := *w.Duration
		out.Duration = &d
	}
	if w.Exercises != nil {
		out.Exercises = make([]WorkoutExercise, len(w.Exercises))
		for i, we := range w.Exercises {
			out.Exercises[i] = we.Clone()
		}
	}
	return out
}

// FindExercise returns the index of the workout exercise with the given id, or -1.
func (w Workout) FindExercise(workoutExerciseID string) int {
	for i, we := range w.Exercises {
		if we.ID == workoutExerciseID {
			return i
		}
	}
	return -1
}

type PersonalRecord struct {
	ExerciseName string    `json:"exerciseName"`
	Weight       float64   `json:"weight"`
	Reps         int       `json:"reps"`
	Date         time.Time `json:"date"`
	Estimated1RM float64   `json:"estimated1RM"`
}
