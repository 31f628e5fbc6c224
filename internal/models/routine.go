package models

import "time"

// Routine is a reusable template used to pre-populate a new workout.
type Routine struct {
	ID        string            `json:"id" toml:"id"`
	Name      string            `json:"name" toml:"name"`
	Exercises []RoutineExercise `json:"exercises" toml:"exercises"`
	CreatedAt time.Time         `json:"createdAt" toml:"created_at"`
	LastUsed  *time.Time        `json:"lastUsed,omitempty" toml:"last_used,omitempty"`
}

type RoutineExercise struct {
	Exercise    Exercise `json:"exercise" toml:"exercise"`
	DefaultSets int      `json:"defaultSets" toml:"default_sets"`
}

func (r Routine) Clone() Routine {
	out := r
	if r.LastUsed != nil {
		t := *r.LastUsed
		out.LastUsed = &t
	}
	if r.Exercises != nil {
		out.Exercises = make([]RoutineExercise, len(r.Exercises))
		for i, re := range r.Exercises {
			out.Exercises[i] = RoutineExercise{Exercise: re.Exercise.clone(), DefaultSets: re.DefaultSets}
		}
	}
	return out
}

//
// For TOML parsing only
//

type RoutineTOML struct {
	Name      string                `toml:"name"`
	Exercises []RoutineExerciseTOML `toml:"exercise"`
}

type RoutineExerciseTOML struct {
	Name string `toml:"name"`
	Sets int    `toml:"sets"`
}
