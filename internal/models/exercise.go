package models

type MuscleGroup string

const (
	MuscleChest      MuscleGroup = "chest"
	MuscleBack       MuscleGroup = "back"
	MuscleShoulders  MuscleGroup = "shoulders"
	MuscleBiceps     MuscleGroup = "biceps"
	MuscleTriceps    MuscleGroup = "triceps"
	MuscleForearms   MuscleGroup = "forearms"
	MuscleCore       MuscleGroup = "core"
	MuscleQuads      MuscleGroup = "quads"
	MuscleHamstrings MuscleGroup = "hamstrings"
	MuscleGlutes     MuscleGroup = "glutes"
	MuscleCalves     MuscleGroup = "calves"
)

// MuscleGroups lists every muscle group in display order.
var MuscleGroups = []MuscleGroup{
	MuscleChest, MuscleBack, MuscleShoulders, MuscleBiceps, MuscleTriceps,
	MuscleForearms, MuscleCore, MuscleQuads, MuscleHamstrings, MuscleGlutes, MuscleCalves,
}

var muscleGroupLabels = map[MuscleGroup]string{
	MuscleChest:      "Chest",
	MuscleBack:       "Back",
	MuscleShoulders:  "Shoulders",
	MuscleBiceps:     "Biceps",
	MuscleTriceps:    "Triceps",
	MuscleForearms:   "Forearms",
	MuscleCore:       "Core",
	MuscleQuads:      "Quads",
	MuscleHamstrings: "Hamstrings",
	MuscleGlutes:     "Glutes",
	MuscleCalves:     "Calves",
}

func (m MuscleGroup) String() string {
	return string(m)
}

func (m MuscleGroup) IsValid() bool {
	_, ok := muscleGroupLabels[m]
	return ok
}

// Label returns the display name, falling back to the raw value for unknown groups.
func (m MuscleGroup) Label() string {
	if l, ok := muscleGroupLabels[m]; ok {
		return l
	}
	return string(m)
}

type Equipment string

const (
	EquipmentBarbell        Equipment = "barbell"
	EquipmentDumbbell       Equipment = "dumbbell"
	EquipmentMachine        Equipment = "machine"
	EquipmentCable          Equipment = "cable"
	EquipmentBodyweight     Equipment = "bodyweight"
	EquipmentSmithMachine   Equipment = "smith_machine"
	EquipmentKettlebell     Equipment = "kettlebell"
	EquipmentResistanceBand Equipment = "resistance_band"
)

var equipmentLabels = map[Equipment]string{
	EquipmentBarbell:        "Barbell",
	EquipmentDumbbell:       "Dumbbell",
	EquipmentMachine:        "Machine",
	EquipmentCable:          "Cable",
	EquipmentBodyweight:     "Bodyweight",
	EquipmentSmithMachine:   "Smith Machine",
	EquipmentKettlebell:     "Kettlebell",
	EquipmentResistanceBand: "Band",
}

func (e Equipment) String() string {
	return string(e)
}

func (e Equipment) IsValid() bool {
	_, ok := equipmentLabels[e]
	return ok
}

func (e Equipment) Label() string {
	if l, ok := equipmentLabels[e]; ok {
		return l
	}
	return string(e)
}

// Exercise is a catalog entry. Workouts embed a copy of it so history stays
// stable when the catalog entry changes or goes away.
type Exercise struct {
	ID               string        `json:"id" toml:"id"`
	Name             string        `json:"name" toml:"name"`
	MuscleGroup      MuscleGroup   `json:"muscleGroup" toml:"muscle_group"`
	SecondaryMuscles []MuscleGroup `json:"secondaryMuscles,omitempty" toml:"secondary_muscles,omitempty"`
	Equipment        Equipment     `json:"equipment" toml:"equipment"`
	Instructions     string        `json:"instructions,omitempty" toml:"instructions,omitempty"`
	IsCustom         bool          `json:"isCustom,omitempty" toml:"is_custom,omitempty"`
}

func (e Exercise) clone() Exercise {
	if e.SecondaryMuscles != nil {
		e.SecondaryMuscles = append([]MuscleGroup(nil), e.SecondaryMuscles...)
	}
	return e
}

//
// For TOML parsing only
//

type ExerciseDefTOML struct {
	Name             string   `toml:"name"`
	MuscleGroup      string   `toml:"muscle_group"`
	SecondaryMuscles []string `toml:"secondary_muscles"`
	Equipment        string   `toml:"equipment"`
	Instructions     string   `toml:"instructions"`
}

type ExerciseImport struct {
	Exercises []ExerciseDefTOML `toml:"exercise"`
}
