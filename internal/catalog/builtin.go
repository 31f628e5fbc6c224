package catalog

import "github.com/misterclayt0n/ratlog/internal/models"

var builtin = []models.Exercise{
	// Chest
	{ID: "bench-press", Name: "Bench Press", MuscleGroup: models.MuscleChest, Equipment: models.EquipmentBarbell, SecondaryMuscles: []models.MuscleGroup{models.MuscleTriceps, models.MuscleShoulders}},
	{ID: "incline-bench", Name: "Incline Bench Press", MuscleGroup: models.MuscleChest, Equipment: models.EquipmentBarbell, SecondaryMuscles: []models.MuscleGroup{models.MuscleShoulders, models.MuscleTriceps}},
	{ID: "db-fly", Name: "Dumbbell Fly", MuscleGroup: models.MuscleChest, Equipment: models.EquipmentDumbbell},
	{ID: "cable-crossover", Name: "Cable Crossover", MuscleGroup: models.MuscleChest, Equipment: models.EquipmentCable},
	{ID: "pushup", Name: "Push-Up", MuscleGroup: models.MuscleChest, Equipment: models.EquipmentBodyweight, SecondaryMuscles: []models.MuscleGroup{models.MuscleTriceps, models.MuscleShoulders}},
	{ID: "chest-press-machine", Name: "Chest Press Machine", MuscleGroup: models.MuscleChest, Equipment: models.EquipmentMachine},

	// Back
	{ID: "deadlift", Name: "Deadlift", MuscleGroup: models.MuscleBack, Equipment: models.EquipmentBarbell, SecondaryMuscles: []models.MuscleGroup{models.MuscleHamstrings, models.MuscleGlutes, models.MuscleForearms}},
	{ID: "barbell-row", Name: "Barbell Row", MuscleGroup: models.MuscleBack, Equipment: models.EquipmentBarbell, SecondaryMuscles: []models.MuscleGroup{models.MuscleBiceps, models.MuscleForearms}},
	{ID: "pullup", Name: "Pull-Up", MuscleGroup: models.MuscleBack, Equipment: models.EquipmentBodyweight, SecondaryMuscles: []models.MuscleGroup{models.MuscleBiceps}},
	{ID: "lat-pulldown", Name: "Lat Pulldown", MuscleGroup: models.MuscleBack, Equipment: models.EquipmentCable, SecondaryMuscles: []models.MuscleGroup{models.MuscleBiceps}},
	{ID: "seated-row", Name: "Seated Cable Row", MuscleGroup: models.MuscleBack, Equipment: models.EquipmentCable, SecondaryMuscles: []models.MuscleGroup{models.MuscleBiceps}},
	{ID: "db-row", Name: "Dumbbell Row", MuscleGroup: models.MuscleBack, Equipment: models.EquipmentDumbbell, SecondaryMuscles: []models.MuscleGroup{models.MuscleBiceps}},

	// Shoulders
	{ID: "ohp", Name: "Overhead Press", MuscleGroup: models.MuscleShoulders, Equipment: models.EquipmentBarbell, SecondaryMuscles: []models.MuscleGroup{models.MuscleTriceps}},
	{ID: "lateral-raise", Name: "Lateral Raise", MuscleGroup: models.MuscleShoulders, Equipment: models.EquipmentDumbbell},
	{ID: "face-pull", Name: "Face Pull", MuscleGroup: models.MuscleShoulders, Equipment: models.EquipmentCable, SecondaryMuscles: []models.MuscleGroup{models.MuscleBack}},
	{ID: "arnold-press", Name: "Arnold Press", MuscleGroup: models.MuscleShoulders, Equipment: models.EquipmentDumbbell, SecondaryMuscles: []models.MuscleGroup{models.MuscleTriceps}},

	// Biceps
	{ID: "barbell-curl", Name: "Barbell Curl", MuscleGroup: models.MuscleBiceps, Equipment: models.EquipmentBarbell, SecondaryMuscles: []models.MuscleGroup{models.MuscleForearms}},
	{ID: "db-curl", Name: "Dumbbell Curl", MuscleGroup: models.MuscleBiceps, Equipment: models.EquipmentDumbbell},
	{ID: "hammer-curl", Name: "Hammer Curl", MuscleGroup: models.MuscleBiceps, Equipment: models.EquipmentDumbbell, SecondaryMuscles: []models.MuscleGroup{models.MuscleForearms}},
	{ID: "preacher-curl", Name: "Preacher Curl", MuscleGroup: models.MuscleBiceps, Equipment: models.EquipmentMachine},

	// Triceps
	{ID: "tricep-pushdown", Name: "Tricep Pushdown", MuscleGroup: models.MuscleTriceps, Equipment: models.EquipmentCable},
	{ID: "skull-crusher", Name: "Skull Crusher", MuscleGroup: models.MuscleTriceps, Equipment: models.EquipmentBarbell},
	{ID: "overhead-extension", Name: "Overhead Tricep Extension", MuscleGroup: models.MuscleTriceps, Equipment: models.EquipmentDumbbell},
	{ID: "dips", Name: "Dips", MuscleGroup: models.MuscleTriceps, Equipment: models.EquipmentBodyweight, SecondaryMuscles: []models.MuscleGroup{models.MuscleChest, models.MuscleShoulders}},

	// Forearms
	{ID: "wrist-curl", Name: "Wrist Curl", MuscleGroup: models.MuscleForearms, Equipment: models.EquipmentBarbell},
	{ID: "reverse-curl", Name: "Reverse Curl", MuscleGroup: models.MuscleForearms, Equipment: models.EquipmentBarbell},

	// Core
	{ID: "crunch", Name: "Crunch", MuscleGroup: models.MuscleCore, Equipment: models.EquipmentBodyweight},
	{ID: "plank", Name: "Plank", MuscleGroup: models.MuscleCore, Equipment: models.EquipmentBodyweight},
	{ID: "leg-raise", Name: "Hanging Leg Raise", MuscleGroup: models.MuscleCore, Equipment: models.EquipmentBodyweight},
	{ID: "cable-crunch", Name: "Cable Crunch", MuscleGroup: models.MuscleCore, Equipment: models.EquipmentCable},

	// Quads
	{ID: "squat", Name: "Barbell Squat", MuscleGroup: models.MuscleQuads, Equipment: models.EquipmentBarbell, SecondaryMuscles: []models.MuscleGroup{models.MuscleGlutes, models.MuscleHamstrings, models.MuscleCore}},
	{ID: "leg-press", Name: "Leg Press", MuscleGroup: models.MuscleQuads, Equipment: models.EquipmentMachine, SecondaryMuscles: []models.MuscleGroup{models.MuscleGlutes}},
	{ID: "leg-extension", Name: "Leg Extension", MuscleGroup: models.MuscleQuads, Equipment: models.EquipmentMachine},
	{ID: "front-squat", Name: "Front Squat", MuscleGroup: models.MuscleQuads, Equipment: models.EquipmentBarbell, SecondaryMuscles: []models.MuscleGroup{models.MuscleCore, models.MuscleGlutes}},
	{ID: "lunge", Name: "Lunge", MuscleGroup: models.MuscleQuads, Equipment: models.EquipmentDumbbell, SecondaryMuscles: []models.MuscleGroup{models.MuscleGlutes, models.MuscleHamstrings}},

	// Hamstrings
	{ID: "rdl", Name: "Romanian Deadlift", MuscleGroup: models.MuscleHamstrings, Equipment: models.EquipmentBarbell, SecondaryMuscles: []models.MuscleGroup{models.MuscleGlutes, models.MuscleBack}},
	{ID: "leg-curl", Name: "Leg Curl", MuscleGroup: models.MuscleHamstrings, Equipment: models.EquipmentMachine},
	{ID: "nordic-curl", Name: "Nordic Curl", MuscleGroup: models.MuscleHamstrings, Equipment: models.EquipmentBodyweight},

	// Glutes
	{ID: "hip-thrust", Name: "Hip Thrust", MuscleGroup: models.MuscleGlutes, Equipment: models.EquipmentBarbell, SecondaryMuscles: []models.MuscleGroup{models.MuscleHamstrings}},
	{ID: "glute-bridge", Name: "Glute Bridge", MuscleGroup: models.MuscleGlutes, Equipment: models.EquipmentBodyweight},
	{ID: "cable-kickback", Name: "Cable Kickback", MuscleGroup: models.MuscleGlutes, Equipment: models.EquipmentCable},

	// Calves
	{ID: "calf-raise", Name: "Standing Calf Raise", MuscleGroup: models.MuscleCalves, Equipment: models.EquipmentMachine},
	{ID: "seated-calf-raise", Name: "Seated Calf Raise", MuscleGroup: models.MuscleCalves, Equipment: models.EquipmentMachine},
}
