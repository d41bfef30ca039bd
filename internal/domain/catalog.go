package domain

import "strings"

// CustomExercisePrefix marks catalog entries created by the user, as opposed
// to the builtin reference catalog shipped with the application.
const CustomExercisePrefix = "custom_"

// CatalogExercise is a reference template for building workouts: a named
// movement with default set/rep counts and usage instructions. Builtin
// entries are immutable; custom entries live in the key-value side store.
type CatalogExercise struct {
	ID           string
	Name         string
	Description  string
	MuscleGroups []MuscleGroup
	ImageURI     string
	DefaultSets  int
	DefaultReps  int
	Instructions []string
}

// IsCustom reports whether the entry was created by the user.
func (c CatalogExercise) IsCustom() bool {
	return strings.HasPrefix(c.ID, CustomExercisePrefix)
}
