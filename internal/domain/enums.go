package domain

// WorkoutCategory groups a workout by its training focus.
type WorkoutCategory string

const (
	CategoryChestTriceps WorkoutCategory = "chest-triceps"
	CategoryBackBiceps   WorkoutCategory = "back-biceps"
	CategoryLegs         WorkoutCategory = "legs"
	CategoryShoulders    WorkoutCategory = "shoulders"
	CategoryOther        WorkoutCategory = "other"
)

func (c WorkoutCategory) String() string { return string(c) }

func (c WorkoutCategory) IsValid() bool {
	switch c {
	case CategoryChestTriceps, CategoryBackBiceps, CategoryLegs, CategoryShoulders, CategoryOther:
		return true
	}
	return false
}

// Label returns the pt-BR display label for the category.
func (c WorkoutCategory) Label() string {
	switch c {
	case CategoryChestTriceps:
		return "Peito e Tríceps"
	case CategoryBackBiceps:
		return "Costas e Bíceps"
	case CategoryLegs:
		return "Pernas"
	case CategoryShoulders:
		return "Ombros"
	case CategoryOther:
		return "Outro"
	}
	return "Desconhecido"
}

// WeightUnit is the unit a set's weight is expressed in.
// "plates" counts machine stack plates rather than an absolute mass.
type WeightUnit string

const (
	UnitKilograms WeightUnit = "kg"
	UnitPlates    WeightUnit = "plates"
	UnitPounds    WeightUnit = "lbs"
)

func (u WeightUnit) String() string { return string(u) }

func (u WeightUnit) IsValid() bool {
	switch u {
	case UnitKilograms, UnitPlates, UnitPounds:
		return true
	}
	return false
}

// Label returns the pt-BR display label for the unit.
func (u WeightUnit) Label() string {
	switch u {
	case UnitKilograms:
		return "Quilogramas (kg)"
	case UnitPlates:
		return "Placas"
	case UnitPounds:
		return "Libras (lbs)"
	}
	return string(u)
}

// MuscleGroup tags a catalog exercise with the muscles it targets.
type MuscleGroup string

const (
	MuscleChest     MuscleGroup = "chest"
	MuscleBack      MuscleGroup = "back"
	MuscleLegs      MuscleGroup = "legs"
	MuscleShoulders MuscleGroup = "shoulders"
	MuscleBiceps    MuscleGroup = "biceps"
	MuscleTriceps   MuscleGroup = "triceps"
	MuscleAbs       MuscleGroup = "abs"
	MuscleGlutes    MuscleGroup = "glutes"
)

func (m MuscleGroup) String() string { return string(m) }

func (m MuscleGroup) IsValid() bool {
	switch m {
	case MuscleChest, MuscleBack, MuscleLegs, MuscleShoulders,
		MuscleBiceps, MuscleTriceps, MuscleAbs, MuscleGlutes:
		return true
	}
	return false
}
