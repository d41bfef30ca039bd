package workout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mytreino-backend/internal/domain"
)

// SeedDefaults inserts the starter workouts on first run. Any existing
// workouts row suppresses seeding entirely, so user data is never mixed with
// defaults.
func (s *Service) SeedDefaults(ctx context.Context) error {
	count, err := s.workouts.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}
	if count > 0 {
		s.log.Debug("workouts already exist, skipping seeding")
		return nil
	}

	for _, in := range defaultWorkouts() {
		if _, err := s.Save(ctx, in); err != nil {
			return fmt.Errorf("seed workout %q: %w", in.Name, err)
		}
	}

	s.log.Info("default workouts seeded", slog.Int("count", len(defaultWorkouts())))
	return nil
}

func kg(reps int, weight float64) SetInput {
	return SetInput{Reps: reps, Weight: weight, Unit: domain.UnitKilograms}
}

func plates(reps int, weight float64) SetInput {
	return SetInput{Reps: reps, Weight: weight, Unit: domain.UnitPlates}
}

func seedExercise(name string, sets ...SetInput) ExerciseInput {
	return ExerciseInput{Name: name, Sets: sets}
}

func defaultWorkouts() []SaveWorkoutInput {
	return []SaveWorkoutInput{
		{
			Name:     "Academia - Costas e Bíceps",
			Category: domain.CategoryBackBiceps,
			Exercises: []ExerciseInput{
				seedExercise("Puxada Alta pela Frente", kg(10, 35), kg(8, 40), kg(8, 45)),
				seedExercise("Remada Baixa", kg(10, 40), kg(8, 45), kg(8, 50)),
				seedExercise("Puxada Invertida (Máquina)", kg(10, 30), kg(8, 35), kg(8, 45)),
				seedExercise("Pull Down na Polia (Braço Reto)", plates(12, 6), plates(12, 6), plates(12, 7)),
				seedExercise("Bíceps Inclinado com Halteres", kg(10, 14), kg(10, 14), kg(10, 14)),
				seedExercise("Bíceps Scott", plates(10, 4), plates(8, 5), plates(8, 6)),
			},
		},
		{
			Name:     "Academia - Peito e Tríceps",
			Category: domain.CategoryChestTriceps,
			Exercises: []ExerciseInput{
				seedExercise("Supino Reto com Barra", kg(10, 10), kg(8, 15), kg(8, 15)),
				seedExercise("Supino Inclinado com Halteres", kg(10, 20), kg(8, 22), kg(8, 24)),
				seedExercise("Voador (Pec Deck)", kg(10, 60), kg(8, 65), kg(8, 70)),
				seedExercise("Cross na Polia Alta", plates(12, 3), plates(12, 3), plates(12, 4)),
				seedExercise("Elevação Lateral na Polia", plates(12, 2), plates(12, 2), plates(12, 2)),
				seedExercise("Tríceps Pulley na Polia", plates(12, 5), plates(12, 6), plates(12, 7)),
				seedExercise("Tríceps Francês com Halter", kg(10, 14), kg(8, 16), kg(8, 18)),
			},
		},
		{
			Name:     "Academia - Inferiores e Ombros",
			Category: domain.CategoryLegs,
			Exercises: []ExerciseInput{
				seedExercise("Cadeira Abdutora", plates(15, 5), plates(15, 6), plates(15, 6)),
				seedExercise("Cadeira Adutora", plates(15, 6), plates(15, 7), plates(15, 8)),
				seedExercise("Leg Press Articulado", kg(15, 50), kg(15, 60), kg(15, 60)),
				seedExercise("Passada com Halteres", kg(30, 10), kg(30, 10), kg(30, 10)),
				seedExercise("Cadeira Extensora", plates(10, 10), plates(10, 12), plates(10, 13)),
				seedExercise("Mesa Flexora", plates(10, 6), plates(10, 7), plates(10, 7)),
			},
		},
	}
}
