package catalog

import "github.com/heartmarshall/mytreino-backend/internal/domain"

// builtinCatalog is the reference exercise list shipped with the
// application. Entries are immutable; user-created entries live in the
// key-value side store under the custom_ id namespace.
var builtinCatalog = []domain.CatalogExercise{
	{
		ID:           "supino-reto",
		Name:         "Supino Reto",
		Description:  "Exercício básico para desenvolvimento do peitoral",
		MuscleGroups: []domain.MuscleGroup{domain.MuscleChest, domain.MuscleTriceps},
		ImageURI:     "https://static.strengthlevel.com/images/illustrations/bench-press-1000x1000.jpg",
		DefaultSets:  3,
		DefaultReps:  12,
		Instructions: []string{
			"Deite no banco com os pés apoiados no chão",
			"Segure a barra com as mãos um pouco mais abertas que a largura dos ombros",
			"Desça a barra controladamente até tocar levemente o peito",
			"Empurre a barra para cima até estender os braços",
		},
	},
	{
		ID:           "puxada-frente",
		Name:         "Puxada pela Frente",
		Description:  "Exercício para desenvolvimento das costas",
		MuscleGroups: []domain.MuscleGroup{domain.MuscleBack, domain.MuscleBiceps},
		ImageURI:     "https://static.strengthlevel.com/images/illustrations/lat-pulldown-1000x1000.jpg",
		DefaultSets:  3,
		DefaultReps:  12,
		Instructions: []string{
			"Sente-se na máquina com os joelhos fixos",
			"Segure a barra com as mãos mais abertas que os ombros",
			"Puxe a barra até a altura do peito",
			"Retorne controladamente à posição inicial",
		},
	},
	{
		ID:           "agachamento",
		Name:         "Agachamento",
		Description:  "Exercício fundamental para pernas",
		MuscleGroups: []domain.MuscleGroup{domain.MuscleLegs},
		ImageURI:     "https://static.strengthlevel.com/images/illustrations/squat-1000x1000.jpg",
		DefaultSets:  3,
		DefaultReps:  12,
		Instructions: []string{
			"Posicione a barra nas costas, apoiada nos trapézios",
			"Pés na largura dos ombros",
			"Desça até as coxas ficarem paralelas ao chão",
			"Suba empurrando através dos calcanhares",
		},
	},
}

// Builtin returns a copy of the builtin catalog.
func Builtin() []domain.CatalogExercise {
	out := make([]domain.CatalogExercise, len(builtinCatalog))
	copy(out, builtinCatalog)
	return out
}
