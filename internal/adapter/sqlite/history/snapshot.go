package history

import (
	"encoding/json"
	"strconv"

	"github.com/heartmarshall/mytreino-backend/internal/domain"
)

// The workout_details wire shape predates this codebase: reps and weight are
// string-encoded and ids are loosely typed, because rows written by earlier
// app versions must stay readable. Encoding mirrors that shape exactly.

type snapshotSet struct {
	ID          string `json:"id"`
	Number      int    `json:"number"`
	Reps        string `json:"reps"`
	Weight      string `json:"weight"`
	WeightUnit  string `json:"weightUnit"`
	IsCompleted bool   `json:"isCompleted,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type snapshotExercise struct {
	ID       json.Number   `json:"id"`
	Name     string        `json:"name"`
	Category string        `json:"category,omitempty"`
	ImageURI string        `json:"imageUri,omitempty"`
	Sets     []snapshotSet `json:"sets"`
}

// encodeSnapshot serializes a deep snapshot of the exercise graph as
// performed. The input is already a clone: future mutations of the live
// workout cannot reach it.
func encodeSnapshot(exercises []domain.Exercise) ([]byte, error) {
	out := make([]snapshotExercise, len(exercises))
	for i, e := range exercises {
		se := snapshotExercise{
			ID:       json.Number(strconv.FormatInt(e.ID, 10)),
			Name:     e.Name,
			Category: e.Category,
			ImageURI: e.ImageURI,
			Sets:     make([]snapshotSet, len(e.Sets)),
		}
		for j, s := range e.Sets {
			se.Sets[j] = snapshotSet{
				ID:          s.ID,
				Number:      s.Number,
				Reps:        strconv.Itoa(s.Reps),
				Weight:      strconv.FormatFloat(s.Weight, 'f', -1, 64),
				WeightUnit:  s.Unit.String(),
				IsCompleted: s.Completed,
				Notes:       s.Notes,
			}
		}
		out[i] = se
	}
	return json.Marshal(out)
}

// decodeSnapshot deserializes a workout_details payload. A parse failure or
// a non-array payload yields an empty exercise list rather than an error:
// one corrupt row must not take the whole history read down with it.
func decodeSnapshot(raw string) []domain.Exercise {
	var snap []snapshotExercise
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return []domain.Exercise{}
	}

	out := make([]domain.Exercise, len(snap))
	for i, se := range snap {
		id, _ := se.ID.Int64()
		e := domain.Exercise{
			ID:       id,
			Name:     se.Name,
			Category: se.Category,
			ImageURI: se.ImageURI,
			Sets:     make([]domain.Set, len(se.Sets)),
		}
		for j, ss := range se.Sets {
			reps, _ := strconv.Atoi(ss.Reps)
			weight, _ := strconv.ParseFloat(ss.Weight, 64)
			e.Sets[j] = domain.Set{
				ID:        ss.ID,
				Number:    ss.Number,
				Reps:      reps,
				Weight:    weight,
				Unit:      domain.WeightUnit(ss.WeightUnit),
				Completed: ss.IsCompleted,
				Notes:     ss.Notes,
			}
		}
		out[i] = e
	}
	return out
}
