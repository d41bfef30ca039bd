package workout

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/mytreino-backend/internal/domain"
)

// SetInput carries the typed fields of one draft set. The string-encoded
// text-input representation is a UI concern: the UI converts to/from these
// typed values at its own boundary and treats parse failure as a validation
// error there.
type SetInput struct {
	Reps   int
	Weight float64
	Unit   domain.WeightUnit
	Notes  string
}

// ExerciseInput is one draft exercise-instance. Category and ImageURI, when
// non-empty, overwrite the canonical exercise row's values on resolve.
type ExerciseInput struct {
	Name     string
	Category string
	ImageURI string
	Sets     []SetInput
}

// SaveWorkoutInput is a full workout draft.
type SaveWorkoutInput struct {
	Name      string
	Category  domain.WorkoutCategory
	Exercises []ExerciseInput
}

// Validate rejects invalid drafts before any write is attempted, so no
// partial state ever reaches the store.
func (in SaveWorkoutInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if !in.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: fmt.Sprintf("unknown category %q", in.Category)})
	}
	if len(in.Exercises) == 0 {
		errs = append(errs, domain.FieldError{Field: "exercises", Message: "at least one exercise is required"})
	}

	for i, ex := range in.Exercises {
		field := fmt.Sprintf("exercises[%d]", i)
		if strings.TrimSpace(ex.Name) == "" {
			errs = append(errs, domain.FieldError{Field: field + ".name", Message: "required"})
		}
		if len(ex.Sets) == 0 {
			errs = append(errs, domain.FieldError{Field: field + ".sets", Message: "at least one set is required"})
		}
		for j, s := range ex.Sets {
			setField := fmt.Sprintf("%s.sets[%d]", field, j)
			if s.Reps < 0 {
				errs = append(errs, domain.FieldError{Field: setField + ".reps", Message: "must not be negative"})
			}
			if s.Weight < 0 {
				errs = append(errs, domain.FieldError{Field: setField + ".weight", Message: "must not be negative"})
			}
			if !s.Unit.IsValid() {
				errs = append(errs, domain.FieldError{Field: setField + ".weightUnit", Message: fmt.Sprintf("unknown unit %q", s.Unit)})
			}
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// toSets converts draft sets to domain sets with client-side temporary ids
// and contiguous numbering. The store assigns real row ids on insert.
func (ex ExerciseInput) toSets() []domain.Set {
	sets := make([]domain.Set, len(ex.Sets))
	for i, s := range ex.Sets {
		sets[i] = domain.Set{
			ID:     uuid.NewString(),
			Number: i + 1,
			Reps:   s.Reps,
			Weight: s.Weight,
			Unit:   s.Unit,
			Notes:  s.Notes,
		}
	}
	return sets
}

// optional returns nil for empty strings, so empty draft fields don't
// overwrite canonical exercise metadata on resolve.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
