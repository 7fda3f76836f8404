package request

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrEmptyChanges      = errors.New("changes must not be empty")
	ErrInvalidFieldValue = errors.New("invalid field value")
)

// VisitUpdateRequest is the body of PATCH /visits/:id. Changes is merged
// into the stored visit key by key.
type VisitUpdateRequest struct {
	Changes   map[string]any `json:"changes" binding:"required"`
	ActorID   string         `json:"actor_id"`
	ActorName string         `json:"actor_name"`
	Reason    string         `json:"reason"`
}

// enumeratedFields holds the changes whose values come from a closed set.
type enumeratedFields struct {
	Status   string `validate:"omitempty,oneof=scheduled in-progress completed cancelled rescheduled"`
	Type     string `validate:"omitempty,oneof=diagnosis repair follow-up installation maintenance"`
	Priority string `validate:"omitempty,oneof=low normal high urgent"`
}

var enumeratedKeys = []string{"status", "type", "priority"}

// Validate rejects empty changes and enumerated fields holding values outside
// their set. Other keys are not inspected.
func (r VisitUpdateRequest) Validate(v *validator.Validate) error {
	if len(r.Changes) == 0 {
		return ErrEmptyChanges
	}

	values := make(map[string]string, len(enumeratedKeys))
	for _, key := range enumeratedKeys {
		raw, ok := r.Changes[key]
		if !ok {
			continue
		}
		s, ok := raw.(string)
		if !ok || s == "" {
			return fmt.Errorf("%w: %s", ErrInvalidFieldValue, key)
		}
		values[key] = s
	}

	fields := enumeratedFields{Status: values["status"], Type: values["type"], Priority: values["priority"]}
	if err := v.Struct(fields); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFieldValue, err)
	}
	return nil
}
