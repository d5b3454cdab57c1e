package twist

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var idRules = []validation.Rule{
	validation.Required.Error("must be set"),
	validation.Min(int64(1)).Error("must be positive"),
}

// requireID fails with ErrInvalidID unless id is a positive integer.
func requireID(id int64, entity string) error {
	if err := validation.Validate(id, idRules...); err != nil {
		return &ValidationError{Field: entity, Reason: ErrInvalidID, Err: err}
	}

	return nil
}

// requireIDs validates a non-empty list of identifiers.
func requireIDs(ids []int64, entity string) error {
	if err := validation.Validate(ids, validation.Required.Error("must not be empty")); err != nil {
		return &ValidationError{Field: entity + " list", Reason: ErrEmptyField, Err: err}
	}

	for _, id := range ids {
		if err := requireID(id, entity); err != nil {
			return err
		}
	}

	return nil
}

// optionalID validates id only when it is set.
func optionalID(id *int64, entity string) error {
	if id == nil {
		return nil
	}

	return requireID(*id, entity)
}

// requireText fails with ErrEmptyField if value is empty after trimming.
func requireText(value, field string) error {
	if err := validation.Validate(strings.TrimSpace(value), validation.Required); err != nil {
		return &ValidationError{Field: field, Reason: ErrEmptyField, Err: err}
	}

	return nil
}

// optionalText validates value only when it is set.
func optionalText(value *string, field string) error {
	if value == nil {
		return nil
	}

	return requireText(*value, field)
}

func requireOneOf[T comparable](value T, field string, allowed ...T) error {
	in := make([]any, len(allowed))
	for i, a := range allowed {
		in[i] = a
	}

	if err := validation.Validate(value, validation.Required, validation.In(in...)); err != nil {
		return &ValidationError{Field: field, Reason: ErrInvalidValue, Err: err}
	}

	return nil
}

// requireAny fails with ErrNothingToUpdate unless at least one of set is true.
func requireAny(fields string, set ...bool) error {
	for _, s := range set {
		if s {
			return nil
		}
	}

	return &ValidationError{Field: fields, Reason: ErrNothingToUpdate}
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// nonBlankIfSet rejects a value that is present but only whitespace.
func nonBlankIfSet(value, field string) error {
	if value == "" {
		return nil
	}

	return requireText(value, field)
}

// idIfSet validates a zero-means-absent identifier.
func idIfSet(id int64, entity string) error {
	if id == 0 {
		return nil
	}

	return requireID(id, entity)
}

func requireNonNegative(value int, field string) error {
	if err := validation.Validate(value, validation.Min(0)); err != nil {
		return &ValidationError{Field: field, Reason: ErrInvalidValue, Err: err}
	}

	return nil
}
