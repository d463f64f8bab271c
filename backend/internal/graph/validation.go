package graph

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "redesocial/backend/pkg/errors"
)

var validate = validator.New()

// Normalize trims surrounding whitespace from the text fields
func (in PersonInput) Normalize() PersonInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Location = strings.TrimSpace(in.Location)
	return in
}

// Validate checks the input invariants: non-empty name and location and a
// non-negative age. The first failing field is reported.
func (in PersonInput) Validate() error {
	err := validate.Struct(in.Normalize())
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewValidationFailed("input", err.Error())
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return apperrors.NewValidationFailed(field, "is required")
	case "gte":
		return apperrors.NewValidationFailed(field, "must be a non-negative integer")
	default:
		return apperrors.NewValidationFailed(field, "is invalid")
	}
}
