// Package validator wraps the go-playground/validator library for
// declarative struct validation with standardized error formatting.
//
// Struct fields are validated through tags (e.g., `validate:"required"`);
// failures produce a multi-error chain rooted at ErrValidationFailed.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error in the chain returned when a
// struct fails validation, so callers can detect failures with errors.Is
// even when multiple field errors are present.
var ErrValidationFailed = errors.New("struct validation failed")

// validator is the singleton go-playground instance, built on package load.
var validator *gvalidator.Validate

// errStringFormat describes a single failed field.
//
// Example: "'Address': value '' does not meet the requirements for the 'required' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
}

// formatError turns raw validator errors into the ErrValidationFailed
// chain. Non-validation errors pass through unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		err := fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		)

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Validate checks whether the given struct satisfies its validation tags.
// It returns nil on success, or a combined error containing
// ErrValidationFailed plus one formatted message per failed field.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
