// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RequestValidator validates request structs bound by Echo handlers.
type RequestValidator struct {
	validate *playground.Validate
}

// New creates a RequestValidator with struct tag validation enabled.
func New() *RequestValidator {
	return &RequestValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
