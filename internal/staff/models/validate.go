package models

import (
	"errors"
	"fmt"
	"reflect"

	e "github.com/gartstein/staff/internal/staff/errors"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their human name, e.g. "street address"
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("label")
	})
	_ = v.RegisterValidation("usstate", func(fl validator.FieldLevel) bool {
		return USState(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("jobrole", func(fl validator.FieldLevel) bool {
		return JobRole(fl.Field().String()).IsValid()
	})
	return v
}

type addressParams struct {
	StreetAddress string  `label:"street address" validate:"required"`
	City          string  `label:"city" validate:"required"`
	State         USState `label:"state" validate:"omitempty,usstate"`
	ZipCode       string  `label:"zip code" validate:"required"`
}

type employeeParams struct {
	Name    string   `label:"name" validate:"required"`
	JobRole JobRole  `label:"job role" validate:"omitempty,jobrole"`
	Address *Address `label:"address" validate:"required"`
}

// validateParams checks params and converts the first failing field into
// an ErrInvalidArgument naming that field. Fields are checked in declaration order.
func validateParams(subject string, params any) error {
	err := validate.Struct(params)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %s: %v", e.ErrInvalidArgument, subject, err)
	}
	first := fieldErrs[0]
	if first.Tag() == "required" {
		return fmt.Errorf("%w: cannot create %s with an empty %s field", e.ErrInvalidArgument, subject, first.Field())
	}
	return fmt.Errorf("%w: cannot create %s with an invalid %s field %q",
		e.ErrInvalidArgument, subject, first.Field(), fmt.Sprint(first.Value()))
}
