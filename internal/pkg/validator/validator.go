// Package validator plugs go-playground/validator into echo.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/piresc/unityride/internal/pkg/apperr"
	"github.com/piresc/unityride/internal/pkg/models"
)

// RequestValidator implements echo.Validator
type RequestValidator struct {
	validate *validator.Validate
}

// New builds a validator with the custom tags registered
func New() *RequestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// "onboarding_role" accepts the roles a user may pick for themselves
	_ = v.RegisterValidation("onboarding_role", func(fl validator.FieldLevel) bool {
		role, err := models.ParseRole(fl.Field().String())
		return err == nil && role != models.RoleAdmin
	})
	return &RequestValidator{validate: v}
}

// Validate checks struct tags and returns an apperr validation error
func (rv *RequestValidator) Validate(i interface{}) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperr.Validation("invalid request")
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return apperr.Validation("%s", strings.Join(msgs, "; "))
}

// ValidateID rejects path parameters that are not UUIDs
func (rv *RequestValidator) ValidateID(name, id string) error {
	if err := rv.validate.Var(id, "required,uuid"); err != nil {
		return apperr.Validation("invalid %s", name)
	}
	return nil
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "onboarding_role":
		return fmt.Sprintf("%s must be one of RIDER, DRIVER, DRIVER-RIDER", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

var std = New()

// ValidateID checks a path parameter with the shared validator
func ValidateID(name, id string) error {
	return std.ValidateID(name, id)
}
