package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/dmitrijs2005/studygroups/internal/apperror"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// report json names so messages match what the API calls the field
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Validate checks v's validate tags. Failures are returned as an
// *apperror.Error of kind Validation whose message describes the first
// failing field.
func Validate(v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperror.NewValidation(fieldMessage(verrs[0]), err)
	}
	return apperror.NewValidation("invalid request", err)
}

// Valid reports whether v passes Validate.
func Valid(v any) bool {
	return validatorInstance().Struct(v) == nil
}

func fieldMessage(e validator.FieldError) string {
	f := e.Field()
	switch e.Tag() {
	case "required", "required_if":
		return f + " is required"
	case "email":
		return f + " must be a valid email"
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", f, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", f, e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", f, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", f, e.Param())
	case "eqfield":
		return fmt.Sprintf("%s does not match %s", f, strings.ToLower(e.Param()))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", f, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", f, e.Param())
	default:
		return f + " is invalid"
	}
}
