package dto

import (
	"errors"
	"reflect"
	"strings"

	"skill-matrix/internal/domain/matching"
	"skill-matrix/internal/domain/personnel"
	"skill-matrix/internal/domain/project"

	"github.com/go-playground/validator/v10"
)

// FieldError is one failed rule, reported under the JSON field name.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	mustRegister(v, "proficiency", func(fl validator.FieldLevel) bool {
		_, ok := matching.ParseLevel(fl.Field().String())
		return ok
	})
	mustRegister(v, "project_status", func(fl validator.FieldLevel) bool {
		_, ok := project.ParseStatus(fl.Field().String())
		return ok
	})
	mustRegister(v, "experience_level", func(fl validator.FieldLevel) bool {
		_, ok := personnel.ParseExperienceLevel(fl.Field().String())
		return ok
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validate checks req against its validate tags.
func Validate(req any) error {
	return validate.Struct(req)
}

// FieldErrors flattens a validation error for the response body. Other
// errors yield nil.
func FieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
	}
	return out
}
