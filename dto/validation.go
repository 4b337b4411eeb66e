package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/portfolio-backend/errs"
)

// CollectFieldErrors converts a gin binding error into a field -> message
// map keyed by the form/json tag names, so every problem is reported at once.
// Errors that are not validator field errors land under a generic key.
func CollectFieldErrors(err error, obj interface{}) *errs.ValidationError {
	ve := errs.NewValidationError()

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		ve.Add("request", "malformed request body")
		return ve
	}

	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for _, fe := range fieldErrs {
		ve.Add(tagName(t, fe.StructField()), messageFor(fe))
	}
	return ve
}

// tagName resolves a struct field to its form (or json) tag
func tagName(t reflect.Type, field string) string {
	f, ok := t.FieldByName(field)
	if !ok {
		return strings.ToLower(field)
	}
	for _, tag := range []string{"form", "json"} {
		if name := strings.Split(f.Tag.Get(tag), ",")[0]; name != "" && name != "-" {
			return name
		}
	}
	return strings.ToLower(field)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return "is invalid"
	}
}
