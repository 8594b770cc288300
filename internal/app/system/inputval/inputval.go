// Package inputval validates form input structs before anything touches the
// platform API.
//
// Rules are declared with go-playground/validator struct tags; a `label` tag
// supplies the human-readable field name used in messages:
//
//	type createOrgInput struct {
//		Name string `validate:"required,max=200" label:"Organization name"`
//	}
//
//	if result := inputval.Validate(input); result.HasErrors() {
//		renderWithError(result)
//		return
//	}
//
// Validation failure is local-only: handlers re-render the form and never
// call a store with an invalid value set.
package inputval

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report the label tag as the field name so messages read naturally.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})
	return v
}

// Result carries field-keyed validation messages. Keys are Go struct field
// names; values are complete sentences ready for display next to the input.
type Result struct {
	fields map[string]string
	order  []string
}

// HasErrors reports whether any field failed validation.
func (r Result) HasErrors() bool { return len(r.fields) > 0 }

// First returns the first failure message in struct declaration order, or ""
// when validation passed. Used for the single banner above the form.
func (r Result) First() string {
	if len(r.order) == 0 {
		return ""
	}
	return r.fields[r.order[0]]
}

// Field returns the message for a struct field, or "" if that field passed.
func (r Result) Field(name string) string { return r.fields[name] }

// Fields returns the full field→message map for template rendering.
func (r Result) Fields() map[string]string { return r.fields }

// Validate checks v against its struct tags and collects one message per
// failed field.
func Validate(v any) Result {
	err := validate.Struct(v)
	if err == nil {
		return Result{}
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-validation errors (nil input, non-struct) are programmer
		// mistakes; surface them loudly instead of silently passing.
		panic(fmt.Sprintf("inputval: %v", err))
	}
	res := Result{fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		name := fe.StructField()
		if _, dup := res.fields[name]; dup {
			continue
		}
		res.fields[name] = message(fe)
		res.order = append(res.order, name)
	}
	return res
}

// message renders one failed rule as a sentence. fe.Field() is the label tag.
func message(fe validator.FieldError) string {
	label := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address.", label)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters.", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s.", label, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters.", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s.", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", label, strings.Join(strings.Fields(fe.Param()), ", "))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s.", label, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s.", label, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a valid date (YYYY-MM-DD).", label)
	default:
		return fmt.Sprintf("%s is invalid.", label)
	}
}
