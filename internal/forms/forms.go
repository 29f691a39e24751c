// Package forms declares the typed input structs for each action and validates
// them with go-playground/validator, returning field-level messages suitable
// for re-rendering the form.
package forms

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterForm carries the registration fields.
type RegisterForm struct {
	Username  string `form:"username" validate:"required,max=20"`
	Password  string `form:"password" validate:"required,min=6,max=55"`
	Email     string `form:"email" validate:"required,email,max=50"`
	FirstName string `form:"first_name" validate:"required,max=30"`
	LastName  string `form:"last_name" validate:"required,max=30"`
}

// LoginForm carries the login fields.
type LoginForm struct {
	Username string `form:"username" validate:"required,max=20"`
	Password string `form:"password" validate:"required,min=6,max=55"`
}

// FeedbackForm carries the fields shared by feedback creation and editing.
type FeedbackForm struct {
	Title   string `form:"title" validate:"required,max=100"`
	Content string `form:"content" validate:"required"`
}

// FieldErrors maps a form field name to its validation messages.
type FieldErrors map[string][]string

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report errors under the form field name, not the Go struct field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks a form struct and returns per-field messages. It runs in
// full on every submission; nothing is carried over from earlier attempts.
// A non-nil error means the value could not be validated at all.
func Validate(form interface{}) (FieldErrors, error) {
	err := validate.Struct(form)
	if err == nil {
		return nil, nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, err
	}

	fieldErrs := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		fieldErrs[fe.Field()] = append(fieldErrs[fe.Field()], message(fe))
	}
	return fieldErrs, nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Invalid email address."
	case "min":
		return fmt.Sprintf("Must be at least %s characters long.", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters long.", fe.Param())
	default:
		return "Invalid value."
	}
}
