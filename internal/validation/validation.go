// Package validation holds the form rules for the login screen and the
// employee form.
//
// Rules are declared as validate:"..." tags on types.Credentials and
// types.EmployeeFields and checked by go-playground/validator. This
// package registers the custom tags those structs use and turns the
// validator's FieldErrors into the field → message map the forms show.
//
// Every field is checked on every call; a submission reports all of its
// problems at once, never just the first one.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/employee-dashboard/internal/types"
)

// ErrValidationFailed is wrapped by every *ValidationError.
var ErrValidationFailed = errors.New("validation failed")

var (
	// local-part@domain.tld with a 2–6 letter tld
	loginEmailRe = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)
	// x@y.z, anything but whitespace and '@' in each part
	looseEmailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// SpecialChars is the set a login password must draw at least one
// character from.
const SpecialChars = `!@#$%^&*(),.?":{}|<>`

// validate is safe for concurrent use and caches struct metadata, so one
// instance serves the whole process.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their JSON names ("fullName", not "FullName")
	// so the error map keys line up with the form inputs.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "login_email", func(fl validator.FieldLevel) bool {
		return loginEmailRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "loose_email", func(fl validator.FieldLevel) bool {
		return looseEmailRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "special_char", func(fl validator.FieldLevel) bool {
		return strings.ContainsAny(fl.Field().String(), SpecialChars)
	})
	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "region", func(fl validator.FieldLevel) bool {
		return slices.Contains(types.States, fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// Errors maps a form field name to the message shown next to it.
// An empty map means the form may be submitted.
type Errors map[string]string

// Clear drops the error of a single field, as happens when the user edits
// that field. Other fields keep their errors.
func (e Errors) Clear(field string) {
	delete(e, field)
}

// Err returns nil when e is empty and a *ValidationError otherwise.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return &ValidationError{Fields: e}
}

// ValidationError carries the per-field messages of a rejected form.
type ValidationError struct {
	Fields Errors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidationFailed }

// messages maps "field/tag" to the text the form shows for that failure.
var messages = map[string]string{
	"email/required":        "Email is required",
	"email/login_email":     "Please enter a valid email (e.g., user@example.com)",
	"password/required":     "Password is required",
	"password/min":          "Password must be at least 6 characters",
	"password/special_char": "Password must contain at least one special character (!@#$...)",

	"fullName/notblank": "Full Name is required",
	"dob/required":      "Date of Birth is required",
	"state/required":    "State is required",
	"state/region":      "Please select a valid state",
	"email/loose_email": "Invalid email address",
	"gender/oneof":      "Gender must be Male, Female or Other",
}

// ValidateLogin checks the login form.
func ValidateLogin(creds types.Credentials) Errors {
	return check(creds)
}

// ValidateEmployee checks the employee form. The image is not part of
// this check; see EncodeImage.
func ValidateEmployee(fields types.EmployeeFields) Errors {
	return check(fields)
}

func check(s any) Errors {
	errs := Errors{}

	err := validate.Struct(s)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError: a programming error, not user input.
		panic(fmt.Sprintf("validation: %v", err))
	}

	for _, fe := range fieldErrs {
		msg, ok := messages[fe.Field()+"/"+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		// validator reports only the first failing tag per field
		errs[fe.Field()] = msg
	}
	return errs
}
