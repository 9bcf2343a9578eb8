// Package validation provides request payload validation.
package validation

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validator collects field errors for a single payload.
type Validator struct {
	Errors map[string]string
}

// New creates a new validator.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds an error to the validator. The first error per field wins.
func (v *Validator) AddError(field, message string) {
	if _, exists := v.Errors[field]; !exists {
		v.Errors[field] = message
	}
}

// Check adds an error if the condition is false.
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Required checks that a string is not blank.
func (v *Validator) Required(field, value string) {
	v.Check(strings.TrimSpace(value) != "", field, "must not be empty")
}

// Email validates email format.
func (v *Validator) Email(field, email string) {
	v.Check(emailRegex.MatchString(email), field, "must be a valid email address")
}

// NonNegative checks that an amount is zero or greater.
func (v *Validator) NonNegative(field string, amount float64) {
	v.Check(amount >= 0, field, "must not be negative")
}

// First returns an arbitrary single error message, for handlers that
// report one failure at a time.
func (v *Validator) First() string {
	for field, msg := range v.Errors {
		return field + " " + msg
	}
	return ""
}
