package validator

import "math"

// Validator collects validation errors keyed by field name.
type Validator struct {
	Errors map[string]string
}

// New returns a new Validator with an empty error map.
func New() *Validator {
	return &Validator{
		Errors: make(map[string]string),
	}
}

// Valid returns true when no errors were recorded.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records a message for key unless one already exists.
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

// Check records an error message if ok is false.
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// Between returns true if min <= value <= max.
func Between(value, min, max float64) bool {
	return value >= min && value <= max
}

// Integral returns true if value has no fractional part.
func Integral(value float64) bool {
	return !math.IsInf(value, 0) && value == math.Trunc(value)
}
