// Package schema defines the Mastodon wire entities as defaulted records with a validation gate
package schema

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Record is a Mastodon entity under construction or ready for encoding
type Record = map[string]any

var (
	// ErrMissingFields is matched by MissingFieldsError
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidType is matched by an InvalidValueError on an enumerated type field
	ErrInvalidType = errors.New("invalid type")

	// ErrInvalidSource is matched by an InvalidValueError on an enumerated source field
	ErrInvalidSource = errors.New("invalid source")
)

// MissingFieldsError lists required fields that are absent or nil
type MissingFieldsError struct {
	Entity string
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s: missing required fields: %s", e.Entity, strings.Join(e.Fields, ", "))
}

// Is matches ErrMissingFields
func (e *MissingFieldsError) Is(target error) bool { return target == ErrMissingFields }

// InvalidValueError reports a value outside an enumeration
type InvalidValueError struct {
	Entity string
	Field  string
	Value  any
	Kind   error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: %v: %s=%v", e.Entity, e.Kind, e.Field, e.Value)
}

// Unwrap exposes the sentinel kind
func (e *InvalidValueError) Unwrap() error { return e.Kind }

// Enum restricts a field to a fixed set of strings
type Enum struct {
	Field  string
	Values []string
	Kind   error
}

// Schema describes one entity
type Schema struct {
	name     string
	defaults func() Record
	required []string
	enums    []Enum
}

// Name returns the entity name used in logs and metrics
func (s Schema) Name() string { return s.name }

// Defaults returns a fresh copy of the baseline record
func (s Schema) Defaults() Record {
	if s.defaults == nil {
		return Record{}
	}
	return s.defaults()
}

// Required returns the required field names
func (s Schema) Required() []string {
	out := make([]string, len(s.required))
	copy(out, s.required)
	return out
}

// New merges overrides over the defaults, overrides win and unknown keys are kept
func (s Schema) New(overrides Record) Record {
	r := s.Defaults()
	for k, v := range overrides {
		r[k] = v
	}
	return r
}

// Validate checks required presence, then enumerations
func (s Schema) Validate(r Record) error {
	v := validate()

	rules := make(map[string]any, len(s.required))
	data := make(map[string]any, len(s.required))
	for _, f := range s.required {
		rules[f] = "present"
		data[f] = r[f]
	}
	if errs := v.ValidateMap(data, rules); len(errs) > 0 {
		missing := make([]string, 0, len(errs))
		for f := range errs {
			missing = append(missing, f)
		}
		sort.Strings(missing)
		return &MissingFieldsError{Entity: s.name, Fields: missing}
	}

	for _, e := range s.enums {
		val := r[e.Field]
		str, ok := val.(string)
		if !ok || v.Var(str, "oneof="+strings.Join(e.Values, " ")) != nil {
			return &InvalidValueError{Entity: s.name, Field: e.Field, Value: val, Kind: e.Kind}
		}
	}
	return nil
}

var validate = sync.OnceValue(func() *validator.Validate {
	v := validator.New()
	// present fails on nil and on nil pointers, slices and maps; zero scalars pass
	_ = v.RegisterValidation("present", func(fl validator.FieldLevel) bool {
		f := fl.Field()
		switch f.Kind() {
		case reflect.Invalid:
			return false
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
			return !f.IsNil()
		}
		return true
	}, true)
	return v
})

func list() []any { return []any{} }
