package fields

import "reflect"

// Unloaded marks an association the data source did not fetch
type Unloaded struct{}

// NotLoaded is the shared Unloaded value
var NotLoaded = Unloaded{}

// RelState is the three way state of an optional relation
type RelState uint8

const (
	// RelAbsent means the relation was fetched and holds nothing
	RelAbsent RelState = iota

	// RelNotLoaded means nobody fetched the relation
	RelNotLoaded

	// RelLoaded means the relation was fetched and holds a value
	RelLoaded
)

// Rel is an optional relation on a typed record
// the fetch boundary decides up front what gets loaded; mappers only ever see Loaded or Absent
type Rel[T any] struct {
	state RelState
	val   T
}

// Loaded wraps a fetched value
func Loaded[T any](v T) Rel[T] { return Rel[T]{state: RelLoaded, val: v} }

// Absent is a fetched relation with no value
func Absent[T any]() Rel[T] { return Rel[T]{state: RelAbsent} }

// Unfetched is a relation nobody loaded
func Unfetched[T any]() Rel[T] { return Rel[T]{state: RelNotLoaded} }

// State returns the relation state
func (r Rel[T]) State() RelState { return r.state }

// Get returns the value when loaded
func (r Rel[T]) Get() (T, bool) { return r.val, r.state == RelLoaded }

// relValue lets the untyped accessors read any Rel[T]
func (r Rel[T]) relValue() (any, bool) {
	if r.state != RelLoaded {
		return nil, false
	}
	return r.val, true
}

type relation interface{ relValue() (any, bool) }

// unwrap collapses sentinels, relations and typed nil pointers into plain values
func unwrap(v any) any {
	switch x := v.(type) {
	case nil, Unloaded, *Unloaded:
		return nil
	case relation:
		val, ok := x.relValue()
		if !ok {
			return nil
		}
		return unwrap(val)
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil
	}
	return v
}
