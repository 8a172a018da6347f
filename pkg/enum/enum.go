package enum

import (
	"fmt"
	"reflect"
)

var registry = map[reflect.Type]any{}

type values[T comparable] map[string]T

// New registers value under its type so ToEnum can parse it back from a
// string. Call it once per value at package init.
func New[T comparable](value T) T {
	t := reflect.TypeOf(value)
	vals, ok := registry[t].(values[T])
	if !ok {
		vals = values[T]{}
		registry[t] = vals
	}

	vals[reflect.ValueOf(value).String()] = value
	return value
}

func ToEnum[T comparable](s string) (T, error) {
	var zero T
	vals, ok := registry[reflect.TypeOf(zero)].(values[T])
	if !ok {
		return zero, fmt.Errorf("unregistered enum type %T", zero)
	}

	value, ok := vals[s]
	if !ok {
		return zero, fmt.Errorf("invalid %T value %q", zero, s)
	}

	return value, nil
}
