package raster

import (
	"errors"
	"fmt"
)

// Error classes. Every engine error wraps exactly one of these.
var (
	ErrIO    = errors.New("io error")
	ErrRange = errors.New("range error")
	ErrState = errors.New("state error")
)

// RangeErrorf returns an error wrapping ErrRange.
func RangeErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrRange, fmt.Sprintf(format, args...))
}

// StateErrorf returns an error wrapping ErrState.
func StateErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrState, fmt.Sprintf(format, args...))
}

// Class names the taxonomy class of err: "io", "range", "state" or "" when
// err does not belong to the taxonomy.
func Class(err error) string {
	switch {
	case errors.Is(err, ErrIO):
		return "io"
	case errors.Is(err, ErrRange):
		return "range"
	case errors.Is(err, ErrState):
		return "state"
	}
	return ""
}
