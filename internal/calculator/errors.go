package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCode is matched by errors for codes outside SWM/RUN/WLK.
	ErrUnknownCode = errors.New("unrecognized workout code")
	// ErrArgumentCount is matched by errors for packages with the wrong number of values.
	ErrArgumentCount = errors.New("invalid argument count")
	// ErrInvalidValue is matched by errors for values outside the accepted domain.
	ErrInvalidValue = errors.New("invalid workout value")
)

// UnknownCodeError reports a sensor code with no matching workout kind.
type UnknownCodeError struct {
	Code string
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownCode, e.Code)
}

func (e *UnknownCodeError) Unwrap() error { return ErrUnknownCode }

// ArgumentCountError reports a package whose value count does not match its kind.
type ArgumentCountError struct {
	Kind Kind
	Want int
	Got  int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("%s: %s expects %d values, got %d", ErrArgumentCount, e.Kind, e.Want, e.Got)
}

func (e *ArgumentCountError) Unwrap() error { return ErrArgumentCount }

// InvalidValueError reports a single field that failed validation.
type InvalidValueError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: %s=%g %s", ErrInvalidValue, e.Field, e.Value, e.Reason)
}

func (e *InvalidValueError) Unwrap() error { return ErrInvalidValue }

// errorClass is a low-cardinality label for metrics and logs.
func errorClass(err error) string {
	switch {
	case errors.Is(err, ErrUnknownCode):
		return "unknown_code"
	case errors.Is(err, ErrArgumentCount):
		return "argument_count"
	case errors.Is(err, ErrInvalidValue):
		return "invalid_value"
	default:
		return "other"
	}
}
