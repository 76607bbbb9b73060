package impact

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter reports an input outside its physical domain.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrArithmeticDegeneracy reports an intermediate that evaluated to NaN or Inf.
	ErrArithmeticDegeneracy = errors.New("arithmetic degeneracy")
)

// ParamError describes a rejected input.
type ParamError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s = %g: %s", ErrInvalidParameter, e.Field, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error { return ErrInvalidParameter }

// DegeneracyError names the quantity that stopped being finite.
type DegeneracyError struct {
	Quantity string
	Value    float64
}

func (e *DegeneracyError) Error() string {
	return fmt.Sprintf("%s: %s evaluated to %g", ErrArithmeticDegeneracy, e.Quantity, e.Value)
}

func (e *DegeneracyError) Unwrap() error { return ErrArithmeticDegeneracy }
