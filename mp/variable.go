package mp

import (
	"fmt"
	"math"
)

// Kind is the domain restriction of a variable.
type Kind uint8

const (
	// Boolean restricts feasible values to {0, 1} (intersected with the bounds).
	Boolean Kind = iota
	// Integer restricts feasible values to integers within the bounds.
	Integer
	// Real allows any value within the bounds.
	Real
)

// String returns the string representation of a kind
func (k Kind) String() string {
	switch k {
	case Boolean:
		return "bool"
	case Integer:
		return "int"
	case Real:
		return "real"
	default:
		return "unknown"
	}
}

// Variable describes a single decision variable.
//
// The description is the uniqueness key inside a program; two variables with
// the same description cannot coexist in one program. Bounds are a closed
// interval of reals; an open end is represented by ±Inf. Variables are
// immutable values: two variables are equal iff description, kind and bounds
// are equal.
type Variable struct {
	description  string
	kind         Kind
	lower, upper float64
}

// New returns a variable with the given description, kind and bounds.
// Use math.Inf(-1) and math.Inf(1) for open-ended bounds.
func New(description string, kind Kind, lower, upper float64) (Variable, error) {
	if description == "" {
		return Variable{}, fmt.Errorf("%w: empty description", ErrInvalidVariable)
	}
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return Variable{}, fmt.Errorf("%w: NaN bound on %q", ErrInvalidVariable, description)
	}
	if lower > upper {
		return Variable{}, fmt.Errorf("%w: inverted bounds [%v, %v] on %q", ErrInvalidVariable, lower, upper, description)
	}
	return Variable{description: description, kind: kind, lower: lower, upper: upper}, nil
}

// NewBoolean returns a boolean variable with bounds [0, 1].
func NewBoolean(description string) Variable {
	v, err := New(description, Boolean, 0, 1)
	if err != nil {
		panic(err) // only reachable with an empty description
	}
	return v
}

// NewInteger returns an integer variable with the given bounds.
func NewInteger(description string, lower, upper float64) (Variable, error) {
	return New(description, Integer, lower, upper)
}

// NewReal returns a real (continuous) variable with the given bounds.
func NewReal(description string, lower, upper float64) (Variable, error) {
	return New(description, Real, lower, upper)
}

// Description returns the uniqueness key of the variable.
func (v Variable) Description() string { return v.description }

// Kind returns the domain restriction of the variable.
func (v Variable) Kind() Kind { return v.kind }

// LowerBound returns the lower bound; math.Inf(-1) means unbounded below.
func (v Variable) LowerBound() float64 { return v.lower }

// UpperBound returns the upper bound; math.Inf(1) means unbounded above.
func (v Variable) UpperBound() float64 { return v.upper }

// Equal reports whether both variables have the same description, kind and
// bounds. Bounds are compared by value, so -0.0 and 0.0 compare equal.
func (v Variable) Equal(o Variable) bool {
	return v.description == o.description &&
		v.kind == o.kind &&
		v.lower == o.lower &&
		v.upper == o.upper
}
