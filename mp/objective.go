package mp

// Sense is the optimization direction of an objective.
type Sense uint8

const (
	Minimize Sense = iota
	Maximize
)

// String returns the string representation of a sense
func (s Sense) String() string {
	switch s {
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	default:
		return "unknown"
	}
}

// Objective is an immutable optimization objective: a linear expression plus
// a sense. The zero value is the distinguished zero objective ("find any
// feasible point"), which has neither a function nor a sense.
type Objective struct {
	terms   SumTerms
	sense   Sense
	nonZero bool
}

// NewObjective returns the objective "sense terms". The expression is copied.
func NewObjective(sense Sense, terms SumTerms) Objective {
	return Objective{terms: terms.Clone(), sense: sense, nonZero: true}
}

// IsZero reports whether this is the zero objective.
func (o Objective) IsZero() bool { return !o.nonZero }

// Sense returns the optimization direction. It is meaningless for the zero
// objective, for which it returns Minimize.
func (o Objective) Sense() Sense { return o.sense }

// Terms returns a copy of the objective function; nil for the zero objective.
func (o Objective) Terms() SumTerms {
	if o.IsZero() {
		return nil
	}
	return o.terms.Clone()
}

// Equal reports whether both objectives are the zero objective, or share the
// same sense and the same ordered term sequence.
func (o Objective) Equal(b Objective) bool {
	if o.nonZero != b.nonZero {
		return false
	}
	if !o.nonZero {
		return true
	}
	return o.sense == b.sense && o.terms.Equal(b.terms)
}
