package mp

// Relation is the comparison operator of a constraint.
type Relation uint8

const (
	LessOrEqual Relation = iota
	GreaterOrEqual
	EqualTo
)

// String returns the string representation of a relation
func (r Relation) String() string {
	switch r {
	case LessOrEqual:
		return "<="
	case GreaterOrEqual:
		return ">="
	case EqualTo:
		return "="
	default:
		return "unknown"
	}
}

// Constraint is an immutable linear constraint: lhs relation rhs.
//
// The description is an optional identifier and may be empty; it is ignored
// by Equal.
type Constraint struct {
	description string
	lhs         SumTerms
	rel         Relation
	rhs         float64
}

// NewConstraint returns the constraint lhs rel rhs. The expression is copied,
// so later mutation of the argument slice does not affect the constraint.
func NewConstraint(lhs SumTerms, rel Relation, rhs float64) Constraint {
	return Constraint{lhs: lhs.Clone(), rel: rel, rhs: rhs}
}

// WithDescription returns a copy of the constraint carrying the given
// description.
func (c Constraint) WithDescription(description string) Constraint {
	c.description = description
	return c
}

// Description returns the optional identifier of the constraint.
func (c Constraint) Description() string { return c.description }

// LHS returns a copy of the left-hand expression.
func (c Constraint) LHS() SumTerms { return c.lhs.Clone() }

// Relation returns the comparison operator.
func (c Constraint) Relation() Relation { return c.rel }

// RHS returns the right-hand scalar.
func (c Constraint) RHS() float64 { return c.rhs }

// Equal reports structural equality (lhs, relation, rhs); the description is
// not part of a constraint's identity.
func (c Constraint) Equal(o Constraint) bool {
	return c.rel == o.rel && c.rhs == o.rhs && c.lhs.Equal(o.lhs)
}
