package mp

// Dimension holds the derived size of a program: variable counts per kind and
// the number of constraints. It is always computed from current content.
type Dimension struct {
	Booleans    int
	Integers    int
	Reals       int
	Constraints int
}

// NumVariables returns the total number of variables.
func (d Dimension) NumVariables() int {
	return d.Booleans + d.Integers + d.Reals
}

// MP is the read contract of a mathematical program, implemented by the
// Builder, the Immutable snapshot and every view.
type MP interface {
	// Name returns the name of the program; empty by default.
	Name() string

	// Variables returns the variables in insertion order. The returned slice
	// is a copy; mutating it does not affect the program.
	Variables() []Variable

	// NumVariables returns the number of variables.
	NumVariables() int

	// VariableByDescription returns the member variable with the given
	// description, if any.
	VariableByDescription(description string) (Variable, bool)

	// Constraints returns the constraints in insertion order. The returned
	// slice is a copy; mutating it does not affect the program.
	Constraints() []Constraint

	// NumConstraints returns the number of constraints.
	NumConstraints() int

	// Objective returns the objective; the zero objective if none was set.
	Objective() Objective

	// Dimension returns the per-kind variable counts and the constraint count.
	Dimension() Dimension
}

// MutableMP extends MP with the mutation contract, implemented by the Builder
// and by views over mutable programs. Mutators on read-only views fail with
// ErrReadOnly.
type MutableMP interface {
	MP

	// SetName sets the name of the program and reports whether the stored
	// value changed. It fails with ErrReadOnly on a read-only view.
	SetName(name string) (bool, error)

	// AddVariable appends v to the variable list. It reports false and no
	// error when an equal variable is already present, and fails with
	// ErrDuplicateDescription when a different variable shares v's
	// description.
	AddVariable(v Variable) (bool, error)

	// AddConstraint appends c to the constraint list. Variables appearing in
	// c's expression that are not yet members of the program are added in
	// first-occurrence order; either every new variable and the constraint
	// are added, or on failure nothing is.
	AddConstraint(c Constraint) error

	// SetObjective replaces the objective. New variables in o's expression
	// are added the same way AddConstraint adds them.
	SetObjective(o Objective) error

	// RemoveVariable removes v from the program. It fails with
	// ErrUnknownVariable when v is not a member and with ErrVariableInUse
	// when v is referenced by the objective or a constraint.
	RemoveVariable(v Variable) error
}

// Equal reports structural equivalence of two programs: same name, same
// variables and constraints in the same order, and equal objectives.
// Insertion order is part of a program's identity since it fixes the solver's
// column and row ordering, even though it does not affect the feasible set.
func Equal(a, b MP) bool {
	if a.Name() != b.Name() {
		return false
	}
	av, bv := a.Variables(), b.Variables()
	if len(av) != len(bv) {
		return false
	}
	for i := range av {
		if !av[i].Equal(bv[i]) {
			return false
		}
	}
	ac, bc := a.Constraints(), b.Constraints()
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if !ac[i].Equal(bc[i]) {
			return false
		}
	}
	return a.Objective().Equal(b.Objective())
}
