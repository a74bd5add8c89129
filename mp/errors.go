package mp

import "errors"

var (
	// ErrInvalidVariable is returned when constructing a variable with an
	// empty description or malformed bounds.
	ErrInvalidVariable = errors.New("invalid variable")

	// ErrDuplicateDescription is returned when inserting a variable whose
	// description collides with a different variable already in the program.
	ErrDuplicateDescription = errors.New("description already used by a different variable")

	// ErrUnknownVariable is returned when an operation references a variable
	// that is not a member of the program.
	ErrUnknownVariable = errors.New("variable is not part of the program")

	// ErrVariableInUse is returned when removing a variable still referenced
	// by the objective or by a constraint.
	ErrVariableInUse = errors.New("variable is referenced by the objective or a constraint")

	// ErrReadOnly is returned by every mutating operation on a read-only view.
	ErrReadOnly = errors.New("program is read-only")
)
