package mp

import (
	"fmt"
	"maps"
	"slices"

	"github.com/bits-and-blooms/bitset"
	"github.com/optwell/mathprog/logger"
)

// Builder is a mutable accumulator for a mathematical program.
//
// The variable slice is the single source of truth; the description index is
// maintained under the same mutation path and never diverges from it. A
// failed mutation leaves the builder in its pre-call state: multi-variable
// inserts are validated in full before anything is stored.
//
// A Builder is not safe for concurrent mutation. Build freezes the current
// content into an Immutable snapshot; the Builder stays usable afterwards.
type Builder struct {
	name          string
	variables     []Variable
	byDescription map[string]int
	constraints   []Constraint
	objective     Objective
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{byDescription: make(map[string]int)}
}

// NewBuilderFrom returns a builder pre-populated with a copy of m.
func NewBuilderFrom(m MP) *Builder {
	b := NewBuilder()
	b.name = m.Name()
	b.variables = m.Variables()
	for i, v := range b.variables {
		b.byDescription[v.Description()] = i
	}
	b.constraints = m.Constraints()
	b.objective = m.Objective()
	return b
}

// Name implements MP.
func (b *Builder) Name() string { return b.name }

// SetName implements MutableMP. An empty name is the default.
func (b *Builder) SetName(name string) (bool, error) {
	if b.name == name {
		return false, nil
	}
	b.name = name
	return true, nil
}

// Variables implements MP.
func (b *Builder) Variables() []Variable { return slices.Clone(b.variables) }

// NumVariables implements MP.
func (b *Builder) NumVariables() int { return len(b.variables) }

// VariableByDescription implements MP.
func (b *Builder) VariableByDescription(description string) (Variable, bool) {
	i, ok := b.byDescription[description]
	if !ok {
		return Variable{}, false
	}
	return b.variables[i], true
}

// Constraints implements MP.
func (b *Builder) Constraints() []Constraint { return slices.Clone(b.constraints) }

// NumConstraints implements MP.
func (b *Builder) NumConstraints() int { return len(b.constraints) }

// Objective implements MP.
func (b *Builder) Objective() Objective { return b.objective }

// Dimension implements MP.
func (b *Builder) Dimension() Dimension {
	var d Dimension
	for _, v := range b.variables {
		switch v.Kind() {
		case Boolean:
			d.Booleans++
		case Integer:
			d.Integers++
		case Real:
			d.Reals++
		}
	}
	d.Constraints = len(b.constraints)
	return d
}

// AddVariable implements MutableMP.
func (b *Builder) AddVariable(v Variable) (bool, error) {
	if i, ok := b.byDescription[v.Description()]; ok {
		if b.variables[i].Equal(v) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %q", ErrDuplicateDescription, v.Description())
	}
	b.byDescription[v.Description()] = len(b.variables)
	b.variables = append(b.variables, v)
	return true, nil
}

// AddConstraint implements MutableMP.
func (b *Builder) AddConstraint(c Constraint) error {
	if err := b.insertExpressionVariables(c.lhs); err != nil {
		return err
	}
	b.constraints = append(b.constraints, c)
	return nil
}

// SetObjective implements MutableMP.
func (b *Builder) SetObjective(o Objective) error {
	if !o.IsZero() {
		if err := b.insertExpressionVariables(o.terms); err != nil {
			return err
		}
	}
	b.objective = o
	return nil
}

// insertExpressionVariables runs every variable of s through the AddVariable
// logic, in first-occurrence order. Validation is staged: either all new
// variables are inserted, or on a description collision none are.
func (b *Builder) insertExpressionVariables(s SumTerms) error {
	var fresh []Variable
	seen := make(map[string]int)
	for _, t := range s {
		v := t.Var
		if i, ok := b.byDescription[v.Description()]; ok {
			if !b.variables[i].Equal(v) {
				return fmt.Errorf("%w: %q", ErrDuplicateDescription, v.Description())
			}
			continue
		}
		if j, ok := seen[v.Description()]; ok {
			if !fresh[j].Equal(v) {
				return fmt.Errorf("%w: %q", ErrDuplicateDescription, v.Description())
			}
			continue
		}
		seen[v.Description()] = len(fresh)
		fresh = append(fresh, v)
	}
	for _, v := range fresh {
		b.byDescription[v.Description()] = len(b.variables)
		b.variables = append(b.variables, v)
	}
	return nil
}

// RemoveVariable implements MutableMP.
func (b *Builder) RemoveVariable(v Variable) error {
	i, ok := b.byDescription[v.Description()]
	if !ok || !b.variables[i].Equal(v) {
		return fmt.Errorf("%w: %q", ErrUnknownVariable, v.Description())
	}
	if b.referenced().Test(uint(i)) {
		return fmt.Errorf("%w: %q", ErrVariableInUse, v.Description())
	}
	b.variables = slices.Delete(b.variables, i, i+1)
	delete(b.byDescription, v.Description())
	for j := i; j < len(b.variables); j++ {
		b.byDescription[b.variables[j].Description()] = j
	}
	return nil
}

// referenced returns the set of variable indices appearing in the objective
// or in any constraint.
func (b *Builder) referenced() *bitset.BitSet {
	used := bitset.New(uint(len(b.variables)))
	mark := func(s SumTerms) {
		for _, t := range s {
			if i, ok := b.byDescription[t.Var.Description()]; ok {
				used.Set(uint(i))
			}
		}
	}
	for _, c := range b.constraints {
		mark(c.lhs)
	}
	if !b.objective.IsZero() {
		mark(b.objective.terms)
	}
	return used
}

// Build freezes the current content into an Immutable snapshot. The lists are
// copied, so later mutation of the builder does not affect the snapshot;
// variable and constraint values themselves are shared since they are
// immutable.
func (b *Builder) Build() *Immutable {
	m := &Immutable{
		name:          b.name,
		variables:     slices.Clone(b.variables),
		byDescription: maps.Clone(b.byDescription),
		constraints:   slices.Clone(b.constraints),
		objective:     b.objective,
	}

	log := logger.Logger()
	log.Debug().
		Str("name", m.name).
		Int("nbVariables", len(m.variables)).
		Int("nbConstraints", len(m.constraints)).
		Msg("built mathematical program")

	return m
}
