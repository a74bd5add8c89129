package mp

// Immutable is a frozen snapshot of a mathematical program. It exposes the
// same read accessors as the Builder but no mutation; any further change must
// go through a new Builder (see NewBuilderFrom). Immutable values are safe to
// share across goroutines.
type Immutable struct {
	name          string
	variables     []Variable
	byDescription map[string]int
	constraints   []Constraint
	objective     Objective
}

// CopyOf returns an immutable snapshot of m. When m is already an Immutable
// the same instance is returned, so wrapping is idempotent and repeated calls
// are cheap.
func CopyOf(m MP) *Immutable {
	if im, ok := m.(*Immutable); ok {
		return im
	}
	im := &Immutable{
		name:          m.Name(),
		variables:     m.Variables(),
		byDescription: make(map[string]int, m.NumVariables()),
		constraints:   m.Constraints(),
		objective:     m.Objective(),
	}
	for i, v := range im.variables {
		im.byDescription[v.Description()] = i
	}
	return im
}

// Name implements MP.
func (m *Immutable) Name() string { return m.name }

// Variables implements MP.
func (m *Immutable) Variables() []Variable {
	res := make([]Variable, len(m.variables))
	copy(res, m.variables)
	return res
}

// NumVariables implements MP.
func (m *Immutable) NumVariables() int { return len(m.variables) }

// VariableByDescription implements MP.
func (m *Immutable) VariableByDescription(description string) (Variable, bool) {
	i, ok := m.byDescription[description]
	if !ok {
		return Variable{}, false
	}
	return m.variables[i], true
}

// Constraints implements MP.
func (m *Immutable) Constraints() []Constraint {
	res := make([]Constraint, len(m.constraints))
	copy(res, m.constraints)
	return res
}

// NumConstraints implements MP.
func (m *Immutable) NumConstraints() int { return len(m.constraints) }

// Objective implements MP.
func (m *Immutable) Objective() Objective { return m.objective }

// Dimension implements MP.
func (m *Immutable) Dimension() Dimension {
	var d Dimension
	for _, v := range m.variables {
		switch v.Kind() {
		case Boolean:
			d.Booleans++
		case Integer:
			d.Integers++
		case Real:
			d.Reals++
		}
	}
	d.Constraints = len(m.constraints)
	return d
}
