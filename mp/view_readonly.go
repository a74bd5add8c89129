package mp

// ReadOnly returns a view of m on which every mutating operation fails with
// ErrReadOnly. Reads pass through to m unchanged, so the view tracks later
// changes to a mutable delegate.
func ReadOnly(m MP) MutableMP {
	return readOnlyView{m}
}

type readOnlyView struct {
	MP
}

func (readOnlyView) SetName(string) (bool, error) { return false, ErrReadOnly }

func (readOnlyView) AddVariable(Variable) (bool, error) { return false, ErrReadOnly }

func (readOnlyView) AddConstraint(Constraint) error { return ErrReadOnly }

func (readOnlyView) SetObjective(Objective) error { return ErrReadOnly }

func (readOnlyView) RemoveVariable(Variable) error { return ErrReadOnly }
