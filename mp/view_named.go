package mp

// Named returns a view of m carrying its own name, independent of the
// delegate. Name and SetName operate on the view's private field; every
// other operation delegates. This presents the same variable and constraint
// set under a different label without copying data.
func Named(m MutableMP, name string) MutableMP {
	return &namedView{MutableMP: m, name: name}
}

type namedView struct {
	MutableMP
	name string
}

func (v *namedView) Name() string { return v.name }

func (v *namedView) SetName(name string) (bool, error) {
	if v.name == name {
		return false, nil
	}
	v.name = name
	return true, nil
}
