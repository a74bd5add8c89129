package mp

import "math"

// BoolToInt returns a view of m that reports every boolean variable as an
// integer variable with recomputed bounds: the lower bound becomes
// max(0, delegate lower), the upper bound min(1, delegate upper). Integer and
// real variables pass through unmodified, and iteration order is preserved.
//
// Only reads translate. A write through the view is handed to the delegate
// untouched, so adding a boolean variable leaves it boolean in the delegate.
func BoolToInt(m MutableMP) MutableMP {
	return boolToIntView{m}
}

type boolToIntView struct {
	MutableMP
}

func (v boolToIntView) Variables() []Variable {
	vars := v.MutableMP.Variables()
	for i := range vars {
		vars[i] = asInteger(vars[i])
	}
	return vars
}

func (v boolToIntView) VariableByDescription(description string) (Variable, bool) {
	found, ok := v.MutableMP.VariableByDescription(description)
	if !ok {
		return Variable{}, false
	}
	return asInteger(found), true
}

func (v boolToIntView) Dimension() Dimension {
	d := v.MutableMP.Dimension()
	d.Integers += d.Booleans
	d.Booleans = 0
	return d
}

// asInteger reports a boolean variable as integer with bounds clamped into
// [0, 1]. Only out-of-range ends move; an in-range bound such as 0.3 is kept
// as is, not rounded.
func asInteger(v Variable) Variable {
	if v.kind != Boolean {
		return v
	}
	return Variable{
		description: v.description,
		kind:        Integer,
		lower:       math.Max(0, v.lower),
		upper:       math.Min(1, v.upper),
	}
}
