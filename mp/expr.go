package mp

// Term represents a coeff * variable pair in a linear expression.
type Term struct {
	Coeff float64
	Var   Variable
}

// NewTerm returns the term coeff * v.
func NewTerm(coeff float64, v Variable) Term {
	return Term{Coeff: coeff, Var: v}
}

// Equal reports whether both terms have the same coefficient and variable.
func (t Term) Equal(o Term) bool {
	return t.Coeff == o.Coeff && t.Var.Equal(o.Var)
}

// SumTerms is a linear expression: an ordered sequence of terms.
//
// Insertion order is preserved but does not affect the value of the
// expression. The same variable may appear in several terms; such duplicates
// sum implicitly when the expression is evaluated, but are discouraged.
type SumTerms []Term

// Sum builds a SumTerms from the given terms.
func Sum(terms ...Term) SumTerms {
	s := make(SumTerms, len(terms))
	copy(s, terms)
	return s
}

// Clone returns a copy of the underlying slice
func (s SumTerms) Clone() SumTerms {
	res := make(SumTerms, len(s))
	copy(res, s)
	return res
}

// Equal reports whether both expressions hold the same terms in the same order.
func (s SumTerms) Equal(o SumTerms) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if !s[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Evaluate computes the value of the expression under the given assignment,
// keyed by variable description. Variables without an assigned value
// contribute zero.
func (s SumTerms) Evaluate(values map[string]float64) float64 {
	var acc float64
	for _, t := range s {
		acc += t.Coeff * values[t.Var.Description()]
	}
	return acc
}
