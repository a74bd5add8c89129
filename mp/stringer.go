package mp

import (
	"strconv"
	"strings"
)

func writeFloat(sbb *strings.Builder, f float64) {
	sbb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
}

func (s SumTerms) writeTo(sbb *strings.Builder) {
	if len(s) == 0 {
		sbb.WriteString("0")
		return
	}
	for i, t := range s {
		if i > 0 {
			sbb.WriteString(" + ")
		}
		writeFloat(sbb, t.Coeff)
		sbb.WriteString("*")
		sbb.WriteString(t.Var.Description())
	}
}

// String renders the expression, e.g. "143*x + 60*y".
func (s SumTerms) String() string {
	var sbb strings.Builder
	s.writeTo(&sbb)
	return sbb.String()
}

// String renders the constraint, e.g. "120*x + 210*y <= 15000".
func (c Constraint) String() string {
	var sbb strings.Builder
	if c.description != "" {
		sbb.WriteString(c.description)
		sbb.WriteString(": ")
	}
	c.lhs.writeTo(&sbb)
	sbb.WriteString(" ")
	sbb.WriteString(c.rel.String())
	sbb.WriteString(" ")
	writeFloat(&sbb, c.rhs)
	return sbb.String()
}

// String renders the objective, e.g. "maximize 143*x + 60*y"; the zero
// objective renders as "feasibility".
func (o Objective) String() string {
	if o.IsZero() {
		return "feasibility"
	}
	var sbb strings.Builder
	sbb.WriteString(o.sense.String())
	sbb.WriteString(" ")
	o.terms.writeTo(&sbb)
	return sbb.String()
}

// String renders the variable with its kind and bounds,
// e.g. "x int [0, 75]".
func (v Variable) String() string {
	var sbb strings.Builder
	sbb.WriteString(v.description)
	sbb.WriteString(" ")
	sbb.WriteString(v.kind.String())
	sbb.WriteString(" [")
	writeFloat(&sbb, v.lower)
	sbb.WriteString(", ")
	writeFloat(&sbb, v.upper)
	sbb.WriteString("]")
	return sbb.String()
}

// Sprint renders a full program, one variable and constraint per line, for
// logs and debugging.
func Sprint(m MP) string {
	var sbb strings.Builder
	sbb.WriteString("program")
	if name := m.Name(); name != "" {
		sbb.WriteString(" ")
		sbb.WriteString(strconv.Quote(name))
	}
	sbb.WriteString("\n")
	sbb.WriteString(m.Objective().String())
	sbb.WriteString("\n")
	for _, v := range m.Variables() {
		sbb.WriteString("  ")
		sbb.WriteString(v.String())
		sbb.WriteString("\n")
	}
	for _, c := range m.Constraints() {
		sbb.WriteString("  ")
		sbb.WriteString(c.String())
		sbb.WriteString("\n")
	}
	return sbb.String()
}
