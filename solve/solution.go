package solve

import (
	"fmt"
	"math"

	"github.com/optwell/mathprog/mp"
)

// Solution is an assignment reported by a solving engine for one program:
// a value per variable (keyed by description), optionally a dual value per
// constraint (keyed by constraint index), and the objective value.
type Solution struct {
	program        *mp.Immutable
	values         map[string]float64
	duals          map[int]float64
	objectiveValue float64
}

// NewSolution returns an empty solution for the given program. An immutable
// snapshot of the program is taken, so the solution stays tied to the exact
// program it resolves.
func NewSolution(program mp.MP) *Solution {
	return &Solution{
		program: mp.CopyOf(program),
		values:  make(map[string]float64),
		duals:   make(map[int]float64),
	}
}

// Program returns the resolved program.
func (s *Solution) Program() mp.MP { return s.program }

// SetValue records the value of v. It fails with mp.ErrUnknownVariable when
// v is not a member of the resolved program.
func (s *Solution) SetValue(v mp.Variable, x float64) error {
	member, ok := s.program.VariableByDescription(v.Description())
	if !ok || !member.Equal(v) {
		return fmt.Errorf("%w: %q", mp.ErrUnknownVariable, v.Description())
	}
	s.values[v.Description()] = x
	return nil
}

// Value returns the recorded value of v, if any.
func (s *Solution) Value(v mp.Variable) (float64, bool) {
	x, ok := s.values[v.Description()]
	return x, ok
}

// SetDual records the dual value of the constraint at the given index.
func (s *Solution) SetDual(constraintIndex int, y float64) error {
	if constraintIndex < 0 || constraintIndex >= s.program.NumConstraints() {
		return fmt.Errorf("constraint index %d out of range [0, %d)", constraintIndex, s.program.NumConstraints())
	}
	s.duals[constraintIndex] = y
	return nil
}

// Dual returns the recorded dual value of the constraint at the given index,
// if any.
func (s *Solution) Dual(constraintIndex int) (float64, bool) {
	y, ok := s.duals[constraintIndex]
	return y, ok
}

// SetObjectiveValue records the objective value.
func (s *Solution) SetObjectiveValue(z float64) { s.objectiveValue = z }

// ObjectiveValue returns the recorded objective value; 0 when never set.
func (s *Solution) ObjectiveValue() float64 { return s.objectiveValue }

// EquivalentWithin reports whether both solutions resolve structurally
// equivalent programs and agree on every recorded value up to eps: for every
// variable and constraint with a value in either solution, the other must
// hold one within eps. A value recorded on one side only is a failure, not an
// implicit default. eps must be non-negative.
func (s *Solution) EquivalentWithin(o *Solution, eps float64) bool {
	if !mp.Equal(s.program, o.program) {
		return false
	}
	if math.Abs(s.objectiveValue-o.objectiveValue) > eps {
		return false
	}
	return withinEps(s.values, o.values, eps) && withinEps(s.duals, o.duals, eps)
}

func withinEps[K comparable](a, b map[K]float64, eps float64) bool {
	for k, av := range a {
		bv, ok := b[k]
		if !ok || math.Abs(av-bv) > eps {
			return false
		}
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			return false
		}
	}
	return true
}
