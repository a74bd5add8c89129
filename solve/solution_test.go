package solve

import (
	"testing"

	"github.com/optwell/mathprog/mp"
	"github.com/stretchr/testify/require"
)

func buildProgram(t *testing.T) (*mp.Immutable, mp.Variable, mp.Variable) {
	t.Helper()
	assert := require.New(t)

	x, err := mp.NewInteger("x", 0, 1e7)
	assert.NoError(err)
	y, err := mp.NewInteger("y", 0, 1e7)
	assert.NoError(err)

	b := mp.NewBuilder()
	_, err = b.SetName("OneFourThree")
	assert.NoError(err)
	assert.NoError(b.SetObjective(mp.NewObjective(mp.Maximize,
		mp.Sum(mp.NewTerm(143, x), mp.NewTerm(60, y)))))
	assert.NoError(b.AddConstraint(mp.NewConstraint(
		mp.Sum(mp.NewTerm(120, x), mp.NewTerm(210, y)), mp.LessOrEqual, 15000)))
	assert.NoError(b.AddConstraint(mp.NewConstraint(
		mp.Sum(mp.NewTerm(110, x), mp.NewTerm(30, y)), mp.LessOrEqual, 4000)))
	assert.NoError(b.AddConstraint(mp.NewConstraint(
		mp.Sum(mp.NewTerm(1, x), mp.NewTerm(1, y)), mp.LessOrEqual, 75)))

	return b.Build(), x, y
}

func TestSolutionValues(t *testing.T) {
	assert := require.New(t)
	program, x, _ := buildProgram(t)

	s := NewSolution(program)
	assert.NoError(s.SetValue(x, 22))

	got, ok := s.Value(x)
	assert.True(ok)
	assert.Equal(22.0, got)

	stranger, err := mp.NewReal("stranger", 0, 1)
	assert.NoError(err)
	assert.ErrorIs(s.SetValue(stranger, 1), mp.ErrUnknownVariable)

	// same description, different variable
	otherX, err := mp.NewReal("x", 0, 1e7)
	assert.NoError(err)
	assert.ErrorIs(s.SetValue(otherX, 1), mp.ErrUnknownVariable)

	assert.NoError(s.SetDual(0, 0.5))
	assert.Error(s.SetDual(3, 0.5))
	assert.Error(s.SetDual(-1, 0.5))
}

func TestEpsilonEquivalence(t *testing.T) {
	assert := require.New(t)
	program, x, y := buildProgram(t)

	a := NewSolution(program)
	assert.NoError(a.SetValue(x, 22))
	assert.NoError(a.SetValue(y, 53))
	a.SetObjectiveValue(6266.0)

	b := NewSolution(program)
	assert.NoError(b.SetValue(x, 22))
	assert.NoError(b.SetValue(y, 53))
	b.SetObjectiveValue(6266.0000004)

	assert.True(a.EquivalentWithin(b, 1e-3))
	assert.True(b.EquivalentWithin(a, 1e-3))
	assert.False(a.EquivalentWithin(b, 1e-9))
}

func TestEquivalenceRequiresMatchingValueSets(t *testing.T) {
	assert := require.New(t)
	program, x, y := buildProgram(t)

	a := NewSolution(program)
	assert.NoError(a.SetValue(x, 22))
	assert.NoError(a.SetValue(y, 53))

	// a value present on one side only is a failure, not an implicit default
	b := NewSolution(program)
	assert.NoError(b.SetValue(x, 22))
	assert.False(a.EquivalentWithin(b, 1e-3))
	assert.False(b.EquivalentWithin(a, 1e-3))

	assert.NoError(b.SetValue(y, 53))
	assert.True(a.EquivalentWithin(b, 1e-3))

	// same for duals
	assert.NoError(a.SetDual(1, 0.25))
	assert.False(a.EquivalentWithin(b, 1e-3))
	assert.NoError(b.SetDual(1, 0.25))
	assert.True(a.EquivalentWithin(b, 1e-3))
}

func TestEquivalenceRequiresSameProgram(t *testing.T) {
	assert := require.New(t)
	program, x, _ := buildProgram(t)

	other := mp.NewBuilderFrom(program)
	_, err := other.SetName("renamed")
	assert.NoError(err)

	a := NewSolution(program)
	b := NewSolution(other)
	assert.NoError(a.SetValue(x, 22))
	assert.NoError(b.SetValue(x, 22))

	assert.False(a.EquivalentWithin(b, 1e-3))
}
