package mp_test

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/optwell/mathprog/mp"
	"github.com/stretchr/testify/require"
)

// randomBuilder fills a builder with nVars variables and nCons constraints
// drawn from r, for property-based tests.
func randomBuilder(t *testing.T, r *rand.Rand, nVars, nCons int) *mp.Builder {
	t.Helper()
	assert := require.New(t)

	b := mp.NewBuilder()
	if r.Intn(2) == 0 {
		_, err := b.SetName("p" + strconv.Itoa(r.Intn(1000)))
		assert.NoError(err)
	}

	vars := make([]mp.Variable, nVars)
	for i := range vars {
		description := "v" + strconv.Itoa(i)
		lo := math.Floor(r.Float64()*20) - 10
		hi := lo + math.Floor(r.Float64()*20)
		var v mp.Variable
		var err error
		switch r.Intn(3) {
		case 0:
			v, err = mp.New(description, mp.Boolean, lo, hi)
		case 1:
			v, err = mp.NewInteger(description, lo, hi)
		default:
			v, err = mp.NewReal(description, lo, hi)
		}
		assert.NoError(err)
		vars[i] = v
		_, err = b.AddVariable(v)
		assert.NoError(err)
	}

	randomSum := func() mp.SumTerms {
		n := 1 + r.Intn(3)
		terms := make([]mp.Term, 0, n)
		for i := 0; i < n; i++ {
			terms = append(terms, mp.NewTerm(math.Floor(r.Float64()*100)-50, vars[r.Intn(len(vars))]))
		}
		return mp.Sum(terms...)
	}

	if nVars > 0 {
		for i := 0; i < nCons; i++ {
			c := mp.NewConstraint(randomSum(), mp.Relation(r.Intn(3)), math.Floor(r.Float64()*1000))
			if r.Intn(2) == 0 {
				c = c.WithDescription("c" + strconv.Itoa(i))
			}
			assert.NoError(b.AddConstraint(c))
		}
		if r.Intn(2) == 0 {
			sense := mp.Minimize
			if r.Intn(2) == 0 {
				sense = mp.Maximize
			}
			assert.NoError(b.SetObjective(mp.NewObjective(sense, randomSum())))
		}
	}

	return b
}
