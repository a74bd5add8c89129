package solve

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResultStatusSolutionPairing(t *testing.T) {
	program, _, _ := buildProgram(t)
	sol := NewSolution(program)

	cases := []struct {
		status       Status
		withSolution bool
		wantErr      error
	}{
		{StatusOptimal, true, nil},
		{StatusOptimal, false, ErrMissingSolution},
		{StatusFeasible, true, nil},
		{StatusFeasible, false, ErrMissingSolution},
		{StatusInfeasible, false, nil},
		{StatusInfeasible, true, ErrUnexpectedSolution},
		{StatusUnbounded, true, ErrUnexpectedSolution},
		{StatusUnbounded, false, nil},
		{StatusTimeLimitReached, true, nil},
		{StatusTimeLimitReached, false, nil},
		{StatusMemoryLimitReached, true, nil},
		{StatusMemoryLimitReached, false, nil},
		{StatusError, true, ErrUnexpectedSolution},
		{StatusError, false, nil},
	}

	for _, tc := range cases {
		t.Run(tc.status.String(), func(t *testing.T) {
			assert := require.New(t)
			var s *Solution
			if tc.withSolution {
				s = sol
			}
			r, err := NewResult(tc.status, s, time.Second, nil)
			if tc.wantErr != nil {
				assert.ErrorIs(err, tc.wantErr)
				return
			}
			assert.NoError(err)
			assert.Equal(tc.status, r.Status())
			assert.Equal(s, r.Solution())
			assert.Equal(time.Second, r.Duration())
		})
	}
}

func TestResultEchoesParameters(t *testing.T) {
	assert := require.New(t)
	program, _, _ := buildProgram(t)

	p := NewParameters()
	_, err := p.SetInt64(MaxThreads, 4)
	assert.NoError(err)

	r, err := NewResult(StatusOptimal, NewSolution(program), time.Millisecond, p)
	assert.NoError(err)

	// the result holds its own copy
	_, err = p.SetInt64(MaxThreads, 16)
	assert.NoError(err)
	assert.Equal(int64(4), r.Parameters().Int64(MaxThreads))
}
