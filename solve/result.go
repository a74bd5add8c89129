package solve

import (
	"context"
	"time"

	"github.com/optwell/mathprog/mp"
)

// Solver is implemented by external solving engines. An engine consumes an
// immutable program (or a read-only view of one) and the run parameters, and
// reports a Result. The context carries caller-side cancellation; time limits
// configured through Parameters are interpreted by the engine itself.
type Solver interface {
	Solve(ctx context.Context, program mp.MP, params *Parameters) (*Result, error)
}

// Result is the outcome of one solver run: the status, the solution when the
// status carries one, the wall duration of the run, and an echo of the
// parameters the run used.
type Result struct {
	status   Status
	solution *Solution
	duration time.Duration
	params   *Parameters
}

// NewResult validates the status/solution pairing and returns the result.
// Statuses that never carry a solution (infeasible, unbounded, error) reject
// one with ErrUnexpectedSolution; optimal and feasible demand one and fail
// with ErrMissingSolution otherwise. The parameter set is copied.
func NewResult(status Status, solution *Solution, duration time.Duration, params *Parameters) (*Result, error) {
	if solution != nil && !status.AdmitsSolution() {
		return nil, ErrUnexpectedSolution
	}
	if solution == nil && status.RequiresSolution() {
		return nil, ErrMissingSolution
	}
	if params == nil {
		params = NewParameters()
	}
	return &Result{
		status:   status,
		solution: solution,
		duration: duration,
		params:   params.Clone(),
	}, nil
}

// Status returns the reported status.
func (r *Result) Status() Status { return r.status }

// Solution returns the attached solution; nil when the status carries none.
func (r *Result) Solution() *Solution { return r.solution }

// Duration returns the wall duration of the run.
func (r *Result) Duration() time.Duration { return r.duration }

// Parameters returns a copy of the parameters the run used.
func (r *Result) Parameters() *Parameters { return r.params.Clone() }
