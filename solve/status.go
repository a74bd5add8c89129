package solve

// Status is the outcome reported by a solving engine.
type Status uint8

const (
	StatusUnknown Status = iota
	// StatusOptimal: a provably optimal solution was found.
	StatusOptimal
	// StatusFeasible: a feasible but not provably optimal solution was found.
	StatusFeasible
	// StatusInfeasible: the program has no feasible point.
	StatusInfeasible
	// StatusUnbounded: the objective can be improved without limit.
	StatusUnbounded
	// StatusTimeLimitReached: the configured time limit stopped the run.
	StatusTimeLimitReached
	// StatusMemoryLimitReached: the configured memory limit stopped the run.
	StatusMemoryLimitReached
	// StatusError: the engine failed for another reason.
	StatusError
)

// String returns the string representation of a status
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusFeasible:
		return "feasible"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusTimeLimitReached:
		return "time limit reached"
	case StatusMemoryLimitReached:
		return "memory limit reached"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// AdmitsSolution reports whether a result with this status may carry a
// solution. Infeasible, unbounded and error statuses never do.
func (s Status) AdmitsSolution() bool {
	switch s {
	case StatusOptimal, StatusFeasible, StatusTimeLimitReached, StatusMemoryLimitReached:
		return true
	default:
		return false
	}
}

// RequiresSolution reports whether a result with this status must carry a
// solution. Limit statuses may stop the run before any feasible point was
// found, so only Optimal and Feasible require one.
func (s Status) RequiresSolution() bool {
	return s == StatusOptimal || s == StatusFeasible
}
