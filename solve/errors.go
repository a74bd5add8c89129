package solve

import "errors"

var (
	// ErrInvalidParameterValue is returned when setting a parameter to a
	// value outside its meaningful range. Values are never clamped.
	ErrInvalidParameterValue = errors.New("invalid parameter value")

	// ErrConflictingTimingLimits is returned when resolving the timing mode
	// with both the wall and the cpu time limit set.
	ErrConflictingTimingLimits = errors.New("both wall and cpu time limits are set")

	// ErrUnsupportedTimingMode is returned when the cpu time limit is set but
	// the runtime cannot measure cpu time.
	ErrUnsupportedTimingMode = errors.New("cpu time cannot be measured on this platform")

	// ErrMissingSolution is returned when constructing a result whose status
	// requires a solution without one.
	ErrMissingSolution = errors.New("status requires a solution")

	// ErrUnexpectedSolution is returned when constructing a result whose
	// status does not admit a solution with one attached.
	ErrUnexpectedSolution = errors.New("status does not admit a solution")
)
