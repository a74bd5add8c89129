package solve

import (
	"fmt"
	"runtime"
)

// Param identifies a solver configuration parameter.
type Param uint8

const (
	// MaxWallSeconds limits the wall-clock time of a run; float64, must be
	// strictly positive when set. Unset means no wall limit.
	MaxWallSeconds Param = iota
	// MaxCPUSeconds limits the cpu time of a run; float64, must be strictly
	// positive when set. Unset means no cpu limit. At most one of
	// MaxWallSeconds and MaxCPUSeconds may be set.
	MaxCPUSeconds
	// MaxThreads caps the engine's parallelism; int64, strictly positive.
	MaxThreads
	// Deterministic requests a reproducible run; int64, exactly 0 or 1.
	Deterministic
	// WorkDir is where the engine may place temporary files; string, empty
	// means the engine's own choice.
	WorkDir
)

// String returns the string representation of a parameter
func (p Param) String() string {
	switch p {
	case MaxWallSeconds:
		return "max_wall_seconds"
	case MaxCPUSeconds:
		return "max_cpu_seconds"
	case MaxThreads:
		return "max_threads"
	case Deterministic:
		return "deterministic"
	case WorkDir:
		return "work_dir"
	default:
		return "unknown"
	}
}

// DefaultValue returns the default of p: 0.0 (no limit) for the time limits,
// int64(1) for MaxThreads, int64(0) for Deterministic and "" for WorkDir.
func DefaultValue(p Param) any {
	switch p {
	case MaxWallSeconds, MaxCPUSeconds:
		return float64(0)
	case MaxThreads:
		return int64(1)
	case Deterministic:
		return int64(0)
	case WorkDir:
		return ""
	default:
		panic("unknown parameter")
	}
}

// meaningful is the per-parameter value predicate. The stored value kinds are
// checked by the typed setters before this is consulted.
func meaningful(p Param, v any) bool {
	switch p {
	case MaxWallSeconds, MaxCPUSeconds:
		return v.(float64) > 0
	case MaxThreads:
		return v.(int64) > 0
	case Deterministic:
		i := v.(int64)
		return i == 0 || i == 1
	case WorkDir:
		return true
	default:
		return false
	}
}

func kindOf(p Param) string {
	switch p {
	case MaxWallSeconds, MaxCPUSeconds:
		return "float64"
	case MaxThreads, Deterministic:
		return "int64"
	case WorkDir:
		return "string"
	default:
		return "unknown"
	}
}

// Parameters is a typed, validated set of solver parameters. Reading a
// parameter that was never set yields its default; storage never holds
// default-valued entries, so "did this call change state" is well defined.
//
// The zero value is ready to use.
type Parameters struct {
	values map[Param]any
}

// NewParameters returns an empty parameter set.
func NewParameters() *Parameters {
	return &Parameters{}
}

// Clone returns an independent copy of the parameter set.
func (p *Parameters) Clone() *Parameters {
	c := NewParameters()
	for k, v := range p.values {
		c.store(k, v)
	}
	return c
}

func (p *Parameters) store(key Param, v any) {
	if p.values == nil {
		p.values = make(map[Param]any)
	}
	p.values[key] = v
}

// set validates v and stores it, treating the default value as "unset". It
// reports whether the call changed the stored state.
func (p *Parameters) set(key Param, v any) (bool, error) {
	if !meaningful(key, v) {
		return false, fmt.Errorf("%w: %v for %s", ErrInvalidParameterValue, v, key)
	}
	old, was := p.values[key]
	if v == DefaultValue(key) {
		delete(p.values, key)
		return was, nil
	}
	if was && old == v {
		return false, nil
	}
	p.store(key, v)
	return true, nil
}

// SetFloat64 sets a float64-valued parameter. It fails with
// ErrInvalidParameterValue when key is not float64-valued or v is not
// meaningful for key; the stored state is then unchanged.
func (p *Parameters) SetFloat64(key Param, v float64) (bool, error) {
	if kindOf(key) != "float64" {
		return false, fmt.Errorf("%w: %s expects a %s value", ErrInvalidParameterValue, key, kindOf(key))
	}
	return p.set(key, v)
}

// SetInt64 sets an int64-valued parameter; see SetFloat64 for the contract.
func (p *Parameters) SetInt64(key Param, v int64) (bool, error) {
	if kindOf(key) != "int64" {
		return false, fmt.Errorf("%w: %s expects a %s value", ErrInvalidParameterValue, key, kindOf(key))
	}
	return p.set(key, v)
}

// SetString sets a string-valued parameter; see SetFloat64 for the contract.
func (p *Parameters) SetString(key Param, v string) (bool, error) {
	if kindOf(key) != "string" {
		return false, fmt.Errorf("%w: %s expects a %s value", ErrInvalidParameterValue, key, kindOf(key))
	}
	return p.set(key, v)
}

// Unset clears key back to its default and reports whether anything changed.
func (p *Parameters) Unset(key Param) bool {
	_, was := p.values[key]
	delete(p.values, key)
	return was
}

// IsSet reports whether key holds a non-default value.
func (p *Parameters) IsSet(key Param) bool {
	_, ok := p.values[key]
	return ok
}

// Float64 returns the value of a float64-valued parameter, falling back to
// its default when unset.
func (p *Parameters) Float64(key Param) float64 {
	if v, ok := p.values[key]; ok {
		return v.(float64)
	}
	return DefaultValue(key).(float64)
}

// Int64 returns the value of an int64-valued parameter, falling back to its
// default when unset.
func (p *Parameters) Int64(key Param) int64 {
	if v, ok := p.values[key]; ok {
		return v.(int64)
	}
	return DefaultValue(key).(int64)
}

// StringValue returns the value of a string-valued parameter, falling back
// to its default when unset.
func (p *Parameters) StringValue(key Param) string {
	if v, ok := p.values[key]; ok {
		return v.(string)
	}
	return DefaultValue(key).(string)
}

// TimingMode selects how elapsed time is measured during a run.
type TimingMode uint8

const (
	WallTime TimingMode = iota
	CPUTime
)

// String returns the string representation of a timing mode
func (t TimingMode) String() string {
	switch t {
	case WallTime:
		return "wall"
	case CPUTime:
		return "cpu"
	default:
		return "unknown"
	}
}

// cpuTimeSupported reports whether the runtime can measure per-process cpu
// time. Overridable in tests.
var cpuTimeSupported = func() bool {
	switch runtime.GOOS {
	case "linux", "darwin", "freebsd", "netbsd", "openbsd", "dragonfly", "solaris", "aix":
		return true
	default:
		return false
	}
}

// TimingMode resolves which timing mode a run should use. Setting both time
// limits is a conflict; a cpu limit on a platform without cpu time
// measurement is unsupported. With no limit set, cpu timing is preferred when
// available, wall timing otherwise.
func (p *Parameters) TimingMode() (TimingMode, error) {
	wall, cpu := p.IsSet(MaxWallSeconds), p.IsSet(MaxCPUSeconds)
	switch {
	case wall && cpu:
		return WallTime, ErrConflictingTimingLimits
	case wall:
		return WallTime, nil
	case cpu:
		if !cpuTimeSupported() {
			return WallTime, ErrUnsupportedTimingMode
		}
		return CPUTime, nil
	default:
		if cpuTimeSupported() {
			return CPUTime, nil
		}
		return WallTime, nil
	}
}
