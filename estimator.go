package montepi

import "math"

// Event is an input to the estimator reducer. The three implementations are
// [SampleArrived], [RequestStop], and [RequestRestart].
type Event interface {
	isEvent()
}

// SampleArrived delivers one sampled point to the estimator. It only has an
// effect while the estimator is running; while stopped it is a no-op.
type SampleArrived struct {
	Point Point
}

// RequestStop freezes the estimator. History and counts are preserved.
// Idempotent: stopping an already stopped estimator changes nothing.
type RequestStop struct{}

// RequestRestart resets the estimator to its initial empty running state,
// from any current state.
type RequestRestart struct{}

func (SampleArrived) isEvent()  {}
func (RequestStop) isEvent()    {}
func (RequestRestart) isEvent() {}

// State is the complete estimator state. Hits and Misses are ordered
// most-recent-first and exist only for display; the estimate is derived from
// the counts. HitCount == len(Hits) and MissCount == len(Misses) hold after
// every transition.
type State struct {
	Hits      []Point
	Misses    []Point
	HitCount  int
	MissCount int
	Stopped   bool
}

// NewState returns the initial state: running, empty history, zero counts.
func NewState() State {
	return State{}
}

// Reduce applies one event to a state and returns the resulting state. It is
// a pure function: neither s nor its history slices are mutated, so callers
// may retain old states freely. All (state, event) pairs are valid; there are
// no error conditions.
func Reduce(s State, e Event) State {
	switch ev := e.(type) {
	case SampleArrived:
		if s.Stopped {
			return s
		}
		switch Classify(ev.Point) {
		case Hit:
			s.Hits = prepend(s.Hits, ev.Point)
			s.HitCount++
		case Miss:
			s.Misses = prepend(s.Misses, ev.Point)
			s.MissCount++
		}
		return s
	case RequestStop:
		s.Stopped = true
		return s
	case RequestRestart:
		return NewState()
	default:
		return s
	}
}

// prepend returns a new slice with p in front of points, leaving the input
// slice untouched.
func prepend(points []Point, p Point) []Point {
	out := make([]Point, 0, len(points)+1)
	out = append(out, p)
	return append(out, points...)
}

// EstimatePi derives the Monte Carlo estimate 4·hits/(hits+misses).
// Returns NaN when no samples have been recorded.
func (s State) EstimatePi() float64 {
	total := s.HitCount + s.MissCount
	if total == 0 {
		return math.NaN()
	}
	return 4.0 * float64(s.HitCount) / float64(total)
}

// Total returns the number of samples recorded so far.
func (s State) Total() int {
	return s.HitCount + s.MissCount
}

// Machine wraps a State with in-place event dispatch for callers that drive
// the reducer from a game loop. Not safe for concurrent use; the loop
// delivers events strictly one at a time.
type Machine struct {
	state State
}

// NewMachine creates a Machine in the initial state.
func NewMachine() *Machine {
	return &Machine{state: NewState()}
}

// Dispatch applies one event to the machine's state.
func (m *Machine) Dispatch(e Event) {
	m.state = Reduce(m.state, e)
}

// State returns the current state. The returned value shares its history
// slices with the machine but Reduce never mutates them.
func (m *Machine) State() State {
	return m.state
}
