package plangen

import "fmt"

// RunState is one state of a generation run.
type RunState int

const (
	StatePending RunState = iota
	StateRequested
	StateRetrying
	StateValidating
	StateRepairRequested
	StateSucceeded
	StateFailed
)

func (s RunState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateRequested:
		return "requested"
	case StateRetrying:
		return "retrying"
	case StateValidating:
		return "validating"
	case StateRepairRequested:
		return "repair_requested"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Run records the state machine of one generation invocation:
//
//	Pending -> Requested -> (Retrying -> Requested)* -> Validating ->
//	(RepairRequested -> Validating)? -> Succeeded | Failed
//
// Succeeded and Failed are terminal; transitions after either are ignored.
// A Run belongs to a single invocation and is not safe for concurrent use.
type Run struct {
	// State is the current state.
	State RunState

	// History lists every state entered, in order, starting with Pending.
	History []RunState

	// Attempts counts provider calls issued, across the initial request,
	// its retries, and the repair round-trip.
	Attempts int

	// RepairAttempted is set once the single repair round-trip is issued.
	RepairAttempted bool
}

func newRun() *Run {
	r := &Run{}
	r.to(StatePending)
	return r
}

// to enters a state. Terminal states are final.
func (r *Run) to(s RunState) {
	if r.State == StateSucceeded || r.State == StateFailed {
		return
	}
	r.State = s
	r.History = append(r.History, s)
}

// request records one outbound provider call.
func (r *Run) request() {
	r.to(StateRequested)
	r.Attempts++
}

// retryObserved records a retry of whichever request is outstanding.
// Retries of the initial request surface as Retrying -> Requested; retries
// inside the repair round-trip stay in RepairRequested.
func (r *Run) retryObserved() {
	if r.State == StateRepairRequested {
		r.Attempts++
		return
	}
	r.to(StateRetrying)
	r.to(StateRequested)
	r.Attempts++
}

// repair records the single repair round-trip.
func (r *Run) repair() {
	r.to(StateRepairRequested)
	r.Attempts++
	r.RepairAttempted = true
}

// Terminal reports whether the run has finished.
func (r *Run) Terminal() bool {
	return r.State == StateSucceeded || r.State == StateFailed
}
