package plangen

import (
	"testing"
)

func TestRun_HappyPathHistory(t *testing.T) {
	r := newRun()
	r.request()
	r.to(StateValidating)
	r.to(StateSucceeded)

	want := []RunState{StatePending, StateRequested, StateValidating, StateSucceeded}
	if len(r.History) != len(want) {
		t.Fatalf("history = %v, want %v", r.History, want)
	}
	for i, s := range want {
		if r.History[i] != s {
			t.Fatalf("history[%d] = %s, want %s", i, r.History[i], s)
		}
	}
	if r.Attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", r.Attempts)
	}
}

func TestRun_RetryLoop(t *testing.T) {
	r := newRun()
	r.request()
	r.retryObserved()
	r.retryObserved()

	if r.Attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", r.Attempts)
	}

	want := []RunState{
		StatePending, StateRequested,
		StateRetrying, StateRequested,
		StateRetrying, StateRequested,
	}
	for i, s := range want {
		if r.History[i] != s {
			t.Fatalf("history[%d] = %s, want %s", i, r.History[i], s)
		}
	}
}

func TestRun_RepairRetriesStayInRepairRequested(t *testing.T) {
	r := newRun()
	r.request()
	r.to(StateValidating)
	r.repair()
	r.retryObserved()

	if r.State != StateRepairRequested {
		t.Fatalf("expected repair_requested, got %s", r.State)
	}
	if r.Attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", r.Attempts)
	}
	if !r.RepairAttempted {
		t.Fatal("expected RepairAttempted set")
	}
}

func TestRun_TerminalStatesAreFinal(t *testing.T) {
	r := newRun()
	r.request()
	r.to(StateFailed)

	if !r.Terminal() {
		t.Fatal("expected terminal")
	}

	before := len(r.History)
	r.to(StateRequested)
	r.retryObserved()
	if r.State != StateFailed {
		t.Fatalf("terminal state must not change, got %s", r.State)
	}
	if len(r.History) != before {
		t.Fatalf("history grew after terminal state: %v", r.History)
	}
}

func TestRunState_String(t *testing.T) {
	pairs := map[RunState]string{
		StatePending:         "pending",
		StateRequested:       "requested",
		StateRetrying:        "retrying",
		StateValidating:      "validating",
		StateRepairRequested: "repair_requested",
		StateSucceeded:       "succeeded",
		StateFailed:          "failed",
	}
	for state, want := range pairs {
		if state.String() != want {
			t.Errorf("%d.String() = %q, want %q", state, state.String(), want)
		}
	}
}
