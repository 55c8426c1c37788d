package attendance

import "sync"

type FetchPhase string

const (
	PhaseIdle     FetchPhase = "idle"
	PhaseFetching FetchPhase = "fetching"
	PhaseReady    FetchPhase = "ready"
	PhaseEmpty    FetchPhase = "empty"
	PhaseError    FetchPhase = "error"
)

// FetchCycle is the per-dashboard fetch state machine, keyed by the currently
// selected schedule id. Rapid navigation across departments or periods can
// leave responses for an abandoned schedule in flight; a completion whose
// schedule id no longer matches the current one is discarded instead of being
// guarded by ad hoc loading flags. The request/response HTTP shell is
// stateless and has no use for it; it serves stateful presentation callers
// that hold a dashboard session.
type FetchCycle struct {
	mu         sync.Mutex
	scheduleID string
	phase      FetchPhase
	err        error
}

func NewFetchCycle() *FetchCycle {
	return &FetchCycle{phase: PhaseIdle}
}

// Begin starts a fetch for the given schedule id, superseding any cycle still
// in flight for a previous id.
func (c *FetchCycle) Begin(scheduleID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scheduleID = scheduleID
	c.phase = PhaseFetching
	c.err = nil
}

// Complete finishes the fetch for scheduleID with the number of records
// received. A completion for a superseded schedule id is ignored and reported
// as stale.
func (c *FetchCycle) Complete(scheduleID string, recordCount int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if scheduleID != c.scheduleID || c.phase != PhaseFetching {
		return false
	}
	if recordCount == 0 {
		c.phase = PhaseEmpty
	} else {
		c.phase = PhaseReady
	}
	return true
}

// Fail records a fetch error for scheduleID, unless it has been superseded.
func (c *FetchCycle) Fail(scheduleID string, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if scheduleID != c.scheduleID || c.phase != PhaseFetching {
		return false
	}
	c.phase = PhaseError
	c.err = err
	return true
}

// State returns the current schedule id and phase.
func (c *FetchCycle) State() (string, FetchPhase) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scheduleID, c.phase
}

// Err returns the error of the last failed cycle, if the current phase is
// PhaseError.
func (c *FetchCycle) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseError {
		return nil
	}
	return c.err
}
