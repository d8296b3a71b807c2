package deployer

import (
	"fmt"
	"slices"
	"sync"
)

// State is the deployment lifecycle state.
type State string

const (
	StateNotDeployed              State = "not-deployed"
	StateApplying                 State = "applying"
	StateWaitingPodRunning        State = "waiting-pod-running"
	StateWaitingServiceResponsive State = "waiting-service-responsive"
	StateWaitingIngressResponsive State = "waiting-ingress-responsive"
	StateReady                    State = "ready"
	StateError                    State = "error"
)

// transitions lists the forward edges. Error is reachable from every
// non-terminal state and is not listed.
var transitions = map[State][]State{
	StateNotDeployed:              {StateApplying},
	StateApplying:                 {StateWaitingPodRunning},
	StateWaitingPodRunning:        {StateWaitingServiceResponsive},
	StateWaitingServiceResponsive: {StateWaitingIngressResponsive, StateReady},
	StateWaitingIngressResponsive: {StateReady},
}

func (s State) Terminal() bool {
	return s == StateReady || s == StateError
}

// tracker validates transitions and records the history of one attempt.
type tracker struct {
	mu      sync.Mutex
	history []State
}

func newTracker() *tracker {
	return &tracker{
		history: []State{StateNotDeployed},
	}
}

func (t *tracker) current() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.history[len(t.history)-1]
}

func (t *tracker) transition(to State) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	from := t.history[len(t.history)-1]
	if from.Terminal() {
		return fmt.Errorf("transition %s -> %s: %w", from, to, ErrInvalidStateTransition)
	}

	if to != StateError && !slices.Contains(transitions[from], to) {
		return fmt.Errorf("transition %s -> %s: %w", from, to, ErrInvalidStateTransition)
	}

	t.history = append(t.history, to)

	return nil
}

func (t *tracker) snapshot() []State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return slices.Clone(t.history)
}
