// Package lifecycle models the server lifecycle as a finite state machine.
// The machine guards the server runner against illegal sequences such as a
// double start or a shutdown before startup completed.
package lifecycle

// file: internal/lifecycle/machine.go

import (
	"context"

	"github.com/cockroachdb/errors"
	lfsm "github.com/looplab/fsm"

	"github.com/d4ckard/shuttle/internal/logging"
)

// State represents a server lifecycle state.
type State string

const (
	// StateNew is the initial state before Start is called.
	StateNew State = "new"

	// StateStarting covers listener setup and schema compilation.
	StateStarting State = "starting"

	// StateRunning means the server is accepting requests.
	StateRunning State = "running"

	// StateStopping covers graceful shutdown.
	StateStopping State = "stopping"

	// StateStopped is terminal.
	StateStopped State = "stopped"
)

// Event represents a lifecycle transition trigger.
type Event string

const (
	// EventStart moves new -> starting.
	EventStart Event = "start"

	// EventStarted moves starting -> running.
	EventStarted Event = "started"

	// EventStop moves starting or running -> stopping.
	EventStop Event = "stop"

	// EventStopped moves stopping -> stopped.
	EventStopped Event = "stopped"
)

// Machine is a thread-safe lifecycle state machine.
type Machine struct {
	fsm    *lfsm.FSM
	logger logging.Logger
}

// NewMachine creates a lifecycle machine in StateNew.
func NewMachine(logger logging.Logger) *Machine {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}
	logger = logger.WithField("component", "lifecycle")

	m := &Machine{logger: logger}
	m.fsm = lfsm.NewFSM(
		string(StateNew),
		lfsm.Events{
			{Name: string(EventStart), Src: []string{string(StateNew)}, Dst: string(StateStarting)},
			{Name: string(EventStarted), Src: []string{string(StateStarting)}, Dst: string(StateRunning)},
			{Name: string(EventStop), Src: []string{string(StateStarting), string(StateRunning)}, Dst: string(StateStopping)},
			{Name: string(EventStopped), Src: []string{string(StateStopping)}, Dst: string(StateStopped)},
		},
		lfsm.Callbacks{
			"enter_state": func(_ context.Context, e *lfsm.Event) {
				logger.Debug("Lifecycle transition.", "event", e.Event, "from", e.Src, "to", e.Dst)
			},
		},
	)
	return m
}

// Current returns the current lifecycle state.
func (m *Machine) Current() State {
	return State(m.fsm.Current())
}

// Is reports whether the machine is in the given state.
func (m *Machine) Is(s State) bool {
	return m.fsm.Is(string(s))
}

// Fire attempts the transition triggered by event, returning an error if
// it is not legal from the current state.
func (m *Machine) Fire(ctx context.Context, event Event) error {
	if err := m.fsm.Event(ctx, string(event)); err != nil {
		return errors.Wrapf(err, "illegal lifecycle event %q in state %q", event, m.fsm.Current())
	}
	return nil
}
