package orchestrator

// State is the lifecycle state of one attempt.
type State string

const (
	StateIdle            State = "idle"
	StateSubmitting      State = "submitting"
	StateAwaitingPayment State = "awaiting_payment"
	StatePaying          State = "paying"
	StatePolling         State = "polling"
	StateConfirmed       State = "confirmed"
	StateError           State = "error"
)

// transitions lists the states reachable from each state.
var transitions = map[State][]State{
	StateIdle:            {StateSubmitting},
	StateSubmitting:      {StateAwaitingPayment, StateError, StateIdle},
	StateAwaitingPayment: {StatePaying, StateConfirmed, StateSubmitting, StateIdle},
	StatePaying:          {StatePolling, StateError},
	StatePolling:         {StateConfirmed, StateError, StateSubmitting, StateIdle},
	StateConfirmed:       {StateSubmitting, StateIdle},
	StateError:           {StateSubmitting, StateIdle},
}

// CanTransition reports whether to is reachable from s.
func (s State) CanTransition(to State) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the attempt is finished, successfully or not.
func (s State) IsTerminal() bool {
	return s == StateConfirmed || s == StateError
}

func (s State) String() string {
	return string(s)
}

// Operation names a user-triggered operation guarded by a busy flag.
type Operation string

const (
	OpSubmit Operation = "submit"
	OpPay    Operation = "pay"
	OpCheck  Operation = "check"
)
