package client

import "fmt"

// State is the lifecycle of one Generation.
type State int

const (
	// StateIdle is the state before the request is sent.
	StateIdle State = iota
	// StateStreaming is the state while fragments are being received.
	StateStreaming
	// StateCompleted means the done event arrived and OnDone fired.
	StateCompleted
	// StateFailed means OnError fired.
	StateFailed
	// StateCancelled means Cancel ran before a terminal event.
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStreaming:
		return "streaming"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed || s == StateCancelled
}
