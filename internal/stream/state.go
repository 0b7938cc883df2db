package stream

// State describes the lifecycle of a topic's channel.
type State int

const (
	// Disconnected is the initial state and the result of an explicit
	// Disconnect call.
	Disconnected State = iota
	// Connecting means a handshake is in flight.
	Connecting
	// Connected means the channel is live and dispatching events.
	Connected
	// Backoff means the channel dropped and a reconnect is scheduled.
	Backoff
	// Failed is terminal: the attempt budget ran out. A fresh Connect call
	// is required to try again.
	Failed
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Backoff:
		return "backoff"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
