package stream

import "errors"

// ErrNotConnected is returned by Send when the topic's channel is not in the
// Connected state. Outbound payloads are dropped, never queued: a caller
// that needs delivery guarantees must wait for the connected status event
// and resend.
var ErrNotConnected = errors.New("stream: not connected")
