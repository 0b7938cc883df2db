package stream

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/fincopilot/go-copilot-client/models"
)

// channel is the live connection backing one topic. State and the conn
// pointer are guarded by mu; writeMu serialises all conn writes (pings and
// Send) since gorilla connections allow one concurrent writer.
type channel struct {
	topic  string
	cancel func()

	mu      sync.Mutex
	writeMu sync.Mutex
	state   State
	conn    *websocket.Conn
}

func (ch *channel) currentState() State {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.state
}

func (ch *channel) setState(s State) {
	ch.mu.Lock()
	ch.state = s
	ch.mu.Unlock()
}

func (ch *channel) attach(conn *websocket.Conn) {
	ch.mu.Lock()
	ch.conn = conn
	ch.mu.Unlock()
}

func (ch *channel) detach() {
	ch.mu.Lock()
	ch.conn = nil
	ch.mu.Unlock()
}

// close tears the connection down and parks the channel in Disconnected.
func (ch *channel) close() {
	ch.mu.Lock()
	if ch.conn != nil {
		_ = ch.conn.Close()
		ch.conn = nil
	}
	ch.state = Disconnected
	ch.mu.Unlock()
}

// write sends an envelope when and only when the channel is Connected.
func (ch *channel) write(env models.Envelope) error {
	ch.mu.Lock()
	conn := ch.conn
	connected := ch.state == Connected
	ch.mu.Unlock()

	if !connected || conn == nil {
		return ErrNotConnected
	}

	ch.writeMu.Lock()
	defer ch.writeMu.Unlock()
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteJSON(env)
}
