// SPDX-License-Identifier: Apache-2.0

// Package stream maintains live event subscriptions to the copilot backend.
//
// Each topic (a portfolio id) is backed by at most one WebSocket channel.
// The [Client] owns the per-topic channel map and a listener registry keyed
// by event type; inbound messages are parsed into [models.Envelope] values
// and fanned out to listeners in registration order. Channels reconnect
// automatically with a bounded, strictly increasing backoff and give up
// after the attempt budget, at which point a fresh Connect call is needed.
//
// Connection lifecycle changes are observable through the connection.*
// pseudo-events, dispatched through the same listener registry as server
// events.
package stream

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/fincopilot/go-copilot-client/internal/config"
	"github.com/fincopilot/go-copilot-client/internal/logger"
	"github.com/fincopilot/go-copilot-client/internal/store"
	"github.com/fincopilot/go-copilot-client/models"
)

const writeTimeout = 10 * time.Second

// Handler receives the payload of a dispatched envelope. Handlers run on
// the channel's read goroutine: a slow handler delays subsequent events for
// the same topic, which is what keeps per-topic ordering intact.
type Handler func(payload json.RawMessage)

// Subscription identifies a registered listener for later removal.
type Subscription struct {
	eventType string
	id        uint64
}

type listenerEntry struct {
	id uint64
	fn Handler
}

// statusPayload is the body of connection.* pseudo-events.
type statusPayload struct {
	Topic string `json:"topic"`
	Error string `json:"error,omitempty"`
}

// Client multiplexes event-stream channels over topics and fans envelopes
// out to registered listeners. Listeners are client-wide: they survive
// disconnects and reconnects of any topic.
type Client struct {
	wsBase   string
	cfg      config.ClientStream
	sessions store.SessionStore
	logger   *logger.Logger

	mu        sync.Mutex
	channels  map[string]*channel
	listeners map[string][]listenerEntry
	nextID    uint64
}

// NewClient builds a stream client rooted at wsBase (e.g. ws://host:8000).
// The bearer token for the handshake is read from sessions at dial time, so
// a re-login between reconnect attempts picks up the fresh token.
func NewClient(wsBase string, streamCfg config.ClientStream, sessions store.SessionStore, logger *logger.Logger) *Client {
	return &Client{
		wsBase:    strings.TrimRight(wsBase, "/"),
		cfg:       streamCfg,
		sessions:  sessions,
		logger:    logger,
		channels:  make(map[string]*channel),
		listeners: make(map[string][]listenerEntry),
	}
}

// Connect ensures a live channel for topic. Calling it while the topic is
// Connecting, Connected or in Backoff is a no-op; a Failed or fully
// disconnected topic starts over from attempt one.
func (c *Client) Connect(topic string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ch, ok := c.channels[topic]; ok {
		switch ch.currentState() {
		case Connecting, Connected, Backoff:
			return
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch := &channel{topic: topic, cancel: cancel, state: Connecting}
	c.channels[topic] = ch
	go c.run(ctx, ch)
}

// Disconnect releases the topic's channel. Registered listeners are kept:
// they fire again after a future Connect. Unknown topics are a no-op.
func (c *Client) Disconnect(topic string) {
	c.mu.Lock()
	ch := c.channels[topic]
	delete(c.channels, topic)
	c.mu.Unlock()

	if ch == nil {
		return
	}
	ch.cancel()
	ch.close()
	c.logger.Debug().Str("topic", topic).Msg("channel disconnected")
}

// Close disconnects every topic.
func (c *Client) Close() {
	c.mu.Lock()
	channels := c.channels
	c.channels = make(map[string]*channel)
	c.mu.Unlock()

	for _, ch := range channels {
		ch.cancel()
		ch.close()
	}
}

// State reports the topic's channel state. Topics never connected (or
// explicitly disconnected) report Disconnected.
func (c *Client) State(topic string) State {
	c.mu.Lock()
	ch := c.channels[topic]
	c.mu.Unlock()

	if ch == nil {
		return Disconnected
	}
	return ch.currentState()
}

// Subscribe registers fn for envelopes of the given event type and returns
// a handle for removal. Multiple listeners per type are dispatched in
// registration order.
func (c *Client) Subscribe(eventType string, fn Handler) Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	c.listeners[eventType] = append(c.listeners[eventType], listenerEntry{id: c.nextID, fn: fn})
	return Subscription{eventType: eventType, id: c.nextID}
}

// Unsubscribe removes a previously registered listener. Removing a handle
// twice, or one that was never registered, is a no-op.
func (c *Client) Unsubscribe(sub Subscription) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := c.listeners[sub.eventType]
	for i, e := range entries {
		if e.id == sub.id {
			c.listeners[sub.eventType] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// Send transmits an envelope on the topic's channel. Payloads are dropped
// with [ErrNotConnected] when the channel is not Connected; nothing is
// queued.
func (c *Client) Send(topic string, env models.Envelope) error {
	c.mu.Lock()
	ch := c.channels[topic]
	c.mu.Unlock()

	if ch == nil {
		return ErrNotConnected
	}
	return ch.write(env)
}

// run drives one topic's reconnect state machine until the context is
// cancelled or the attempt budget runs out.
func (c *Client) run(ctx context.Context, ch *channel) {
	attempt := 0
	for {
		if ctx.Err() != nil {
			return
		}

		ch.setState(Connecting)
		conn, resp, err := websocket.DefaultDialer.DialContext(ctx, c.topicURL(ch.topic), nil)
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			attempt++
			if !c.scheduleRetry(ctx, ch, attempt, err) {
				return
			}
			continue
		}

		ch.attach(conn)
		ch.setState(Connected)
		c.emitStatus(models.EventConnected, ch.topic, nil)
		c.logger.Info().Str("topic", ch.topic).Msg("channel connected")

		connCtx, connCancel := context.WithCancel(ctx)
		go c.pingLoop(connCtx, ch, conn)
		readErr := c.readLoop(ctx, conn)
		connCancel()
		_ = conn.Close()
		ch.detach()

		if ctx.Err() != nil {
			return
		}

		c.emitStatus(models.EventDisconnected, ch.topic, readErr)
		// reaching Connected rewinds the budget: this drop retries from
		// the base delay no matter how the previous attempts went
		attempt = 1
		if !c.scheduleRetry(ctx, ch, attempt, readErr) {
			return
		}
	}
}

// scheduleRetry transitions to Backoff and waits out the computed delay.
// Returns false when the channel is done for good (budget exhausted or
// context cancelled).
func (c *Client) scheduleRetry(ctx context.Context, ch *channel, attempt int, cause error) bool {
	if c.cfg.MaxAttempts > 0 && attempt > c.cfg.MaxAttempts {
		ch.setState(Failed)
		c.emitStatus(models.EventFailed, ch.topic, cause)
		c.logger.Error().Err(cause).Str("topic", ch.topic).Int("attempts", attempt-1).
			Msg("channel failed, reconnect budget exhausted")
		return false
	}

	delay := c.backoffDelay(attempt)
	ch.setState(Backoff)
	c.emitStatus(models.EventReconnecting, ch.topic, cause)
	c.logger.Warn().Err(cause).Str("topic", ch.topic).Int("attempt", attempt).
		Dur("delay", delay).Msg("channel reconnecting")

	select {
	case <-ctx.Done():
		return false
	case <-time.After(delay):
		return true
	}
}

// backoffDelay grows linearly with the attempt count, capped at BackoffCap.
// Strictly increasing for consecutive failures until the cap is hit.
func (c *Client) backoffDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	delay := c.cfg.BackoffBase * time.Duration(attempt)
	if c.cfg.BackoffCap > 0 && delay > c.cfg.BackoffCap {
		delay = c.cfg.BackoffCap
	}
	return delay
}

// readLoop reads envelopes until the connection errors out. Malformed
// frames are dropped and logged, never handed to listeners. The context
// check before dispatch makes an explicit Disconnect stop fan-out even for
// frames already read off the wire.
func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn) error {
	if c.cfg.PingInterval > 0 {
		pongWait := 2 * c.cfg.PingInterval
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		var env models.Envelope
		if err := json.Unmarshal(data, &env); err != nil || env.Type == "" {
			c.logger.Warn().Err(err).Msg("drop malformed envelope")
			continue
		}

		c.dispatch(env)
	}
}

// pingLoop keeps the transport alive for one connection. Exits when the
// connection's context is cancelled or a write fails.
func (c *Client) pingLoop(ctx context.Context, ch *channel, conn *websocket.Conn) {
	interval := c.cfg.PingInterval
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ch.writeMu.Lock()
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			err := conn.WriteMessage(websocket.PingMessage, nil)
			ch.writeMu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

// dispatch fans one envelope out to the listeners registered for its type,
// in registration order. The registry is copied first so a handler may
// subscribe or unsubscribe without deadlocking.
func (c *Client) dispatch(env models.Envelope) {
	c.mu.Lock()
	entries := append([]listenerEntry(nil), c.listeners[env.Type]...)
	c.mu.Unlock()

	for _, e := range entries {
		e.fn(env.Payload)
	}
}

func (c *Client) emitStatus(eventType, topic string, cause error) {
	p := statusPayload{Topic: topic}
	if cause != nil {
		p.Error = cause.Error()
	}
	payload, err := json.Marshal(p)
	if err != nil {
		return
	}
	c.dispatch(models.Envelope{Type: eventType, Payload: payload})
}

// topicURL builds the per-topic endpoint. The token travels as a query
// parameter because WebSocket handshakes cannot carry custom headers from
// every client host.
func (c *Client) topicURL(topic string) string {
	u := c.wsBase + "/ws/portfolio/" + url.PathEscape(topic)
	if token := c.sessions.Token(); token != "" {
		u += "?token=" + url.QueryEscape(token)
	}
	return u
}
