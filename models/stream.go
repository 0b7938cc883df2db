package models

import "encoding/json"

// Envelope is the wire framing for every event-stream message: a type tag
// plus an opaque payload that listeners decode themselves.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Server-pushed event types.
const (
	EventPriceUpdate      = "price_update"
	EventPortfolioUpdate  = "portfolio_update"
	EventNews             = "news"
	EventAnalysisComplete = "analysis_complete"
)

// Connection-status pseudo-events. They are synthesised locally by the
// stream client, never sent by the server, and are dispatched through the
// same listener registry as real events.
const (
	EventConnected    = "connection.connected"
	EventDisconnected = "connection.disconnected"
	EventReconnecting = "connection.reconnecting"
	EventFailed       = "connection.failed"
)

// PortfolioUpdatePayload is the payload of portfolio_update events.
type PortfolioUpdatePayload struct {
	PortfolioID string    `json:"portfolio_id"`
	Portfolio   Portfolio `json:"portfolio"`
}
