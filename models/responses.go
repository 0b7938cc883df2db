package models

// APIError is the error body the backend returns for non-2xx responses
// (FastAPI convention: {"detail": "..."}).
type APIError struct {
	Detail string `json:"detail"`
}

// MessageResponse is the generic acknowledgement body for mutating endpoints
// (transactions, CSV import, risk-profile updates).
type MessageResponse struct {
	Message     string `json:"message"`
	PortfolioID string `json:"portfolio_id,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
