package models

import "time"

// UserProfile is the account record returned by the auth endpoints.
type UserProfile struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	CreatedAt   time.Time `json:"created_at"`
	RiskProfile string    `json:"risk_profile,omitempty"`
}

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// LoginResponse is the token payload returned by POST /api/auth/login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RiskProfile is the payload for POST /api/auth/risk-profile.
type RiskProfile struct {
	RiskTolerance     string `json:"risk_tolerance"`
	InvestmentHorizon string `json:"investment_horizon"`
}

// Session couples the bearer token with the profile it was issued for.
// At most one Session is active per client instance; it is persisted by the
// session store so it survives a process restart.
type Session struct {
	Token     string      `json:"token"`
	User      UserProfile `json:"user"`
	CreatedAt time.Time   `json:"created_at"`
}
