// SPDX-License-Identifier: Apache-2.0

// Package copilotest runs an in-process fake of the copilot backend for
// integration tests: the REST endpoints the adapter talks to and the
// per-portfolio WebSocket event stream, with seedable fixtures.
//
// The fake verifies real HS256 bearer tokens so token-lifecycle behaviour
// (login, expiry, rejection) can be exercised end to end without a network.
package copilotest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"

	"github.com/fincopilot/go-copilot-client/models"
)

const tokenTTL = time.Hour

type account struct {
	password string
	profile  models.UserProfile
}

// Server is the fake backend. Seed state through the exported helpers, then
// point the client at URL (http) or WSURL (ws).
type Server struct {
	httpSrv *httptest.Server
	secret  []byte

	mu         sync.Mutex
	accounts   map[string]*account
	portfolios map[string]*models.Portfolio
	scripted   map[string][]models.Envelope
	conns      map[string][]*wsConn

	// RejectAuth forces every authenticated endpoint to answer 401,
	// regardless of the presented token.
	RejectAuth bool
}

type wsConn struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

// NewServer starts the fake backend with the demo account registered.
func NewServer() *Server {
	s := &Server{
		secret:     []byte("copilotest-secret"),
		accounts:   make(map[string]*account),
		portfolios: make(map[string]*models.Portfolio),
		scripted:   make(map[string][]models.Envelope),
		conns:      make(map[string][]*wsConn),
	}
	s.SeedAccount("demo@example.com", "demo123", "Demo User")

	s.httpSrv = httptest.NewServer(s.router())
	return s
}

// URL is the http base address.
func (s *Server) URL() string { return s.httpSrv.URL }

// WSURL is the ws base address.
func (s *Server) WSURL() string { return "ws" + strings.TrimPrefix(s.httpSrv.URL, "http") }

// Close shuts the backend down.
func (s *Server) Close() { s.httpSrv.Close() }

// SeedAccount registers a user without going through the register endpoint.
func (s *Server) SeedAccount(email, password, fullName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[email] = &account{
		password: password,
		profile: models.UserProfile{
			ID:        uuid.NewString(),
			Email:     email,
			FullName:  fullName,
			CreatedAt: time.Now().UTC(),
		},
	}
}

// SeedPortfolio installs a portfolio fixture.
func (s *Server) SeedPortfolio(p models.Portfolio) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := p
	s.portfolios[p.ID] = &cp
}

// Script queues envelopes that are pushed as soon as a stream connects to
// the topic.
func (s *Server) Script(topic string, envelopes ...models.Envelope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scripted[topic] = append(s.scripted[topic], envelopes...)
}

// Push sends an envelope to every live stream connection of the topic.
func (s *Server) Push(topic string, env models.Envelope) {
	s.mu.Lock()
	conns := append([]*wsConn(nil), s.conns[topic]...)
	s.mu.Unlock()

	for _, c := range conns {
		c.writeMu.Lock()
		_ = c.conn.WriteJSON(env)
		c.writeMu.Unlock()
	}
}

// DropStreams force-closes every live stream connection of the topic,
// simulating a server-side drop.
func (s *Server) DropStreams(topic string) {
	s.mu.Lock()
	conns := s.conns[topic]
	s.conns[topic] = nil
	s.mu.Unlock()

	for _, c := range conns {
		_ = c.conn.Close()
	}
}

// IssueToken mints a bearer token for email with the given expiry, letting
// tests fabricate expired or about-to-expire credentials.
func (s *Server) IssueToken(email string, expiresAt time.Time) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": email,
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		panic(err)
	}
	return signed
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, models.HealthResponse{Status: "healthy"})
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/me", s.handleMe)
			r.Post("/risk-profile", s.handleRiskProfile)
		})
	})

	r.Route("/api/portfolio", func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Post("/create", s.handleCreatePortfolio)
		r.Get("/list", s.handleListPortfolios)
		r.Get("/{portfolioID}", s.handleGetPortfolio)
		r.Delete("/{portfolioID}", s.handleDeletePortfolio)
		r.Post("/{portfolioID}/transaction", s.handleTransaction)
		r.Post("/{portfolioID}/upload-csv", s.handleImportCSV)
		r.Get("/{portfolioID}/export-csv", s.handleExportCSV)
	})

	r.Route("/api/analysis", func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get("/stock/{symbol}", s.handleAnalyzeStock)
		r.Get("/stock/{symbol}/peers", s.handleStockPeers)
		r.Get("/stock/{symbol}/news", s.handleStockNews)
		r.Get("/stock/{symbol}/trend", s.handleMarketTrend)
		r.Get("/market/overview", s.handleMarketOverview)
		r.Get("/market/sectors", s.handleMarketSectors)
		r.Get("/portfolio/{portfolioID}/analysis", s.handleAnalyzePortfolio)
		r.Get("/portfolio/{portfolioID}/recommendations", s.handleRecommendations)
	})

	r.Get("/ws/portfolio/{portfolioID}", s.handleStream)

	return r
}

// ── Auth ────────────────────────────────────────────────────────────────────

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeDetail(w, http.StatusBadRequest, "invalid registration payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[req.Email]; exists {
		writeDetail(w, http.StatusConflict, "Email already registered")
		return
	}

	acct := &account{
		password: req.Password,
		profile: models.UserProfile{
			ID:        uuid.NewString(),
			Email:     req.Email,
			FullName:  req.FullName,
			CreatedAt: time.Now().UTC(),
		},
	}
	s.accounts[req.Email] = acct
	writeJSON(w, http.StatusOK, acct.profile)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeDetail(w, http.StatusBadRequest, "expected form body")
		return
	}
	email := r.PostForm.Get("username")
	password := r.PostForm.Get("password")

	s.mu.Lock()
	acct, ok := s.accounts[email]
	s.mu.Unlock()
	if !ok || acct.password != password {
		writeDetail(w, http.StatusUnauthorized, "Incorrect email or password")
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{
		AccessToken: s.IssueToken(email, time.Now().Add(tokenTTL)),
		TokenType:   "bearer",
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	acct := s.accountFor(r)
	if acct == nil {
		writeDetail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	writeJSON(w, http.StatusOK, acct.profile)
}

func (s *Server) handleRiskProfile(w http.ResponseWriter, r *http.Request) {
	acct := s.accountFor(r)
	if acct == nil {
		writeDetail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var profile models.RiskProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil || profile.RiskTolerance == "" {
		writeDetail(w, http.StatusBadRequest, "invalid risk profile")
		return
	}

	s.mu.Lock()
	acct.profile.RiskProfile = profile.RiskTolerance
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Risk profile updated"})
}

// requireAuth verifies the bearer token signature and expiry.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.RejectAuth || s.emailFromRequest(r) == "" {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) emailFromRequest(r *http.Request) string {
	header := r.Header.Get("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return s.emailFromToken(raw)
}

func (s *Server) emailFromToken(raw string) string {
	token, err := jwt.Parse(raw, func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return ""
	}
	sub, err := token.Claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

func (s *Server) accountFor(r *http.Request) *account {
	email := s.emailFromRequest(r)
	if email == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts[email]
}

// ── Helpers ─────────────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, models.APIError{Detail: detail})
}

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
