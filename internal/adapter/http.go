package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/fincopilot/go-copilot-client/internal/config"
	"github.com/fincopilot/go-copilot-client/internal/logger"
	"github.com/fincopilot/go-copilot-client/internal/store"
	"github.com/fincopilot/go-copilot-client/models"
)

type httpServerAdapter struct {
	client   *resty.Client
	sessions store.SessionStore

	// onAuthReject is fired once per rejected request, after the session
	// store has been cleared. Nil is allowed.
	onAuthReject func(reason string)

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying resty client with the
// resolved base URL and request timeout.
//
// The bearer token is never held by the adapter itself: every authenticated
// request reads it from sessions at send time, so a login or logout elsewhere
// in the process takes effect on the very next call.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, sessions store.SessionStore, onAuthReject func(reason string), logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{
		client:       client,
		sessions:     sessions,
		onAuthReject: onAuthReject,
		logger:       logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// authedRequest prepares a request carrying the current bearer token and a
// fresh request id. The token is read from the session store exactly once
// per request; if the store is empty the Authorization header is omitted and
// the backend answers 401 as usual.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", newRequestID())
	if token := h.sessions.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func newRequestID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// checkResponse maps the response status to a sentinel error. A 401 carries
// the auth-rejection side effect: the session store is cleared and the
// redirect hook fired before the error is returned.
func (h *httpServerAdapter) checkResponse(resp *resty.Response) error {
	err := mapHTTPError(resp)
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUnauthorized) {
		h.rejectAuth(err.Error())
	}
	return err
}

func (h *httpServerAdapter) rejectAuth(reason string) {
	if clearErr := h.sessions.Clear(); clearErr != nil {
		h.logger.Warn().Err(clearErr).Msg("clear session after auth rejection")
	}
	if h.onAuthReject != nil {
		h.onAuthReject(reason)
	}
}

// Register implements [ServerAdapter]. It POSTs the new account to
// POST /api/auth/register and returns the created profile. Registration does
// not log the user in; call Login afterwards to obtain a token.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.UserProfile, error) {
	var profile models.UserProfile
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-Id", newRequestID()).
		SetBody(req).
		SetResult(&profile).
		Post("/api/auth/register")
	if err != nil {
		return models.UserProfile{}, netError("register request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	return profile, nil
}

// Login implements [ServerAdapter]. The backend speaks the OAuth2 password
// flow, so credentials go out as a form body with the email in the username
// field. The returned token is handed to the caller; persisting it in the
// session store is the service layer's job.
func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (models.LoginResponse, error) {
	var loginResp models.LoginResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", newRequestID()).
		SetFormData(map[string]string{
			"username": email,
			"password": password,
		}).
		SetResult(&loginResp).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, netError("login request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	if loginResp.AccessToken == "" {
		return models.LoginResponse{}, fmt.Errorf("login response carries no access token")
	}
	return loginResp, nil
}

// Me implements [ServerAdapter].
func (h *httpServerAdapter) Me(ctx context.Context) (models.UserProfile, error) {
	var profile models.UserProfile
	resp, err := h.authedRequest(ctx).
		SetResult(&profile).
		Get("/api/auth/me")
	if err != nil {
		return models.UserProfile{}, netError("me request", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.UserProfile{}, err
	}

	return profile, nil
}

// SetRiskProfile implements [ServerAdapter].
func (h *httpServerAdapter) SetRiskProfile(ctx context.Context, profile models.RiskProfile) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(profile).
		Post("/api/auth/risk-profile")
	if err != nil {
		return netError("risk profile request", err)
	}
	return h.checkResponse(resp)
}

// CreatePortfolio implements [ServerAdapter].
func (h *httpServerAdapter) CreatePortfolio(ctx context.Context, req models.CreatePortfolioRequest) (models.Portfolio, error) {
	var portfolio models.Portfolio
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&portfolio).
		Post("/api/portfolio/create")
	if err != nil {
		return models.Portfolio{}, netError("create portfolio request", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.Portfolio{}, err
	}

	return portfolio, nil
}

// ListPortfolios implements [ServerAdapter].
func (h *httpServerAdapter) ListPortfolios(ctx context.Context) ([]models.PortfolioSummary, error) {
	var summaries []models.PortfolioSummary
	resp, err := h.authedRequest(ctx).
		SetResult(&summaries).
		Get("/api/portfolio/list")
	if err != nil {
		return nil, netError("list portfolios request", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return nil, err
	}

	return summaries, nil
}

// GetPortfolio implements [ServerAdapter].
func (h *httpServerAdapter) GetPortfolio(ctx context.Context, portfolioID string) (models.Portfolio, error) {
	var portfolio models.Portfolio
	resp, err := h.authedRequest(ctx).
		SetPathParam("portfolioID", portfolioID).
		SetResult(&portfolio).
		Get("/api/portfolio/{portfolioID}")
	if err != nil {
		return models.Portfolio{}, netError("get portfolio request", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.Portfolio{}, err
	}

	return portfolio, nil
}

// AddTransaction implements [ServerAdapter]. The backend takes the
// transaction fields as query parameters rather than a body.
func (h *httpServerAdapter) AddTransaction(ctx context.Context, portfolioID string, tx models.Transaction) (models.MessageResponse, error) {
	var msg models.MessageResponse
	resp, err := h.authedRequest(ctx).
		SetPathParam("portfolioID", portfolioID).
		SetQueryParams(map[string]string{
			"symbol":           tx.Symbol,
			"transaction_type": string(tx.Type),
			"quantity":         tx.Quantity.String(),
			"price":            tx.Price.String(),
		}).
		SetResult(&msg).
		Post("/api/portfolio/{portfolioID}/transaction")
	if err != nil {
		return models.MessageResponse{}, netError("add transaction request", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return msg, nil
}

// ImportCSV implements [ServerAdapter]. The file goes out as a multipart
// upload under the field name "file", matching what the backend expects.
func (h *httpServerAdapter) ImportCSV(ctx context.Context, portfolioID, filename string, csv io.Reader) (models.MessageResponse, error) {
	var msg models.MessageResponse
	resp, err := h.authedRequest(ctx).
		SetPathParam("portfolioID", portfolioID).
		SetFileReader("file", filename, csv).
		SetResult(&msg).
		Post("/api/portfolio/{portfolioID}/upload-csv")
	if err != nil {
		return models.MessageResponse{}, netError("import csv request", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return msg, nil
}

// ExportCSV implements [ServerAdapter]. The body is returned verbatim; no
// parsing happens here so the caller can stream it to disk or stdout.
func (h *httpServerAdapter) ExportCSV(ctx context.Context, portfolioID string) ([]byte, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("portfolioID", portfolioID).
		Get("/api/portfolio/{portfolioID}/export-csv")
	if err != nil {
		return nil, netError("export csv request", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// DeletePortfolio implements [ServerAdapter].
func (h *httpServerAdapter) DeletePortfolio(ctx context.Context, portfolioID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("portfolioID", portfolioID).
		Delete("/api/portfolio/{portfolioID}")
	if err != nil {
		return netError("delete portfolio request", err)
	}
	return h.checkResponse(resp)
}

// AnalyzeStock implements [ServerAdapter].
func (h *httpServerAdapter) AnalyzeStock(ctx context.Context, symbol string) (models.StockAnalysis, error) {
	var analysis models.StockAnalysis
	resp, err := h.authedRequest(ctx).
		SetPathParam("symbol", symbol).
		SetResult(&analysis).
		Get("/api/analysis/stock/{symbol}")
	if err != nil {
		return models.StockAnalysis{}, netError("analyze stock request", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.StockAnalysis{}, err
	}

	return analysis, nil
}

// StockPeers implements [ServerAdapter].
func (h *httpServerAdapter) StockPeers(ctx context.Context, symbol string) (models.PeerComparison, error) {
	var comparison models.PeerComparison
	resp, err := h.authedRequest(ctx).
		SetPathParam("symbol", symbol).
		SetResult(&comparison).
		Get("/api/analysis/stock/{symbol}/peers")
	if err != nil {
		return models.PeerComparison{}, netError("stock peers request", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.PeerComparison{}, err
	}

	return comparison, nil
}

// StockNews implements [ServerAdapter].
func (h *httpServerAdapter) StockNews(ctx context.Context, symbol string, limit int) ([]models.NewsItem, error) {
	var news []models.NewsItem
	req := h.authedRequest(ctx).
		SetPathParam("symbol", symbol).
		SetResult(&news)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}
	resp, err := req.Get("/api/analysis/stock/{symbol}/news")
	if err != nil {
		return nil, netError("stock news request", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return nil, err
	}

	return news, nil
}

// MarketTrend implements [ServerAdapter].
func (h *httpServerAdapter) MarketTrend(ctx context.Context, symbol, timeframe string) (models.MarketTrend, error) {
	var trend models.MarketTrend
	req := h.authedRequest(ctx).
		SetPathParam("symbol", symbol).
		SetResult(&trend)
	if timeframe != "" {
		req.SetQueryParam("timeframe", timeframe)
	}
	resp, err := req.Get("/api/analysis/stock/{symbol}/trend")
	if err != nil {
		return models.MarketTrend{}, netError("market trend request", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.MarketTrend{}, err
	}

	return trend, nil
}

// MarketOverview implements [ServerAdapter].
func (h *httpServerAdapter) MarketOverview(ctx context.Context) (models.MarketOverview, error) {
	var overview models.MarketOverview
	resp, err := h.authedRequest(ctx).
		SetResult(&overview).
		Get("/api/analysis/market/overview")
	if err != nil {
		return models.MarketOverview{}, netError("market overview request", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.MarketOverview{}, err
	}

	return overview, nil
}

// MarketSectors implements [ServerAdapter].
func (h *httpServerAdapter) MarketSectors(ctx context.Context) (models.SectorPerformance, error) {
	var sectors models.SectorPerformance
	resp, err := h.authedRequest(ctx).
		SetResult(&sectors).
		Get("/api/analysis/market/sectors")
	if err != nil {
		return models.SectorPerformance{}, netError("market sectors request", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.SectorPerformance{}, err
	}

	return sectors, nil
}

// AnalyzePortfolio implements [ServerAdapter].
func (h *httpServerAdapter) AnalyzePortfolio(ctx context.Context, portfolioID string) (models.PortfolioAnalysis, error) {
	var analysis models.PortfolioAnalysis
	resp, err := h.authedRequest(ctx).
		SetPathParam("portfolioID", portfolioID).
		SetResult(&analysis).
		Get("/api/analysis/portfolio/{portfolioID}/analysis")
	if err != nil {
		return models.PortfolioAnalysis{}, netError("analyze portfolio request", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.PortfolioAnalysis{}, err
	}

	return analysis, nil
}

// Recommendations implements [ServerAdapter].
func (h *httpServerAdapter) Recommendations(ctx context.Context, portfolioID string) (json.RawMessage, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("portfolioID", portfolioID).
		Get("/api/analysis/portfolio/{portfolioID}/recommendations")
	if err != nil {
		return nil, netError("recommendations request", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return nil, err
	}

	return json.RawMessage(resp.Body()), nil
}

// Health implements [ServerAdapter].
func (h *httpServerAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/health")
	if err != nil {
		return netError("health request", err)
	}
	return mapHTTPError(resp)
}

// netError classifies a transport-level failure (no response obtained) so
// callers can distinguish it from a server-side rejection via errors.Is.
func netError(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrNetwork, err)
}
