// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincopilot/go-copilot-client/internal/config"
	"github.com/fincopilot/go-copilot-client/internal/logger"
	"github.com/fincopilot/go-copilot-client/internal/store"
	"github.com/fincopilot/go-copilot-client/models"
)

// newTestAdapter builds an httpServerAdapter pointed at a test server,
// backed by an in-memory session store.
func newTestAdapter(t *testing.T, serverURL string, onReject func(string)) (*httpServerAdapter, store.SessionStore) {
	t.Helper()
	sessions := store.NewMemorySessionStore()
	adapterCfg := config.ClientAdapter{BaseURL: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, sessions, onReject, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter), sessions
}

func saveSession(t *testing.T, sessions store.SessionStore, token string) {
	t.Helper()
	require.NoError(t, sessions.Save(models.Session{Token: token, CreatedAt: time.Now()}))
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_SendsOAuth2Form(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "demo@example.com", r.PostForm.Get("username"))
		assert.Equal(t, "demo123", r.PostForm.Get("password"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-123","token_type":"bearer"}`))
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL, nil)
	got, err := a.Login(context.Background(), "demo@example.com", "demo123")

	require.NoError(t, err)
	assert.Equal(t, "tok-123", got.AccessToken)
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Incorrect email or password"}`))
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL, nil)
	_, err := a.Login(context.Background(), "demo@example.com", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Incorrect email or password")
}

func TestLogin_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL, nil)
	_, err := a.Login(context.Background(), "demo@example.com", "demo123")

	require.Error(t, err)
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice@example.com", req.Email)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u-1","email":"alice@example.com","full_name":"Alice"}`))
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL, nil)
	got, err := a.Register(context.Background(), models.RegisterRequest{
		Email: "alice@example.com", Password: "secret", FullName: "Alice",
	})

	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
	assert.Equal(t, "Alice", got.FullName)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"detail":"Email already registered"}`))
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL, nil)
	_, err := a.Register(context.Background(), models.RegisterRequest{Email: "alice@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "Email already registered")
}

// ── Bearer injection ────────────────────────────────────────────────────────

func TestAuthedRequest_AttachesStoredToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u-1","email":"demo@example.com"}`))
	}))
	defer srv.Close()

	a, sessions := newTestAdapter(t, srv.URL, nil)
	saveSession(t, sessions, "tok-abc")

	_, err := a.Me(context.Background())
	require.NoError(t, err)
}

func TestAuthedRequest_NoTokenNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Not authenticated"}`))
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL, nil)
	_, err := a.Me(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthedRequest_ReadsTokenPerCall(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u-1"}`))
	}))
	defer srv.Close()

	a, sessions := newTestAdapter(t, srv.URL, nil)

	saveSession(t, sessions, "first")
	_, err := a.Me(context.Background())
	require.NoError(t, err)

	saveSession(t, sessions, "second")
	_, err = a.Me(context.Background())
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Equal(t, "Bearer first", seen[0])
	assert.Equal(t, "Bearer second", seen[1])
}

// ── Auth rejection side effect ──────────────────────────────────────────────

func TestAuthRejection_ClearsSessionAndRedirectsOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Token expired"}`))
	}))
	defer srv.Close()

	var redirects int
	a, sessions := newTestAdapter(t, srv.URL, func(reason string) {
		redirects++
		assert.Contains(t, reason, "Token expired")
	})
	saveSession(t, sessions, "stale-token")

	_, err := a.Me(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, redirects)
	assert.Empty(t, sessions.Token())
	_, loadErr := sessions.Load()
	assert.ErrorIs(t, loadErr, store.ErrSessionNotFound)
}

func TestAuthRejection_NilHookIsSafe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a, sessions := newTestAdapter(t, srv.URL, nil)
	saveSession(t, sessions, "stale-token")

	_, err := a.Me(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthRejection_LoginDoesNotRedirect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Incorrect email or password"}`))
	}))
	defer srv.Close()

	var redirects int
	a, _ := newTestAdapter(t, srv.URL, func(string) { redirects++ })

	_, err := a.Login(context.Background(), "demo@example.com", "wrong")

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Zero(t, redirects)
}

// ── Error mapping ───────────────────────────────────────────────────────────

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnprocessableEntity, ErrBadRequest},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusServiceUnavailable, ErrInternalServerError},
	}

	for _, tc := range cases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(`{"detail":"boom"}`))
			}))
			defer srv.Close()

			a, sessions := newTestAdapter(t, srv.URL, nil)
			saveSession(t, sessions, "tok")

			_, err := a.GetPortfolio(context.Background(), "p-1")
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), "boom")
		})
	}
}

func TestErrorMapping_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream provider unavailable"))
	}))
	defer srv.Close()

	a, sessions := newTestAdapter(t, srv.URL, nil)
	saveSession(t, sessions, "tok")

	err := a.Health(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadGateway)
	assert.Contains(t, err.Error(), "upstream provider unavailable")
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	a, _ := newTestAdapter(t, srv.URL, nil)
	err := a.Health(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
}

// ── Portfolio operations ────────────────────────────────────────────────────

func TestGetPortfolio_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/portfolio/p-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "p-1",
			"name": "Retirement",
			"total_value": "10500.25",
			"holdings": [{"symbol": "AAPL", "quantity": "10", "average_cost": "150.0"}]
		}`))
	}))
	defer srv.Close()

	a, sessions := newTestAdapter(t, srv.URL, nil)
	saveSession(t, sessions, "tok")

	got, err := a.GetPortfolio(context.Background(), "p-1")

	require.NoError(t, err)
	assert.Equal(t, "Retirement", got.Name)
	assert.True(t, got.TotalValue.Equal(decimal.RequireFromString("10500.25")))
	require.Len(t, got.Holdings, 1)
	assert.Equal(t, "AAPL", got.Holdings[0].Symbol)
}

func TestAddTransaction_SendsQueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/portfolio/p-1/transaction", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "AAPL", q.Get("symbol"))
		assert.Equal(t, "buy", q.Get("transaction_type"))
		assert.Equal(t, "5", q.Get("quantity"))
		assert.Equal(t, "187.5", q.Get("price"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Transaction added"}`))
	}))
	defer srv.Close()

	a, sessions := newTestAdapter(t, srv.URL, nil)
	saveSession(t, sessions, "tok")

	msg, err := a.AddTransaction(context.Background(), "p-1", models.Transaction{
		Symbol:   "AAPL",
		Type:     models.TransactionBuy,
		Quantity: decimal.NewFromInt(5),
		Price:    decimal.RequireFromString("187.5"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Transaction added", msg.Message)
}

func TestImportCSV_MultipartUpload(t *testing.T) {
	csvBody := "symbol,quantity,average_cost\nAAPL,10,150.0\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/portfolio/p-1/upload-csv", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()

		assert.Equal(t, "holdings.csv", header.Filename)
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(file)
		assert.Equal(t, csvBody, buf.String())

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Imported 1 holdings","portfolio_id":"p-1"}`))
	}))
	defer srv.Close()

	a, sessions := newTestAdapter(t, srv.URL, nil)
	saveSession(t, sessions, "tok")

	msg, err := a.ImportCSV(context.Background(), "p-1", "holdings.csv", bytes.NewBufferString(csvBody))

	require.NoError(t, err)
	assert.Equal(t, "p-1", msg.PortfolioID)
}

func TestExportCSV_ReturnsRawBytes(t *testing.T) {
	csvBody := "symbol,quantity,average_cost\nAAPL,10,150.0\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/portfolio/p-1/export-csv", r.URL.Path)
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(csvBody))
	}))
	defer srv.Close()

	a, sessions := newTestAdapter(t, srv.URL, nil)
	saveSession(t, sessions, "tok")

	got, err := a.ExportCSV(context.Background(), "p-1")

	require.NoError(t, err)
	assert.Equal(t, csvBody, string(got))
}

// ── Analysis operations ─────────────────────────────────────────────────────

func TestStockNews_LimitParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/analysis/stock/AAPL/news", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"title":"Apple beats estimates","source":"wire"}]`))
	}))
	defer srv.Close()

	a, sessions := newTestAdapter(t, srv.URL, nil)
	saveSession(t, sessions, "tok")

	news, err := a.StockNews(context.Background(), "AAPL", 3)

	require.NoError(t, err)
	require.Len(t, news, 1)
	assert.Equal(t, "Apple beats estimates", news[0].Title)
}

func TestStockPeers_DecodesComparison(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/analysis/stock/AAPL/peers", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"symbol":"AAPL","peers":["MSFT","GOOGL"],"ranking":{"pe_ratio":2},"analysis":"cheap vs peers"}`))
	}))
	defer srv.Close()

	a, sessions := newTestAdapter(t, srv.URL, nil)
	saveSession(t, sessions, "tok")

	comparison, err := a.StockPeers(context.Background(), "AAPL")

	require.NoError(t, err)
	assert.Equal(t, []string{"MSFT", "GOOGL"}, comparison.Peers)
	assert.JSONEq(t, `{"pe_ratio":2}`, string(comparison.Ranking))
}

func TestMarketOverview_DecodesIndices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/analysis/market/overview", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"indices":{"S&P 500":{"symbol":"SPY","price":"512.3","change_percent":"0.41"}},"commentary":"risk-on"}`))
	}))
	defer srv.Close()

	a, sessions := newTestAdapter(t, srv.URL, nil)
	saveSession(t, sessions, "tok")

	overview, err := a.MarketOverview(context.Background())

	require.NoError(t, err)
	require.Contains(t, overview.Indices, "S&P 500")
	assert.Equal(t, "SPY", overview.Indices["S&P 500"].Symbol)
	assert.True(t, overview.Indices["S&P 500"].Price.Equal(decimal.RequireFromString("512.3")))
	assert.Equal(t, "risk-on", overview.Commentary)
}

func TestMarketSectors_DecodesRanking(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/analysis/market/sectors", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sectors":{"Technology":{"symbol":"XLK","change_percent":"1.2"}},"leaders":["Technology"],"laggards":["Energy"]}`))
	}))
	defer srv.Close()

	a, sessions := newTestAdapter(t, srv.URL, nil)
	saveSession(t, sessions, "tok")

	sectors, err := a.MarketSectors(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Technology"}, sectors.Leaders)
	assert.Equal(t, "XLK", sectors.Sectors["Technology"].Symbol)
}

func TestMarketTrend_TimeframeParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/analysis/stock/AAPL/trend", r.URL.Path)
		assert.Equal(t, "1m", r.URL.Query().Get("timeframe"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"symbol":"AAPL","timeframe":"1m","trend":"bullish"}`))
	}))
	defer srv.Close()

	a, sessions := newTestAdapter(t, srv.URL, nil)
	saveSession(t, sessions, "tok")

	trend, err := a.MarketTrend(context.Background(), "AAPL", "1m")

	require.NoError(t, err)
	assert.Equal(t, "bullish", trend.Trend)
}

func TestRecommendations_OpaqueBody(t *testing.T) {
	body := `{"recommendations":["diversify into bonds"]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/analysis/portfolio/p-1/recommendations", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	a, sessions := newTestAdapter(t, srv.URL, nil)
	saveSession(t, sessions, "tok")

	got, err := a.Recommendations(context.Background(), "p-1")

	require.NoError(t, err)
	assert.JSONEq(t, body, string(got))
}

// ── Base URL normalisation ──────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain host gets scheme", in: "localhost:8000", want: "http://localhost:8000"},
		{name: "trailing slash trimmed", in: "http://localhost:8000/", want: "http://localhost:8000"},
		{name: "https kept", in: "https://api.example.com", want: "https://api.example.com"},
		{name: "whitespace trimmed", in: "  http://localhost:8000  ", want: "http://localhost:8000"},
		{name: "empty rejected", in: "", wantErr: true},
		{name: "garbage rejected", in: "://", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
