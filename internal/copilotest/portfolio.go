package copilotest

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincopilot/go-copilot-client/models"
)

func (s *Server) handleCreatePortfolio(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeDetail(w, http.StatusBadRequest, "portfolio name is required")
		return
	}

	p := models.Portfolio{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		UpdatedAt:   time.Now().UTC(),
	}
	for _, h := range req.InitialHoldings {
		p.Holdings = append(p.Holdings, models.Holding{
			Symbol:      h.Symbol,
			Name:        h.Name,
			AssetType:   h.AssetType,
			Quantity:    h.Quantity,
			AverageCost: h.AverageCost,
		})
	}
	recalc(&p)

	s.mu.Lock()
	s.portfolios[p.ID] = &p
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleListPortfolios(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	summaries := make([]models.PortfolioSummary, 0, len(s.portfolios))
	for _, p := range s.portfolios {
		summaries = append(summaries, models.PortfolioSummary{
			ID:            p.ID,
			Name:          p.Name,
			TotalValue:    p.TotalValue,
			HoldingsCount: len(p.Holdings),
		})
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetPortfolio(w http.ResponseWriter, r *http.Request) {
	p, ok := s.portfolio(chi.URLParam(r, "portfolioID"))
	if !ok {
		writeDetail(w, http.StatusNotFound, "Portfolio not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeletePortfolio(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "portfolioID")

	s.mu.Lock()
	_, ok := s.portfolios[id]
	delete(s.portfolios, id)
	s.mu.Unlock()

	if !ok {
		writeDetail(w, http.StatusNotFound, "Portfolio not found")
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Portfolio deleted"})
}

// handleTransaction mimics the backend contract: transaction fields arrive
// as query parameters, and a sell larger than the position is rejected.
func (s *Server) handleTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "portfolioID")
	q := r.URL.Query()

	symbol := q.Get("symbol")
	txType := models.TransactionType(q.Get("transaction_type"))
	quantity, qErr := decimal.NewFromString(q.Get("quantity"))
	price, pErr := decimal.NewFromString(q.Get("price"))
	if symbol == "" || qErr != nil || pErr != nil {
		writeDetail(w, http.StatusBadRequest, "invalid transaction parameters")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.portfolios[id]
	if !ok {
		writeDetail(w, http.StatusNotFound, "Portfolio not found")
		return
	}

	switch txType {
	case models.TransactionBuy:
		applyBuy(p, symbol, quantity, price)
	case models.TransactionSell:
		if !applySell(p, symbol, quantity) {
			writeDetail(w, http.StatusBadRequest, "Insufficient quantity to sell")
			return
		}
	default:
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf("unknown transaction type %q", txType))
		return
	}

	recalc(p)
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Transaction added", PortfolioID: id})
}

// handleImportCSV replaces the holdings from a multipart CSV with columns
// symbol, quantity, average_cost (header row required).
func (s *Server) handleImportCSV(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "portfolioID")

	file, _, err := r.FormFile("file")
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil || len(records) < 1 {
		writeDetail(w, http.StatusBadRequest, "unreadable csv")
		return
	}

	var holdings []models.Holding
	for i, rec := range records {
		if i == 0 {
			continue // header
		}
		if len(rec) < 3 {
			writeDetail(w, http.StatusBadRequest, fmt.Sprintf("row %d: expected 3 columns", i))
			return
		}
		quantity, qErr := decimal.NewFromString(rec[1])
		cost, cErr := decimal.NewFromString(rec[2])
		if qErr != nil || cErr != nil {
			writeDetail(w, http.StatusBadRequest, fmt.Sprintf("row %d: bad number", i))
			return
		}
		holdings = append(holdings, models.Holding{
			Symbol:      rec[0],
			AssetType:   models.AssetStock,
			Quantity:    quantity,
			AverageCost: cost,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.portfolios[id]
	if !ok {
		writeDetail(w, http.StatusNotFound, "Portfolio not found")
		return
	}
	p.Holdings = holdings
	recalc(p)

	writeJSON(w, http.StatusOK, models.MessageResponse{
		Message:     fmt.Sprintf("Imported %d holdings", len(holdings)),
		PortfolioID: id,
	})
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	p, ok := s.portfolio(chi.URLParam(r, "portfolioID"))
	if !ok {
		writeDetail(w, http.StatusNotFound, "Portfolio not found")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"symbol", "quantity", "average_cost"})
	for _, h := range p.Holdings {
		_ = cw.Write([]string{h.Symbol, h.Quantity.String(), h.AverageCost.String()})
	}
	cw.Flush()
}

func (s *Server) portfolio(id string) (models.Portfolio, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.portfolios[id]
	if !ok {
		return models.Portfolio{}, false
	}
	return *p, true
}

func applyBuy(p *models.Portfolio, symbol string, quantity, price decimal.Decimal) {
	for i := range p.Holdings {
		h := &p.Holdings[i]
		if h.Symbol != symbol {
			continue
		}
		// weighted-average cost over the combined position
		totalCost := h.AverageCost.Mul(h.Quantity).Add(price.Mul(quantity))
		h.Quantity = h.Quantity.Add(quantity)
		if !h.Quantity.IsZero() {
			h.AverageCost = totalCost.Div(h.Quantity)
		}
		return
	}
	p.Holdings = append(p.Holdings, models.Holding{
		Symbol:      symbol,
		AssetType:   models.AssetStock,
		Quantity:    quantity,
		AverageCost: price,
	})
}

func applySell(p *models.Portfolio, symbol string, quantity decimal.Decimal) bool {
	for i := range p.Holdings {
		h := &p.Holdings[i]
		if h.Symbol != symbol {
			continue
		}
		if h.Quantity.LessThan(quantity) {
			return false
		}
		h.Quantity = h.Quantity.Sub(quantity)
		if h.Quantity.IsZero() {
			p.Holdings = append(p.Holdings[:i], p.Holdings[i+1:]...)
		}
		return true
	}
	return false
}

// recalc rebuilds the derived totals from cost basis. The fake has no live
// market data, so current price equals average cost.
func recalc(p *models.Portfolio) {
	total := decimal.Zero
	for i := range p.Holdings {
		h := &p.Holdings[i]
		h.CurrentPrice = h.AverageCost
		h.CurrentValue = h.Quantity.Mul(h.CurrentPrice)
		total = total.Add(h.CurrentValue)
	}
	p.TotalValue = total
	p.TotalInvested = total
	p.UpdatedAt = time.Now().UTC()
}
