package copilotest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/fincopilot/go-copilot-client/models"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}

// handleStream upgrades the per-portfolio event stream. The bearer token
// travels as a query parameter; a bad token is rejected before the upgrade.
// Scripted envelopes for the topic are flushed immediately, then the
// connection stays open for Push until the peer or DropStreams closes it.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	topic := chi.URLParam(r, "portfolioID")

	if s.RejectAuth || s.emailFromToken(r.URL.Query().Get("token")) == "" {
		writeDetail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	wc := &wsConn{conn: conn}

	s.mu.Lock()
	scripted := append([]models.Envelope(nil), s.scripted[topic]...)
	s.conns[topic] = append(s.conns[topic], wc)
	s.mu.Unlock()

	for _, env := range scripted {
		wc.writeMu.Lock()
		err := conn.WriteJSON(env)
		wc.writeMu.Unlock()
		if err != nil {
			break
		}
	}

	// drain inbound frames (client pings, Send payloads) until close
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.mu.Lock()
	conns := s.conns[topic]
	for i, c := range conns {
		if c == wc {
			s.conns[topic] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	_ = conn.Close()
}
