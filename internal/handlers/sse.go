package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	datastar "github.com/starfederation/datastar-go/datastar"
	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"
)

// StreamGame streams game updates to one connected player. Every published
// mutation re-sends the public snapshot and the subscriber's private view;
// the client re-renders wholesale from the signals.
func (h *Handler) StreamGame(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	g, err := h.store.GetGame(code)
	if err != nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	player, err := h.requirePlayer(r, g, code)
	if err != nil {
		http.Error(w, "Not in session", http.StatusUnauthorized)
		return
	}

	sse := datastar.NewSSE(w, r)
	log.Printf("session %s: SSE connected for %s", code, player.ID)

	events := h.eventBus.Subscribe(code)
	defer func() {
		h.eventBus.Unsubscribe(code, events)
		log.Printf("session %s: SSE disconnected for %s", code, player.ID)
	}()

	if err := h.pushState(sse, code, player.ID); err != nil {
		log.Printf("session %s: failed to send initial state: %v", code, err)
		return
	}

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			if _, err := h.store.GetGame(code); err != nil {
				log.Printf("session %s expired, closing SSE", code)
				return
			}
			if err := sse.MarshalAndPatchSignals(map[string]any{"ping": time.Now().Unix()}); err != nil {
				return
			}
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := h.pushState(sse, code, player.ID); err != nil {
				log.Printf("session %s: failed to push %s: %v", code, event.Type, err)
				return
			}
		}
	}
}

// pushState sends the current snapshot and the subscriber's view as signals
func (h *Handler) pushState(sse *datastar.ServerSentEventGenerator, code, playerID string) error {
	g, err := h.store.GetGame(code)
	if err != nil {
		return err
	}

	signals := map[string]any{
		"game": snapshotOf(code, g),
	}
	if player := g.PlayerByID(playerID); player != nil {
		signals["view"] = viewOf(player, g)
	}
	return sse.MarshalAndPatchSignals(signals)
}

// allowedSSEParams whitelists query parameters on SSE endpoints
var allowedSSEParams = map[string]bool{
	"datastar": true, // Datastar sends client state with this parameter
}

// ValidateSSERequest validates SSE request parameters for security
func ValidateSSERequest(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(r.URL.RawQuery) > 10000 {
			http.Error(w, "Query string too large", http.StatusRequestURITooLong)
			return
		}

		params, err := url.ParseQuery(r.URL.RawQuery)
		if err != nil {
			http.Error(w, "Invalid query parameters", http.StatusBadRequest)
			return
		}

		for key, values := range params {
			if !allowedSSEParams[key] {
				http.Error(w, "Invalid parameter", http.StatusBadRequest)
				return
			}
			if key == "datastar" {
				if len(values) != 1 || len(values[0]) > 8192 {
					http.Error(w, "Invalid datastar parameter", http.StatusBadRequest)
					return
				}
				if values[0] != "" {
					var signals map[string]any
					if err := json.Unmarshal([]byte(values[0]), &signals); err != nil {
						http.Error(w, "Invalid datastar JSON", http.StatusBadRequest)
						return
					}
				}
			}
		}

		next(w, r)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// generateQRCode renders a join URL as a base64-encoded PNG
func generateQRCode(joinURL string) (string, error) {
	qrc, err := qrcode.NewWith(joinURL,
		qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium),
		qrcode.WithEncodingMode(qrcode.EncModeByte),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	var buf bytes.Buffer
	w := standard.NewWithWriter(nopWriteCloser{&buf},
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
		standard.WithQRWidth(8),
	)
	if err := qrc.Save(w); err != nil {
		return "", fmt.Errorf("failed to render QR code: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
