package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"avalon/internal/game"
)

type createGameRequest struct {
	PlayerCount   int      `json:"playerCount"`
	OptionalRoles []string `json:"optionalRoles"`
}

type createGameResponse struct {
	Code     string `json:"code"`
	JoinURL  string `json:"joinUrl"`
	QRCode   string `json:"qrCode,omitempty"` // base64 PNG
	Snapshot any    `json:"snapshot"`
}

// CreateGame creates a new session for the requested table size
func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if req.PlayerCount == 0 {
		req.PlayerCount = h.config.Game.DefaultPlayerCount
	}
	if req.PlayerCount < h.config.Game.MinPlayers || req.PlayerCount > h.config.Game.MaxPlayers {
		respondError(w, fmt.Errorf("%w: %d (supported %d-%d)",
			game.ErrInvalidPlayerCount, req.PlayerCount, h.config.Game.MinPlayers, h.config.Game.MaxPlayers))
		return
	}

	optional := make([]game.Role, 0, len(req.OptionalRoles))
	for _, name := range req.OptionalRoles {
		optional = append(optional, game.Role(name))
	}

	g, err := game.CreateGame(req.PlayerCount, optional)
	if err != nil {
		respondError(w, err)
		return
	}

	code, err := h.store.CreateSession(g)
	if err != nil {
		respondError(w, err)
		return
	}
	log.Printf("created session %s for %d players", code, req.PlayerCount)

	joinURL := getBaseURL(r) + "/game/" + code
	qr, err := generateQRCode(joinURL)
	if err != nil {
		// a session without a QR code is still joinable by code
		log.Printf("failed to generate QR code for %s: %v", code, err)
	}

	respondJSON(w, http.StatusCreated, createGameResponse{
		Code:     code,
		JoinURL:  joinURL,
		QRCode:   qr,
		Snapshot: snapshotOf(code, g),
	})
}

type joinRequest struct {
	Name string `json:"name"`
}

type joinResponse struct {
	PlayerID string `json:"playerId"`
	Slot     int    `json:"slot"`
	Snapshot any    `json:"snapshot"`
}

// JoinGame binds the caller to the next free role slot
func (h *Handler) JoinGame(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req joinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		respondError(w, fmt.Errorf("a player name is required"))
		return
	}

	g, err := h.store.GetGame(code)
	if err != nil {
		respondError(w, err)
		return
	}

	slot := -1
	for i, p := range g.Players {
		if p == nil {
			slot = i
			break
		}
	}
	if slot == -1 {
		respondError(w, fmt.Errorf("%w: all slots are bound", game.ErrSlotTaken))
		return
	}

	next, player, err := game.InitializePlayer(g, req.Name, slot)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.store.UpdateGame(code, next); err != nil {
		respondError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     playerCookieName(code),
		Value:    player.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.eventBus.Publish(Event{Type: "player_joined", Code: code})
	log.Printf("session %s: %s joined slot %d", code, req.Name, slot)

	respondJSON(w, http.StatusOK, joinResponse{
		PlayerID: player.ID,
		Slot:     slot,
		Snapshot: snapshotOf(code, next),
	})
}

type gameResponse struct {
	Snapshot any `json:"snapshot"`
	View     any `json:"view,omitempty"`
}

// GetGame serves the public snapshot plus the caller's private view
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	g, err := h.store.GetGame(code)
	if err != nil {
		respondError(w, err)
		return
	}

	resp := gameResponse{Snapshot: snapshotOf(code, g)}
	if player, err := h.requirePlayer(r, g, code); err == nil {
		resp.View = viewOf(player, g)
	}
	respondJSON(w, http.StatusOK, resp)
}

type selectTeamRequest struct {
	PlayerIDs []string `json:"playerIds"`
}

// SelectTeam proposes a team for the current mission. Only the current
// leader may propose.
func (h *Handler) SelectTeam(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	g, err := h.store.GetGame(code)
	if err != nil {
		respondError(w, err)
		return
	}
	player, err := h.requirePlayer(r, g, code)
	if err != nil {
		respondError(w, err)
		return
	}
	if player.ID != g.State.CurrentLeaderID {
		respondError(w, fmt.Errorf("%w: only the leader proposes teams", game.ErrWrongPhase))
		return
	}

	var req selectTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, fmt.Errorf("invalid request body: %w", err))
		return
	}

	next, err := game.SelectTeam(g, req.PlayerIDs)
	if err != nil {
		respondError(w, err)
		return
	}
	h.commit(w, code, next, "team_selected")
}

type voteRequest struct {
	Approve bool `json:"approve"`
}

// SubmitVote records the caller's vote on the proposed team
func (h *Handler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	g, err := h.store.GetGame(code)
	if err != nil {
		respondError(w, err)
		return
	}
	player, err := h.requirePlayer(r, g, code)
	if err != nil {
		respondError(w, err)
		return
	}

	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, fmt.Errorf("invalid request body: %w", err))
		return
	}

	next, err := game.SubmitVote(g, player.ID, req.Approve)
	if err != nil {
		respondError(w, err)
		return
	}
	h.commit(w, code, next, "vote_submitted")
}

type missionRequest struct {
	Result string `json:"result"` // "Success" or "Fail"
}

// SubmitMissionResult records the caller's mission card
func (h *Handler) SubmitMissionResult(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	g, err := h.store.GetGame(code)
	if err != nil {
		respondError(w, err)
		return
	}
	player, err := h.requirePlayer(r, g, code)
	if err != nil {
		respondError(w, err)
		return
	}

	var req missionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, fmt.Errorf("invalid request body: %w", err))
		return
	}
	result := game.MissionResult(req.Result)
	if result != game.ResultSuccess && result != game.ResultFail {
		respondError(w, fmt.Errorf("mission result must be %q or %q", game.ResultSuccess, game.ResultFail))
		return
	}

	next, err := game.SubmitMissionResult(g, player.ID, result)
	if err != nil {
		respondError(w, err)
		return
	}
	h.commit(w, code, next, "mission_result")
}

type assassinateRequest struct {
	TargetID string `json:"targetId"`
}

// Assassinate resolves the Assassin's attempt to name Merlin
func (h *Handler) Assassinate(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	g, err := h.store.GetGame(code)
	if err != nil {
		respondError(w, err)
		return
	}
	player, err := h.requirePlayer(r, g, code)
	if err != nil {
		respondError(w, err)
		return
	}

	var req assassinateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, fmt.Errorf("invalid request body: %w", err))
		return
	}

	next, err := game.AssassinateMerlin(g, player.ID, req.TargetID)
	if err != nil {
		respondError(w, err)
		return
	}
	h.commit(w, code, next, "assassination")
}

// GetResult serves the final outcome, or 204 while the game runs
func (h *Handler) GetResult(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	g, err := h.store.GetGame(code)
	if err != nil {
		respondError(w, err)
		return
	}

	result := game.GetGameResult(g)
	if result == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respondJSON(w, http.StatusOK, resultView{
		Winner:  string(result.Winner),
		Reason:  result.Reason,
		Pending: result.Pending,
	})
}

// commit stores the new snapshot, notifies subscribers and answers with the
// refreshed public state.
func (h *Handler) commit(w http.ResponseWriter, code string, g *game.Game, eventType string) {
	if err := h.store.UpdateGame(code, g); err != nil {
		respondError(w, err)
		return
	}
	h.eventBus.Publish(Event{Type: eventType, Code: code})
	respondJSON(w, http.StatusOK, gameResponse{Snapshot: snapshotOf(code, g)})
}

// getBaseURL constructs the base URL from the request
func getBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, r.Host)
}
