package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"avalon/internal/config"
	"avalon/internal/store"
)

func newTestRouter(t *testing.T) (*Handler, *chi.Mux) {
	t.Helper()

	cfg := config.DefaultConfig()
	h := New(store.NewMemoryStore(cfg), cfg)

	r := chi.NewRouter()
	r.Post("/game/new", h.CreateGame)
	r.Post("/game/{code}/join", h.JoinGame)
	r.Get("/game/{code}", h.GetGame)
	r.Post("/game/{code}/team", h.SelectTeam)
	r.Post("/game/{code}/vote", h.SubmitVote)
	r.Post("/game/{code}/mission", h.SubmitMissionResult)
	r.Post("/game/{code}/assassinate", h.Assassinate)
	r.Get("/game/{code}/result", h.GetResult)
	return h, r
}

// doJSON performs a request with an optional identity cookie and decodes
// the JSON response into out (when out is non-nil).
func doJSON(t *testing.T, router http.Handler, method, path string, body any, cookie *http.Cookie, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reqBody).Encode(body))
	}

	req := httptest.NewRequest(method, path, &reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if out != nil && rec.Code < 300 && rec.Body.Len() > 0 {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
	}
	return rec
}

type testSession struct {
	code    string
	players []testPlayer
}

type testPlayer struct {
	id     string
	name   string
	cookie *http.Cookie
}

// startSession creates a session and binds the given players
func startSession(t *testing.T, router http.Handler, playerCount int, names []string) testSession {
	t.Helper()

	var created struct {
		Code string `json:"code"`
	}
	rec := doJSON(t, router, http.MethodPost, "/game/new",
		map[string]any{"playerCount": playerCount}, nil, &created)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotEmpty(t, created.Code)

	sess := testSession{code: created.Code}
	for _, name := range names {
		var joined struct {
			PlayerID string `json:"playerId"`
		}
		rec := doJSON(t, router, http.MethodPost, "/game/"+created.Code+"/join",
			map[string]any{"name": name}, nil, &joined)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		sess.players = append(sess.players, testPlayer{
			id:   joined.PlayerID,
			name: name,
			cookie: &http.Cookie{
				Name:  playerCookieName(created.Code),
				Value: joined.PlayerID,
			},
		})
	}
	return sess
}

func (s testSession) byID(id string) testPlayer {
	for _, p := range s.players {
		if p.id == id {
			return p
		}
	}
	return testPlayer{}
}

// snapshot fetches the current public state as seen by the given player
func (s testSession) snapshot(t *testing.T, router http.Handler, p testPlayer) map[string]any {
	t.Helper()

	var resp struct {
		Snapshot map[string]any `json:"snapshot"`
	}
	rec := doJSON(t, router, http.MethodGet, "/game/"+s.code, nil, p.cookie, &resp)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return resp.Snapshot
}

// view fetches the player's private view
func (s testSession) view(t *testing.T, router http.Handler, p testPlayer) map[string]any {
	t.Helper()

	var resp struct {
		View map[string]any `json:"view"`
	}
	rec := doJSON(t, router, http.MethodGet, "/game/"+s.code, nil, p.cookie, &resp)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return resp.View
}
