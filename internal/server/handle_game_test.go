package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/trainchase/api/internal/board"
	"github.com/trainchase/api/internal/deck"
	"github.com/trainchase/api/internal/game"
)

func testRouter(t *testing.T) (*chi.Mux, *Registry) {
	t.Helper()
	registry := NewRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	addRoutes(r, logger, registry)
	return r, registry
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

// startedGame drives the full HTTP flow to an in-progress game with three
// players, then pins every hand to five low-speed cards so moves from the
// shared starting location are deterministic.
func startedGame(t *testing.T, r http.Handler, registry *Registry) (gameID string, g *game.InProgress) {
	t.Helper()

	created := decode[CreateGameResponse](t, doJSON(t, r, http.MethodPost, "/api/v1/games",
		CreateGameRequest{DisplayName: "alice"}))

	for _, name := range []string{"bob", "carol"} {
		w := doJSON(t, r, http.MethodPost, "/api/v1/invites/"+created.InviteCode+"/join",
			JoinRequest{DisplayName: name})
		if w.Code != http.StatusOK {
			t.Fatalf("join %s: expected 200, got %d: %s", name, w.Code, w.Body.String())
		}
	}

	w := doJSON(t, r, http.MethodPost, "/api/v1/games/"+created.GameID+"/start",
		StartGameRequest{PlayerID: created.PlayerID})
	if w.Code != http.StatusNoContent {
		t.Fatalf("start: expected 204, got %d: %s", w.Code, w.Body.String())
	}

	id, err := uuid.Parse(created.GameID)
	if err != nil {
		t.Fatalf("parse game id: %v", err)
	}
	g = registry.sessions[id].(*game.InProgress)
	for _, p := range g.Players {
		p.TimetableCards = []deck.TimetableCard{
			deck.LowSpeed, deck.LowSpeed, deck.LowSpeed, deck.LowSpeed, deck.LowSpeed,
		}
	}
	return created.GameID, g
}

func TestCreateGame(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/games", CreateGameRequest{DisplayName: "alice"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := decode[CreateGameResponse](t, w)
	if _, err := uuid.Parse(resp.GameID); err != nil {
		t.Errorf("game_id is not a uuid: %q", resp.GameID)
	}
	if _, err := uuid.Parse(resp.PlayerID); err != nil {
		t.Errorf("player_id is not a uuid: %q", resp.PlayerID)
	}
	if ok, _ := regexp.MatchString(`^\d{3}-\d{3}$`, resp.InviteCode); !ok {
		t.Errorf("unexpected invite code format: %q", resp.InviteCode)
	}
}

func TestCreateGameRequiresName(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/games", CreateGameRequest{DisplayName: "  "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestJoinUnknownInvite(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/invites/000-000/join", JoinRequest{DisplayName: "bob"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestJoinAfterStart(t *testing.T) {
	r, _ := testRouter(t)

	created := decode[CreateGameResponse](t, doJSON(t, r, http.MethodPost, "/api/v1/games",
		CreateGameRequest{DisplayName: "alice"}))
	for _, name := range []string{"bob", "carol"} {
		doJSON(t, r, http.MethodPost, "/api/v1/invites/"+created.InviteCode+"/join",
			JoinRequest{DisplayName: name})
	}
	doJSON(t, r, http.MethodPost, "/api/v1/games/"+created.GameID+"/start",
		StartGameRequest{PlayerID: created.PlayerID})

	// The invite code is still indexed, but the session is no longer a lobby.
	w := doJSON(t, r, http.MethodPost, "/api/v1/invites/"+created.InviteCode+"/join",
		JoinRequest{DisplayName: "dave"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestStartRequiresHost(t *testing.T) {
	r, _ := testRouter(t)

	created := decode[CreateGameResponse](t, doJSON(t, r, http.MethodPost, "/api/v1/games",
		CreateGameRequest{DisplayName: "alice"}))
	joined := decode[JoinResponse](t, doJSON(t, r, http.MethodPost,
		"/api/v1/invites/"+created.InviteCode+"/join", JoinRequest{DisplayName: "bob"}))
	doJSON(t, r, http.MethodPost, "/api/v1/invites/"+created.InviteCode+"/join",
		JoinRequest{DisplayName: "carol"})

	w := doJSON(t, r, http.MethodPost, "/api/v1/games/"+created.GameID+"/start",
		StartGameRequest{PlayerID: joined.PlayerID})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var resp ErrorResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Error != "action_not_allowed" {
		t.Errorf("expected action_not_allowed, got %q", resp.Error)
	}
}

func TestMakeMoveWrongTurn(t *testing.T) {
	r, registry := testRouter(t)
	gameID, g := startedGame(t, r, registry)

	var notOnTurn uuid.UUID
	for _, p := range g.Players {
		if p.ID != g.CurrentTurn {
			notOnTurn = p.ID
			break
		}
	}

	loc, card := "paris", "low_speed"
	w := doJSON(t, r, http.MethodPost, "/api/v1/games/"+gameID+"/make_move", game.MoveIntent{
		PlayerID:         notOnTurn,
		NextLocation:     &loc,
		UseTimetableCard: &card,
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestMakeMove(t *testing.T) {
	r, registry := testRouter(t)
	gameID, g := startedGame(t, r, registry)

	loc, card := "paris", "low_speed"
	w := doJSON(t, r, http.MethodPost, "/api/v1/games/"+gameID+"/make_move", game.MoveIntent{
		PlayerID:         g.CurrentTurn,
		NextLocation:     &loc,
		UseTimetableCard: &card,
		FinishMove:       true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var res game.MoveResult
	json.NewDecoder(w.Body).Decode(&res)
	if res.RunnerCaught {
		t.Error("unexpected capture")
	}

	id, _ := uuid.Parse(gameID)
	next := registry.sessions[id].(*game.InProgress)
	mover := next.Runner()
	if mover.Location != board.Paris {
		t.Errorf("expected mover at paris, got %s", mover.Location)
	}
	if next.CurrentTurn == mover.ID {
		t.Error("turn did not advance")
	}
}

func TestMakeMoveRuleViolation(t *testing.T) {
	r, registry := testRouter(t)
	gameID, g := startedGame(t, r, registry)

	// Nancy has no low-speed edge to Madrid.
	loc, card := "madrid", "low_speed"
	w := doJSON(t, r, http.MethodPost, "/api/v1/games/"+gameID+"/make_move", game.MoveIntent{
		PlayerID:         g.CurrentTurn,
		NextLocation:     &loc,
		UseTimetableCard: &card,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var resp ErrorResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Error != "invalid_next_location" {
		t.Errorf("expected invalid_next_location, got %q", resp.Error)
	}
}

func TestCurrentStateLobby(t *testing.T) {
	r, _ := testRouter(t)

	created := decode[CreateGameResponse](t, doJSON(t, r, http.MethodPost, "/api/v1/games",
		CreateGameRequest{DisplayName: "alice"}))

	w := doJSON(t, r, http.MethodGet, "/api/v1/games/"+created.GameID+"/current_state", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	state := decode[LobbyStateResponse](t, w)
	if state.Phase != "lobby" {
		t.Errorf("expected phase lobby, got %q", state.Phase)
	}
	if state.InviteCode != created.InviteCode {
		t.Errorf("invite code mismatch: %q vs %q", state.InviteCode, created.InviteCode)
	}
	if len(state.Players) != 1 || state.Players[0].DisplayName != "alice" {
		t.Errorf("unexpected roster: %+v", state.Players)
	}
}

func TestCurrentStateRedaction(t *testing.T) {
	r, registry := testRouter(t)
	gameID, g := startedGame(t, r, registry)

	runnerID := g.RunnerID.String()
	var chaserID string
	for _, p := range g.Players {
		if p.ID != g.RunnerID {
			chaserID = p.ID.String()
			break
		}
	}

	t.Run("chaser view", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet,
			"/api/v1/games/"+gameID+"/current_state?player_id="+chaserID, nil)
		state := decode[InProgressStateResponse](t, w)

		if state.Phase != "in_progress" {
			t.Fatalf("expected phase in_progress, got %q", state.Phase)
		}
		if state.Destination != nil {
			t.Error("destination leaked to a chaser")
		}
		for _, p := range state.Players {
			switch p.PlayerID {
			case runnerID:
				if p.Location != nil {
					t.Error("runner location leaked to a chaser")
				}
				if p.TimetableCards != nil {
					t.Error("runner hand leaked to a chaser")
				}
			case chaserID:
				if p.Location == nil {
					t.Error("viewer's own location missing")
				}
				if len(p.TimetableCards) != 5 {
					t.Errorf("viewer's own hand missing, got %v", p.TimetableCards)
				}
			default:
				if p.TimetableCards != nil {
					t.Error("other chaser's hand leaked")
				}
				if p.TimetableCardCount != 5 {
					t.Errorf("expected hand count 5, got %d", p.TimetableCardCount)
				}
			}
		}
	})

	t.Run("runner view", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet,
			"/api/v1/games/"+gameID+"/current_state?player_id="+runnerID, nil)
		state := decode[InProgressStateResponse](t, w)

		if state.Destination == nil {
			t.Fatal("runner cannot see their destination")
		}
		for _, p := range state.Players {
			if p.PlayerID == runnerID && p.Location == nil {
				t.Error("runner cannot see their own location")
			}
		}
	})

	t.Run("stealth hides a chaser", func(t *testing.T) {
		for _, p := range g.Players {
			if p.ID.String() == chaserID {
				p.Modifiers.Stealth = true
			}
		}

		w := doJSON(t, r, http.MethodGet,
			"/api/v1/games/"+gameID+"/current_state?player_id="+runnerID, nil)
		state := decode[InProgressStateResponse](t, w)

		for _, p := range state.Players {
			if p.PlayerID == chaserID && p.Location != nil {
				t.Error("stealthed chaser's location leaked")
			}
		}
	})

	t.Run("powerup reveal shows destination to all", func(t *testing.T) {
		dest := g.Destination
		g.Reveals.RunnerDestination = &dest

		w := doJSON(t, r, http.MethodGet,
			"/api/v1/games/"+gameID+"/current_state?player_id="+chaserID, nil)
		state := decode[InProgressStateResponse](t, w)

		if state.Destination == nil {
			t.Fatal("revealed destination still hidden")
		}
		if state.PowerupReveals.RunnerDestination == nil {
			t.Error("reveal cache missing from the view")
		}
	})
}

func TestCurrentStateNotFound(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/games/"+uuid.NewString()+"/current_state", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
