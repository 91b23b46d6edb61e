package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/trainchase/api/internal/game"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "TrainChase API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the train chase game.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Reports whether the server is up.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getHealthz)

	// POST /api/v1/games
	postGames, _ := r.NewOperationContext(http.MethodPost, "/api/v1/games")
	postGames.SetSummary("Create game")
	postGames.SetDescription("Opens a new lobby with the caller as host. Returns the invite code to share.")
	postGames.AddReqStructure(CreateGameRequest{})
	postGames.AddRespStructure(CreateGameResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	postGames.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postGames)

	// POST /api/v1/invites/{inviteCode}/join
	postJoin, _ := r.NewOperationContext(http.MethodPost, "/api/v1/invites/{inviteCode}/join")
	postJoin.SetSummary("Join game")
	postJoin.SetDescription("Joins the lobby behind an invite code. Fails once the game has started or the lobby is full.")
	postJoin.AddReqStructure(struct {
		InviteCode string `path:"inviteCode"`
	}{})
	postJoin.AddReqStructure(JoinRequest{})
	postJoin.AddRespStructure(JoinResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postJoin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postJoin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postJoin)

	// POST /api/v1/games/{gameID}/start
	postStart, _ := r.NewOperationContext(http.MethodPost, "/api/v1/games/{gameID}/start")
	postStart.SetSummary("Start game")
	postStart.SetDescription("Host-only. Picks the runner and destination, deals hands and opens the first turn.")
	postStart.AddReqStructure(struct {
		GameID string `path:"gameID"`
	}{})
	postStart.AddReqStructure(StartGameRequest{})
	postStart.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	postStart.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postStart.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postStart)

	// POST /api/v1/games/{gameID}/make_move
	postMove, _ := r.NewOperationContext(http.MethodPost, "/api/v1/games/{gameID}/make_move")
	postMove.SetSummary("Make a move")
	postMove.SetDescription("Submits one move intent for the player on turn. Rule violations return their code in the error body.")
	postMove.AddReqStructure(struct {
		GameID string `path:"gameID"`
	}{})
	postMove.AddReqStructure(game.MoveIntent{})
	postMove.AddRespStructure(game.MoveResult{}, openapi.WithHTTPStatus(http.StatusOK))
	postMove.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postMove.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	postMove.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(postMove)

	// GET /api/v1/games/{gameID}/current_state
	getState, _ := r.NewOperationContext(http.MethodGet, "/api/v1/games/{gameID}/current_state")
	getState.SetSummary("Current state")
	getState.SetDescription("Returns the session view for its phase, redacted for the viewing player.")
	getState.AddReqStructure(struct {
		GameID string `path:"gameID"`
	}{})
	getState.AddRespStructure(InProgressStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getState.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getState)

	// GET /api/v1/games/{gameID}/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/v1/games/{gameID}/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream of lobby and turn notifications for one game.")
	getEvents.AddReqStructure(struct {
		GameID string `path:"gameID"`
	}{})
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.Marshal(spec)

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write(data)
	}
}
