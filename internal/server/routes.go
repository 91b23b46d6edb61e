package server

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, logger *slog.Logger, registry *Registry) {
	broker := NewBroker()

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("TrainChase API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/games", handleCreateGame(registry))
		r.Post("/invites/{inviteCode}/join", handleJoin(registry, broker))
		r.Post("/games/{gameID}/start", handleStart(registry, broker))
		r.Post("/games/{gameID}/make_move", handleMakeMove(registry, broker))
		r.Get("/games/{gameID}/current_state", handleCurrentState(registry))
		r.Get("/games/{gameID}/events", handleEvents(registry, broker))
	})
}
