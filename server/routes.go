package server

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
)

func addRoutes(r chi.Router, logger *slog.Logger, cfg Config) {
	r.Get("/healthz", handleHealth(logger, cfg.Index))
	r.Get("/meets", handleListMeets(logger, cfg.Index))
	r.Get("/meets/{filename}", handleMeet(logger, cfg))
}
