package server

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/Nydauron/moisty/cache"
	"github.com/Nydauron/moisty/meetsetup"
	"github.com/Nydauron/moisty/report"
)

func handleHealth(logger *slog.Logger, index Index) http.HandlerFunc {
	type result struct {
		Status string `json:"status"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		checks := map[string]result{"index": {Status: "ok"}}
		status := http.StatusOK
		if err := index.Ping(ctx); err != nil {
			logger.Error("health check failed", "name", "index", "error", err)
			checks["index"] = result{Status: "error"}
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, logger, status, checks)
	}
}

// meetSummary is one cache entry as listed by GET /meets.
type meetSummary struct {
	Filename   string `json:"filename"`
	Name       string `json:"name"`
	NsfID      uint32 `json:"nsf_id,omitempty"`
	StartDate  string `json:"start_date,omitempty"`
	EndDate    string `json:"end_date,omitempty"`
	Host       string `json:"host,omitempty"`
	Downloaded string `json:"downloaded"`
	ParseError string `json:"parse_error,omitempty"`
}

func handleListMeets(logger *slog.Logger, index Index) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := index.List(r.Context())
		if err != nil {
			logger.Error("listing meets", "error", err)
			writeError(w, logger, http.StatusInternalServerError, "listing meets failed")
			return
		}
		writeJSON(w, logger, http.StatusOK, lo.Map(entries, func(e cache.Entry, _ int) meetSummary {
			s := meetSummary{
				Filename:   e.Filename,
				Name:       e.Name,
				StartDate:  e.StartDate,
				EndDate:    e.EndDate,
				Host:       e.Host,
				Downloaded: e.DownloadedAt.UTC().Format(time.RFC3339),
			}
			if e.NsfID != nil {
				s.NsfID = *e.NsfID
			}
			if e.ParseError != nil {
				s.ParseError = *e.ParseError
			}
			return s
		}))
	}
}

// handleMeet decodes a downloaded meet and returns its report. Meets that
// fail to decode or to report answer 422 with the error.
func handleMeet(logger *slog.Logger, cfg Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename := chi.URLParam(r, "filename")
		if filename == "" || filepath.Base(filename) != filename || filename == "." || filename == ".." {
			writeError(w, logger, http.StatusBadRequest, "invalid filename")
			return
		}

		meet, err := meetsetup.ReadMeetFile(cfg.Dirs.Download(filename), cfg.Opts)
		if errors.Is(err, fs.ErrNotExist) {
			writeError(w, logger, http.StatusNotFound, "meet not found")
			return
		}
		if err != nil {
			logger.Debug("decoding meet failed", "filename", filename, "error", err)
			var decodeErr *meetsetup.DecodeError
			if errors.As(err, &decodeErr) {
				writeError(w, logger, http.StatusUnprocessableEntity, decodeErr.Error())
				return
			}
			writeError(w, logger, http.StatusUnprocessableEntity, err.Error())
			return
		}
		rep, err := report.GenerateReport(meet, cfg.Policy)
		if err != nil {
			logger.Debug("building report failed", "filename", filename, "error", err)
			writeError(w, logger, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeJSON(w, logger, http.StatusOK, rep)
	}
}
