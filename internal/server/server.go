// Package server exposes the analysis pipeline over HTTP for browser
// frontends.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/npastorale/lolscout/internal/analyzer"
	"github.com/npastorale/lolscout/internal/model"
)

// AnalyzeFunc runs one full analysis for a player on a platform. The
// server constructs a platform-bound client per request, so the platform
// travels with the call.
type AnalyzeFunc func(ctx context.Context, platform, gameName, tagLine string, count int) (*model.Report, error)

// Server is the HTTP surface over the analyzer.
type Server struct {
	analyze AnalyzeFunc
}

// New returns a server backed by the given analyze function.
func New(analyze AnalyzeFunc) *Server {
	return &Server{analyze: analyze}
}

// Router builds the chi router. The API is read-only and meant to be
// called from browser pages on other origins, so CORS is wide open.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/api/analyze", s.handleAnalyze)
	return r
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := q.Get("name")
	tag := q.Get("tag")
	region := q.Get("region")
	if region == "" {
		region = "na1"
	}
	count := 0
	if raw := q.Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			writeError(w, http.StatusBadRequest, "count must be an integer between 1 and 100")
			return
		}
		count = n
	}

	report, err := s.analyze(r.Context(), region, name, tag, count)
	if err != nil {
		var lookup *analyzer.LookupError
		switch {
		case errors.Is(err, analyzer.ErrMissingIdentity):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &lookup):
			writeError(w, http.StatusBadGateway, lookup.Error())
		default:
			log.Printf("analyze %s#%s on %s: %v", name, tag, region, err)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
