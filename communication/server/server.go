package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"tilesearch/communication"
	"tilesearch/game"
	"tilesearch/meta"
	"tilesearch/searcher"
)

// Config holds the search settings used when a request leaves them out.
type Config struct {
	Depth       int
	MaxDepth    int // Upper bound for requested depths
	Propagation searcher.Propagation
	TieBreak    searcher.TieBreak
	NodeLimit   int
	Seed        uint64
}

// Server answers move requests. Every request gets its own searcher, so
// requests run concurrently.
type Server struct {
	config Config
	router chi.Router
}

func NewServer(config Config) *Server {
	if config.MaxDepth <= 0 {
		config.MaxDepth = meta.MaxServerDepth
	}
	s := &Server{config: config}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	r.Post("/move", s.handleMove)

	s.router = r
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("starting agent server")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("agent server failed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info().Msg("stopping agent server")
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to stop agent server: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var payload communication.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	board, err := game.FromValues(payload.Board)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	depth := s.config.Depth
	if payload.Depth != nil {
		depth = *payload.Depth
	}
	if depth < 0 || depth > s.config.MaxDepth {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("depth must be between 0 and %d", s.config.MaxDepth))
		return
	}

	propagation := s.config.Propagation
	if payload.Propagation != "" {
		propagation, err = searcher.ParsePropagation(payload.Propagation)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	seed := s.config.Seed
	rng := game.NewRand(seed)
	srch := searcher.NewSearcher(
		game.NewStandardRules(game.NewRand(rng.Uint64()|1)),
		searcher.WithDepth(depth),
		searcher.WithPropagation(propagation),
		searcher.WithTieBreak(s.config.TieBreak),
		searcher.WithNodeLimit(s.config.NodeLimit),
		searcher.WithRand(rng),
	)
	result, err := srch.SelectMove(board)
	if err != nil {
		log.Error().Err(err).Str("request_id", middleware.GetReqID(r.Context())).Msg("search failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, communication.MoveResponse{
		Move:        result.Move,
		Scores:      result.Scores,
		Depth:       result.Metric.Depth,
		Propagation: result.Metric.Propagation,
		DurationNs:  result.Metric.Duration.Nanoseconds(),
		Expanded:    result.Metric.Expanded,
		Generated:   result.Metric.Generated,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, communication.ErrorResponse{Error: msg})
}
