// Package http exposes health and readiness endpoints for the bot process.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const readyTimeout = 2 * time.Second

// Pinger checks a dependency's availability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Counter reports the number of loaded questions, or of stored sessions
// when the store keeps them in memory.
type Counter interface {
	Len() int
}

// NewRouter builds the ops router.
func NewRouter(store Pinger, bank Counter) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	})

	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), readyTimeout)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, map[string]any{
				"status": "unavailable",
				"error":  err.Error(),
			})
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	})

	sessions, countsSessions := store.(Counter)

	r.Get("/stats", func(w http.ResponseWriter, _ *http.Request) {
		stats := map[string]any{"questions": bank.Len()}
		if countsSessions {
			stats["sessions"] = sessions.Len()
		}
		respondJSON(w, http.StatusOK, stats)
	})

	return r
}

// Serve runs the ops server until ctx is cancelled.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("ops server listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
