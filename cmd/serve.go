package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dc-analytics/crimelens/internal/model"
	"github.com/dc-analytics/crimelens/internal/pipeline"
)

var (
	servePort   int
	serveSource string
	serveRefDir string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the derived views over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		applySourceFlags(serveSource, serveRefDir)

		sess, err := pipeline.Load(ctx, cfg)
		if err != nil {
			return err
		}

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(sess),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// newRouter builds the view API. The session is the only state; every
// handler reads the published snapshot, and PUT /api/filter swaps it.
func newRouter(sess *pipeline.Session) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok", "session": sess.ID()})
	})

	r.Get("/api/views", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, sess.Views())
	})

	r.Get("/api/filter", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, sess.Filter())
	})

	r.Put("/api/filter", func(w http.ResponseWriter, req *http.Request) {
		var spec model.FilterSpec
		if err := json.NewDecoder(req.Body).Decode(&spec); err != nil {
			http.Error(w, `{"error":"invalid filter spec"}`, http.StatusBadRequest)
			return
		}
		// Shifts arrive as free text from consumers; normalize at the boundary.
		for i, s := range spec.Shifts {
			spec.Shifts[i] = model.ParseShift(strings.ToUpper(string(s)))
		}

		if err := sess.SetFilter(req.Context(), spec); err != nil {
			zap.L().Error("filter apply failed", zap.Error(err))
			http.Error(w, `{"error":"filter apply failed"}`, http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, sess.Views())
	})

	r.Get("/api/incidents", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, sess.Incidents())
	})

	r.Get("/api/demographics", func(w http.ResponseWriter, _ *http.Request) {
		if sess.Demographics() == nil {
			http.Error(w, `{"error":"no reference tables configured"}`, http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, sess.Demographics())
	})

	r.Get("/api/summary", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]any{
			"session":   sess.ID(),
			"incidents": len(sess.Incidents()),
			"stats":     sess.Stats(),
		})
	})

	return r
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	serveCmd.Flags().StringVar(&serveSource, "source", "", "incident extract file (overrides config)")
	serveCmd.Flags().StringVar(&serveRefDir, "reference-dir", "", "reference table directory (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
