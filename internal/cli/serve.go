package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/tilecraft/mosaic/pkg/cache"
	apperrors "github.com/tilecraft/mosaic/pkg/errors"
	"github.com/tilecraft/mosaic/pkg/gallery"
	"github.com/tilecraft/mosaic/pkg/pipeline"
	"github.com/tilecraft/mosaic/pkg/store"
)

const (
	defaultAddr     = ":8080"
	shutdownTimeout = 10 * time.Second
)

// serveCommand creates the serve command exposing the layout pipeline over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisStr string
		mongoURI string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout pipeline over HTTP",
		Long: `Serve the layout pipeline over HTTP.

Endpoints:
  POST   /v1/layout        compute a layout without persisting it
  POST   /v1/layouts       compute and save a layout
  GET    /v1/layouts       list saved layouts
  GET    /v1/layouts/{id}  fetch a saved layout
  DELETE /v1/layouts/{id}  delete a saved layout
  GET    /healthz          liveness probe

Saved layouts live in memory unless --mongo-uri points at a MongoDB
instance. Layout caching uses the local file cache unless --redis points
at a Redis server.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, redisStr, mongoURI, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVar(&redisStr, "redis", "", "redis address for layout caching (e.g. localhost:6379)")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "mongodb URI for saved layouts (e.g. mongodb://localhost:27017)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe wires the cache, store, and router together and blocks until the
// context is cancelled.
func (c *CLI) runServe(ctx context.Context, addr, redisAddr, mongoURI string, noCache bool) error {
	layoutCache, err := c.newServeCache(ctx, redisAddr, noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	runner := pipeline.NewRunner(layoutCache, nil, c.Logger)
	defer runner.Close()

	layoutStore, err := newServeStore(ctx, mongoURI)
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer layoutStore.Close(ctx)

	srv := &http.Server{
		Addr:         addr,
		Handler:      newRouter(runner, layoutStore, c.Logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// newServeCache picks the cache backend for the server.
func (c *CLI) newServeCache(ctx context.Context, redisAddr string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: redisAddr})
	}
	return newCache(false)
}

// newServeStore picks the store backend for the server.
func newServeStore(ctx context.Context, mongoURI string) (store.Store, error) {
	if mongoURI != "" {
		return store.NewMongoStore(ctx, store.MongoConfig{URI: mongoURI})
	}
	return store.NewMemoryStore(), nil
}

// =============================================================================
// Router & Handlers
// =============================================================================

// server holds the dependencies shared by all HTTP handlers.
type server struct {
	runner *pipeline.Runner
	store  store.Store
}

// newRouter builds the chi router for the layout API.
func newRouter(runner *pipeline.Runner, layoutStore store.Store, logger *log.Logger) http.Handler {
	s := &server{runner: runner, store: layoutStore}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(withLogger(req.Context(), logger)))
		})
	})

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", s.handleCompute)
		r.Route("/layouts", func(r chi.Router) {
			r.Post("/", s.handleSave)
			r.Get("/", s.handleList)
			r.Get("/{id}", s.handleGet)
			r.Delete("/{id}", s.handleDelete)
		})
	})
	return r
}

// layoutRequest is the body for compute and save endpoints.
type layoutRequest struct {
	Manifest gallery.Manifest `json:"manifest"`
	Options  pipeline.Options `json:"options"`
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCompute computes a layout without persisting it.
func (s *server) handleCompute(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.computeFromRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// handleSave computes a layout and stores it, returning the document with
// its assigned ID.
func (s *server) handleSave(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.computeFromRequest(w, r)
	if !ok {
		return
	}

	saved, err := s.store.Save(r.Context(), doc)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *server) handleList(w http.ResponseWriter, r *http.Request) {
	docs, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

func (s *server) handleGet(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// computeFromRequest decodes a layout request and runs the pipeline.
// On failure it writes the error response and returns ok=false.
func (s *server) computeFromRequest(w http.ResponseWriter, r *http.Request) (gallery.LayoutDocument, bool) {
	var req layoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(r.Context(), w, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid request body"))
		return gallery.LayoutDocument{}, false
	}

	req.Options.Logger = loggerFromContext(r.Context())
	doc, err := s.runner.Compute(r.Context(), req.Manifest, req.Options)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return gallery.LayoutDocument{}, false
	}
	return doc, true
}

// writeError maps application error codes to HTTP status codes.
func (s *server) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case apperrors.ErrCodeLayoutNotFound, apperrors.ErrCodeNotFound:
		status = http.StatusNotFound
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidStrategy,
		apperrors.ErrCodeInvalidFormat, apperrors.ErrCodeInvalidManifest,
		apperrors.ErrCodeInvalidLayout:
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		loggerFromContext(ctx).Error("request failed", "err", err)
	}
	writeJSON(w, status, errorResponse{Code: string(code), Message: apperrors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
