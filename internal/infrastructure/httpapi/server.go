// Package httpapi provides the HTTP API used by the browser extension.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/medicheck/medicheck/internal/application/handlers"
	"github.com/medicheck/medicheck/internal/infrastructure/config"
)

// maxBodyBytes bounds request bodies. Page text beyond the prompt limit is
// dropped later, but the body still has to fit.
const maxBodyBytes = 8 << 20

// Server is the HTTP server for the MediCheck API.
type Server struct {
	validate *handlers.ValidateHandler
	chat     *handlers.ChatHandler
	config   config.ServerConfig
	logger   *zap.Logger
	server   *http.Server
}

// NewServer creates a server with the given handlers.
func NewServer(validate *handlers.ValidateHandler, chat *handlers.ChatHandler, cfg config.ServerConfig, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		validate: validate,
		chat:     chat,
		config:   cfg,
		logger:   logger,
	}
}

// Routes builds the router with all middleware and endpoints.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.config.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", SessionHeader},
		ExposedHeaders: []string{SessionHeader},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(withSession)
		r.Post("/summarize", s.handleSummarize)
		r.Post("/validate", s.handleValidate)
		r.Post("/chat", s.handleChat)
		r.Get("/chat/history", s.handleHistory)
		r.Delete("/chat/history", s.handleResetHistory)
	})

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := s.config.Addr()
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
