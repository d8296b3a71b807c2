package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/skillcoder/kbs-deployer/internal/infra/shutdown"
)

// Server exposes the health endpoints of the janitor daemon.
type Server struct {
	*endpoint

	appState appstater
}

func New(logger *slog.Logger, appState appstater, port string) *Server {
	if port == "" {
		port = defaultPort
	}

	return &Server{
		endpoint: newEndpoint(logger, httpServerName, port),
		appState: appState,
	}
}

var _ shutdown.Shutdowner = (*Server)(nil)

// Handler returns the router with the health endpoints.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	router.Get("/-/healthz", s.handleHealthz)
	router.Get("/-/readyz", s.handleReadyz)
	router.Get("/-/status", s.handleStatus)

	return router
}

func (s *Server) Start(ctx context.Context) error {
	return s.start(ctx, s.Handler())
}
