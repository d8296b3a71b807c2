package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skillcoder/kbs-deployer/internal/infra/shutdown"
)

// MetricsServer serves the deployment and janitor metrics on their own
// port, apart from the health endpoints.
type MetricsServer struct {
	*endpoint
}

func NewMetricsServer(logger *slog.Logger, port string) *MetricsServer {
	if port == "" {
		port = defaultMetricsPort
	}

	return &MetricsServer{
		endpoint: newEndpoint(logger, metricsServerName, port),
	}
}

var _ shutdown.Shutdowner = (*MetricsServer)(nil)

func (s *MetricsServer) Handler() http.Handler {
	router := chi.NewRouter()
	router.Handle("/metrics", promhttp.Handler())

	return router
}

func (s *MetricsServer) Start(ctx context.Context) error {
	return s.start(ctx, s.Handler())
}
