package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
)

// endpoint is the listen/serve/shutdown lifecycle shared by the health and
// metrics servers. It doubles as their pinger.
type endpoint struct {
	name       string
	port       string
	logger     *slog.Logger
	server     *http.Server
	addr       atomic.Pointer[string]
	ready      chan struct{}
	inShutdown atomic.Bool
}

func newEndpoint(logger *slog.Logger, name, port string) *endpoint {
	return &endpoint{
		name:   name,
		port:   port,
		logger: logger.With("component", name),
		ready:  make(chan struct{}),
	}
}

func (e *endpoint) Name() string {
	return e.name
}

// start binds the port synchronously, so a busy port fails the caller,
// and serves handler in a goroutine.
func (e *endpoint) start(ctx context.Context, handler http.Handler) error {
	if e.inShutdown.Load() {
		e.logger.InfoContext(ctx, "server is shutting down, skipping start")

		return nil
	}

	addr := ":" + e.port
	e.server = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		MaxHeaderBytes:    maxHeaderBytes,
	}

	lc := &net.ListenConfig{
		KeepAliveConfig: net.KeepAliveConfig{
			Enable: true,
		},
	}

	listener, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s tcp: %w", e.name, err)
	}

	bound := listener.Addr().String()
	e.addr.Store(&bound)

	e.logger.InfoContext(ctx, "listening", "addr", bound)

	go func() {
		close(e.ready)

		if err := e.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.logger.ErrorContext(ctx, "serve failed", "reason", err)
		}
	}()

	return nil
}

// Addr returns the bound address once started.
func (e *endpoint) Addr() string {
	if addr := e.addr.Load(); addr != nil {
		return *addr
	}

	return ""
}

// Ready is closed once the server accepts connections.
func (e *endpoint) Ready() <-chan struct{} {
	return e.ready
}

// Ping returns nil while the server is serving.
func (e *endpoint) Ping(ctx context.Context) error {
	if e.inShutdown.Load() {
		return ErrShuttingDown
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-e.ready:
		return nil
	default:
		return ErrNotReady
	}
}

// Shutdown stops accepting connections and waits for in-flight requests.
// Only the first call does anything.
func (e *endpoint) Shutdown(ctx context.Context) error {
	if !e.inShutdown.CompareAndSwap(false, true) {
		return nil
	}

	if e.server == nil {
		return nil
	}

	if err := e.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s shutdown: %w", e.name, err)
	}

	e.logger.InfoContext(ctx, "closed properly")

	return nil
}
