package httpserver

import "errors"

var (
	ErrNotReady     = errors.New("server is not ready")
	ErrShuttingDown = errors.New("server is shutting down")
)
