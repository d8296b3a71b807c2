package pinger

import "context"

// Pinger is a component that can report its own health.
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}
