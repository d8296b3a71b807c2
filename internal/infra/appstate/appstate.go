package appstate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/skillcoder/kbs-deployer/internal/infra/pinger"
	"github.com/skillcoder/kbs-deployer/internal/infra/shutdown"
)

// State represents the daemon lifecycle state
type State string

const (
	StateInit        State = "init"
	StateStarting    State = "starting"
	StateRunning     State = "running"
	StateTerminating State = "terminating"
	StateTerminated  State = "terminated"
)

const defaultShutdownersCount = 4

// AppState tracks the lifecycle of a long-running command and combines it
// with the pinger statistics for the health endpoints.
type AppState struct {
	mu            sync.RWMutex
	logger        *slog.Logger
	startedAt     time.Time
	readyAt       *time.Time
	terminatingAt *time.Time
	state         State
	pingers       pingerStatsGetter
	shutdowners   []shutdown.Shutdowner
}

// New creates a new AppState. pingers may be nil.
func New(logger *slog.Logger, appStart time.Time, pingers pingerStatsGetter) *AppState {
	return &AppState{
		logger:      logger.With("component", "appstate"),
		startedAt:   appStart,
		state:       StateInit,
		pingers:     pingers,
		shutdowners: make([]shutdown.Shutdowner, 0, defaultShutdownersCount),
	}
}

// RegisterShutdowner adds a component stopped by Shutdown, in reverse
// registration order.
func (s *AppState) RegisterShutdowner(shutdowner shutdown.Shutdowner) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shutdowners = append(s.shutdowners, shutdowner)
}

func (s *AppState) GetAllStats() map[string]*pinger.Statistics {
	if s.pingers == nil {
		return nil
	}

	return s.pingers.GetAllStats()
}

// SetStarting transitions the state from Init to Starting
func (s *AppState) SetStarting(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInit {
		return fmt.Errorf("set starting from %s: %w", s.state, ErrInvalidStateTransition)
	}

	s.state = StateStarting

	return nil
}

// SetRunning transitions the state from Starting to Running
func (s *AppState) SetRunning(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateStarting {
		return fmt.Errorf("set running from %s: %w", s.state, ErrInvalidStateTransition)
	}

	now := time.Now()
	s.readyAt = &now
	s.state = StateRunning

	s.logger.InfoContext(ctx, "running", "startup", now.Sub(s.startedAt))

	return nil
}

// SetTerminating transitions the state to Terminating
func (s *AppState) SetTerminating(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.setTerminating()
}

func (s *AppState) setTerminating() error {
	if s.state == StateTerminated {
		return fmt.Errorf("set terminating: %w", ErrAlreadyTerminated)
	}

	if s.terminatingAt == nil {
		now := time.Now()
		s.terminatingAt = &now
	}

	s.state = StateTerminating

	return nil
}

func (s *AppState) GetState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

func (s *AppState) GetStartTime() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.startedAt
}

func (s *AppState) GetUptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return time.Since(s.startedAt)
}

// IsHealthy is true while running and no health-critical pinger fails.
func (s *AppState) IsHealthy() bool {
	if s.GetState() != StateRunning {
		return false
	}

	for _, stats := range s.GetAllStats() {
		if !stats.IsHealthy {
			return false
		}
	}

	return true
}

// IsReady is true once running and every ready-critical pinger passes.
func (s *AppState) IsReady() bool {
	s.mu.RLock()
	ready := s.state == StateRunning && s.readyAt != nil
	s.mu.RUnlock()

	if !ready {
		return false
	}

	for _, stats := range s.GetAllStats() {
		if !stats.IsReady {
			return false
		}
	}

	return true
}

// Shutdown stops the registered components and marks the state terminated.
// Calling it again after termination is a no-op.
func (s *AppState) Shutdown(ctx context.Context) error {
	s.mu.Lock()

	if s.state == StateTerminated {
		s.mu.Unlock()

		return nil
	}

	if err := s.setTerminating(); err != nil {
		s.mu.Unlock()

		return err
	}

	shutdowners := append([]shutdown.Shutdowner(nil), s.shutdowners...)
	s.mu.Unlock()

	err := shutdown.GracefulShutdown(ctx, s.logger, shutdowners)

	s.mu.Lock()
	s.state = StateTerminated
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
