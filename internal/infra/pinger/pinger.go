package pinger

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"sync/atomic"
	"time"

	"k8s.io/utils/clock"

	"github.com/skillcoder/kbs-deployer/internal/infra/shutdown"
)

const defaultPingTimeout = 1 * time.Second

// Optional interfaces a Pinger may implement.
type readyCriticalPinger interface {
	PingerReadyCritical() bool
}

type healthCriticalPinger interface {
	PingerCritical() bool
}

type timeoutPinger interface {
	PingerTimeout() time.Duration
}

type pingerInfo struct {
	pinger         Pinger
	readyCritical  bool
	healthCritical bool
	timeout        time.Duration
}

// Service pings registered components at a fixed interval and keeps their
// statistics for the health endpoints.
type Service struct {
	logger     *slog.Logger
	interval   time.Duration
	clock      clock.Clock
	mu         sync.RWMutex
	pingers    map[string]*pingerInfo
	stats      map[string]*stats
	ready      chan struct{}
	started    atomic.Bool
	inShutdown atomic.Bool
	stopCh     chan struct{}
	doneCh     chan struct{}
	wg         sync.WaitGroup
}

// New creates the pinger service. A nil clock means the real clock.
func New(logger *slog.Logger, interval time.Duration, clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.RealClock{}
	}

	return &Service{
		logger:   logger.With("component", "pinger"),
		interval: interval,
		clock:    clk,
		pingers:  make(map[string]*pingerInfo),
		stats:    make(map[string]*stats),
		ready:    make(chan struct{}),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

var _ shutdown.Shutdowner = (*Service)(nil)

func (s *Service) Name() string {
	return "pinger-service"
}

// Register adds a pinger. Pingers are ready and health critical unless
// they say otherwise.
func (s *Service) Register(p Pinger) error {
	if p == nil {
		return fmt.Errorf("register pinger: %w", ErrNilPinger)
	}

	name := p.Name()

	info := &pingerInfo{
		pinger:         p,
		readyCritical:  true,
		healthCritical: true,
		timeout:        defaultPingTimeout,
	}

	if rc, ok := p.(readyCriticalPinger); ok {
		info.readyCritical = rc.PingerReadyCritical()
	}

	if hc, ok := p.(healthCriticalPinger); ok {
		info.healthCritical = hc.PingerCritical()
	}

	if tp, ok := p.(timeoutPinger); ok && tp.PingerTimeout() > 0 {
		info.timeout = tp.PingerTimeout()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.pingers[name]; exists {
		return fmt.Errorf("register pinger %s: %w", name, ErrPingerAlreadyRegistered)
	}

	s.pingers[name] = info
	s.stats[name] = &stats{}

	s.logger.Info("pinger registered",
		"name", name,
		"readyCritical", info.readyCritical,
		"healthCritical", info.healthCritical,
		"timeout", info.timeout,
	)

	return nil
}

// Start runs the first round of pings and then keeps pinging in the
// background until ctx is done or Shutdown is called.
func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "pinger service is shutting down, skipping start")

		return nil
	}

	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	go s.run(ctx)

	return nil
}

// Ready is closed after the first round of pings.
func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		return nil
	}

	close(s.stopCh)

	if !s.started.Load() {
		return nil
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("wait pinger loop: %w", ctx.Err())
	case <-s.doneCh:
	}

	s.wg.Wait()

	s.logger.InfoContext(ctx, "pinger service stopped")

	return nil
}

func (s *Service) GetStats(name string) (*Statistics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, ok := s.pingers[name]
	if !ok {
		return nil, fmt.Errorf("get stats %s: %w", name, ErrPingerNotFound)
	}

	return snapshot(s.stats[name], info), nil
}

func (s *Service) GetAllStats() map[string]*Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]*Statistics, len(s.pingers))
	for name, info := range s.pingers {
		result[name] = snapshot(s.stats[name], info)
	}

	return result
}

func (s *Service) run(ctx context.Context) {
	defer close(s.doneCh)

	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	s.pingAll(ctx)
	close(s.ready)

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C():
			s.pingAll(ctx)
		}
	}
}

func (s *Service) pingAll(ctx context.Context) {
	s.mu.RLock()
	pingers := maps.Clone(s.pingers)
	s.mu.RUnlock()

	var wg sync.WaitGroup

	for name, info := range pingers {
		wg.Add(1)
		s.wg.Add(1)

		go func() {
			defer wg.Done()
			defer s.wg.Done()

			pingCtx, cancel := context.WithTimeout(ctx, info.timeout)
			defer cancel()

			err := info.pinger.Ping(pingCtx)
			if err != nil {
				s.logger.DebugContext(ctx, "ping failed", "name", name, "reason", err)
			}

			s.mu.RLock()
			st := s.stats[name]
			s.mu.RUnlock()

			st.record(s.clock.Now(), err)
		}()
	}

	wg.Wait()
}
