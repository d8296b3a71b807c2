package pinger

import (
	"sync"
	"time"
)

// stats is the mutable record of one pinger.
type stats struct {
	mu                sync.RWMutex
	lastRun           time.Time
	lastError         error
	successCount      int
	errorCount        int
	consecutiveErrors int
}

func (s *stats) record(at time.Time, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastRun = at
	s.lastError = err

	if err != nil {
		s.errorCount++
		s.consecutiveErrors++

		return
	}

	s.successCount++
	s.consecutiveErrors = 0
}

// Statistics is a point-in-time copy of a pinger's record.
type Statistics struct {
	IsReady           bool      `json:"ready"`
	IsHealthy         bool      `json:"healthy"`
	LastRun           time.Time `json:"lastRun"`
	LastError         string    `json:"lastError,omitempty"`
	SuccessCount      int       `json:"successCount"`
	ErrorCount        int       `json:"errorCount"`
	ConsecutiveErrors int       `json:"consecutiveErrors"`
}

func snapshot(s *stats, info *pingerInfo) *Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// a pinger that has never run is neither ready nor failing
	failing := s.lastError != nil
	ran := !s.lastRun.IsZero()

	out := &Statistics{
		IsReady:           !info.readyCritical || (ran && !failing),
		IsHealthy:         !info.healthCritical || !failing,
		LastRun:           s.lastRun,
		SuccessCount:      s.successCount,
		ErrorCount:        s.errorCount,
		ConsecutiveErrors: s.consecutiveErrors,
	}

	if failing {
		out.LastError = s.lastError.Error()
	}

	return out
}
