package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/latoulicious/ailie/pkg/logging"
	"github.com/robfig/cron/v3"
)

const (
	StatusStarting  = "starting"
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Pinger checks that the store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// ErrorCounter counts persisted log entries of a level
type ErrorCounter interface {
	CountSince(level string, since time.Time) (int64, error)
}

// Snapshot is the last observed health state
type Snapshot struct {
	Status            string    `json:"status"`
	StartTime         time.Time `json:"start_time"`
	Uptime            string    `json:"uptime"`
	DatabaseConnected bool      `json:"database_connected"`
	LastCheck         time.Time `json:"last_check"`
	LastError         string    `json:"last_error,omitempty"`
}

// Monitor pings the store on a cron schedule and remembers the outcome
type Monitor struct {
	pinger   Pinger
	errors   ErrorCounter
	schedule string
	timeout  time.Duration
	logger   logging.Logger

	cron *cron.Cron

	mu        sync.RWMutex
	startTime time.Time
	lastCheck time.Time
	lastErr   error
	checked   bool
}

// NewMonitor creates a monitor. errors may be nil.
func NewMonitor(pinger Pinger, errors ErrorCounter, schedule string, logger logging.Logger) *Monitor {
	return &Monitor{
		pinger:    pinger,
		errors:    errors,
		schedule:  schedule,
		timeout:   5 * time.Second,
		logger:    logger,
		cron:      cron.New(),
		startTime: time.Now(),
	}
}

// Start runs one check immediately and then follows the schedule
func (m *Monitor) Start() error {
	if _, err := m.cron.AddFunc(m.schedule, func() {
		m.Check(context.Background())
	}); err != nil {
		return fmt.Errorf("invalid health schedule %q: %w", m.schedule, err)
	}

	m.Check(context.Background())
	m.cron.Start()

	m.logger.Info("Health monitor started", map[string]interface{}{
		"schedule": m.schedule,
	})
	return nil
}

// Stop halts the schedule and waits for a running check to finish
func (m *Monitor) Stop() {
	<-m.cron.Stop().Done()
	m.logger.Info("Health monitor stopped", nil)
}

// Check pings the store once and records the result
func (m *Monitor) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	err := m.pinger.Ping(ctx)

	m.mu.Lock()
	recovered := m.checked && m.lastErr != nil && err == nil
	m.lastCheck = time.Now()
	m.lastErr = err
	m.checked = true
	m.mu.Unlock()

	if err != nil {
		m.logger.Error("Database health check failed", err, nil)
	} else if recovered {
		m.logger.Info("Database connection recovered", nil)
	}
	return err
}

// Snapshot returns the last observed state
func (m *Monitor) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := Snapshot{
		Status:            StatusStarting,
		StartTime:         m.startTime,
		Uptime:            time.Since(m.startTime).Round(time.Second).String(),
		DatabaseConnected: m.checked && m.lastErr == nil,
		LastCheck:         m.lastCheck,
	}
	if m.checked {
		snapshot.Status = StatusHealthy
		if m.lastErr != nil {
			snapshot.Status = StatusUnhealthy
			snapshot.LastError = m.lastErr.Error()
		}
	}
	return snapshot
}

// RecentErrors counts ERROR log entries of the last day, -1 when unknown
func (m *Monitor) RecentErrors() int64 {
	if m.errors == nil {
		return -1
	}
	count, err := m.errors.CountSince(logging.LevelError, time.Now().Add(-24*time.Hour))
	if err != nil {
		m.logger.Warn("Failed to count recent errors", map[string]interface{}{
			"error": err.Error(),
		})
		return -1
	}
	return count
}
