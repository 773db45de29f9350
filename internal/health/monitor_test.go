package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/latoulicious/ailie/internal/health"
	"github.com/latoulicious/ailie/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

// fakePinger returns err and counts calls
type fakePinger struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (p *fakePinger) Ping(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return p.err
}

func (p *fakePinger) set(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

func (p *fakePinger) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

type fakeCounter struct {
	count int64
	err   error
}

func (c fakeCounter) CountSince(level string, since time.Time) (int64, error) {
	return c.count, c.err
}

func nopLogger() logging.Logger {
	return logging.NewZapLoggerFrom(zap.NewNop(), "health")
}

func TestMonitor_StartStopDoesNotLeak(t *testing.T) {
	defer goleak.VerifyNone(t)

	pinger := &fakePinger{}
	monitor := health.NewMonitor(pinger, nil, "@every 1s", nopLogger())
	require.NoError(t, monitor.Start())

	assert.Eventually(t, func() bool { return pinger.count() >= 2 }, 3*time.Second, 20*time.Millisecond)
	monitor.Stop()

	assert.Equal(t, health.StatusHealthy, monitor.Snapshot().Status)
}

func TestMonitor_RejectsBadSchedule(t *testing.T) {
	monitor := health.NewMonitor(&fakePinger{}, nil, "every now and then", nopLogger())
	assert.Error(t, monitor.Start())
}

func TestMonitor_SnapshotFollowsLastCheck(t *testing.T) {
	pinger := &fakePinger{}
	monitor := health.NewMonitor(pinger, nil, "@every 1m", nopLogger())

	assert.Equal(t, health.StatusStarting, monitor.Snapshot().Status)

	pinger.set(errors.New("connection refused"))
	assert.Error(t, monitor.Check(context.Background()))
	snapshot := monitor.Snapshot()
	assert.Equal(t, health.StatusUnhealthy, snapshot.Status)
	assert.False(t, snapshot.DatabaseConnected)
	assert.Equal(t, "connection refused", snapshot.LastError)

	pinger.set(nil)
	assert.NoError(t, monitor.Check(context.Background()))
	snapshot = monitor.Snapshot()
	assert.Equal(t, health.StatusHealthy, snapshot.Status)
	assert.True(t, snapshot.DatabaseConnected)
	assert.Empty(t, snapshot.LastError)
}

func TestHealthEndpoint(t *testing.T) {
	pinger := &fakePinger{}
	monitor := health.NewMonitor(pinger, nil, "@every 1m", nopLogger())
	handler := monitor.Handler()

	request := func() *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))
		return recorder
	}

	assert.Equal(t, http.StatusServiceUnavailable, request().Code)

	require.NoError(t, monitor.Check(context.Background()))
	recorder := request()
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var body health.Snapshot
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.Equal(t, health.StatusHealthy, body.Status)

	pinger.set(errors.New("timeout"))
	_ = monitor.Check(context.Background())
	assert.Equal(t, http.StatusServiceUnavailable, request().Code)
}

func TestStatusEndpoint(t *testing.T) {
	monitor := health.NewMonitor(&fakePinger{}, fakeCounter{count: 3}, "@every 1m", nopLogger())
	require.NoError(t, monitor.Check(context.Background()))

	recorder := httptest.NewRecorder()
	monitor.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/status", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.Equal(t, "Ailie Discord Bot", body["application"])
	assert.EqualValues(t, 3, body["recent_errors_24h"])
	assert.Equal(t, map[string]interface{}{"database": true}, body["components"])
}

func TestRecentErrors_UnknownWithoutCounter(t *testing.T) {
	assert.EqualValues(t, -1, health.NewMonitor(&fakePinger{}, nil, "@every 1m", nopLogger()).RecentErrors())

	failing := health.NewMonitor(&fakePinger{}, fakeCounter{err: errors.New("no table")}, "@every 1m", nopLogger())
	assert.EqualValues(t, -1, failing.RecentErrors())
}
