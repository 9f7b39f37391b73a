package workers

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/animal-catalog/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedChecker returns the scripted results in order, then repeats the last.
type scriptedChecker struct {
	mu      sync.Mutex
	results []error
	calls   int
}

func (s *scriptedChecker) CheckHealth(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := ctx.Deadline(); !ok {
		return errors.New("check without deadline")
	}

	i := min(s.calls, len(s.results)-1)
	s.calls++
	return s.results[i]
}

func (s *scriptedChecker) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// syncBuffer guards a bytes.Buffer shared between the worker and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestHealthCheckWorker_ChecksImmediatelyAndOnTick(t *testing.T) {
	checker := &scriptedChecker{results: []error{nil}}
	w := NewHealthCheckWorker(checker, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool { return checker.callCount() >= 3 }, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestHealthCheckWorker_LogsStateChangesOnly(t *testing.T) {
	down := errors.New("db down")
	checker := &scriptedChecker{results: []error{nil, nil, down, down, nil}}

	var out syncBuffer
	log := &logger.Logger{Logger: zerolog.New(&out)}
	w := NewHealthCheckWorker(checker, 5*time.Millisecond, log)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool { return checker.callCount() >= 7 }, time.Second, 2*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	logs := out.String()
	assert.Equal(t, 2, strings.Count(logs, "storage is healthy"))
	assert.Equal(t, 1, strings.Count(logs, "storage health check failed"))
}

func TestHealthCheckWorker_StopsOnCancelledContext(t *testing.T) {
	checker := &scriptedChecker{results: []error{nil}}
	w := NewHealthCheckWorker(checker, time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, w.Run(ctx))
	assert.Equal(t, 1, checker.callCount())
}
