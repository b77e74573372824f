package ports

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name  string
	err   error
	block bool
	calls atomic.Int32
}

func (s *stubChecker) Name() string { return s.name }

func (s *stubChecker) Check(ctx context.Context) error {
	s.calls.Add(1)

	if s.block {
		<-ctx.Done()
		return ctx.Err()
	}

	return s.err
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(&stubChecker{name: "memory-store"}))
	require.NoError(t, registry.Register(&stubChecker{name: "rag-index"}))

	err := registry.Register(&stubChecker{name: "memory-store"})
	require.ErrorIs(t, err, ErrDuplicateChecker)
	assert.Contains(t, err.Error(), "memory-store")
	assert.Len(t, registry.checkers, 2)
}

func TestRegistry_CheckAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		checkers   []*stubChecker
		wantStatus HealthStatus
		wantFailed map[string]string
	}{
		{
			name:       "no checkers",
			wantStatus: HealthStatusHealthy,
		},
		{
			name:       "all pass",
			checkers:   []*stubChecker{{name: "memory-store"}, {name: "rag-index"}},
			wantStatus: HealthStatusHealthy,
		},
		{
			name: "one fails",
			checkers: []*stubChecker{
				{name: "memory-store"},
				{name: "rag-index", err: errors.New("index not loaded")},
			},
			wantStatus: HealthStatusUnhealthy,
			wantFailed: map[string]string{"rag-index": "index not loaded"},
		},
		{
			name: "all fail",
			checkers: []*stubChecker{
				{name: "memory-store", err: errors.New("closed")},
				{name: "rag-index", err: errors.New("empty")},
			},
			wantStatus: HealthStatusUnhealthy,
			wantFailed: map[string]string{"memory-store": "closed", "rag-index": "empty"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := NewHealthRegistry()
			for _, c := range tt.checkers {
				require.NoError(t, registry.Register(c))
			}

			result := registry.CheckAll(context.Background())

			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Len(t, result.Checks, len(tt.checkers))
			assert.False(t, result.Timestamp.IsZero())

			for _, c := range tt.checkers {
				assert.Equal(t, int32(1), c.calls.Load(), c.name)

				got := result.Checks[c.name]
				require.NotNil(t, got, c.name)

				if msg, failed := tt.wantFailed[c.name]; failed {
					assert.Equal(t, HealthStatusUnhealthy, got.Status)
					assert.Equal(t, msg, got.Message)
				} else {
					assert.Equal(t, HealthStatusHealthy, got.Status)
					assert.Empty(t, got.Message)
				}
			}
		})
	}
}

func TestRegistry_CheckTimeout(t *testing.T) {
	t.Parallel()

	registry := NewHealthRegistryWithTimeout(20 * time.Millisecond)
	require.NoError(t, registry.Register(&stubChecker{name: "slow", block: true}))
	require.NoError(t, registry.Register(&stubChecker{name: "fast"}))

	start := time.Now()
	result := registry.CheckAll(context.Background())

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Equal(t, context.DeadlineExceeded.Error(), result.Checks["slow"].Message)
	assert.Equal(t, HealthStatusHealthy, result.Checks["fast"].Status)
}

func TestRegistry_CallerCancellation(t *testing.T) {
	t.Parallel()

	registry := NewHealthRegistryWithTimeout(0)
	require.NoError(t, registry.Register(&stubChecker{name: "slow", block: true}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := registry.CheckAll(ctx)

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Equal(t, context.Canceled.Error(), result.Checks["slow"].Message)
}
