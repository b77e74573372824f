package ports

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultCheckTimeout bounds a single readiness check.
const DefaultCheckTimeout = 2 * time.Second

// ErrDuplicateChecker is returned by Register when the name is taken.
var ErrDuplicateChecker = errors.New("duplicate health checker")

// HealthChecker is a dependency that /-/ready reports on. The memory store
// registers itself as "memory-store".
type HealthChecker interface {
	Name() string

	// Check returns nil when the component can serve requests.
	Check(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and runs them for /-/ready.
type HealthRegistry interface {
	Register(checker HealthChecker) error
	CheckAll(ctx context.Context) *HealthResult
}

// HealthStatus is "healthy" or "unhealthy".
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResult is the outcome of CheckAll. Status is unhealthy as soon as one
// check fails.
type HealthResult struct {
	Status    HealthStatus            `json:"status"`
	Checks    map[string]*CheckResult `json:"checks"`
	Timestamp time.Time               `json:"timestamp"`
}

// CheckResult is the outcome of one checker.
type CheckResult struct {
	Status   HealthStatus  `json:"status"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Registry is the HealthRegistry used by the service. Checks run concurrently
// and each one gets its own deadline.
type Registry struct {
	mu       sync.RWMutex
	checkers []HealthChecker
	timeout  time.Duration
}

var _ HealthRegistry = (*Registry)(nil)

// NewHealthRegistry returns an empty registry using DefaultCheckTimeout.
func NewHealthRegistry() *Registry {
	return NewHealthRegistryWithTimeout(DefaultCheckTimeout)
}

// NewHealthRegistryWithTimeout returns an empty registry whose checks are cut
// off after timeout. A non-positive timeout disables the per-check deadline.
func NewHealthRegistryWithTimeout(timeout time.Duration) *Registry {
	return &Registry{timeout: timeout}
}

// Register adds checker. Names must be unique.
func (r *Registry) Register(checker HealthChecker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.checkers {
		if existing.Name() == checker.Name() {
			return fmt.Errorf("%w: %s", ErrDuplicateChecker, checker.Name())
		}
	}

	r.checkers = append(r.checkers, checker)

	return nil
}

// CheckAll runs every registered check and waits for all of them. A registry
// with no checkers is healthy.
func (r *Registry) CheckAll(ctx context.Context) *HealthResult {
	r.mu.RLock()
	checkers := append([]HealthChecker(nil), r.checkers...)
	r.mu.RUnlock()

	results := make([]*CheckResult, len(checkers))

	var g errgroup.Group

	for i, checker := range checkers {
		g.Go(func() error {
			results[i] = r.run(ctx, checker)
			return nil
		})
	}

	_ = g.Wait()

	out := &HealthResult{
		Status:    HealthStatusHealthy,
		Checks:    make(map[string]*CheckResult, len(checkers)),
		Timestamp: time.Now(),
	}

	for i, checker := range checkers {
		out.Checks[checker.Name()] = results[i]
		if results[i].Status == HealthStatusUnhealthy {
			out.Status = HealthStatusUnhealthy
		}
	}

	return out
}

func (r *Registry) run(ctx context.Context, checker HealthChecker) *CheckResult {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)

		defer cancel()
	}

	start := time.Now()
	err := checker.Check(ctx)

	res := &CheckResult{Status: HealthStatusHealthy, Duration: time.Since(start)}
	if err != nil {
		res.Status = HealthStatusUnhealthy
		res.Message = err.Error()
	}

	return res
}
