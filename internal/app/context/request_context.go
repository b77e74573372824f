package context

import (
	"context"
	"fmt"
	"sync"
)

type ctxKey struct{}

// RequestContext memoizes reads and stages writes for one request.
type RequestContext struct {
	mu      sync.Mutex
	entries map[string]*entry
	actions []Action
	closed  bool
}

// entry is one memoized load. ready is closed once value and err are set.
type entry struct {
	ready chan struct{}
	value any
	err   error
}

// New creates an empty RequestContext.
func New() *RequestContext {
	return &RequestContext{entries: make(map[string]*entry)}
}

// FromContext returns the RequestContext stored in ctx, or nil.
func FromContext(ctx context.Context) *RequestContext {
	if ctx == nil {
		return nil
	}

	rc, _ := ctx.Value(ctxKey{}).(*RequestContext)

	return rc
}

// WithContext stores rc in ctx.
func WithContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// Ensure returns the RequestContext in ctx, creating and storing one when
// there is none.
func Ensure(ctx context.Context) (context.Context, *RequestContext) {
	if rc := FromContext(ctx); rc != nil {
		return ctx, rc
	}

	rc := New()

	return WithContext(ctx, rc), rc
}

// Fetch returns the value loaded under key, calling load at most once at a
// time per key. Concurrent callers wait for the first load. A failed load is
// not memoized, so a later call retries. A memoized value of a different type
// is reported as ErrTypeMismatch.
func Fetch[T any](ctx context.Context, rc *RequestContext, key string, load func(context.Context) (T, error)) (T, error) {
	var zero T

	value, err := rc.load(ctx, key, func(ctx context.Context) (any, error) { return load(ctx) })
	if err != nil {
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %q holds %T", ErrTypeMismatch, key, value)
	}

	return typed, nil
}

func (rc *RequestContext) load(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, error) {
	rc.mu.Lock()

	if e, ok := rc.entries[key]; ok {
		rc.mu.Unlock()

		select {
		case <-e.ready:
			if e.err != nil {
				return nil, e.err
			}

			return e.value, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	e := &entry{ready: make(chan struct{})}
	rc.entries[key] = e
	rc.mu.Unlock()

	e.value, e.err = fn(ctx)

	if e.err != nil {
		rc.mu.Lock()
		delete(rc.entries, key)
		rc.mu.Unlock()
	}

	close(e.ready)

	return e.value, e.err
}

// Forget drops the memoized value for key, typically after a staged write
// changed it.
func (rc *RequestContext) Forget(key string) {
	rc.mu.Lock()
	delete(rc.entries, key)
	rc.mu.Unlock()
}
