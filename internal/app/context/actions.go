package context

import (
	"context"
	"errors"
	"fmt"
)

// Action is a staged write. Rollback must undo a successful Execute.
type Action interface {
	Execute(ctx context.Context) error
	Rollback(ctx context.Context) error
	Description() string
}

// AddAction stages action. It fails once Commit has been called.
func (rc *RequestContext) AddAction(action Action) error {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.closed {
		return ErrAlreadyCommitted
	}

	rc.actions = append(rc.actions, action)

	return nil
}

// Pending returns the staged actions in execution order.
func (rc *RequestContext) Pending() []Action {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	return append([]Action(nil), rc.actions...)
}

// Commit executes the staged actions in order. When one fails, the actions
// already executed are rolled back newest first and the returned error also
// carries any rollback failures. A RequestContext commits at most once,
// whatever the outcome.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.closed {
		return ErrAlreadyCommitted
	}

	rc.closed = true

	for i, action := range rc.actions {
		err := action.Execute(ctx)
		if err == nil {
			continue
		}

		errs := []error{fmt.Errorf("action %q failed: %w", action.Description(), err)}

		for j := i - 1; j >= 0; j-- {
			if rbErr := rc.actions[j].Rollback(ctx); rbErr != nil {
				errs = append(errs, fmt.Errorf("%w: %q: %w", ErrRollback, rc.actions[j].Description(), rbErr))
			}
		}

		return errors.Join(errs...)
	}

	return nil
}
