package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/advisor-dashboard/internal/platform/logging"
)

// Writes to the book run in five steps: validate the input, build the new
// state, verify what was built, persist it, then shape the reply. Nothing is
// persisted unless the verify step accepts the built state.

// ExecutionStep names one step of an Operation.
type ExecutionStep string

const (
	StepValidate ExecutionStep = "validate"
	StepPerform  ExecutionStep = "perform"
	StepVerify   ExecutionStep = "verify"
	StepArchive  ExecutionStep = "archive"
	StepRespond  ExecutionStep = "respond"
)

// ExecutionError records which step of an operation failed. It unwraps to
// the cause so domain error checks still apply.
type ExecutionError struct {
	Operation string
	Step      ExecutionStep
	Cause     error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s: %s step: %v", e.Operation, e.Step, e.Cause)
}

func (e *ExecutionError) Unwrap() error { return e.Cause }

// GetExecutionStep reports the failed step when err came from Execute.
func GetExecutionStep(err error) (ExecutionStep, bool) {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Step, true
	}

	return "", false
}

// Executor runs Operations with per-step debug logging.
type Executor struct {
	logger *slog.Logger
}

// NewExecutor creates an executor. A nil logger means slog.Default.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{logger: logger}
}

// Operation is a write split into steps. I is the input, P what Perform
// builds, V what Verify accepts and O the reply. Nil steps are skipped and
// pass the zero value on.
type Operation[I, P, V, O any] struct {
	Name     string
	Validate func(ctx context.Context, input I) error
	Perform  func(ctx context.Context, input I) (P, error)
	Verify   func(ctx context.Context, input I, built P) (V, error)
	Archive  func(ctx context.Context, input I, verified V) error
	Respond  func(ctx context.Context, input I, verified V) (O, error)
}

// Execute runs op on input, stopping at the first failing step. Validation
// failures log at warn, later failures at error.
func Execute[I, P, V, O any](ctx context.Context, exec *Executor, op Operation[I, P, V, O], input I) (O, error) {
	var (
		zero     O
		built    P
		verified V
		out      O
	)

	log := logging.FromContextOr(ctx, exec.logger).With(slog.String("operation", op.Name))
	start := time.Now()

	fail := func(step ExecutionStep, err error) error {
		level := slog.LevelError
		if step == StepValidate {
			level = slog.LevelWarn
		}

		log.Log(ctx, level, "operation step failed",
			slog.String("step", string(step)),
			slog.Any("error", err),
		)

		return &ExecutionError{Operation: op.Name, Step: step, Cause: err}
	}

	if op.Validate != nil {
		if err := op.Validate(ctx, input); err != nil {
			return zero, fail(StepValidate, err)
		}
	}

	if op.Perform != nil {
		var err error
		if built, err = op.Perform(ctx, input); err != nil {
			return zero, fail(StepPerform, err)
		}
	}

	if op.Verify != nil {
		var err error
		if verified, err = op.Verify(ctx, input, built); err != nil {
			return zero, fail(StepVerify, err)
		}
	}

	if op.Archive != nil {
		if err := op.Archive(ctx, input, verified); err != nil {
			return zero, fail(StepArchive, err)
		}
	}

	if op.Respond != nil {
		var err error
		if out, err = op.Respond(ctx, input, verified); err != nil {
			return zero, fail(StepRespond, err)
		}
	}

	log.DebugContext(ctx, "operation completed", slog.Duration("duration", time.Since(start)))

	return out, nil
}
