package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantMsg  string
		sentinel error
		is       func(error) bool
	}{
		{
			name:     "client not found",
			err:      NewNotFoundError(EntityClient, "client-1"),
			wantMsg:  `client "client-1" not found`,
			sentinel: ErrNotFound,
			is:       IsNotFound,
		},
		{
			name:     "not found without id",
			err:      NewNotFoundError(EntityModelPortfolio, ""),
			wantMsg:  "model portfolio not found",
			sentinel: ErrNotFound,
			is:       IsNotFound,
		},
		{
			name:     "duplicate goal",
			err:      NewConflictError(EntityGoal, `id "goal-1" already exists`),
			wantMsg:  `goal conflict: id "goal-1" already exists`,
			sentinel: ErrConflict,
			is:       IsConflict,
		},
		{
			name:     "weights do not total 100",
			err:      NewValidationErrorWithValue("funds", "weights must total 100", 99.5),
			wantMsg:  "funds: weights must total 100",
			sentinel: ErrValidation,
			is:       IsValidation,
		},
		{
			name:     "validation without field",
			err:      NewValidationError("", "request is empty"),
			wantMsg:  "validation failed: request is empty",
			sentinel: ErrValidation,
			is:       IsValidation,
		},
	}

	sentinels := []error{ErrNotFound, ErrConflict, ErrValidation}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, tt.err.Error())

			wrapped := fmt.Errorf("handling request: %w", tt.err)
			assert.True(t, tt.is(wrapped))
			require.ErrorIs(t, wrapped, tt.sentinel)

			for _, other := range sentinels {
				if other != tt.sentinel {
					assert.NotErrorIs(t, wrapped, other)
				}
			}
		})
	}
}

func TestValidationError_Fields(t *testing.T) {
	err := NewValidationErrorWithValue("targetAmount", "must be positive", -10.0)

	var ve *ValidationError
	require.ErrorAs(t, fmt.Errorf("creating goal: %w", err), &ve)

	assert.Equal(t, "targetAmount", ve.Field)
	assert.InDelta(t, -10.0, ve.Value, 0)
	assert.NotContains(t, ve.Error(), "-10")
	assert.Equal(t, map[string]string{"targetAmount": "must be positive"}, ve.FieldErrors())

	assert.Nil(t, (&ValidationError{Message: "bad"}).FieldErrors())
}

func TestIsHelpers_PlainErrors(t *testing.T) {
	for _, err := range []error{nil, errors.New("not found"), errors.New("conflict")} {
		assert.False(t, IsNotFound(err))
		assert.False(t, IsConflict(err))
		assert.False(t, IsValidation(err))
	}
}
