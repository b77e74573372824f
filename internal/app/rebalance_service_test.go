package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/advisor-dashboard/internal/domain"
	"github.com/jsamuelsen/advisor-dashboard/internal/mocks"
)

func balancedModel() *domain.ModelPortfolio {
	return &domain.ModelPortfolio{
		ID:   "model-3",
		Name: "Balanced Growth",
		Funds: []domain.FundAllocation{
			{Name: "Equity", Weight: 60},
			{Name: "Debt", Weight: 40},
		},
	}
}

func TestRebalanceService_ApplyModel(t *testing.T) {
	clients := mocks.NewMockClientRepository(t)
	models := mocks.NewMockModelPortfolioRepository(t)

	// The store returns a fresh copy on every read, like the real repository.
	var saved *domain.Client

	clients.EXPECT().GetClient(mock.Anything, "client-1").RunAndReturn(
		func(context.Context, string) (*domain.Client, error) {
			if saved != nil {
				return saved.Clone(), nil
			}

			return clientWithFunds(), nil
		})
	clients.EXPECT().UpdateClient(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, c *domain.Client) error {
			saved = c.Clone()
			return nil
		})
	models.EXPECT().GetModelPortfolio(mock.Anything, "model-3").Return(balancedModel(), nil)

	svc := NewRebalanceService(clients, models, fixedClock, discardLogger())

	goal, err := svc.ApplyModel(context.Background(), "client-1", "goal-1", "model-3")
	require.NoError(t, err)

	require.Len(t, goal.Portfolio.Funds, 2)
	assert.InDelta(t, 60.0, goal.Portfolio.Funds[0].Weight, 0.001)

	require.NotNil(t, saved)
	require.Len(t, saved.MeetingNotes, 1)
	assert.Contains(t, saved.MeetingNotes[0].Summary, "Balanced Growth")
	assert.Contains(t, saved.MeetingNotes[0].Summary, "20.00%")
}

func TestRebalanceService_ApplyModel_RollsBack(t *testing.T) {
	clients := mocks.NewMockClientRepository(t)
	models := mocks.NewMockModelPortfolioRepository(t)

	var (
		saved   *domain.Client
		updates int
	)

	clients.EXPECT().GetClient(mock.Anything, "client-1").RunAndReturn(
		func(context.Context, string) (*domain.Client, error) {
			if saved != nil {
				return saved.Clone(), nil
			}

			return clientWithFunds(), nil
		})
	clients.EXPECT().UpdateClient(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, c *domain.Client) error {
			updates++
			// The second write is the meeting note; fail it.
			if updates == 2 {
				return errors.New("write failed")
			}

			saved = c.Clone()

			return nil
		})
	models.EXPECT().GetModelPortfolio(mock.Anything, "model-3").Return(balancedModel(), nil)

	_, err := NewRebalanceService(clients, models, fixedClock, discardLogger()).
		ApplyModel(context.Background(), "client-1", "goal-1", "model-3")
	require.Error(t, err)

	// Third write restored the original allocation.
	assert.Equal(t, 3, updates)
	require.NotNil(t, saved)
	assert.InDelta(t, 70.0, saved.Goals[0].Portfolio.Funds[0].Weight, 0.001)
	assert.Empty(t, saved.MeetingNotes)
}

func TestRebalanceService_ApplyModel_UnknownGoal(t *testing.T) {
	clients := mocks.NewMockClientRepository(t)
	clients.EXPECT().GetClient(mock.Anything, "client-1").Return(clientWithFunds(), nil)

	models := mocks.NewMockModelPortfolioRepository(t)
	models.EXPECT().GetModelPortfolio(mock.Anything, "model-3").Return(balancedModel(), nil)

	_, err := NewRebalanceService(clients, models, fixedClock, discardLogger()).
		ApplyModel(context.Background(), "client-1", "goal-x", "model-3")
	assert.True(t, domain.IsNotFound(err))
}
