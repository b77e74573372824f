package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/advisor-dashboard/internal/domain"
)

func newClient(id string) *domain.Client {
	return &domain.Client{
		ID:          id,
		Name:        "Test " + id,
		RiskProfile: domain.RiskModerate,
		Goals: []domain.Goal{
			{
				ID:       id + "-goal",
				ClientID: id,
				Name:     "Retirement",
				Portfolio: domain.Portfolio{Funds: []domain.FundAllocation{
					{Name: "Index Fund", Weight: 100},
				}},
			},
		},
	}
}

func TestStore_ClientCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.CreateClient(ctx, newClient("a")))
	require.NoError(t, s.CreateClient(ctx, newClient("b")))

	got, err := s.GetClient(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Test a", got.Name)

	got.Name = "Renamed"
	require.NoError(t, s.UpdateClient(ctx, got))

	got, err = s.GetClient(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)

	require.NoError(t, s.DeleteClient(ctx, "a"))

	_, err = s.GetClient(ctx, "a")
	assert.True(t, domain.IsNotFound(err))

	list, err := s.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b", list[0].ID)
}

func TestStore_ListClients_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, s.CreateClient(ctx, newClient(id)))
	}

	list, err := s.ListClients(ctx)
	require.NoError(t, err)

	ids := make([]string, 0, len(list))
	for _, c := range list {
		ids = append(ids, c.ID)
	}

	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestStore_CreateClient_Duplicate(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.CreateClient(ctx, newClient("a")))

	err := s.CreateClient(ctx, newClient("a"))
	assert.True(t, domain.IsConflict(err))
}

func TestStore_CreateClient_EmptyID(t *testing.T) {
	err := NewStore().CreateClient(context.Background(), newClient(""))
	assert.True(t, domain.IsValidation(err))
}

func TestStore_NotFound(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	tests := []struct {
		name string
		fn   func() error
	}{
		{"update client", func() error { return s.UpdateClient(ctx, newClient("missing")) }},
		{"delete client", func() error { return s.DeleteClient(ctx, "missing") }},
		{"get portfolio", func() error { _, err := s.GetModelPortfolio(ctx, "missing"); return err }},
		{"update portfolio", func() error {
			return s.UpdateModelPortfolio(ctx, &domain.ModelPortfolio{ID: "missing"})
		}},
		{"delete portfolio", func() error { return s.DeleteModelPortfolio(ctx, "missing") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	original := newClient("a")
	require.NoError(t, s.CreateClient(ctx, original))

	// Mutating the caller's value after create must not leak into the store.
	original.Goals[0].Portfolio.Funds[0].Weight = 1

	got, err := s.GetClient(ctx, "a")
	require.NoError(t, err)
	assert.InDelta(t, 100.0, got.Goals[0].Portfolio.Funds[0].Weight, 0.001)

	// Neither may mutating a value returned by a read.
	got.Goals[0].Name = "changed"
	got.Goals = append(got.Goals, domain.Goal{ID: "extra"})

	again, err := s.GetClient(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Retirement", again.Goals[0].Name)
	assert.Len(t, again.Goals, 1)
}

func TestStore_ModelPortfolios_ByRisk(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.CreateModelPortfolio(ctx, &domain.ModelPortfolio{ID: "m1", RiskProfile: domain.RiskConservative}))
	require.NoError(t, s.CreateModelPortfolio(ctx, &domain.ModelPortfolio{ID: "m2", RiskProfile: domain.RiskAggressive}))
	require.NoError(t, s.CreateModelPortfolio(ctx, &domain.ModelPortfolio{ID: "m3", RiskProfile: domain.RiskConservative}))

	list, err := s.ListModelPortfoliosByRisk(ctx, domain.RiskConservative)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "m1", list[0].ID)
	assert.Equal(t, "m3", list[1].ID)

	all, err := s.ListModelPortfolios(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, s.DeleteModelPortfolio(ctx, "m1"))

	all, err = s.ListModelPortfolios(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	err = s.CreateModelPortfolio(ctx, &domain.ModelPortfolio{ID: "m2"})
	assert.True(t, domain.IsConflict(err))
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewStore()

	_, err := s.ListClients(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, s.Check(ctx), context.Canceled)
}

func TestStore_Health(t *testing.T) {
	s := NewStore()

	assert.Equal(t, "memory-store", s.Name())
	assert.NoError(t, s.Check(context.Background()))
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := NewStore()

	require.NoError(t, Seed(ctx, s, now))

	clients, err := s.ListClients(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 5)

	for _, c := range clients {
		for _, g := range c.Goals {
			assert.Equal(t, c.ID, g.ClientID, "goal %s", g.ID)
			assert.NotEmpty(t, g.Status, "goal %s", g.ID)
			assert.GreaterOrEqual(t, g.Probability, 5.0)
			assert.LessOrEqual(t, g.Probability, 99.0)
		}
	}

	models, err := s.ListModelPortfolios(ctx)
	require.NoError(t, err)
	require.Len(t, models, 6)

	for _, mp := range models {
		assert.NoError(t, domain.ValidateModelWeights(mp.Funds), mp.ID)
	}

	// Seeding twice collides on ids.
	assert.Error(t, Seed(ctx, s, now))
}
