package dora

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/advisor-dashboard/internal/adapters/memory"
	appctx "github.com/jsamuelsen/advisor-dashboard/internal/app/context"
	"github.com/jsamuelsen/advisor-dashboard/internal/domain"
	"github.com/jsamuelsen/advisor-dashboard/internal/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seededService(t *testing.T) (*Service, *Metrics) {
	t.Helper()

	store := memory.NewStore()
	require.NoError(t, memory.Seed(context.Background(), store, testNow))

	metrics := NewMetrics(prometheus.NewRegistry())

	svc, err := NewService(ServiceConfig{
		Clients: store,
		Clock:   func() time.Time { return testNow },
		Metrics: metrics,
		Logger:  discardLogger(),
	})
	require.NoError(t, err)

	return svc, metrics
}

func TestChat_KnowledgeBase(t *testing.T) {
	svc, _ := seededService(t)

	res, err := svc.Chat(context.Background(), "What's the house view on technology?", "")
	require.NoError(t, err)

	assert.Equal(t, domain.IntentKnowledgeBase, res.Intent)
	assert.Equal(t, domain.BadgeApproved, res.Response.ComplianceBadge)
	require.NotEmpty(t, res.Response.Sources)
	assert.Equal(t, "Technology Sector Outlook", res.Response.Sources[0].Title)
}

func TestChat_CashComparisonOnSeedBook(t *testing.T) {
	svc, _ := seededService(t)

	res, err := svc.Chat(context.Background(), "Which clients have the most cash?", "")
	require.NoError(t, err)

	assert.Equal(t, domain.IntentComparisonCash, res.Intent)

	labels := make([]string, 0, len(res.Response.DataCards))
	for _, c := range res.Response.DataCards {
		labels = append(labels, c.Label)
	}

	// 25% first, then the two 18% clients in book order.
	assert.Equal(t, []string{"Rajesh Sharma", "Vikram Mehta", "Priya Nair"}, labels)
}

func TestChat_ClientResolution(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		message  string
		clientID string
		contains string
	}{
		{"explicit id", "Show the cash position", "client-1", "Rajesh"},
		{"full name", "How is Priya Nair doing on her goals?", "", "Priya"},
		{"first name", "How are Arjun's goals tracking?", "", "Arjun"},
		{"unknown id is no client", "How are the goals tracking?", "client-404", "select a client"},
		{"no client", "How are the goals tracking?", "", "select a client"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Chat(ctx, tt.message, tt.clientID)
			require.NoError(t, err)
			assert.Contains(t, res.Response.Text, tt.contains)
		})
	}
}

func TestChat_ExplicitIDWinsOverName(t *testing.T) {
	svc, _ := seededService(t)

	res, err := svc.Chat(context.Background(), "Compare Priya's goals", "client-2")
	require.NoError(t, err)

	assert.Equal(t, domain.IntentGoalStatus, res.Intent)
	assert.Contains(t, res.Response.Text, "Ananya")
}

func TestChat_EmptyMessage(t *testing.T) {
	svc, _ := seededService(t)

	_, err := svc.Chat(context.Background(), "   ", "")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestChat_CountsIntents(t *testing.T) {
	svc, metrics := seededService(t)

	for _, msg := range []string{"hello", "hi", "help"} {
		_, err := svc.Chat(context.Background(), msg, "")
		require.NoError(t, err)
	}

	assert.InDelta(t, 2.0, testutil.ToFloat64(metrics.intents.WithLabelValues("greeting")), 0.0001)
	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.intents.WithLabelValues("help")), 0.0001)
}

func TestChat_LoadsBookOncePerRequestContext(t *testing.T) {
	repo := mocks.NewMockClientRepository(t)
	repo.EXPECT().ListClients(mock.Anything).Return([]*domain.Client{}, nil).Once()

	svc, err := NewService(ServiceConfig{Clients: repo, Logger: discardLogger()})
	require.NoError(t, err)

	ctx := appctx.WithContext(context.Background(), appctx.New())

	_, err = svc.Chat(ctx, "Which clients have the most cash?", "")
	require.NoError(t, err)

	_, err = svc.Chat(ctx, "Which clients are off track?", "")
	require.NoError(t, err)
}

func TestChat_RepositoryError(t *testing.T) {
	boom := errors.New("store offline")
	repo := mocks.NewMockClientRepository(t)
	repo.EXPECT().ListClients(mock.Anything).Return(nil, boom)

	svc, err := NewService(ServiceConfig{Clients: repo, Logger: discardLogger()})
	require.NoError(t, err)

	_, err = svc.Chat(context.Background(), "hello", "")
	require.ErrorIs(t, err, boom)
}

func TestNewService_RequiresRepository(t *testing.T) {
	_, err := NewService(ServiceConfig{})
	require.Error(t, err)
}
