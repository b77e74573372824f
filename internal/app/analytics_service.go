package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/advisor-dashboard/internal/domain"
	"github.com/jsamuelsen/advisor-dashboard/internal/ports"
)

// AnalyticsService serves the dashboard's fund-weighted calculations.
type AnalyticsService struct {
	clients ports.ClientRepository
	models  ports.ModelPortfolioRepository
	logger  *slog.Logger
}

// NewAnalyticsService creates an analytics service.
func NewAnalyticsService(
	clients ports.ClientRepository,
	models ports.ModelPortfolioRepository,
	logger *slog.Logger,
) *AnalyticsService {
	if logger == nil {
		logger = slog.Default()
	}

	return &AnalyticsService{
		clients: clients,
		models:  models,
		logger:  logger.With(slog.String("component", "app.AnalyticsService")),
	}
}

// RiskMetrics returns the invested-amount weighted metrics for a client.
func (s *AnalyticsService) RiskMetrics(ctx context.Context, clientID string) (domain.RiskMetrics, error) {
	client, err := s.clients.GetClient(ctx, clientID)
	if err != nil {
		return domain.RiskMetrics{}, fmt.Errorf("getting client: %w", err)
	}

	return domain.ClientRiskMetrics(client), nil
}

// Insights returns the dashboard insights for a client.
func (s *AnalyticsService) Insights(ctx context.Context, clientID string) ([]domain.Insight, error) {
	client, err := s.clients.GetClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("getting client: %w", err)
	}

	return domain.ClientInsights(client), nil
}

// Drift compares a goal's allocation with a model portfolio. The client and
// the model are loaded concurrently.
func (s *AnalyticsService) Drift(
	ctx context.Context,
	clientID, goalID, modelID string,
) (domain.DriftReport, error) {
	if modelID == "" {
		return domain.DriftReport{}, domain.NewValidationError("modelPortfolioId", "is required")
	}

	client, model, err := Parallel2(ctx,
		func(ctx context.Context) (*domain.Client, error) { return s.clients.GetClient(ctx, clientID) },
		func(ctx context.Context) (*domain.ModelPortfolio, error) { return s.models.GetModelPortfolio(ctx, modelID) },
	)
	if err != nil {
		return domain.DriftReport{}, fmt.Errorf("loading drift inputs: %w", err)
	}

	goal, ok := client.Goal(goalID)
	if !ok {
		return domain.DriftReport{}, domain.NewNotFoundError(domain.EntityGoal, goalID)
	}

	report := domain.PortfolioDrift(goal, model)

	s.logger.DebugContext(ctx, "drift computed",
		slog.String("goal_id", goalID),
		slog.String("model_portfolio_id", modelID),
		slog.Float64("total_drift", report.TotalDrift),
	)

	return report, nil
}
