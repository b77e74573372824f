package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	appctx "github.com/jsamuelsen/advisor-dashboard/internal/app/context"
	"github.com/jsamuelsen/advisor-dashboard/internal/domain"
	"github.com/jsamuelsen/advisor-dashboard/internal/ports"
)

// RebalanceService moves a goal onto a model portfolio's allocation and
// records the change in the client's meeting log. Both writes are staged on a
// request context and rolled back together.
type RebalanceService struct {
	clients ports.ClientRepository
	models  ports.ModelPortfolioRepository
	now     ports.Clock
	newID   func() string
	logger  *slog.Logger
}

// NewRebalanceService creates a rebalance service.
func NewRebalanceService(
	clients ports.ClientRepository,
	models ports.ModelPortfolioRepository,
	clock ports.Clock,
	logger *slog.Logger,
) *RebalanceService {
	if clock == nil {
		clock = time.Now
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &RebalanceService{
		clients: clients,
		models:  models,
		now:     clock,
		newID:   uuid.NewString,
		logger:  logger.With(slog.String("component", "app.RebalanceService")),
	}
}

// ApplyModel replaces the goal's funds with the model's and returns the re-estimated goal.
func (s *RebalanceService) ApplyModel(ctx context.Context, clientID, goalID, modelID string) (*domain.Goal, error) {
	ctx, rc := appctx.Ensure(ctx)

	client, model, err := Parallel2(ctx,
		func(ctx context.Context) (*domain.Client, error) {
			return appctx.Fetch(ctx, rc, "client:"+clientID, func(ctx context.Context) (*domain.Client, error) {
				return s.clients.GetClient(ctx, clientID)
			})
		},
		func(ctx context.Context) (*domain.ModelPortfolio, error) {
			return appctx.Fetch(ctx, rc, "model:"+modelID, func(ctx context.Context) (*domain.ModelPortfolio, error) {
				return s.models.GetModelPortfolio(ctx, modelID)
			})
		},
	)
	if err != nil {
		return nil, fmt.Errorf("loading rebalance inputs: %w", err)
	}

	goal, ok := client.Goal(goalID)
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityGoal, goalID)
	}

	now := s.now()
	drift := domain.PortfolioDrift(goal, model)

	err = rc.AddAction(&allocationAction{
		repo:     s.clients,
		clientID: clientID,
		goalID:   goalID,
		funds:    model.Funds,
		now:      now,
	})
	if err != nil {
		return nil, err
	}

	err = rc.AddAction(&noteAction{
		repo:     s.clients,
		clientID: clientID,
		note: domain.MeetingNote{
			ID:   s.newID(),
			Date: now,
			Summary: fmt.Sprintf("Rebalanced %s to model portfolio %s (total drift %.2f%%).",
				goal.Name, model.Name, drift.TotalDrift),
			FollowUpDone: true,
		},
		now: now,
	})
	if err != nil {
		return nil, err
	}

	if err := rc.Commit(ctx); err != nil {
		return nil, fmt.Errorf("applying model portfolio: %w", err)
	}

	rc.Forget("client:" + clientID)

	updated, err := s.clients.GetClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("reloading client: %w", err)
	}

	goal, ok = updated.Goal(goalID)
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityGoal, goalID)
	}

	s.logger.InfoContext(ctx, "model portfolio applied",
		slog.String("client_id", clientID),
		slog.String("goal_id", goalID),
		slog.String("model_portfolio_id", modelID),
		slog.Float64("drift_before", drift.TotalDrift),
	)

	out := goal.Clone()

	return &out, nil
}

// allocationAction swaps a goal's funds. Rollback restores the client as it was
// immediately before Execute.
type allocationAction struct {
	repo     ports.ClientRepository
	clientID string
	goalID   string
	funds    []domain.FundAllocation
	now      time.Time
	before   *domain.Client
}

func (a *allocationAction) Execute(ctx context.Context) error {
	client, err := a.repo.GetClient(ctx, a.clientID)
	if err != nil {
		return err
	}

	a.before = client.Clone()

	goal, ok := client.Goal(a.goalID)
	if !ok {
		return domain.NewNotFoundError(domain.EntityGoal, a.goalID)
	}

	goal.Portfolio.Funds = slices.Clone(a.funds)
	domain.EstimateGoal(goal, client.RiskProfile, a.now)
	client.UpdatedAt = a.now

	return a.repo.UpdateClient(ctx, client)
}

func (a *allocationAction) Rollback(ctx context.Context) error {
	if a.before == nil {
		return nil
	}

	return a.repo.UpdateClient(ctx, a.before)
}

func (a *allocationAction) Description() string {
	return "replace allocation of goal " + a.goalID
}

// noteAction appends a meeting note.
type noteAction struct {
	repo     ports.ClientRepository
	clientID string
	note     domain.MeetingNote
	now      time.Time
	before   *domain.Client
}

func (a *noteAction) Execute(ctx context.Context) error {
	client, err := a.repo.GetClient(ctx, a.clientID)
	if err != nil {
		return err
	}

	a.before = client.Clone()
	client.MeetingNotes = append(client.MeetingNotes, a.note)
	client.UpdatedAt = a.now

	return a.repo.UpdateClient(ctx, client)
}

func (a *noteAction) Rollback(ctx context.Context) error {
	if a.before == nil {
		return nil
	}

	return a.repo.UpdateClient(ctx, a.before)
}

func (a *noteAction) Description() string {
	return "log rebalance note for client " + a.clientID
}
