package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen/advisor-dashboard/internal/domain"
	"github.com/jsamuelsen/advisor-dashboard/internal/ports"
)

// ModelPortfolioService manages allocation templates. Writes run through the
// Executor so that weights are checked before and after the template is built.
type ModelPortfolioService struct {
	repo   ports.ModelPortfolioRepository
	exec   *Executor
	now    ports.Clock
	newID  func() string
	logger *slog.Logger
}

// ModelPortfolioServiceConfig holds the service dependencies.
type ModelPortfolioServiceConfig struct {
	Repository ports.ModelPortfolioRepository
	Clock      ports.Clock
	NewID      func() string
	Logger     *slog.Logger
}

// NewModelPortfolioService creates a model portfolio service.
func NewModelPortfolioService(cfg ModelPortfolioServiceConfig) *ModelPortfolioService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("component", "app.ModelPortfolioService"))

	s := &ModelPortfolioService{
		repo:   cfg.Repository,
		exec:   NewExecutor(logger),
		now:    cfg.Clock,
		newID:  cfg.NewID,
		logger: logger,
	}

	if s.now == nil {
		s.now = time.Now
	}

	if s.newID == nil {
		s.newID = uuid.NewString
	}

	return s
}

// ModelPortfolioPatch lists the fields a PATCH may change.
type ModelPortfolioPatch struct {
	Name        *string
	RiskProfile *domain.RiskProfile
	Category    *string
	Description *string
	Funds       []domain.FundAllocation
}

// List returns every template.
func (s *ModelPortfolioService) List(ctx context.Context) ([]*domain.ModelPortfolio, error) {
	list, err := s.repo.ListModelPortfolios(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing model portfolios: %w", err)
	}

	return list, nil
}

// ListByRisk returns the templates for one risk profile.
func (s *ModelPortfolioService) ListByRisk(
	ctx context.Context,
	risk domain.RiskProfile,
) ([]*domain.ModelPortfolio, error) {
	if !risk.Valid() {
		return nil, domain.NewValidationErrorWithValue("riskProfile",
			"must be conservative, moderate or aggressive", string(risk))
	}

	list, err := s.repo.ListModelPortfoliosByRisk(ctx, risk)
	if err != nil {
		return nil, fmt.Errorf("listing model portfolios: %w", err)
	}

	return list, nil
}

// Get returns a single template.
func (s *ModelPortfolioService) Get(ctx context.Context, id string) (*domain.ModelPortfolio, error) {
	mp, err := s.repo.GetModelPortfolio(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting model portfolio: %w", err)
	}

	return mp, nil
}

// Create stores a new template. Weights must total exactly 100.
func (s *ModelPortfolioService) Create(
	ctx context.Context,
	draft *domain.ModelPortfolio,
) (*domain.ModelPortfolio, error) {
	op := Operation[*domain.ModelPortfolio, *domain.ModelPortfolio, *domain.ModelPortfolio, *domain.ModelPortfolio]{
		Name: "CreateModelPortfolio",
		Validate: func(_ context.Context, in *domain.ModelPortfolio) error {
			return validateModelPortfolio(in)
		},
		Perform: func(_ context.Context, in *domain.ModelPortfolio) (*domain.ModelPortfolio, error) {
			now := s.now()
			mp := in.Clone()
			mp.ID = s.newID()
			mp.CreatedAt = now
			mp.UpdatedAt = now

			return mp, nil
		},
		Verify: verifyModelPortfolio,
		Archive: func(ctx context.Context, _ *domain.ModelPortfolio, mp *domain.ModelPortfolio) error {
			return s.repo.CreateModelPortfolio(ctx, mp)
		},
		Respond: respondModelPortfolio,
	}

	return Execute(ctx, s.exec, op, draft)
}

type modelPortfolioUpdate struct {
	id    string
	patch ModelPortfolioPatch
}

// Update applies a patch. When funds are replaced they must total exactly 100.
func (s *ModelPortfolioService) Update(
	ctx context.Context,
	id string,
	patch ModelPortfolioPatch,
) (*domain.ModelPortfolio, error) {
	op := Operation[modelPortfolioUpdate, *domain.ModelPortfolio, *domain.ModelPortfolio, *domain.ModelPortfolio]{
		Name: "UpdateModelPortfolio",
		Validate: func(_ context.Context, in modelPortfolioUpdate) error {
			return validateModelPortfolioPatch(&in.patch)
		},
		Perform: func(ctx context.Context, in modelPortfolioUpdate) (*domain.ModelPortfolio, error) {
			mp, err := s.repo.GetModelPortfolio(ctx, in.id)
			if err != nil {
				return nil, err
			}

			setIf(&mp.Name, in.patch.Name)
			setIf(&mp.RiskProfile, in.patch.RiskProfile)
			setIf(&mp.Category, in.patch.Category)
			setIf(&mp.Description, in.patch.Description)

			if in.patch.Funds != nil {
				mp.Funds = slices.Clone(in.patch.Funds)
			}

			mp.UpdatedAt = s.now()

			return mp, nil
		},
		Verify: func(ctx context.Context, _ modelPortfolioUpdate, mp *domain.ModelPortfolio) (*domain.ModelPortfolio, error) {
			return verifyModelPortfolio(ctx, nil, mp)
		},
		Archive: func(ctx context.Context, _ modelPortfolioUpdate, mp *domain.ModelPortfolio) error {
			return s.repo.UpdateModelPortfolio(ctx, mp)
		},
		Respond: func(ctx context.Context, _ modelPortfolioUpdate, mp *domain.ModelPortfolio) (*domain.ModelPortfolio, error) {
			return respondModelPortfolio(ctx, nil, mp)
		},
	}

	return Execute(ctx, s.exec, op, modelPortfolioUpdate{id: id, patch: patch})
}

// Delete removes a template.
func (s *ModelPortfolioService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteModelPortfolio(ctx, id); err != nil {
		return fmt.Errorf("deleting model portfolio: %w", err)
	}

	s.logger.InfoContext(ctx, "model portfolio deleted", slog.String("model_portfolio_id", id))

	return nil
}

func validateModelPortfolio(mp *domain.ModelPortfolio) error {
	if strings.TrimSpace(mp.Name) == "" {
		return domain.NewValidationError("name", "cannot be empty")
	}

	if !mp.RiskProfile.Valid() {
		return domain.NewValidationErrorWithValue("riskProfile",
			"must be conservative, moderate or aggressive", string(mp.RiskProfile))
	}

	return domain.ValidateModelWeights(mp.Funds)
}

func validateModelPortfolioPatch(p *ModelPortfolioPatch) error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return domain.NewValidationError("name", "cannot be empty")
	}

	if p.RiskProfile != nil && !p.RiskProfile.Valid() {
		return domain.NewValidationErrorWithValue("riskProfile",
			"must be conservative, moderate or aggressive", string(*p.RiskProfile))
	}

	if p.Funds != nil {
		return domain.ValidateModelWeights(p.Funds)
	}

	return nil
}

// verifyModelPortfolio re-checks the built template before it is stored.
func verifyModelPortfolio(
	_ context.Context,
	_ *domain.ModelPortfolio,
	mp *domain.ModelPortfolio,
) (*domain.ModelPortfolio, error) {
	if mp.ID == "" {
		return nil, domain.NewValidationError("id", "was not assigned")
	}

	if err := domain.ValidateModelWeights(mp.Funds); err != nil {
		return nil, err
	}

	return mp, nil
}

func respondModelPortfolio(
	_ context.Context,
	_ *domain.ModelPortfolio,
	mp *domain.ModelPortfolio,
) (*domain.ModelPortfolio, error) {
	return mp.Clone(), nil
}
