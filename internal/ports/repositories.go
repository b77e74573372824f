// Package ports defines the interfaces the application layer depends on.
//
// Port design:
//   - Context as first parameter for cancellation and deadlines
//   - Return domain types and explicit errors, never nil-means-missing sentinels
//   - Not-found is domain.NotFoundError, checked with domain.IsNotFound
package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen/advisor-dashboard/internal/domain"
)

// ClientRepository stores clients together with their goals and meeting notes.
// Implementations return copies; mutating a returned client never changes stored state.
type ClientRepository interface {
	// ListClients returns every client in insertion order.
	ListClients(ctx context.Context) ([]*domain.Client, error)

	// GetClient returns domain.ErrNotFound if the client does not exist.
	GetClient(ctx context.Context, id string) (*domain.Client, error)

	// CreateClient stores a new client. Returns domain.ErrConflict on a duplicate id.
	CreateClient(ctx context.Context, client *domain.Client) error

	// UpdateClient replaces a stored client. Returns domain.ErrNotFound if it does not exist.
	UpdateClient(ctx context.Context, client *domain.Client) error

	// DeleteClient removes a client. Returns domain.ErrNotFound if it does not exist.
	DeleteClient(ctx context.Context, id string) error
}

// ModelPortfolioRepository stores model portfolio templates.
type ModelPortfolioRepository interface {
	// ListModelPortfolios returns every template in insertion order.
	ListModelPortfolios(ctx context.Context) ([]*domain.ModelPortfolio, error)

	// ListModelPortfoliosByRisk filters templates by risk profile.
	ListModelPortfoliosByRisk(ctx context.Context, risk domain.RiskProfile) ([]*domain.ModelPortfolio, error)

	// GetModelPortfolio returns domain.ErrNotFound if the template does not exist.
	GetModelPortfolio(ctx context.Context, id string) (*domain.ModelPortfolio, error)

	// CreateModelPortfolio stores a new template. Returns domain.ErrConflict on a duplicate id.
	CreateModelPortfolio(ctx context.Context, mp *domain.ModelPortfolio) error

	// UpdateModelPortfolio replaces a stored template.
	UpdateModelPortfolio(ctx context.Context, mp *domain.ModelPortfolio) error

	// DeleteModelPortfolio removes a template.
	DeleteModelPortfolio(ctx context.Context, id string) error
}

// KnowledgeBase serves the static house-view corpus.
type KnowledgeBase interface {
	Documents() []domain.KnowledgeDocument
}

// Clock returns the current time. Tests pin it.
type Clock func() time.Time
