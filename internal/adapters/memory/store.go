// Package memory provides process-local repositories for clients and model portfolios.
// State lives only in memory and is lost on restart.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/jsamuelsen/advisor-dashboard/internal/domain"
	"github.com/jsamuelsen/advisor-dashboard/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ClientRepository         = (*Store)(nil)
	_ ports.ModelPortfolioRepository = (*Store)(nil)
	_ ports.HealthChecker            = (*Store)(nil)
)

// Store keeps clients and model portfolios in maps guarded by a single RWMutex.
// Every read and write copies values so callers never alias stored state.
type Store struct {
	mu sync.RWMutex

	clients     map[string]*domain.Client
	clientOrder []string

	portfolios     map[string]*domain.ModelPortfolio
	portfolioOrder []string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		clients:    make(map[string]*domain.Client),
		portfolios: make(map[string]*domain.ModelPortfolio),
	}
}

// NewID returns a fresh identifier for a stored entity.
func NewID() string {
	return uuid.NewString()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "memory-store"
}

// Check implements ports.HealthChecker. The store is healthy while the context is live.
func (s *Store) Check(ctx context.Context) error {
	return ctx.Err()
}

// ListClients implements ports.ClientRepository.
func (s *Store) ListClients(ctx context.Context) ([]*domain.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Client, 0, len(s.clientOrder))
	for _, id := range s.clientOrder {
		out = append(out, s.clients[id].Clone())
	}

	return out, nil
}

// GetClient implements ports.ClientRepository.
func (s *Store) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.clients[id]
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityClient, id)
	}

	return c.Clone(), nil
}

// CreateClient implements ports.ClientRepository.
func (s *Store) CreateClient(ctx context.Context, client *domain.Client) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if client.ID == "" {
		return domain.NewValidationError("id", "cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.clients[client.ID]; exists {
		return domain.NewConflictError(domain.EntityClient, fmt.Sprintf("id %q already exists", client.ID))
	}

	s.clients[client.ID] = client.Clone()
	s.clientOrder = append(s.clientOrder, client.ID)

	return nil
}

// UpdateClient implements ports.ClientRepository.
func (s *Store) UpdateClient(ctx context.Context, client *domain.Client) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.clients[client.ID]; !exists {
		return domain.NewNotFoundError(domain.EntityClient, client.ID)
	}

	s.clients[client.ID] = client.Clone()

	return nil
}

// DeleteClient implements ports.ClientRepository.
func (s *Store) DeleteClient(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.clients[id]; !exists {
		return domain.NewNotFoundError(domain.EntityClient, id)
	}

	delete(s.clients, id)
	s.clientOrder = slices.DeleteFunc(s.clientOrder, func(v string) bool { return v == id })

	return nil
}

// ListModelPortfolios implements ports.ModelPortfolioRepository.
func (s *Store) ListModelPortfolios(ctx context.Context) ([]*domain.ModelPortfolio, error) {
	return s.listPortfolios(ctx, func(*domain.ModelPortfolio) bool { return true })
}

// ListModelPortfoliosByRisk implements ports.ModelPortfolioRepository.
func (s *Store) ListModelPortfoliosByRisk(
	ctx context.Context,
	risk domain.RiskProfile,
) ([]*domain.ModelPortfolio, error) {
	return s.listPortfolios(ctx, func(mp *domain.ModelPortfolio) bool { return mp.RiskProfile == risk })
}

func (s *Store) listPortfolios(
	ctx context.Context,
	keep func(*domain.ModelPortfolio) bool,
) ([]*domain.ModelPortfolio, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.ModelPortfolio, 0, len(s.portfolioOrder))
	for _, id := range s.portfolioOrder {
		if mp := s.portfolios[id]; keep(mp) {
			out = append(out, mp.Clone())
		}
	}

	return out, nil
}

// GetModelPortfolio implements ports.ModelPortfolioRepository.
func (s *Store) GetModelPortfolio(ctx context.Context, id string) (*domain.ModelPortfolio, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	mp, ok := s.portfolios[id]
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityModelPortfolio, id)
	}

	return mp.Clone(), nil
}

// CreateModelPortfolio implements ports.ModelPortfolioRepository.
func (s *Store) CreateModelPortfolio(ctx context.Context, mp *domain.ModelPortfolio) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if mp.ID == "" {
		return domain.NewValidationError("id", "cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.portfolios[mp.ID]; exists {
		return domain.NewConflictError(domain.EntityModelPortfolio, fmt.Sprintf("id %q already exists", mp.ID))
	}

	s.portfolios[mp.ID] = mp.Clone()
	s.portfolioOrder = append(s.portfolioOrder, mp.ID)

	return nil
}

// UpdateModelPortfolio implements ports.ModelPortfolioRepository.
func (s *Store) UpdateModelPortfolio(ctx context.Context, mp *domain.ModelPortfolio) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.portfolios[mp.ID]; !exists {
		return domain.NewNotFoundError(domain.EntityModelPortfolio, mp.ID)
	}

	s.portfolios[mp.ID] = mp.Clone()

	return nil
}

// DeleteModelPortfolio implements ports.ModelPortfolioRepository.
func (s *Store) DeleteModelPortfolio(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.portfolios[id]; !exists {
		return domain.NewNotFoundError(domain.EntityModelPortfolio, id)
	}

	delete(s.portfolios, id)
	s.portfolioOrder = slices.DeleteFunc(s.portfolioOrder, func(v string) bool { return v == id })

	return nil
}
