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
	"github.com/jsamuelsen/advisor-dashboard/internal/platform/logging"
	"github.com/jsamuelsen/advisor-dashboard/internal/ports"
)

// ClientService manages clients and the goals and meeting notes they own.
type ClientService struct {
	repo   ports.ClientRepository
	now    ports.Clock
	newID  func() string
	logger *slog.Logger
}

// ClientServiceConfig holds the service dependencies. Clock and NewID default
// to time.Now and random UUIDs.
type ClientServiceConfig struct {
	Repository ports.ClientRepository
	Clock      ports.Clock
	NewID      func() string
	Logger     *slog.Logger
}

// NewClientService creates a client service.
func NewClientService(cfg ClientServiceConfig) *ClientService {
	s := &ClientService{
		repo:   cfg.Repository,
		now:    cfg.Clock,
		newID:  cfg.NewID,
		logger: cfg.Logger,
	}

	if s.now == nil {
		s.now = time.Now
	}

	if s.newID == nil {
		s.newID = uuid.NewString
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	s.logger = s.logger.With(slog.String("component", "app.ClientService"))

	return s
}

// ClientPatch lists the client fields a PATCH may change. Nil fields are left
// alone. Goals are never part of a patch; they have their own endpoints.
type ClientPatch struct {
	Name           *string
	Email          *string
	Phone          *string
	Age            *int
	RiskProfile    *domain.RiskProfile
	TotalPortfolio *float64
	CashHoldings   *float64
	AnnualIncome   *float64
	Returns        *domain.Returns
	NeedsAction    *bool
	ActionReason   *string
	JoinDate       *time.Time
}

// GoalPatch lists the goal fields a PATCH may change.
type GoalPatch struct {
	Name                *string
	Type                *domain.GoalType
	TargetAmount        *float64
	TargetDate          *time.Time
	CurrentAmount       *float64
	MonthlyContribution *float64
	Portfolio           *domain.Portfolio
	Returns             *domain.Returns
}

func (s *ClientService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}

// ListClients returns the whole book.
func (s *ClientService) ListClients(ctx context.Context) ([]*domain.Client, error) {
	clients, err := s.repo.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}

	return clients, nil
}

// GetClient returns a single client.
func (s *ClientService) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	client, err := s.repo.GetClient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting client: %w", err)
	}

	return client, nil
}

// CreateClient stores a new client. The client and every goal get
// server-generated ids, and goal probabilities are estimated.
func (s *ClientService) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if !client.RiskProfile.Valid() {
		return nil, domain.NewValidationErrorWithValue("riskProfile", "must be conservative, moderate or aggressive",
			string(client.RiskProfile))
	}

	now := s.now()
	client = client.Clone()
	client.ID = s.newID()
	client.CreatedAt = now
	client.UpdatedAt = now

	if client.JoinDate.IsZero() {
		client.JoinDate = now
	}

	for i := range client.Goals {
		client.Goals[i].ID = s.newID()
		client.Goals[i].ClientID = client.ID
	}

	for i := range client.MeetingNotes {
		client.MeetingNotes[i].ID = s.newID()
	}

	domain.EstimateClient(client, now)

	if err := s.repo.CreateClient(ctx, client); err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	s.log(ctx).InfoContext(ctx, "client created",
		slog.String("client_id", client.ID),
		slog.Int("goals", len(client.Goals)),
	)

	return client, nil
}

// UpdateClient applies a patch. Changing the risk profile re-estimates every goal.
func (s *ClientService) UpdateClient(ctx context.Context, id string, patch ClientPatch) (*domain.Client, error) {
	client, err := s.repo.GetClient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting client: %w", err)
	}

	if patch.RiskProfile != nil && !patch.RiskProfile.Valid() {
		return nil, domain.NewValidationErrorWithValue("riskProfile", "must be conservative, moderate or aggressive",
			string(*patch.RiskProfile))
	}

	applyClientPatch(client, &patch)

	now := s.now()
	client.UpdatedAt = now
	domain.EstimateClient(client, now)

	if err := s.repo.UpdateClient(ctx, client); err != nil {
		return nil, fmt.Errorf("updating client: %w", err)
	}

	s.log(ctx).InfoContext(ctx, "client updated", slog.String("client_id", id))

	return client, nil
}

func applyClientPatch(c *domain.Client, p *ClientPatch) {
	setIf(&c.Name, p.Name)
	setIf(&c.Email, p.Email)
	setIf(&c.Phone, p.Phone)
	setIf(&c.Age, p.Age)
	setIf(&c.RiskProfile, p.RiskProfile)
	setIf(&c.TotalPortfolio, p.TotalPortfolio)
	setIf(&c.CashHoldings, p.CashHoldings)
	setIf(&c.AnnualIncome, p.AnnualIncome)
	setIf(&c.Returns, p.Returns)
	setIf(&c.NeedsAction, p.NeedsAction)
	setIf(&c.ActionReason, p.ActionReason)
	setIf(&c.JoinDate, p.JoinDate)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// DeleteClient removes a client and everything it owns.
func (s *ClientService) DeleteClient(ctx context.Context, id string) error {
	if err := s.repo.DeleteClient(ctx, id); err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}

	s.log(ctx).InfoContext(ctx, "client deleted", slog.String("client_id", id))

	return nil
}

// AddGoal attaches a new goal to a client. Fund weights are not required to
// total 100; the response reports whether they do.
func (s *ClientService) AddGoal(ctx context.Context, clientID string, goal domain.Goal) (*domain.Goal, error) {
	client, err := s.repo.GetClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("getting client: %w", err)
	}

	now := s.now()
	goal = goal.Clone()
	goal.ID = s.newID()
	goal.ClientID = clientID
	domain.EstimateGoal(&goal, client.RiskProfile, now)

	client.Goals = append(client.Goals, goal)
	client.UpdatedAt = now

	if err := s.repo.UpdateClient(ctx, client); err != nil {
		return nil, fmt.Errorf("saving goal: %w", err)
	}

	s.log(ctx).InfoContext(ctx, "goal added",
		slog.String("client_id", clientID),
		slog.String("goal_id", goal.ID),
		slog.Float64("probability", goal.Probability),
	)

	return &goal, nil
}

// UpdateGoal applies a patch to one goal and re-estimates it.
func (s *ClientService) UpdateGoal(
	ctx context.Context,
	clientID, goalID string,
	patch GoalPatch,
) (*domain.Goal, error) {
	client, err := s.repo.GetClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("getting client: %w", err)
	}

	goal, ok := client.Goal(goalID)
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityGoal, goalID)
	}

	setIf(&goal.Name, patch.Name)
	setIf(&goal.Type, patch.Type)
	setIf(&goal.TargetAmount, patch.TargetAmount)
	setIf(&goal.TargetDate, patch.TargetDate)
	setIf(&goal.CurrentAmount, patch.CurrentAmount)
	setIf(&goal.MonthlyContribution, patch.MonthlyContribution)
	setIf(&goal.Returns, patch.Returns)

	if patch.Portfolio != nil {
		goal.Portfolio = domain.Portfolio{Funds: slices.Clone(patch.Portfolio.Funds)}
	}

	now := s.now()
	domain.EstimateGoal(goal, client.RiskProfile, now)
	client.UpdatedAt = now

	if err := s.repo.UpdateClient(ctx, client); err != nil {
		return nil, fmt.Errorf("saving goal: %w", err)
	}

	if !goal.Portfolio.WeightsValid() {
		s.log(ctx).WarnContext(ctx, "goal fund weights do not total 100",
			slog.String("goal_id", goalID),
			slog.Float64("total_weight", goal.Portfolio.TotalWeight()),
		)
	}

	updated := goal.Clone()

	return &updated, nil
}

// DeleteGoal removes a goal from a client.
func (s *ClientService) DeleteGoal(ctx context.Context, clientID, goalID string) error {
	client, err := s.repo.GetClient(ctx, clientID)
	if err != nil {
		return fmt.Errorf("getting client: %w", err)
	}

	if _, ok := client.Goal(goalID); !ok {
		return domain.NewNotFoundError(domain.EntityGoal, goalID)
	}

	client.Goals = slices.DeleteFunc(client.Goals, func(g domain.Goal) bool { return g.ID == goalID })
	client.UpdatedAt = s.now()

	if err := s.repo.UpdateClient(ctx, client); err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}

	s.log(ctx).InfoContext(ctx, "goal deleted",
		slog.String("client_id", clientID),
		slog.String("goal_id", goalID),
	)

	return nil
}

// AddMeetingNote appends to the client's meeting log. A missing date means today.
func (s *ClientService) AddMeetingNote(
	ctx context.Context,
	clientID string,
	note domain.MeetingNote,
) (*domain.MeetingNote, error) {
	client, err := s.repo.GetClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("getting client: %w", err)
	}

	now := s.now()
	note.ID = s.newID()

	if note.Date.IsZero() {
		note.Date = now
	}

	client.MeetingNotes = append(client.MeetingNotes, note)
	client.UpdatedAt = now

	if err := s.repo.UpdateClient(ctx, client); err != nil {
		return nil, fmt.Errorf("saving meeting note: %w", err)
	}

	s.log(ctx).InfoContext(ctx, "meeting note added",
		slog.String("client_id", clientID),
		slog.String("note_id", note.ID),
	)

	return &note, nil
}

// ListMeetingNotes returns a client's notes newest first, ties broken by id.
// Only notes after afterID are returned when it is set; an afterID that is
// not one of the client's notes is a validation error. At most limit+1 notes
// come back so the caller can tell whether another page exists.
func (s *ClientService) ListMeetingNotes(
	ctx context.Context,
	clientID, afterID string,
	limit int,
) ([]domain.MeetingNote, error) {
	client, err := s.repo.GetClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("getting client: %w", err)
	}

	notes := slices.Clone(client.MeetingNotes)
	slices.SortStableFunc(notes, func(a, b domain.MeetingNote) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}

		return strings.Compare(a.ID, b.ID)
	})

	if afterID != "" {
		i := slices.IndexFunc(notes, func(n domain.MeetingNote) bool { return n.ID == afterID })
		if i < 0 {
			return nil, domain.NewValidationErrorWithValue("cursor", "does not match a meeting note", afterID)
		}

		notes = notes[i+1:]
	}

	if len(notes) > limit+1 {
		notes = notes[:limit+1]
	}

	return notes, nil
}
