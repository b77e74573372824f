package dora

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/jsamuelsen/advisor-dashboard/internal/domain"
	"github.com/jsamuelsen/advisor-dashboard/internal/ports"
)

const (
	systemAlertTitle   = "Market update"
	systemAlertMessage = "Central bank policy review this week. Expect rate-sensitive funds to move; " +
		"review duration exposure for conservative clients."
)

// AlertService derives the advisor's alert feed from the book. Nothing is stored.
type AlertService struct {
	clients ports.ClientRepository
	now     ports.Clock
	logger  *slog.Logger
}

// NewAlertService creates an alert service. A nil clock uses time.Now.
func NewAlertService(clients ports.ClientRepository, clock ports.Clock, logger *slog.Logger) *AlertService {
	if clock == nil {
		clock = time.Now
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &AlertService{
		clients: clients,
		now:     clock,
		logger:  logger.With(slog.String("component", "dora.AlertService")),
	}
}

// Alerts returns every alert, newest first. Alerts with equal timestamps keep
// book order.
func (s *AlertService) Alerts(ctx context.Context) ([]domain.Alert, error) {
	clients, err := s.clients.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}

	alerts := BuildAlerts(clients, s.now())

	s.logger.DebugContext(ctx, "alerts derived",
		slog.Int("clients", len(clients)),
		slog.Int("alerts", len(alerts)),
	)

	return alerts, nil
}

// BuildAlerts derives the feed for a book at a point in time.
func BuildAlerts(clients []*domain.Client, now time.Time) []domain.Alert {
	alerts := make([]domain.Alert, 0, len(clients)+1)

	for _, c := range clients {
		if c.NeedsAction {
			alerts = append(alerts, domain.Alert{
				ID:         "alert-action-" + c.ID,
				Type:       domain.AlertActionRequired,
				Severity:   domain.SeverityHigh,
				Title:      "Action required",
				Message:    c.ActionReason,
				ClientID:   c.ID,
				ClientName: c.Name,
				Timestamp:  c.UpdatedAt,
			})
		}

		for _, g := range c.GoalsByStatus(domain.GoalOffTrack) {
			alerts = append(alerts, domain.Alert{
				ID:         "alert-offtrack-" + g.ID,
				Type:       domain.AlertOffTrack,
				Severity:   domain.SeverityMedium,
				Title:      "Goal off track",
				Message:    fmt.Sprintf("%s is at %.0f%% probability of success.", g.Name, g.Probability),
				ClientID:   c.ID,
				ClientName: c.Name,
				Timestamp:  c.UpdatedAt,
			})
		}

		for i := range c.MeetingNotes {
			n := &c.MeetingNotes[i]
			if !n.FollowUpOverdue(now) {
				continue
			}

			alerts = append(alerts, domain.Alert{
				ID:         "alert-followup-" + n.ID,
				Type:       domain.AlertFollowUp,
				Severity:   domain.SeverityLow,
				Title:      "Follow-up overdue",
				Message:    n.Summary,
				ClientID:   c.ID,
				ClientName: c.Name,
				Timestamp:  *n.FollowUpDate,
			})
		}
	}

	alerts = append(alerts, domain.Alert{
		ID:        "alert-system-market",
		Type:      domain.AlertSystem,
		Severity:  domain.SeverityLow,
		Title:     systemAlertTitle,
		Message:   systemAlertMessage,
		Timestamp: now,
	})

	slices.SortStableFunc(alerts, func(a, b domain.Alert) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	return alerts
}
