package dora

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	appctx "github.com/jsamuelsen/advisor-dashboard/internal/app/context"
	"github.com/jsamuelsen/advisor-dashboard/internal/domain"
	"github.com/jsamuelsen/advisor-dashboard/internal/platform/logging"
	"github.com/jsamuelsen/advisor-dashboard/internal/ports"
)

const instrumentationName = "github.com/jsamuelsen/advisor-dashboard/internal/app/dora"

// ChatResult is a reply together with the intent it was rendered for.
type ChatResult struct {
	Response domain.DoraResponse `json:"response"`
	Intent   domain.Intent       `json:"intent"`
}

// ServiceConfig wires the assistant. Classifier and Retriever default to the
// built-in rules and library.
type ServiceConfig struct {
	Clients    ports.ClientRepository
	Classifier *Classifier
	Retriever  *Retriever
	Clock      ports.Clock
	Metrics    *Metrics
	Logger     *slog.Logger
}

// Service answers chat messages about the advisor's book.
type Service struct {
	clients    ports.ClientRepository
	classifier *Classifier
	responder  *Responder
	metrics    *Metrics
	tracer     trace.Tracer
	duration   metric.Float64Histogram
	logger     *slog.Logger
}

// NewService creates the chat service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Clients == nil {
		return nil, fmt.Errorf("dora: client repository is required")
	}

	if cfg.Classifier == nil {
		cfg.Classifier = NewDefaultClassifier()
	}

	if cfg.Retriever == nil {
		cfg.Retriever = NewRetriever(RetrieverConfig{Metrics: cfg.Metrics})
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	duration, err := otel.Meter(instrumentationName).Float64Histogram(
		"dora.chat.duration",
		metric.WithDescription("Chat turn duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating chat duration histogram: %w", err)
	}

	return &Service{
		clients:    cfg.Clients,
		classifier: cfg.Classifier,
		responder:  NewResponder(cfg.Retriever, cfg.Clock),
		metrics:    cfg.Metrics,
		tracer:     otel.Tracer(instrumentationName),
		duration:   duration,
		logger:     logger.With(slog.String("component", "dora.Service")),
	}, nil
}

// Classify exposes the classifier for callers that only need the label.
func (s *Service) Classify(message string) domain.Intent {
	return s.classifier.Classify(message)
}

// Chat classifies the message and renders a reply. An unknown clientID is
// treated as no client. Without a clientID, a client named in the message is
// used. An empty message is a validation error.
func (s *Service) Chat(ctx context.Context, message, clientID string) (ChatResult, error) {
	if strings.TrimSpace(message) == "" {
		return ChatResult{}, domain.NewValidationError("message", "is required")
	}

	start := time.Now()
	intent := s.classifier.Classify(message)
	s.metrics.countIntent(intent)

	ctx, span := s.tracer.Start(ctx, "dora.Chat",
		trace.WithAttributes(
			attribute.String("dora.intent", string(intent)),
			attribute.Bool("dora.client_selected", clientID != ""),
		),
	)
	defer span.End()

	ctx, rc := appctx.Ensure(ctx)

	book, err := appctx.Fetch(ctx, rc, bookKey, s.clients.ListClients)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return ChatResult{}, fmt.Errorf("loading client book: %w", err)
	}

	client := s.resolveClient(ctx, book, clientID, message)

	resp, err := s.responder.Respond(ctx, Request{
		Intent:  intent,
		Message: message,
		Client:  client,
		Clients: book,
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return ChatResult{}, fmt.Errorf("rendering %s reply: %w", intent, err)
	}

	elapsed := time.Since(start)
	s.duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attribute.String("intent", string(intent))))

	attrs := []any{
		slog.String("intent", string(intent)),
		slog.Duration("duration", elapsed),
	}
	if client != nil {
		attrs = append(attrs, slog.String("client_id", client.ID))
	}

	s.log(ctx).DebugContext(ctx, "chat answered", attrs...)

	return ChatResult{Response: resp, Intent: intent}, nil
}

func (s *Service) resolveClient(ctx context.Context, book []*domain.Client, clientID, message string) *domain.Client {
	if clientID != "" {
		i := slices.IndexFunc(book, func(c *domain.Client) bool { return c.ID == clientID })
		if i < 0 {
			s.log(ctx).WarnContext(ctx, "chat client not found, answering without client",
				slog.String("client_id", clientID))

			return nil
		}

		return book[i]
	}

	return clientNamedIn(book, message)
}

// clientNamedIn finds a client whose full name, or failing that first name,
// appears in the message. The first match in book order wins.
func clientNamedIn(book []*domain.Client, message string) *domain.Client {
	lower := strings.ToLower(message)

	for _, c := range book {
		if name := strings.ToLower(strings.TrimSpace(c.Name)); name != "" && strings.Contains(lower, name) {
			return c
		}
	}

	words := tokenize(lower)

	for _, c := range book {
		if first := strings.ToLower(c.FirstName()); first != "" && slices.Contains(words, first) {
			return c
		}
	}

	return nil
}

func (s *Service) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}

// bookKey memoizes the whole client book for one request context.
const bookKey = "dora:book"
