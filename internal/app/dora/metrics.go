package dora

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jsamuelsen/advisor-dashboard/internal/domain"
)

// Metrics holds the assistant's Prometheus collectors. A nil *Metrics records nothing.
type Metrics struct {
	intents *prometheus.CounterVec
	matched prometheus.Histogram
}

// NewMetrics registers the collectors with reg. A nil registerer creates
// collectors that are not registered anywhere, which suits tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		intents: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dora_intents_total",
			Help: "Chat messages by classified intent.",
		}, []string{"intent"}),
		matched: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "dora_retrieval_matched_documents",
			Help:    "Knowledge documents matched per retrieval.",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 12},
		}),
	}
}

func (m *Metrics) countIntent(intent domain.Intent) {
	if m == nil {
		return
	}

	m.intents.WithLabelValues(string(intent)).Inc()
}

func (m *Metrics) observeMatches(n int) {
	if m == nil {
		return
	}

	m.matched.Observe(float64(n))
}
