package observability

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "feedback_builder"

// Submission outcomes.
const (
	OutcomeCreated    = "created"
	OutcomeUpdated    = "updated"
	OutcomeInvalid    = "invalid"
	OutcomeFailed     = "failed"
	OutcomeContention = "in_progress"
)

// Metrics holds the builder's Prometheus collectors. A nil *Metrics records nothing.
type Metrics struct {
	sessionsOpened       *prometheus.CounterVec
	submissions          *prometheus.CounterVec
	discardedCategories  prometheus.Counter
	catalogFetchFailures prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		sessionsOpened: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_opened_total",
			Help:      "Builder sessions opened, by mode.",
		}, []string{"mode"}),
		submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Form submissions, by outcome.",
		}, []string{"outcome"}),
		discardedCategories: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discarded_categories_total",
			Help:      "Categories whose drafted questions were discarded by a selection change.",
		}),
		catalogFetchFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_fetch_failures_total",
			Help:      "Failed category catalog fetches.",
		}),
	}
}

func (m *Metrics) SessionOpened(mode string) {
	if m == nil {
		return
	}
	m.sessionsOpened.WithLabelValues(mode).Inc()
}

func (m *Metrics) Submission(outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) CategoriesDiscarded(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.discardedCategories.Add(float64(n))
}

func (m *Metrics) CatalogFetchFailed() {
	if m == nil {
		return
	}
	m.catalogFetchFailures.Inc()
}

// RegisterMetricsEndpoint exposes the metrics gathered by g on /metrics.
func RegisterMetricsEndpoint(app *fiber.App, g prometheus.Gatherer) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{})))
}
