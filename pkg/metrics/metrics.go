package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	EmailsSent           prometheus.Counter
	CallsPlaced          prometheus.Counter
	GenerationFallbacks  *prometheus.CounterVec
	EngagementEvents     *prometheus.CounterVec
	BatchItemsProcessed  *prometheus.CounterVec

	// Entity gauges (refreshed by the stats cron job)
	ProspectsTotal   prometheus.Gauge
	EngagementsTotal prometheus.Gauge
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	m := &Metrics{
		// HTTP metrics
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		// Business metrics
		EmailsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "outreach_emails_sent_total",
			Help: "Total number of outreach emails dispatched",
		}),
		CallsPlaced: promauto.NewCounter(prometheus.CounterOpts{
			Name: "outreach_calls_placed_total",
			Help: "Total number of outreach calls initiated",
		}),
		GenerationFallbacks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "content_generation_fallbacks_total",
				Help: "Total number of template fallbacks after generation failures",
			},
			[]string{"channel"}, // email, call, advice
		),
		EngagementEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "engagement_events_total",
				Help: "Total number of tracked engagement events",
			},
			[]string{"event"}, // open, click, reply
		),
		BatchItemsProcessed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "batch_items_processed_total",
				Help: "Total number of batch send items processed",
			},
			[]string{"status"}, // success, error
		),

		// Gauges
		ProspectsTotal: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "prospects_total",
			Help: "Current number of prospect records",
		}),
		EngagementsTotal: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "engagements_total",
			Help: "Current number of engagement records",
		}),
	}

	return m
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // Use route pattern, not actual path (e.g., /api/v1/prospects/:id)

			// Call next handler
			err := next(c)

			// Record metrics
			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)

			return err
		}
	}
}

// RecordEmailSent increments the emails sent counter
func (m *Metrics) RecordEmailSent() {
	m.EmailsSent.Inc()
}

// RecordCallPlaced increments the calls placed counter
func (m *Metrics) RecordCallPlaced() {
	m.CallsPlaced.Inc()
}

// RecordGenerationFallback increments the fallback counter for a channel
func (m *Metrics) RecordGenerationFallback(channel string) {
	m.GenerationFallbacks.WithLabelValues(channel).Inc()
}

// RecordEngagementEvent increments the engagement event counter
func (m *Metrics) RecordEngagementEvent(event string) {
	m.EngagementEvents.WithLabelValues(event).Inc()
}

// RecordBatchItem increments the batch item counter
func (m *Metrics) RecordBatchItem(success bool) {
	status := "error"
	if success {
		status = "success"
	}
	m.BatchItemsProcessed.WithLabelValues(status).Inc()
}
