// Package metrics exposes the marketplace counters and the HTTP latency
// histogram on a Prometheus registry.
package metrics

import (
	"strconv"
	"time"

	"solar_marketplace/internal/usecase"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "solar"

type Recorder struct {
	requestsCreated     prometheus.Counter
	quotationsSubmitted prometheus.Counter
	transitions         *prometheus.CounterVec
	accessDenied        *prometheus.CounterVec
	notificationsFailed prometheus.Counter
	httpDuration        *prometheus.HistogramVec
}

var _ usecase.ActivityRecorder = (*Recorder)(nil)

// NewRecorder registers every collector on reg. Passing a fresh registry in
// tests keeps them isolated from the default one.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		requestsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_created_total",
			Help:      "Quotation requests created by customers.",
		}),
		quotationsSubmitted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotations_submitted_total",
			Help:      "Vendor quotations submitted.",
		}),
		transitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotation_transitions_total",
			Help:      "Quotation status transitions by target status.",
		}, []string{"to"}),
		accessDenied: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "access_denied_total",
			Help:      "Requests refused by the access gate.",
		}, []string{"reason"}),
		notificationsFailed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_failed_total",
			Help:      "Notification batches that could not be stored.",
		}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func (r *Recorder) RequestCreated() { r.requestsCreated.Inc() }

func (r *Recorder) QuotationSubmitted() { r.quotationsSubmitted.Inc() }

func (r *Recorder) QuotationTransition(to string) { r.transitions.WithLabelValues(to).Inc() }

func (r *Recorder) NotificationFailed() { r.notificationsFailed.Inc() }

// AccessDenied counts gate refusals; reason is "unauthenticated" or "forbidden".
func (r *Recorder) AccessDenied(reason string) { r.accessDenied.WithLabelValues(reason).Inc() }

// ObserveHTTP records one request. route is the matched pattern, not the raw
// path, to keep label cardinality bounded.
func (r *Recorder) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	r.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
