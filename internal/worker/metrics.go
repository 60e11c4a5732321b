package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the worker's RED metrics and the outbox health gauges.
type Metrics struct {
	PollIterations *prometheus.CounterVec
	JobsProcessed  *prometheus.CounterVec
	PollDuration   prometheus.Histogram
	JobDuration    *prometheus.HistogramVec
	Unprocessed    prometheus.Gauge
	OldestAge      prometheus.Gauge
	Failed         prometheus.Gauge
	ProcessedTotal prometheus.Gauge
}

// NewMetrics registers the worker metric set on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PollIterations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_poll_iterations_total",
			Help: "Poll iterations by outcome: ok (dispatched >=1), empty, error.",
		}, []string{"result"}),
		JobsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_jobs_processed_total",
			Help: "Events processed by dispatch status and event type.",
		}, []string{"status", "event_type"}),
		PollDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "worker_poll_duration_seconds",
			Help:    "Duration of one poll iteration (claim + dispatch batch).",
			Buckets: prometheus.DefBuckets,
		}),
		JobDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "worker_job_duration_seconds",
			Help:    "Per-event dispatch duration.",
			Buckets: prometheus.DefBuckets,
		}, []string{"event_type"}),
		Unprocessed: factory.NewGauge(prometheus.GaugeOpts{
			Name: "outbox_unprocessed_total",
			Help: "Outbox rows in PENDING or PROCESSING.",
		}),
		OldestAge: factory.NewGauge(prometheus.GaugeOpts{
			Name: "outbox_oldest_unprocessed_age_seconds",
			Help: "Age in seconds of the oldest unprocessed outbox row.",
		}),
		Failed: factory.NewGauge(prometheus.GaugeOpts{
			Name: "outbox_failed_total",
			Help: "Outbox rows retired as FAILED, awaiting operator action.",
		}),
		ProcessedTotal: factory.NewGauge(prometheus.GaugeOpts{
			Name: "outbox_processed_events_total",
			Help: "Size of the processed-events dedupe ledger.",
		}),
	}
}
