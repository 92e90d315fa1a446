// Package metrics exposes the pipeline's Prometheus instrumentation.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Set holds the pipeline metric collectors.
type Set struct {
	DocumentsProcessed prometheus.Counter
	ProcessingErrors   prometheus.Counter
	EntitiesExtracted  prometheus.Counter
	RelationsExtracted prometheus.Counter
	ProcessingTime     prometheus.Histogram
	SandhiCacheHitRate prometheus.Gauge

	registry *prometheus.Registry
}

// New creates the metric set on its own registry.
func New() *Set {
	reg := prometheus.NewRegistry()

	s := &Set{
		DocumentsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "telkg_documents_processed_total",
			Help: "Number of documents processed.",
		}),
		ProcessingErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "telkg_processing_errors_total",
			Help: "Number of documents that failed processing.",
		}),
		EntitiesExtracted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "telkg_entities_extracted_total",
			Help: "Number of entities extracted.",
		}),
		RelationsExtracted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "telkg_relations_extracted_total",
			Help: "Number of relations extracted.",
		}),
		ProcessingTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "telkg_processing_time_seconds",
			Help:    "Document processing time.",
			Buckets: prometheus.DefBuckets,
		}),
		SandhiCacheHitRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "telkg_sandhi_cache_hit_rate",
			Help: "Hit rate of the sandhi candidate cache.",
		}),
		registry: reg,
	}

	reg.MustRegister(
		s.DocumentsProcessed,
		s.ProcessingErrors,
		s.EntitiesExtracted,
		s.RelationsExtracted,
		s.ProcessingTime,
		s.SandhiCacheHitRate,
	)
	return s
}

// ObserveDocument records the outcome of one processed document.
func (s *Set) ObserveDocument(entities, relations int, elapsed time.Duration) {
	s.DocumentsProcessed.Inc()
	s.EntitiesExtracted.Add(float64(entities))
	s.RelationsExtracted.Add(float64(relations))
	s.ProcessingTime.Observe(elapsed.Seconds())
}

// Handler returns the HTTP handler serving this set's registry.
func (s *Set) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}
