package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// Content resolution metrics
	BannerResolutions *prometheus.CounterVec
	PopupResolutions  *prometheus.CounterVec
	PopupDismissals   prometheus.Counter

	// Search metrics
	SearchQueries prometheus.Counter
	SearchLatency prometheus.Histogram
	SearchEmpty   prometheus.Counter

	// Article proxy metrics
	ArticleFetches *prometheus.CounterVec
	ArticleLatency prometheus.Histogram

	// Store metrics
	DocumentWrites *prometheus.CounterVec
}

// NewMetrics creates and registers all application metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		BannerResolutions: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "banner_resolutions_total",
			Help:      "Total number of banner resolutions",
		}, []string{"outcome"}),
		PopupResolutions: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "popup_resolutions_total",
			Help:      "Total number of popup resolutions",
		}, []string{"outcome"}),
		PopupDismissals: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "popup_dismissals_total",
			Help:      "Total number of popup dismissals recorded",
		}),
		SearchQueries: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_queries_total",
			Help:      "Total number of search queries",
		}),
		SearchLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Time spent ranking search queries",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25},
		}),
		SearchEmpty: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_empty_results_total",
			Help:      "Total number of searches returning no hits",
		}),
		ArticleFetches: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "article_fetches_total",
			Help:      "Total number of upstream article fetches",
		}, []string{"status"}),
		ArticleLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "article_fetch_duration_seconds",
			Help:      "Duration of upstream article fetches",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		}),
		DocumentWrites: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "document_writes_total",
			Help:      "Total number of content document replacements",
		}, []string{"document"}),
	}
}
