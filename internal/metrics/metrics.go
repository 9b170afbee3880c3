package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Catalog metrics
	ProductViewsCounter  *prometheus.CounterVec
	CatalogSearchCounter prometheus.Counter

	// Cart metrics
	CartOperationsCounter *prometheus.CounterVec
)

var initOnce sync.Once

// Init registers all Prometheus collectors under the given name prefix.
// Safe to call more than once; only the first call registers.
func Init(prefix string) {
	initOnce.Do(func() { register(prefix) })
}

func register(prefix string) {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	ProductViewsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_product_views_total",
			Help: "Total number of product detail views",
		},
		[]string{"sku"},
	)

	CatalogSearchCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_catalog_searches_total",
			Help: "Total number of catalog listing queries",
		},
	)

	CartOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_cart_operations_total",
			Help: "Total number of cart operations",
		},
		[]string{"operation"},
	)
}
