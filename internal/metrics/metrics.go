// Package metrics exposes Prometheus collectors for HTTP traffic and the
// budget reconciliation engine.
package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var collectors = []prometheus.Collector{
	requestCount,
	requestDuration,
	reconciliationRuns,
	reconciliationChanges,
	materializations,
	overdueMarked,
}

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "nestegg_requests_total",
		Help: "How many HTTP requests processed, partitioned by status code, method and route.",
	},
	[]string{"code", "method", "url"},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "nestegg_request_duration_seconds",
		Help: "The HTTP request latencies in seconds.",
	},
	[]string{"code", "method", "url"},
)

var reconciliationRuns = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "nestegg_reconciliation_runs_total",
		Help: "Reconciliation step executions, partitioned by step and outcome.",
	},
	[]string{"step", "outcome"},
)

var reconciliationChanges = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "nestegg_reconciliation_changes_total",
		Help: "Snapshots and ledger entries written by reconciliation steps.",
	},
	[]string{"step"},
)

var materializations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "nestegg_week_materializations_total",
		Help: "Week slot materialization calls, partitioned by whether a weekly budget was created.",
	},
	[]string{"result"},
)

var overdueMarked = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "nestegg_payments_marked_overdue_total",
		Help: "Payments moved from pending to overdue by the overdue job.",
	},
)

// Register registers all collectors with the default registry. Collectors
// that are already registered are left alone.
func Register() error {
	for _, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return fmt.Errorf("could not register %s with Prometheus: %w", c, err)
		}
	}
	return nil
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware updates the HTTP request metrics.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := time.Since(start).Seconds()

		// Replace URL parameters with their name to keep label cardinality low
		url := c.FullPath()
		if url == "" {
			url = c.Request.URL.Path
			for _, p := range c.Params {
				url = strings.Replace(url, p.Value, ":"+p.Key, 1)
			}
		}

		requestDuration.WithLabelValues(status, c.Request.Method, url).Observe(elapsed)
		requestCount.WithLabelValues(status, c.Request.Method, url).Inc()
	}
}

// ObserveReconciliation records one reconciliation step.
func ObserveReconciliation(step string, changes int, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	reconciliationRuns.WithLabelValues(step, outcome).Inc()
	if changes > 0 {
		reconciliationChanges.WithLabelValues(step).Add(float64(changes))
	}
}

// ObserveMaterialization records a week slot materialization.
func ObserveMaterialization(created bool) {
	result := "existing"
	if created {
		result = "created"
	}
	materializations.WithLabelValues(result).Inc()
}

// ObserveOverdue records payments marked overdue.
func ObserveOverdue(n int64) {
	if n > 0 {
		overdueMarked.Add(float64(n))
	}
}
