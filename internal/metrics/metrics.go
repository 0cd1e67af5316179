// Package metrics exposes Prometheus counters for the few things worth
// watching on a two-person tracker: writes, deletes and exports.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ExpensesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "splitbook_expenses_created_total",
		Help: "Number of expenses recorded.",
	})

	ExpensesDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "splitbook_expenses_deleted_total",
		Help: "Number of expenses deleted.",
	})

	Exports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "splitbook_exports_total",
		Help: "Number of monthly exports served, by format.",
	}, []string{"format"})

	Requests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "splitbook_http_requests_total",
		Help: "HTTP requests served, by method and status code.",
	}, []string{"method", "code"})
)

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
