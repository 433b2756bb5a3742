package monitoring

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fyyur_requests_total",
			Help: "HTTP requests handled, by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	writesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fyyur_writes_total",
			Help: "Write operations by entity and outcome",
		},
		[]string{"entity", "operation", "outcome"},
	)
)

func ObserveRequest(method, route string, status int) {
	requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// ObserveWrite records a create/update/delete outcome: "ok", "validation"
// or "error".
func ObserveWrite(entity, operation, outcome string) {
	writesTotal.WithLabelValues(entity, operation, outcome).Inc()
}
