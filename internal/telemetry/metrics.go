package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// OperationsTotal counts every timed provider operation executed,
	// labelled by algorithm and operation (keygen, encapsulate, ...).
	OperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pqcbench_operations_total",
		Help: "Timed provider operations executed.",
	}, []string{"algorithm", "operation"})

	// MechanismsSkipped counts targets skipped because the provider
	// build does not enable them.
	MechanismsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pqcbench_mechanisms_skipped_total",
		Help: "Configured mechanisms not enabled in the provider build.",
	})
)

// StartMetricsServer exposes the Prometheus metrics over HTTP. It blocks,
// so callers run it in a goroutine; the measurement loop itself stays
// single-threaded.
func StartMetricsServer(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
