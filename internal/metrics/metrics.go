package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/fxnlabs/gocl/cl"
)

var (
	// Handle lifecycle metrics, fed by the binding's lifecycle observers.
	HandleAcquiresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cl_handle_acquires_total",
		Help: "Total number of owned handle acquisitions by object class",
	}, []string{"class"})

	HandleReleasesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cl_handle_releases_total",
		Help: "Total number of handle releases by object class",
	}, []string{"class"})

	LiveHandles = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "cl_live_handles",
		Help: "Owned handles currently alive by object class",
	}, []string{"class"})

	// Benchmark metrics.
	BenchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "clbench_duration_ms",
		Help:    "Duration of one benchmark run in milliseconds",
		Buckets: prometheus.ExponentialBuckets(1, 2, 15), // 1ms to ~32s
	}, []string{"workload"})

	BenchGFLOPS = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "clbench_gflops",
		Help: "Performance of the last benchmark run in GFLOPS",
	}, []string{"workload", "backend"})

	BenchSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "clbench_problem_size",
		Help: "Problem size of the last benchmark run",
	})

	BenchRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clbench_runs_total",
		Help: "Total number of benchmark runs by backend",
	}, []string{"backend"})
)

// ObserveHandles wires the binding's lifecycle hooks into the counters above.
// Call once at process start.
func ObserveHandles() {
	cl.SetLifecycleObservers(
		func(class string) {
			HandleAcquiresTotal.WithLabelValues(class).Inc()
			LiveHandles.WithLabelValues(class).Inc()
		},
		func(class string) {
			HandleReleasesTotal.WithLabelValues(class).Inc()
			LiveHandles.WithLabelValues(class).Dec()
		},
	)
}
