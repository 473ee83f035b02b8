package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/fxnlabs/gocl/cl"
)

func TestBenchMetrics(t *testing.T) {
	t.Run("BenchDuration", func(t *testing.T) {
		BenchDuration.WithLabelValues("saxpy").Observe(100.5)
		BenchDuration.WithLabelValues("matmul").Observe(200.3)

		assert.NotPanics(t, func() {
			BenchDuration.WithLabelValues("saxpy").Observe(300.1)
		})
	})

	t.Run("BenchSize", func(t *testing.T) {
		BenchSize.Set(1024)
		assert.Equal(t, float64(1024), testutil.ToFloat64(BenchSize))
	})

	t.Run("BenchGFLOPS", func(t *testing.T) {
		BenchGFLOPS.WithLabelValues("matmul", "opencl").Set(123.45)
		assert.Equal(t, float64(123.45), testutil.ToFloat64(BenchGFLOPS.WithLabelValues("matmul", "opencl")))
	})

	t.Run("BenchRunsTotal", func(t *testing.T) {
		before := testutil.ToFloat64(BenchRunsTotal.WithLabelValues("cpu"))
		BenchRunsTotal.WithLabelValues("cpu").Inc()
		assert.Equal(t, before+1, testutil.ToFloat64(BenchRunsTotal.WithLabelValues("cpu")))
	})
}

func TestHandleMetrics(t *testing.T) {
	assert.NotPanics(t, ObserveHandles)
	t.Cleanup(func() { cl.SetLifecycleObservers(nil, nil) })

	acquires := testutil.ToFloat64(HandleAcquiresTotal.WithLabelValues("context"))
	live := testutil.ToFloat64(LiveHandles.WithLabelValues("context"))

	// No driver in unit tests, so exercise the counters the way the
	// observers do.
	HandleAcquiresTotal.WithLabelValues("context").Inc()
	LiveHandles.WithLabelValues("context").Inc()
	LiveHandles.WithLabelValues("context").Dec()
	HandleReleasesTotal.WithLabelValues("context").Inc()

	assert.Equal(t, acquires+1, testutil.ToFloat64(HandleAcquiresTotal.WithLabelValues("context")))
	assert.Equal(t, live, testutil.ToFloat64(LiveHandles.WithLabelValues("context")))
}

func BenchmarkMetricsObservation(b *testing.B) {
	b.Run("ObserveDuration", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			BenchDuration.WithLabelValues("saxpy").Observe(float64(i % 1000))
		}
	})

	b.Run("IncCounter", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			BenchRunsTotal.WithLabelValues("cpu").Inc()
		}
	})
}
