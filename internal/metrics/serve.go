package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Serve exposes the registry on addr under /metrics. It blocks, so run it on
// its own goroutine; errors are logged, not returned, since a broken metrics
// listener must not take the tool down.
func Serve(addr string, log *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Info("serving metrics", zap.String("address", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error("metrics listener failed", zap.Error(err))
	}
}
