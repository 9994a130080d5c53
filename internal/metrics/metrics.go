// Package metrics counts session activity and optionally exposes it over
// HTTP for Prometheus scraping.
package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var (
	apiRequests   = prometheus.NewCounter(prometheus.CounterOpts{Name: "pymaker_api_requests_total", Help: "Inference API requests sent"})
	apiErrors     = prometheus.NewCounter(prometheus.CounterOpts{Name: "pymaker_api_errors_total", Help: "Inference API requests that failed"})
	execSuccesses = prometheus.NewCounter(prometheus.CounterOpts{Name: "pymaker_executions_success_total", Help: "Generated scripts that ran cleanly"})
	execFailures  = prometheus.NewCounter(prometheus.CounterOpts{Name: "pymaker_executions_failed_total", Help: "Generated scripts that failed"})
)

func init() {
	prometheus.MustRegister(apiRequests, apiErrors, execSuccesses, execFailures)
}

// Start runs a Prometheus handler on the given listen address. An empty
// address disables the endpoint.
func Start(ctx context.Context, listen string, log *zap.SugaredLogger) {
	if listen == "" {
		return
	}

	srv := &http.Server{Addr: listen, Handler: promhttp.Handler()}

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if log != nil {
				log.Errorw("metrics server failed", "error", err)
			}
		}
	}()
}

func IncAPIRequest() { apiRequests.Inc() }

func IncAPIError() { apiErrors.Inc() }

func IncExecution(success bool) {
	if success {
		execSuccesses.Inc()
		return
	}

	execFailures.Inc()
}
