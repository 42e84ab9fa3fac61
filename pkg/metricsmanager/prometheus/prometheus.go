package metricsmanager

import (
	"net/http"

	"github.com/kubescape/go-logger"
	"github.com/kubescape/go-logger/helpers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/guestcov/guestcov/pkg/coverage"
	"github.com/guestcov/guestcov/pkg/metricsmanager"
)

const modeLabel = "mode"

var _ metricsmanager.MetricsManager = (*PrometheusMetric)(nil)

type PrometheusMetric struct {
	blockCounter             prometheus.Counter
	newBlockCounter          *prometheus.CounterVec
	introspectionMissCounter prometheus.Counter
	traceDecodeErrorCounter  prometheus.Counter
}

func NewPrometheusMetric() *PrometheusMetric {
	return &PrometheusMetric{
		blockCounter: promauto.NewCounter(prometheus.CounterOpts{
			Name: "guestcov_block_counter",
			Help: "The total number of basic block events received from the host",
		}),
		newBlockCounter: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "guestcov_new_block_counter",
			Help: "The total number of first-seen blocks written to the coverage log",
		}, []string{modeLabel}),
		introspectionMissCounter: promauto.NewCounter(prometheus.CounterOpts{
			Name: "guestcov_introspection_miss_counter",
			Help: "The total number of OS introspection lookups that returned no result",
		}),
		traceDecodeErrorCounter: promauto.NewCounter(prometheus.CounterOpts{
			Name: "guestcov_trace_decode_error_counter",
			Help: "The total number of trace lines that could not be decoded",
		}),
	}
}

func (p *PrometheusMetric) Start() {
	// Start prometheus metrics server
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		logger.L().Info("prometheus metrics server started", helpers.Int("port", 8080), helpers.String("path", "/metrics"))
		logger.L().Fatal(http.ListenAndServe(":8080", nil).Error())
	}()
}

func (p *PrometheusMetric) Destroy() {
	prometheus.Unregister(p.blockCounter)
	prometheus.Unregister(p.newBlockCounter)
	prometheus.Unregister(p.introspectionMissCounter)
	prometheus.Unregister(p.traceDecodeErrorCounter)
}

func (p *PrometheusMetric) ReportBlockEvent() {
	p.blockCounter.Inc()
}

func (p *PrometheusMetric) ReportNewBlock(mode coverage.Mode) {
	p.newBlockCounter.WithLabelValues(string(mode)).Inc()
}

func (p *PrometheusMetric) ReportIntrospectionMiss() {
	p.introspectionMissCounter.Inc()
}

func (p *PrometheusMetric) ReportTraceDecodeError() {
	p.traceDecodeErrorCounter.Inc()
}
