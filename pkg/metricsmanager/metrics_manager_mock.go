package metricsmanager

import (
	"sync/atomic"

	"github.com/goradd/maps"

	"github.com/guestcov/guestcov/pkg/coverage"
)

var _ MetricsManager = (*MetricsMock)(nil)

type MetricsMock struct {
	BlockEventCounter        atomic.Int64
	IntrospectionMissCounter atomic.Int64
	TraceDecodeErrorCounter  atomic.Int64
	NewBlockCounter          maps.SafeMap[coverage.Mode, int]
}

func NewMetricsMock() *MetricsMock {
	return &MetricsMock{}
}

func (m *MetricsMock) Start() {
}

func (m *MetricsMock) Destroy() {
	m.BlockEventCounter.Store(0)
	m.IntrospectionMissCounter.Store(0)
	m.TraceDecodeErrorCounter.Store(0)
	m.NewBlockCounter.Clear()
}

func (m *MetricsMock) ReportBlockEvent() {
	m.BlockEventCounter.Add(1)
}

func (m *MetricsMock) ReportNewBlock(mode coverage.Mode) {
	m.NewBlockCounter.Set(mode, m.NewBlockCounter.Get(mode)+1)
}

func (m *MetricsMock) ReportIntrospectionMiss() {
	m.IntrospectionMissCounter.Add(1)
}

func (m *MetricsMock) ReportTraceDecodeError() {
	m.TraceDecodeErrorCounter.Add(1)
}
