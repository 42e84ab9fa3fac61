package metricsmanager

import "github.com/guestcov/guestcov/pkg/coverage"

// MetricsManager is an interface for reporting metrics
type MetricsManager interface {
	Start()
	Destroy()
	// ReportBlockEvent counts one block callback from the host.
	ReportBlockEvent()
	// ReportNewBlock counts one first-seen block written to the coverage log.
	ReportNewBlock(mode coverage.Mode)
	// ReportIntrospectionMiss counts an OS introspection lookup that
	// returned no result.
	ReportIntrospectionMiss()
	// ReportTraceDecodeError counts a trace line that failed to decode.
	ReportTraceDecodeError()
}
