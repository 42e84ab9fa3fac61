package coveragemanager

import "github.com/guestcov/guestcov/pkg/host"

// CoverageManager consumes per-block events from the host and records each
// distinct (context, pc) pair exactly once.
type CoverageManager interface {
	// HandleBlock is invoked before every basic block executes. It never
	// fails; on a dedup hit it does nothing.
	HandleBlock(state host.ExecState, event host.BlockEvent)
	// Stop logs the run summary. Exporters are closed by their owner.
	Stop()
}
