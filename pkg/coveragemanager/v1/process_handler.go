package coveragemanager

import (
	"github.com/guestcov/guestcov/pkg/coverage"
	"github.com/guestcov/guestcov/pkg/exporters"
	"github.com/guestcov/guestcov/pkg/host"
	"github.com/guestcov/guestcov/pkg/introspection"
)

const (
	kernelProcessName  = "(kernel)"
	unknownProcessName = "(unknown)"
)

// processHandler attributes blocks to OS processes. The thread lookup can
// miss when the process exits mid-event; the pid is then recorded as 0.
type processHandler struct {
	manager *CoverageManager
	osi     introspection.OSIntrospection
}

func (h *processHandler) handleBlock(state host.ExecState, event host.BlockEvent) {
	key := coverage.BlockKey{PC: event.PC}

	var tid uint64
	thread, ok := h.osi.CurrentThread()
	if ok {
		key.ContextID = thread.Pid
		tid = thread.Tid
	} else {
		h.manager.metrics.ReportIntrospectionMiss()
	}

	if !h.manager.seen.Add(key) {
		return
	}

	inKernel := state.InKernel()
	processName := kernelProcessName
	if !inKernel {
		if proc, ok := h.osi.CurrentProcess(); ok {
			processName = proc.Name
		} else {
			// The process can exit between the block firing and the
			// name lookup.
			processName = unknownProcessName
			h.manager.metrics.ReportIntrospectionMiss()
		}
	}

	h.manager.record(exporters.BlockRecord{
		Mode:        coverage.ModeProcess,
		ContextID:   key.ContextID,
		PC:          event.PC,
		Size:        event.Size,
		InKernel:    inKernel,
		ProcessName: processName,
		Tid:         tid,
	})
}
