package coveragemanager

import (
	"github.com/guestcov/guestcov/pkg/coverage"
	"github.com/guestcov/guestcov/pkg/exporters"
	"github.com/guestcov/guestcov/pkg/host"
)

// asidHandler attributes blocks to raw address-space ids. It needs no OS
// knowledge and works even when no OS family is configured.
type asidHandler struct {
	manager *CoverageManager
}

func (h *asidHandler) handleBlock(state host.ExecState, event host.BlockEvent) {
	key := coverage.BlockKey{ContextID: state.CurrentASID(), PC: event.PC}

	if !h.manager.seen.Add(key) {
		return
	}

	h.manager.record(exporters.BlockRecord{
		Mode:      coverage.ModeAsid,
		ContextID: key.ContextID,
		PC:        event.PC,
		Size:      event.Size,
		InKernel:  state.InKernel(),
	})
}
