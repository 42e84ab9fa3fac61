package coveragemanager

import (
	"sync/atomic"

	"github.com/guestcov/guestcov/pkg/host"
)

var _ CoverageManager = (*CoverageManagerMock)(nil)

type CoverageManagerMock struct {
	BlockCount atomic.Int64
}

func (c *CoverageManagerMock) HandleBlock(_ host.ExecState, _ host.BlockEvent) {
	c.BlockCount.Add(1)
}

func (c *CoverageManagerMock) Stop() {
}
