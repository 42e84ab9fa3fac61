package host

import "context"

// BlockEvent describes one basic block that is about to execute: the address
// of its first instruction and its size in bytes.
type BlockEvent struct {
	PC   uint64
	Size uint64
}

// ExecState gives read access to the current hardware/virtual CPU state at
// the time a block callback fires.
type ExecState interface {
	// InKernel reports whether the CPU is currently executing privileged code.
	InKernel() bool
	// CurrentASID returns the current address-space identifier.
	CurrentASID() uint64
}

// BlockCallback is invoked synchronously before each basic block executes.
type BlockCallback func(state ExecState, event BlockEvent)

// Host drives block execution and delivers per-block callbacks. Exactly one
// callback is registered at startup; Run blocks until the workload is
// exhausted or the context is cancelled.
type Host interface {
	RegisterBlockCallback(callback BlockCallback) error
	Run(ctx context.Context) error
}
