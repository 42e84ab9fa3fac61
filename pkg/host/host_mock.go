package host

var _ ExecState = (*ExecStateMock)(nil)

// ExecStateMock is a fixed CPU state for tests.
type ExecStateMock struct {
	Kernel bool
	Asid   uint64
}

func (e *ExecStateMock) InKernel() bool {
	return e.Kernel
}

func (e *ExecStateMock) CurrentASID() uint64 {
	return e.Asid
}
