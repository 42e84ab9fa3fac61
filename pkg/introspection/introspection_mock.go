package introspection

import "sync/atomic"

var _ OSIntrospection = (*IntrospectionMock)(nil)

// IntrospectionMock returns canned thread/process identities and counts
// lookups, so tests can assert that asid mode never touches introspection.
type IntrospectionMock struct {
	Thread    ThreadInfo
	ThreadOk  bool
	Process   ProcessInfo
	ProcessOk bool

	ThreadCalls  atomic.Int64
	ProcessCalls atomic.Int64
}

func (m *IntrospectionMock) CurrentThread() (ThreadInfo, bool) {
	m.ThreadCalls.Add(1)
	return m.Thread, m.ThreadOk
}

func (m *IntrospectionMock) CurrentProcess() (ProcessInfo, bool) {
	m.ProcessCalls.Add(1)
	return m.Process, m.ProcessOk
}

var _ NameResolver = (*NameResolverMock)(nil)

// NameResolverMock resolves names from a fixed table.
type NameResolverMock struct {
	Names map[uint64]string
}

func (m *NameResolverMock) ProcessName(pid uint64) (string, bool) {
	name, ok := m.Names[pid]
	return name, ok
}
