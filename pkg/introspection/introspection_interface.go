package introspection

// ThreadInfo identifies the thread currently scheduled on the virtual CPU.
type ThreadInfo struct {
	Pid uint64
	Tid uint64
}

// ProcessInfo describes the process owning the current thread.
type ProcessInfo struct {
	Pid  uint64
	Name string
}

// OSIntrospection resolves the OS-level identity behind the current execution
// state. Either lookup may report no result when the target process exits
// mid-lookup; callers substitute sentinel values and continue, this is never
// an error.
type OSIntrospection interface {
	CurrentThread() (ThreadInfo, bool)
	CurrentProcess() (ProcessInfo, bool)
}

// NameResolver resolves a process name for a pid observed in a trace.
type NameResolver interface {
	ProcessName(pid uint64) (string, bool)
}
