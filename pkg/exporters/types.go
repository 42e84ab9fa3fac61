package exporters

import "github.com/guestcov/guestcov/pkg/coverage"

// BlockRecord is one first-seen basic block, ready for export. ContextID
// carries the pid in process mode and the asid in asid mode; ProcessName and
// Tid are only meaningful in process mode.
type BlockRecord struct {
	Mode        coverage.Mode
	ContextID   uint64
	PC          uint64
	Size        uint64
	InKernel    bool
	ProcessName string
	Tid         uint64
}

// ExportersConfig holds the optional exporters. The CSV recorder is not
// listed here: it is the primary sink and always on.
type ExportersConfig struct {
	StdoutExporter *bool `mapstructure:"stdoutExporter"`
}
