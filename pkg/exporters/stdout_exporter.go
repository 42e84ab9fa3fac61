package exporters

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/guestcov/guestcov/pkg/coverage"
)

var _ Exporter = (*StdoutExporter)(nil)

// StdoutExporter mirrors first-seen blocks to stderr as JSON, one object per
// record. Off by default: coverage streams are high volume.
type StdoutExporter struct {
	logger *log.Logger
	runID  string
}

func InitStdoutExporter(useStdout *bool, runID string) *StdoutExporter {
	if useStdout == nil {
		useStdout = new(bool)
		*useStdout = os.Getenv("STDOUT_ENABLED") == "true"
	}
	if !*useStdout {
		return nil
	}

	logger := log.New()
	logger.SetFormatter(&log.JSONFormatter{})
	logger.SetOutput(os.Stderr)

	return &StdoutExporter{
		logger: logger,
		runID:  runID,
	}
}

func (exporter *StdoutExporter) SendBlockRecord(record BlockRecord) {
	fields := log.Fields{
		"run_id":    exporter.runID,
		"mode":      string(record.Mode),
		"pc":        hexField(record.PC),
		"size":      record.Size,
		"in_kernel": record.InKernel,
	}
	if record.Mode == coverage.ModeProcess {
		fields["process_name"] = record.ProcessName
		fields["pid"] = record.ContextID
		fields["tid"] = record.Tid
	} else {
		fields["asid"] = hexField(record.ContextID)
	}
	exporter.logger.WithFields(fields).Info("new block")
}

func (exporter *StdoutExporter) Close() error {
	return nil
}
