package exporters

import (
	"github.com/kubescape/go-logger"
	"github.com/kubescape/go-logger/helpers"
	"github.com/spf13/afero"
	"go.uber.org/multierr"

	"github.com/guestcov/guestcov/pkg/coverage"
)

var _ Exporter = (*ExporterBus)(nil)

// ExporterBus is the single point of contact for all exporters. The coverage
// manager sends each first-seen block here once.
type ExporterBus struct {
	exporters []Exporter
}

// InitExporterBus initializes all exporters. The CSV recorder is mandatory:
// failing to open it fails startup. Optional exporters are added behind it.
func InitExporterBus(fs afero.Fs, cfg ExportersConfig, csvPath string, bufferSize int, mode coverage.Mode, runID string) (*ExporterBus, error) {
	csvExp, err := InitCSVExporter(fs, csvPath, bufferSize, mode)
	if err != nil {
		return nil, err
	}
	exporters := []Exporter{csvExp}

	if stdoutExp := InitStdoutExporter(cfg.StdoutExporter, runID); stdoutExp != nil {
		exporters = append(exporters, stdoutExp)
	}

	logger.L().Info("exporters initialized", helpers.Int("count", len(exporters)))
	return &ExporterBus{exporters: exporters}, nil
}

func (e *ExporterBus) SendBlockRecord(record BlockRecord) {
	for _, exporter := range e.exporters {
		exporter.SendBlockRecord(record)
	}
}

// Close closes every exporter and aggregates their errors.
func (e *ExporterBus) Close() error {
	var err error
	for _, exporter := range e.exporters {
		err = multierr.Append(err, exporter.Close())
	}
	return err
}
