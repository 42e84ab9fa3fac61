package coveragemanager

import (
	"fmt"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/kubescape/go-logger"
	"github.com/kubescape/go-logger/helpers"

	"github.com/guestcov/guestcov/pkg/coverage"
	"github.com/guestcov/guestcov/pkg/coveragemanager"
	"github.com/guestcov/guestcov/pkg/exporters"
	"github.com/guestcov/guestcov/pkg/host"
	"github.com/guestcov/guestcov/pkg/introspection"
	"github.com/guestcov/guestcov/pkg/metricsmanager"
)

var _ coveragemanager.CoverageManager = (*CoverageManager)(nil)

// blockHandler is the mode-specific half of the manager: it builds the dedup
// key for one event and emits a record on a first sighting.
type blockHandler interface {
	handleBlock(state host.ExecState, event host.BlockEvent)
}

// CoverageManager owns the seen-set and the export pipeline for one run.
// The mutex serializes the whole check-insert-format-write sequence, so a
// host that fires block callbacks from several threads still gets at most
// one record per key.
type CoverageManager struct {
	mu       sync.Mutex
	mode     coverage.Mode
	handler  blockHandler
	seen     *coverage.SeenSet
	contexts mapset.Set[uint64]
	exporter exporters.Exporter
	metrics  metricsmanager.MetricsManager
}

// CreateCoverageManager builds the manager for the already-resolved mode.
// Process mode requires an OS introspection service; asid mode never touches
// one.
func CreateCoverageManager(mode coverage.Mode, osi introspection.OSIntrospection, exporter exporters.Exporter, metrics metricsmanager.MetricsManager) (*CoverageManager, error) {
	cm := &CoverageManager{
		mode:     mode,
		seen:     coverage.NewSeenSet(coverage.DefaultHash),
		contexts: mapset.NewThreadUnsafeSet[uint64](),
		exporter: exporter,
		metrics:  metrics,
	}
	switch mode {
	case coverage.ModeProcess:
		if osi == nil {
			return nil, fmt.Errorf("process mode requires an OS introspection service")
		}
		cm.handler = &processHandler{manager: cm, osi: osi}
	case coverage.ModeAsid:
		cm.handler = &asidHandler{manager: cm}
	default:
		return nil, fmt.Errorf("invalid mode (%s) provided", mode)
	}
	return cm, nil
}

func (cm *CoverageManager) HandleBlock(state host.ExecState, event host.BlockEvent) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.metrics.ReportBlockEvent()
	cm.handler.handleBlock(state, event)
}

// record pushes a first-seen block to the exporters. Callers hold cm.mu.
func (cm *CoverageManager) record(record exporters.BlockRecord) {
	cm.contexts.Add(record.ContextID)
	cm.metrics.ReportNewBlock(cm.mode)
	cm.exporter.SendBlockRecord(record)
}

func (cm *CoverageManager) Stop() {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	logger.L().Info("coverage recording finished",
		helpers.String("mode", string(cm.mode)),
		helpers.Int("distinctBlocks", cm.seen.Len()),
		helpers.Int("distinctContexts", cm.contexts.Cardinality()))
}
