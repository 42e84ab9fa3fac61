package replay

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kubescape/go-logger"
	"github.com/kubescape/go-logger/helpers"

	"github.com/guestcov/guestcov/pkg/host"
	"github.com/guestcov/guestcov/pkg/introspection"
	"github.com/guestcov/guestcov/pkg/metricsmanager"
)

const maxTraceLineSize = 1024 * 1024

// TraceEvent is one recorded basic-block execution, serialized as one JSON
// object per line in a trace file. Pid, Tid and Comm are optional; a zero
// pid means the recorder had no thread for the event either.
type TraceEvent struct {
	PC     uint64 `json:"pc"`
	Size   uint64 `json:"size"`
	Asid   uint64 `json:"asid"`
	Kernel bool   `json:"kernel"`
	Pid    uint64 `json:"pid,omitempty"`
	Tid    uint64 `json:"tid,omitempty"`
	Comm   string `json:"comm,omitempty"`
}

var (
	_ host.Host                     = (*ReplayHost)(nil)
	_ host.ExecState                = (*ReplayHost)(nil)
	_ introspection.OSIntrospection = (*ReplayHost)(nil)
)

// ReplayHost re-executes a recorded block trace: it feeds each event through
// the registered callback, exposing the event's CPU and OS state the same
// way a live host would. Events replay strictly in file order on a single
// goroutine, so the callback sees the same serialization a live host
// guarantees.
type ReplayHost struct {
	path     string
	resolver introspection.NameResolver // may be nil
	metrics  metricsmanager.MetricsManager
	callback host.BlockCallback
	current  TraceEvent
}

func NewReplayHost(path string, resolver introspection.NameResolver, metrics metricsmanager.MetricsManager) *ReplayHost {
	return &ReplayHost{
		path:     path,
		resolver: resolver,
		metrics:  metrics,
	}
}

// RegisterBlockCallback registers the single per-block callback. The host
// accepts exactly one.
func (r *ReplayHost) RegisterBlockCallback(callback host.BlockCallback) error {
	if r.callback != nil {
		return fmt.Errorf("block callback already registered")
	}
	r.callback = callback
	return nil
}

// Run replays the trace until it is exhausted or ctx is cancelled. Lines
// that fail to decode are counted and skipped; they never abort the replay.
func (r *ReplayHost) Run(ctx context.Context) error {
	if r.callback == nil {
		return fmt.Errorf("no block callback registered")
	}

	file, err := os.Open(r.path)
	if err != nil {
		return fmt.Errorf("opening trace %s: %w", r.path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTraceLineSize)
	lineno := 0
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		lineno++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event TraceEvent
		if err := json.Unmarshal(line, &event); err != nil {
			r.metrics.ReportTraceDecodeError()
			logger.L().Debug("skipping undecodable trace line", helpers.Int("line", lineno), helpers.Error(err))
			continue
		}
		r.current = event
		r.callback(r, host.BlockEvent{PC: event.PC, Size: event.Size})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading trace %s: %w", r.path, err)
	}
	return nil
}

func (r *ReplayHost) InKernel() bool {
	return r.current.Kernel
}

func (r *ReplayHost) CurrentASID() uint64 {
	return r.current.Asid
}

// CurrentThread resolves the thread behind the event being replayed.
func (r *ReplayHost) CurrentThread() (introspection.ThreadInfo, bool) {
	if r.current.Pid == 0 {
		return introspection.ThreadInfo{}, false
	}
	return introspection.ThreadInfo{Pid: r.current.Pid, Tid: r.current.Tid}, true
}

// CurrentProcess resolves the process name, preferring the name recorded in
// the trace and falling back to the live resolver when one is configured.
// Both can come up empty when the process exited before the trace was
// replayed; that is reported as not-found, not as an error.
func (r *ReplayHost) CurrentProcess() (introspection.ProcessInfo, bool) {
	if r.current.Pid == 0 {
		return introspection.ProcessInfo{}, false
	}
	if r.current.Comm != "" {
		return introspection.ProcessInfo{Pid: r.current.Pid, Name: r.current.Comm}, true
	}
	if r.resolver != nil {
		if name, ok := r.resolver.ProcessName(r.current.Pid); ok {
			return introspection.ProcessInfo{Pid: r.current.Pid, Name: name}, true
		}
	}
	return introspection.ProcessInfo{}, false
}
