package exporters

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/spf13/afero"
	"go.uber.org/multierr"

	"github.com/guestcov/guestcov/pkg/coverage"
)

// DefaultBufferSize is the write-buffer size used when the configuration
// does not request one.
const DefaultBufferSize = 8192

var (
	processHeader = []string{"process name", "process id", "thread id", "in kernel", "block address", "block size"}
	asidHeader    = []string{"asid", "in kernel", "block address", "block size"}
)

var _ Exporter = (*CSVExporter)(nil)

// CSVExporter is the coverage recorder. It truncates the output file at
// startup, writes a two-line header (mode name, then the mode's column
// schema) and appends one row per first-seen block in discovery order.
//
// Steady-state row writes are best-effort: once the stream is open, write
// errors are not surfaced per record.
type CSVExporter struct {
	file   afero.File
	buf    *bufio.Writer // nil when unbuffered
	writer *csv.Writer
	mode   coverage.Mode
	closed bool
}

// InitCSVExporter creates/truncates path on fs and writes the header block.
// A bufferSize of 0 disables buffering so every row reaches the file
// immediately; a negative size is rejected.
func InitCSVExporter(fs afero.Fs, path string, bufferSize int, mode coverage.Mode) (*CSVExporter, error) {
	if bufferSize < 0 {
		return nil, fmt.Errorf("invalid buffer size %d", bufferSize)
	}

	file, err := fs.Create(path)
	if err != nil {
		return nil, fmt.Errorf("opening coverage file %s: %w", path, err)
	}

	ce := &CSVExporter{
		file: file,
		mode: mode,
	}
	if bufferSize > 0 {
		ce.buf = bufio.NewWriterSize(file, bufferSize)
		ce.writer = csv.NewWriter(ce.buf)
	} else {
		ce.writer = csv.NewWriter(file)
	}

	ce.writer.Write([]string{string(mode)})
	if mode == coverage.ModeProcess {
		ce.writer.Write(processHeader)
	} else {
		ce.writer.Write(asidHeader)
	}
	ce.writer.Flush()
	if err := ce.writer.Error(); err != nil {
		file.Close()
		return nil, fmt.Errorf("writing coverage header: %w", err)
	}
	return ce, nil
}

func (ce *CSVExporter) SendBlockRecord(record BlockRecord) {
	if ce.closed {
		return
	}

	var row []string
	if ce.mode == coverage.ModeProcess {
		// pid and tid stay decimal, the radix used by most tools that
		// produce human readable output.
		row = []string{
			record.ProcessName,
			strconv.FormatUint(record.ContextID, 10),
			strconv.FormatUint(record.Tid, 10),
			flagField(record.InKernel),
			hexField(record.PC),
			strconv.FormatUint(record.Size, 10),
		}
	} else {
		row = []string{
			hexField(record.ContextID),
			flagField(record.InKernel),
			hexField(record.PC),
			strconv.FormatUint(record.Size, 10),
		}
	}

	ce.writer.Write(row)
	// Push the row out of the csv layer; when buffered, it stays in our
	// buffer until it fills or the exporter is closed.
	ce.writer.Flush()
}

// Close flushes any buffered rows and closes the file. Records sent after
// Close are dropped.
func (ce *CSVExporter) Close() error {
	if ce.closed {
		return nil
	}
	ce.closed = true

	ce.writer.Flush()
	err := ce.writer.Error()
	if ce.buf != nil {
		err = multierr.Append(err, ce.buf.Flush())
	}
	return multierr.Append(err, ce.file.Close())
}

func hexField(v uint64) string {
	return "0x" + strconv.FormatUint(v, 16)
}

func flagField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
