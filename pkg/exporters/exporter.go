package exporters

// generic exporter interface
type Exporter interface {
	// SendBlockRecord exports one first-seen block.
	SendBlockRecord(record BlockRecord)
	// Close flushes and releases the underlying sink. No records may be
	// sent after Close.
	Close() error
}

var _ Exporter = (*ExporterMock)(nil)

type ExporterMock struct {
	Records []BlockRecord
	Closed  bool
}

func (e *ExporterMock) SendBlockRecord(record BlockRecord) {
	e.Records = append(e.Records, record)
}

func (e *ExporterMock) Close() error {
	e.Closed = true
	return nil
}
