package exporters

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guestcov/guestcov/pkg/coverage"
)

func TestInitStdoutExporterDisabled(t *testing.T) {
	disabled := false
	assert.Nil(t, InitStdoutExporter(&disabled, "run"))
}

func TestStdoutExporterProcessRecord(t *testing.T) {
	enabled := true
	exporter := InitStdoutExporter(&enabled, "run-1")
	require.NotNil(t, exporter)

	var out bytes.Buffer
	exporter.logger.SetOutput(&out)

	exporter.SendBlockRecord(BlockRecord{
		Mode:        coverage.ModeProcess,
		ContextID:   10,
		Tid:         11,
		PC:          0x1000,
		Size:        4,
		ProcessName: "app",
	})

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &fields))
	assert.Equal(t, "run-1", fields["run_id"])
	assert.Equal(t, "process", fields["mode"])
	assert.Equal(t, "app", fields["process_name"])
	assert.Equal(t, float64(10), fields["pid"])
	assert.Equal(t, float64(11), fields["tid"])
	assert.Equal(t, "0x1000", fields["pc"])
	assert.Equal(t, float64(4), fields["size"])
	assert.Equal(t, false, fields["in_kernel"])
}

func TestStdoutExporterAsidRecord(t *testing.T) {
	enabled := true
	exporter := InitStdoutExporter(&enabled, "run-2")
	require.NotNil(t, exporter)

	var out bytes.Buffer
	exporter.logger.SetOutput(&out)

	exporter.SendBlockRecord(BlockRecord{
		Mode:      coverage.ModeAsid,
		ContextID: 0xAA,
		PC:        0x500,
		Size:      16,
		InKernel:  true,
	})

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &fields))
	assert.Equal(t, "asid", fields["mode"])
	assert.Equal(t, "0xaa", fields["asid"])
	assert.Equal(t, true, fields["in_kernel"])
	assert.NotContains(t, fields, "process_name")
}
