package exporters

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guestcov/guestcov/pkg/coverage"
)

func TestInitExporterBus(t *testing.T) {
	fs := afero.NewMemMapFs()
	disabled := false

	bus, err := InitExporterBus(fs, ExportersConfig{StdoutExporter: &disabled}, "coverage.csv", 0, coverage.ModeAsid, "run")
	require.NoError(t, err)

	bus.SendBlockRecord(BlockRecord{Mode: coverage.ModeAsid, ContextID: 0xAA, PC: 0x500, Size: 16})
	require.NoError(t, bus.Close())

	lines := readLines(t, fs, "coverage.csv")
	require.Len(t, lines, 3)
	assert.Equal(t, "0xaa,0,0x500,16", lines[2])
}

func TestInitExporterBusFailsWhenFileCannotOpen(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	disabled := false

	_, err := InitExporterBus(fs, ExportersConfig{StdoutExporter: &disabled}, "coverage.csv", 0, coverage.ModeAsid, "run")
	assert.Error(t, err)
}
