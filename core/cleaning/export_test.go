package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport_OnlyAssignedColumnsChange(t *testing.T) {
	s, err := NewSession("s1", testSheet())
	require.NoError(t, err)
	s.Dict = BuildDictionary([]KnownValue{{Label: `12"x24"`}}, nil, nil, nil)
	require.NoError(t, s.AssignColumn(ModeSize, "Size"))

	// Row 1 gets a manual value, row 2 stays empty.
	s.Rows[1].Result(ModeSize).ExtractedValue = "2x2"
	s.Rows[2].Result(ModeSize).ExtractedValue = ""

	out := s.Export()
	require.Len(t, out, 3)

	assert.Equal(t, `12"x24"`, out[0]["Size"])
	assert.Equal(t, "2x2", out[1]["Size"])

	// Empty extraction passes the original cell through unchanged.
	assert.Equal(t, "", out[2]["Size"])

	// No other column in any row is modified.
	for i, row := range out {
		assert.Equal(t, s.Rows[i].OriginalData["SKU"], row["SKU"])
		assert.Equal(t, s.Rows[i].OriginalData["Description"], row["Description"])
		assert.Equal(t, s.Rows[i].OriginalData["Price"], row["Price"])
	}
}

func TestExport_SkippedModePassesThrough(t *testing.T) {
	s, err := NewSession("s1", testSheet())
	require.NoError(t, err)
	s.Dict = NewDictionary()

	// Nothing assigned at all: output equals input.
	out := s.Export()
	for i, row := range out {
		assert.Equal(t, s.Rows[i].OriginalData, row)
	}
}

func TestExport_DoesNotMutateOriginals(t *testing.T) {
	s, err := NewSession("s1", testSheet())
	require.NoError(t, err)
	s.Dict = NewDictionary()
	require.NoError(t, s.AssignColumn(ModePrice, "Price"))

	out := s.Export()
	out[0]["Price"] = "tampered"
	assert.Equal(t, "$4.99", s.Rows[0].OriginalData["Price"])
}

func TestExportSheet_KeepsColumnStructure(t *testing.T) {
	s, err := NewSession("s1", testSheet())
	require.NoError(t, err)
	s.Dict = NewDictionary()

	sheet := s.ExportSheet()
	assert.Equal(t, s.Sheet.Headers, sheet.Headers)
	assert.Len(t, sheet.Rows, 3)
}
