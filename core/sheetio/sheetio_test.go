package sheetio

import (
	"testing"

	"floorops/core/cleaning"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	f, err := DetectFormat("vendor.XLSX")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	f, err = DetectFormat("list.csv")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = DetectFormat("notes.txt")
	assert.Error(t, err)
}

func TestParseCSV(t *testing.T) {
	data := []byte("SKU,Description,Price\nA1,Oak Plank,4.99\nA2,\"Tile, Sample\"\n")

	sheet, err := ParseCSV(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"SKU", "Description", "Price"}, sheet.Headers)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, "Oak Plank", sheet.Rows[0]["Description"])
	assert.Equal(t, "Tile, Sample", sheet.Rows[1]["Description"])
	// Ragged row: missing trailing cells come back empty.
	assert.Equal(t, "", sheet.Rows[1]["Price"])
}

func TestParseCSV_HeaderHygiene(t *testing.T) {
	data := []byte("Name,,Name\nx,y,z\n")

	sheet, err := ParseCSV(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Column 2", "Name (2)"}, sheet.Headers)
	assert.Equal(t, "x", sheet.Rows[0]["Name"])
	assert.Equal(t, "z", sheet.Rows[0]["Name (2)"])
}

func TestXLSXRoundTrip(t *testing.T) {
	in := cleaning.SheetData{
		Headers: []string{"SKU", "Size"},
		Rows: []map[string]string{
			{"SKU": "A1", "Size": "12 x 24"},
			{"SKU": "A2", "Size": ""},
		},
	}

	data, err := WriteXLSX(in)
	require.NoError(t, err)

	out, err := ParseXLSX(data)
	require.NoError(t, err)

	assert.Equal(t, in.Headers, out.Headers)
	require.Len(t, out.Rows, 2)
	assert.Equal(t, "12 x 24", out.Rows[0]["Size"])
	assert.Equal(t, "A2", out.Rows[1]["SKU"])
}

func TestCSVRoundTrip(t *testing.T) {
	in := cleaning.SheetData{
		Headers: []string{"SKU", "Price"},
		Rows:    []map[string]string{{"SKU": "A1", "Price": "13.00"}},
	}

	data, err := Write(FormatCSV, in)
	require.NoError(t, err)

	out, err := Parse("cleaned.csv", data)
	require.NoError(t, err)
	assert.Equal(t, in.Headers, out.Headers)
	assert.Equal(t, in.Rows, out.Rows)
}
