package sheetio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"floorops/core/cleaning"

	"github.com/xuri/excelize/v2"
)

// Format identifies a supported spreadsheet container format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// DetectFormat maps a filename extension to a Format.
func DetectFormat(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported spreadsheet format: %q", filepath.Ext(filename))
	}
}

// Parse reads raw file bytes into the SheetData shape the cleaning engine
// consumes: the first row becomes the header list, every following row a
// column-name → cell-text map.
func Parse(filename string, data []byte) (cleaning.SheetData, error) {
	format, err := DetectFormat(filename)
	if err != nil {
		return cleaning.SheetData{}, err
	}
	switch format {
	case FormatCSV:
		return ParseCSV(data)
	default:
		return ParseXLSX(data)
	}
}

// ParseXLSX reads the first sheet of an xlsx workbook.
func ParseXLSX(data []byte) (cleaning.SheetData, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return cleaning.SheetData{}, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return cleaning.SheetData{}, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return cleaning.SheetData{}, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return fromGrid(rows)
}

// ParseCSV reads comma-separated data.
func ParseCSV(data []byte) (cleaning.SheetData, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // vendor files are ragged more often than not
	records, err := r.ReadAll()
	if err != nil {
		return cleaning.SheetData{}, fmt.Errorf("read csv: %w", err)
	}
	return fromGrid(records)
}

// fromGrid converts a raw cell grid into SheetData. Header names are
// deduplicated by suffixing repeats, since column names are the row keys.
func fromGrid(grid [][]string) (cleaning.SheetData, error) {
	if len(grid) == 0 {
		return cleaning.SheetData{}, fmt.Errorf("sheet has no header row")
	}

	headers := make([]string, 0, len(grid[0]))
	seen := make(map[string]int)
	for i, h := range grid[0] {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("Column %d", i+1)
		}
		if n := seen[name]; n > 0 {
			seen[name] = n + 1
			name = fmt.Sprintf("%s (%d)", name, n+1)
		}
		seen[name]++
		headers = append(headers, name)
	}

	sheet := cleaning.SheetData{Headers: headers}
	for _, record := range grid[1:] {
		row := make(map[string]string, len(headers))
		for i, name := range headers {
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet, nil
}

// WriteXLSX renders SheetData as a single-sheet xlsx workbook.
func WriteXLSX(sheet cleaning.SheetData) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	name := f.GetSheetName(0)
	header := make([]any, len(sheet.Headers))
	for i, h := range sheet.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, row := range sheet.Rows {
		cells := make([]any, len(sheet.Headers))
		for j, h := range sheet.Headers {
			cells[j] = row[h]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(name, cell, &cells); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteCSV renders SheetData as comma-separated data.
func WriteCSV(sheet cleaning.SheetData) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(sheet.Headers); err != nil {
		return nil, err
	}
	record := make([]string, len(sheet.Headers))
	for _, row := range sheet.Rows {
		for i, h := range sheet.Headers {
			record[i] = row[h]
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write renders SheetData in the given format.
func Write(format Format, sheet cleaning.SheetData) ([]byte, error) {
	if format == FormatCSV {
		return WriteCSV(sheet)
	}
	return WriteXLSX(sheet)
}
