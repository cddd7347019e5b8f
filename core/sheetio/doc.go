// Package sheetio converts spreadsheet files (xlsx via excelize, csv via the
// standard encoding) to and from the SheetData value the cleaning engine
// operates on. The engine itself never touches file formats; this package is
// its only bridge to them.
package sheetio
