// Package output writes extraction results as tab-separated values.
// TSV survives commas in extracted values, which makes it the safer
// format for spreadsheet import.
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// TSVWriter writes extraction results to tab-separated files.
type TSVWriter struct{}

// NewTSVWriter creates a TSVWriter.
func NewTSVWriter() *TSVWriter {
	return &TSVWriter{}
}

// WriteResults writes a header row followed by the data rows to path,
// replacing any existing file.
func (w *TSVWriter) WriteResults(path string, headers []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot write to %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	cw.Comma = '\t'

	if err := cw.Write(cleanRow(headers)); err != nil {
		return fmt.Errorf("cannot write to %s: %w", path, err)
	}
	for _, row := range rows {
		if err := cw.Write(cleanRow(row)); err != nil {
			return fmt.Errorf("cannot write to %s: %w", path, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("cannot write to %s: %w", path, err)
	}
	return nil
}

// AppendResults appends data rows to an existing TSV file. Appending
// to a file that does not exist is an error: the header row would be
// missing.
func (w *TSVWriter) AppendResults(path string, rows [][]string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot append to non-existent file %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("cannot append to %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	cw.Comma = '\t'

	for _, row := range rows {
		if err := cw.Write(cleanRow(row)); err != nil {
			return fmt.Errorf("cannot append to %s: %w", path, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("cannot append to %s: %w", path, err)
	}
	return nil
}

func cleanRow(row []string) []string {
	cleaned := make([]string, len(row))
	for i, cell := range row {
		cleaned[i] = CleanCell(cell)
	}
	return cleaned
}

// CleanCell makes a value safe for one TSV cell: embedded tabs,
// newlines and carriage returns would break the row structure, so
// whitespace runs are collapsed to single spaces.
func CleanCell(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
