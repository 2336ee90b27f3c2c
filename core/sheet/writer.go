package sheet

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	"catalog-sync/core/table"

	"github.com/xuri/excelize/v2"
)

// Write serializes a canonical table to a workbook on disk.
func Write(t *table.Table, path string) error {
	f, err := buildWorkbook(t)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

// WriteBuffer serializes a canonical table to an in-memory workbook,
// ready to be sent as an HTTP response or zipped into a bundle.
func WriteBuffer(t *table.Table) (*bytes.Buffer, error) {
	f, err := buildWorkbook(t)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf, nil
}

// buildWorkbook renders the table into a single-sheet workbook preserving
// the exact column order. Null cells stay empty but their columns are
// always present in the header.
func buildWorkbook(t *table.Table) (*excelize.File, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheetName := f.GetSheetName(f.GetActiveSheetIndex())

	header := make([]any, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, row := range t.Rows {
		cells := make([]any, len(t.Columns))
		for j, col := range t.Columns {
			v := row.Get(col)
			if table.IsNull(v) {
				cells[j] = nil
				continue
			}
			cells[j] = v
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if err := f.SetSheetRow(sheetName, addr, &cells); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i, err)
		}
	}

	return f, nil
}

// BundleEntry names one workbook inside a zip bundle.
type BundleEntry struct {
	Name  string
	Table *table.Table
}

// Bundle writes several workbooks into one zip archive, in order. Entries
// with a nil or empty table are skipped, matching the convention of only
// emitting ADDS/UPDATES/DELETES files when they have content.
func Bundle(w io.Writer, entries []BundleEntry) error {
	zw := zip.NewWriter(w)
	for _, e := range entries {
		if e.Table.Len() == 0 {
			continue
		}
		buf, err := WriteBuffer(e.Table)
		if err != nil {
			return fmt.Errorf("bundle %s: %w", e.Name, err)
		}
		dst, err := zw.Create(e.Name)
		if err != nil {
			return fmt.Errorf("bundle %s: %w", e.Name, err)
		}
		if _, err := dst.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("bundle %s: %w", e.Name, err)
		}
	}
	return zw.Close()
}
