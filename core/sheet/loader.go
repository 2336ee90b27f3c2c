package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"catalog-sync/core/table"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ErrEmptyFile is returned when a feed contains no header row at all.
var ErrEmptyFile = errors.New("file contains no data")

// Loader reads supplier feeds into tables.
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a feed loader. A nil logger disables warning output.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// Load reads a feed from disk, choosing the physical format by extension:
// .xlsx is parsed as a workbook, everything else as delimited text.
func (l *Loader) Load(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open feed: %w", err)
	}
	defer f.Close()
	return l.LoadReader(f, filepath.Base(path))
}

// LoadReader reads a feed from a stream. The filename is used only to pick
// the physical format, which makes this directly usable for HTTP uploads.
func (l *Loader) LoadReader(r io.Reader, filename string) (*table.Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm", ".xls":
		return l.loadWorkbook(r, filename)
	default:
		return l.loadDelimited(r, filename)
	}
}

// loadWorkbook reads the first sheet of a workbook, first row as the header.
func (l *Loader) loadWorkbook(r io.Reader, filename string) (*table.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("read workbook %s: %w", filename, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrEmptyFile)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrEmptyFile)
	}

	t := table.New(rows[0]...)
	for _, cells := range rows[1:] {
		row := make(table.Row, len(t.Columns))
		for i, col := range t.Columns {
			// Trailing empty cells are trimmed by the reader; both cases
			// read as null.
			if i < len(cells) && cells[i] != "" {
				row[col] = cells[i]
			} else {
				row[col] = nil
			}
		}
		t.Append(row)
	}

	l.logger.Info("Loaded workbook",
		zap.String("file", filename),
		zap.Int("rows", t.Len()),
	)
	return t, nil
}

// loadDelimited reads comma- or pipe-separated text with encoding fallback.
func (l *Loader) loadDelimited(r io.Reader, filename string) (*table.Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read feed %s: %w", filename, err)
	}

	text, encoding, lossy := decodeText(raw)
	if lossy {
		l.logger.Warn("No encoding decoded the feed cleanly, invalid bytes replaced",
			zap.String("file", filename),
		)
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = detectDelimiter(text)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", filename, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrEmptyFile)
	}

	t := table.New(records[0]...)
	for _, cells := range records[1:] {
		row := make(table.Row, len(t.Columns))
		for i, col := range t.Columns {
			if i < len(cells) && cells[i] != "" {
				row[col] = cells[i]
			} else {
				row[col] = nil
			}
		}
		t.Append(row)
	}

	l.logger.Info("Loaded delimited feed",
		zap.String("file", filename),
		zap.String("encoding", encoding),
		zap.String("delimiter", string(reader.Comma)),
		zap.Int("rows", t.Len()),
	)
	return t, nil
}

// detectDelimiter picks pipe or comma, whichever dominates the header line.
// Replink feeds are pipe-separated, Sage exports comma-separated.
func detectDelimiter(text string) rune {
	header := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		header = text[:i]
	}
	if strings.Count(header, "|") > strings.Count(header, ",") {
		return '|'
	}
	return ','
}
