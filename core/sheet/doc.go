// Package sheet loads supplier feeds into tables and serializes canonical
// tables back out. It is the file-facing collaborator of the engine: the
// core itself never opens files.
//
// # Loading
//
// Load handles two physical formats:
//
//   - spreadsheet workbooks (.xlsx): first sheet, first row as the header
//   - delimited text (.csv, .txt): comma- or pipe-separated, the delimiter
//     auto-detected from the header line
//
// Delimited text is decoded by trying encodings in strict order: UTF-8,
// then Windows-1252, then Latin-1. If all fail the bytes are decoded as
// UTF-8 with invalid-byte replacement and a warning is logged; loading
// never fails on encoding alone.
//
// # Writing
//
// Write produces a workbook in the table's exact column order with every
// column present, including all-null ones. Column order and completeness
// are load-bearing for the downstream import system. Bundle packages
// several workbooks (main output plus the reconciliation diffs) into one
// zip archive.
package sheet
