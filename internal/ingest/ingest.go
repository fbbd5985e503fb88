// Package ingest turns an uploaded file into a raw spk.Table.
package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/mind-engage/mindengage-spk/internal/spk"
)

// FormatError means the upload could not be read as a table at all.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *FormatError) Unwrap() error { return e.Err }

var (
	utf8BOM  = []byte{0xEF, 0xBB, 0xBF}
	zipMagic = []byte("PK\x03\x04")
)

// Read parses data as XLSX when name ends in .xlsx or the bytes are a ZIP
// archive, and as CSV otherwise.
func Read(name string, data []byte) (spk.Table, error) {
	if strings.EqualFold(filepath.Ext(name), ".xlsx") || bytes.HasPrefix(data, zipMagic) {
		return ReadXLSX(data)
	}
	return ReadCSV(data)
}

// ReadCSV parses UTF-8 CSV with a header row. The delimiter is a comma unless
// the header has no comma but does have a semicolon.
func ReadCSV(data []byte) (spk.Table, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return spk.Table{}, &FormatError{Reason: "file is not valid UTF-8"}
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.Comma = sniffDelimiter(data)

	hdr, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return spk.Table{}, &FormatError{Reason: "missing header row"}
	}
	if err != nil {
		return spk.Table{}, &FormatError{Reason: "bad csv", Err: err}
	}
	t := spk.Table{Header: hdr}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return spk.Table{}, &FormatError{Reason: "bad csv", Err: err}
		}
		if len(rec) > len(hdr) {
			line, _ := cr.FieldPos(0)
			return spk.Table{}, &FormatError{Reason: fmt.Sprintf("line %d: expected %d fields, saw %d", line, len(hdr), len(rec))}
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}

func sniffDelimiter(data []byte) rune {
	first := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		first = data[:i]
	}
	if !bytes.ContainsRune(first, ',') && bytes.ContainsRune(first, ';') {
		return ';'
	}
	return ','
}

// ReadXLSX reads the first sheet of a workbook. The first non-empty row is
// the header; cells right of the header are ignored.
func ReadXLSX(data []byte) (spk.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return spk.Table{}, &FormatError{Reason: "open workbook", Err: err}
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return spk.Table{}, &FormatError{Reason: "workbook has no sheets"}
	}
	// raw values keep the stored precision a number format would round away
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return spk.Table{}, &FormatError{Reason: "read sheet " + sheets[0], Err: err}
	}

	start := 0
	for start < len(rows) && blank(rows[start]) {
		start++
	}
	if start == len(rows) {
		return spk.Table{}, &FormatError{Reason: "missing header row"}
	}
	t := spk.Table{Header: rows[start]}
	for _, r := range rows[start+1:] {
		if len(r) > len(t.Header) {
			r = r[:len(t.Header)]
		}
		t.Rows = append(t.Rows, r)
	}
	return t, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
