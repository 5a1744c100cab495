package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrHeader is returned when a cleaned file does not start with Header.
var ErrHeader = errors.New("unexpected header")

// WriteCSV persists t at path. The file is written next to its final
// location and renamed into place.
func WriteCSV(path string, t Table) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Write(tmp, t); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// Write encodes t as comma-separated text with a header row.
func Write(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range t.Rows {
		if err := cw.Write(r.record()); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV loads a cleaned file written by WriteCSV.
func ReadCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()
	return Read(f)
}

// Read decodes a cleaned table. The header must match Header exactly and
// every row must carry all seven fields.
func Read(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	head, err := cr.Read()
	if err == io.EOF {
		return Table{}, fmt.Errorf("%w: empty file", ErrHeader)
	}
	if err != nil {
		return Table{}, fmt.Errorf("%w: %v", ErrHeader, err)
	}
	for i, name := range Header {
		if head[i] != name {
			return Table{}, fmt.Errorf("%w: column %d is %q, want %q", ErrHeader, i+1, head[i], name)
		}
	}

	t := Table{Rows: []Row{}}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("read row %d: %w", len(t.Rows)+1, err)
		}
		t.Rows = append(t.Rows, Row{
			Subject: rec[0],
			Type:    rec[1],
			Part:    rec[2],
			Side:    rec[3],
			X:       rec[4],
			Y:       rec[5],
			Z:       rec[6],
		})
	}
	return t, nil
}
