package domain

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Frame is an in-memory tabular dataset with named columns. Values are kept
// as strings until the feature pipeline needs them typed, mirroring how the
// raw Telco CSV arrives.
type Frame struct {
	Columns []string
	Rows    [][]string
}

func NewFrame(columns []string) *Frame {
	return &Frame{Columns: append([]string(nil), columns...)}
}

// ReadFrame parses CSV data with a header row.
func ReadFrame(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	f := NewFrame(header)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
		}
		f.Rows = append(f.Rows, record)
	}
	if len(f.Rows) == 0 {
		return nil, ErrEmptyCSV
	}
	return f, nil
}

// WriteCSV writes the frame with a header row.
func (f *Frame) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(f.Columns); err != nil {
		return err
	}
	for _, row := range f.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (f *Frame) NumRows() int { return len(f.Rows) }

func (f *Frame) ColumnIndex(name string) int {
	for i, c := range f.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

func (f *Frame) HasColumn(name string) bool { return f.ColumnIndex(name) >= 0 }

// Column returns all values of the named column, or nil if absent.
func (f *Frame) Column(name string) []string {
	idx := f.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	out := make([]string, len(f.Rows))
	for i, row := range f.Rows {
		out[i] = row[idx]
	}
	return out
}

// Value returns the cell at (row, column name), empty string if absent.
func (f *Frame) Value(row int, name string) string {
	idx := f.ColumnIndex(name)
	if idx < 0 || row < 0 || row >= len(f.Rows) {
		return ""
	}
	return f.Rows[row][idx]
}

// SetColumn replaces or appends a column.
func (f *Frame) SetColumn(name string, values []string) {
	idx := f.ColumnIndex(name)
	if idx < 0 {
		f.Columns = append(f.Columns, name)
		for i := range f.Rows {
			f.Rows[i] = append(f.Rows[i], values[i])
		}
		return
	}
	for i := range f.Rows {
		f.Rows[i][idx] = values[i]
	}
}

// DropColumns returns a copy without the named columns. Missing names are
// ignored.
func (f *Frame) DropColumns(names ...string) *Frame {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}

	keep := make([]int, 0, len(f.Columns))
	out := &Frame{}
	for i, c := range f.Columns {
		if !drop[c] {
			keep = append(keep, i)
			out.Columns = append(out.Columns, c)
		}
	}
	for _, row := range f.Rows {
		nr := make([]string, len(keep))
		for j, idx := range keep {
			nr[j] = row[idx]
		}
		out.Rows = append(out.Rows, nr)
	}
	return out
}

// SelectRows returns a copy containing only the given row indices.
func (f *Frame) SelectRows(indices []int) *Frame {
	out := NewFrame(f.Columns)
	for _, i := range indices {
		row := make([]string, len(f.Rows[i]))
		copy(row, f.Rows[i])
		out.Rows = append(out.Rows, row)
	}
	return out
}

// Head returns a copy with at most n rows.
func (f *Frame) Head(n int) *Frame {
	if n > len(f.Rows) {
		n = len(f.Rows)
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return f.SelectRows(indices)
}

// Copy deep-copies the frame.
func (f *Frame) Copy() *Frame {
	indices := make([]int, len(f.Rows))
	for i := range indices {
		indices[i] = i
	}
	return f.SelectRows(indices)
}

// NumericColumn parses the named column as floats. Unparseable cells map to
// the fallback value.
func (f *Frame) NumericColumn(name string, fallback float64) []float64 {
	idx := f.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	out := make([]float64, len(f.Rows))
	for i, row := range f.Rows {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
		if err != nil {
			v = fallback
		}
		out[i] = v
	}
	return out
}

// FrameFromRows rebuilds a frame from API rows. Columns are the sorted
// union of keys; numeric values are formatted back to strings.
func FrameFromRows(rows []CustomerRow) *Frame {
	colSet := map[string]struct{}{}
	for _, row := range rows {
		for k := range row {
			colSet[k] = struct{}{}
		}
	}
	columns := make([]string, 0, len(colSet))
	for k := range colSet {
		columns = append(columns, k)
	}
	sort.Strings(columns)

	f := NewFrame(columns)
	for _, row := range rows {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = stringify(row[col])
		}
		f.Rows = append(f.Rows, record)
	}
	return f
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		if t {
			return "1"
		}
		return "0"
	default:
		return fmt.Sprint(t)
	}
}

// RowMap returns a row as a column->value map, preserving no ordering.
func (f *Frame) RowMap(row int) map[string]string {
	out := make(map[string]string, len(f.Columns))
	for i, c := range f.Columns {
		out[c] = f.Rows[row][i]
	}
	return out
}
