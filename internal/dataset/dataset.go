// Package dataset provides the tabular data model shared by the cleaning
// pipeline and its collaborators: a tagged per-cell Value variant, an
// ordered Dataset of rows, and loaders that read CSV and Excel files into
// it.
package dataset

// Row maps a column name to the cell value for one record.
type Row map[string]Value

// Clone returns a copy of the row that can be mutated independently.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Dataset is an ordered sequence of rows over a fixed set of named
// columns. Column identity is stable for the life of the dataset; the
// cleaning pipeline mutates cells in place and only the row filter may
// shrink the row count.
type Dataset struct {
	Name    string
	Columns []string
	Rows    []Row
}

// New returns an empty dataset with the given column order.
func New(name string, columns []string) *Dataset {
	return &Dataset{Name: name, Columns: columns}
}

// Len returns the row count.
func (d *Dataset) Len() int { return len(d.Rows) }

// HasColumn reports whether name is one of the dataset's columns.
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Append adds a row. Cells for columns missing from the row read as
// Absent.
func (d *Dataset) Append(r Row) {
	d.Rows = append(d.Rows, r)
}

// Cell returns the value at the given row for the named column. Missing
// entries read as Absent.
func (d *Dataset) Cell(row int, column string) Value {
	v, ok := d.Rows[row][column]
	if !ok {
		return Absent()
	}
	return v
}

// Column returns the named column as a slice in row order.
func (d *Dataset) Column(name string) []Value {
	out := make([]Value, len(d.Rows))
	for i := range d.Rows {
		out[i] = d.Cell(i, name)
	}
	return out
}

// Numbers returns the present numeric values of the named column in row
// order, skipping absent and non-numeric cells.
func (d *Dataset) Numbers(name string) []float64 {
	var out []float64
	for i := range d.Rows {
		if f, ok := d.Cell(i, name).Number(); ok {
			out = append(out, f)
		}
	}
	return out
}

// Clone returns a deep copy sharing no row storage with d.
func (d *Dataset) Clone() *Dataset {
	out := New(d.Name, append([]string(nil), d.Columns...))
	out.Rows = make([]Row, len(d.Rows))
	for i, r := range d.Rows {
		out.Rows[i] = r.Clone()
	}
	return out
}
