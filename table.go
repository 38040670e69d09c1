package viper

import (
	"fmt"
	"sort"
)

// Column is a named numeric column with one value per row.
type Column interface {
	Name() string
	Value(row int) float64
}

// Table is a fixed-row-count collection of named columns belonging to one
// dataset element. Numeric and list-valued columns live in separate
// namespaces; mesh interchange formats never mix the two under one name.
type Table struct {
	element string
	rows    int
	cols    map[string]Column
	lists   map[string]*ListColumn
}

// NewTable creates an empty table for the named element with a fixed row count.
func NewTable(element string, rows int) *Table {
	if rows < 0 {
		panic("viper: negative row count")
	}
	return &Table{
		element: element,
		rows:    rows,
		cols:    make(map[string]Column),
		lists:   make(map[string]*ListColumn),
	}
}

// Element returns the element name this table belongs to.
func (t *Table) Element() string { return t.element }

// Rows returns the table's fixed row count.
func (t *Table) Rows() int { return t.rows }

// AddColumn attaches a numeric column. The column must span exactly the
// table's row count; mismatches are caller bugs and panic.
func (t *Table) AddColumn(c Column) *Table {
	if fc, ok := c.(*FloatColumn); ok && len(fc.data) != t.rows {
		panic(fmt.Sprintf("viper: column %q has %d rows, table %q has %d", c.Name(), len(fc.data), t.element, t.rows))
	}
	t.cols[c.Name()] = c
	return t
}

// AddFloats attaches a float column built from data.
func (t *Table) AddFloats(name string, data []float64) *Table {
	return t.AddColumn(NewFloatColumn(name, data))
}

// AddList attaches a list-valued column (one integer list per row).
func (t *Table) AddList(name string, rows [][]uint32) *Table {
	if len(rows) != t.rows {
		panic(fmt.Sprintf("viper: list column %q has %d rows, table %q has %d", name, len(rows), t.element, t.rows))
	}
	t.lists[name] = &ListColumn{name: name, data: rows}
	return t
}

// Column returns the named numeric column, if present.
func (t *Table) Column(name string) (Column, bool) {
	c, ok := t.cols[name]
	return c, ok
}

// List returns the named list-valued column, if present.
func (t *Table) List(name string) (*ListColumn, bool) {
	c, ok := t.lists[name]
	return c, ok
}

// RequireList returns the named list column or a *MissingPropertyError.
func (t *Table) RequireList(name string) (*ListColumn, error) {
	c, ok := t.lists[name]
	if !ok {
		return nil, &MissingPropertyError{Element: t.element, Property: name}
	}
	return c, nil
}

// ColumnNames returns the numeric column names in sorted order.
func (t *Table) ColumnNames() []string {
	names := make([]string, 0, len(t.cols))
	for n := range t.cols {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// FloatColumn is an array-backed numeric column.
type FloatColumn struct {
	name string
	data []float64
}

// NewFloatColumn creates a column over data. The slice is referenced, not copied.
func NewFloatColumn(name string, data []float64) *FloatColumn {
	return &FloatColumn{name: name, data: data}
}

func (c *FloatColumn) Name() string { return c.name }

func (c *FloatColumn) Value(row int) float64 { return c.data[row] }

// ListColumn holds one ordered list of integer indices per row, as produced
// by face elements of mesh interchange formats.
type ListColumn struct {
	name string
	data [][]uint32
}

func (c *ListColumn) Name() string { return c.name }

// Indices returns the row's index list. Callers must not mutate it.
func (c *ListColumn) Indices(row int) []uint32 { return c.data[row] }

// Count returns the number of indices in the row's list.
func (c *ListColumn) Count(row int) int { return len(c.data[row]) }
