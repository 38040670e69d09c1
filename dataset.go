// Package viper converts large tabular geometric datasets into renderable
// surface representations. The root package holds the tabular data model
// consumed by the pipeline: datasets of named elements, tables of named
// columns, and the property accessor used to read them uniformly.
//
// Parsing of mesh interchange files into tables is the caller's job; the
// pipeline only references the loaded tables, it never copies them.
package viper

// Element names the pipeline consumes from a dataset.
const (
	ElemVertex = "vertex"
	ElemFace   = "face"
)

// Dataset is an ordered collection of named element tables. It is treated
// as immutable once loaded and identified by pointer: two requests with the
// same *Dataset are requests for the same data.
type Dataset struct {
	name  string
	elems map[string]*Table
}

// NewDataset creates a dataset from element tables keyed by element name.
func NewDataset(name string, elems map[string]*Table) *Dataset {
	m := make(map[string]*Table, len(elems))
	for k, v := range elems {
		m[k] = v
	}
	return &Dataset{name: name, elems: m}
}

// Name returns the dataset name given at load time.
func (d *Dataset) Name() string { return d.name }

// Has reports whether the dataset carries the named element.
func (d *Dataset) Has(element string) bool {
	_, ok := d.elems[element]
	return ok
}

// Element returns the named element table or a *MissingElementError.
func (d *Dataset) Element(element string) (*Table, error) {
	t, ok := d.elems[element]
	if !ok {
		return nil, &MissingElementError{Dataset: d.name, Element: element}
	}
	return t, nil
}
