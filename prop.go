package viper

type propKind uint8

const (
	propAbsent propKind = iota
	propReal
	propConst
)

// Prop is a property resolved against a table: either a real column, a
// synthesized constant column, or absent. The zero value is absent.
// Resolving once and reading through Prop keeps call sites free of
// "is this column real" branches.
type Prop struct {
	kind propKind
	col  Column
	c    float64
}

// Prop resolves a property name against the table's numeric columns.
// Missing names resolve to the absent Prop rather than an error; mandatory
// properties go through RequireProp.
func (t *Table) Prop(name string) Prop {
	if name == "" {
		return Prop{}
	}
	if c, ok := t.cols[name]; ok {
		return Prop{kind: propReal, col: c}
	}
	return Prop{}
}

// RequireProp resolves a mandatory property name, returning a
// *MissingPropertyError when the column does not exist.
func (t *Table) RequireProp(name string) (Prop, error) {
	p := t.Prop(name)
	if p.IsAbsent() {
		return Prop{}, &MissingPropertyError{Element: t.element, Property: name}
	}
	return p, nil
}

// ConstProp synthesizes a constant-valued column: Value returns v for every row.
func ConstProp(v float64) Prop {
	return Prop{kind: propConst, c: v}
}

// IsAbsent reports whether the property resolved to nothing.
func (p Prop) IsAbsent() bool { return p.kind == propAbsent }

// IsConst reports whether the property is a synthesized constant.
func (p Prop) IsConst() bool { return p.kind == propConst }

// Value reads the property at row. Reading an absent property is a caller
// bug and panics; callers either check IsAbsent or substitute a ConstProp
// fallback at resolution time.
func (p Prop) Value(row int) float64 {
	switch p.kind {
	case propReal:
		return p.col.Value(row)
	case propConst:
		return p.c
	}
	panic("viper: value of absent property")
}
