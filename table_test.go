package viper_test

import (
	"errors"
	"testing"

	viper "github.com/oscarrojasl/molstar-viper"
)

func TestPropResolution(t *testing.T) {
	vt := viper.NewTable(viper.ElemVertex, 3).
		AddFloats("x", []float64{1, 2, 3})

	p := vt.Prop("x")
	if p.IsAbsent() {
		t.Fatal("x resolved as absent")
	}
	if got := p.Value(1); got != 2 {
		t.Fatalf("x[1] = %v, want 2", got)
	}
	if !vt.Prop("nope").IsAbsent() {
		t.Fatal("unknown property resolved as present")
	}
	if !vt.Prop("").IsAbsent() {
		t.Fatal("empty property name resolved as present")
	}
}

func TestConstProp(t *testing.T) {
	p := viper.ConstProp(127)
	if p.IsAbsent() || !p.IsConst() {
		t.Fatal("ConstProp kind wrong")
	}
	for _, row := range []int{0, 5, 1 << 20} {
		if got := p.Value(row); got != 127 {
			t.Fatalf("const value at row %d = %v, want 127", row, got)
		}
	}
}

func TestRequirePropMissing(t *testing.T) {
	vt := viper.NewTable(viper.ElemVertex, 1).AddFloats("x", []float64{0})
	_, err := vt.RequireProp("y")
	var missing *viper.MissingPropertyError
	if !errors.As(err, &missing) {
		t.Fatalf("RequireProp error = %v, want MissingPropertyError", err)
	}
	if missing.Element != viper.ElemVertex || missing.Property != "y" {
		t.Fatalf("error fields = %q/%q", missing.Element, missing.Property)
	}
}

func TestDatasetMissingElement(t *testing.T) {
	ds := viper.NewDataset("model", map[string]*viper.Table{
		viper.ElemVertex: viper.NewTable(viper.ElemVertex, 0),
	})
	if !ds.Has(viper.ElemVertex) {
		t.Fatal("vertex element not found")
	}
	_, err := ds.Element(viper.ElemFace)
	var missing *viper.MissingElementError
	if !errors.As(err, &missing) {
		t.Fatalf("Element error = %v, want MissingElementError", err)
	}
	if missing.Element != viper.ElemFace {
		t.Fatalf("missing element = %q, want face", missing.Element)
	}
}

func TestListColumn(t *testing.T) {
	ft := viper.NewTable(viper.ElemFace, 2).
		AddList("indices", [][]uint32{{0, 1, 2}, {0, 1, 2, 3}})
	c, err := ft.RequireList("indices")
	if err != nil {
		t.Fatal(err)
	}
	if c.Count(0) != 3 || c.Count(1) != 4 {
		t.Fatalf("counts = %d, %d", c.Count(0), c.Count(1))
	}
	if got := c.Indices(1)[3]; got != 3 {
		t.Fatalf("indices[1][3] = %d", got)
	}
	if _, err := ft.RequireList("vertex_indices"); err == nil {
		t.Fatal("expected error for unknown list column")
	}
}
