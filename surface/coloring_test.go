package surface_test

import (
	"testing"

	"github.com/oscarrojasl/molstar-viper/surface"
)

func TestColoringUniform(t *testing.T) {
	vt := cubeVertexTable(nil)
	c := surface.ResolveColoring(vt, surface.ColoringParams{
		Kind:  surface.ColorUniform,
		Color: surface.RGB{10, 20, 30},
	})
	for row := 0; row < vt.Rows(); row++ {
		if got := c.At(row); got != (surface.RGB{10, 20, 30}) {
			t.Fatalf("At(%d) = %v", row, got)
		}
	}
}

func TestColoringPerVertexWithFallbacks(t *testing.T) {
	red := []float64{0, 36, 72, 108, 144, 180, 216, 252}
	vt := cubeVertexTable(map[string][]float64{"charge": red})
	c := surface.ResolveColoring(vt, surface.ColoringParams{
		Kind: surface.ColorPerVertex,
		Red:  "charge",
		// Green names a property the table does not have, blue is unset.
		Green: "occupancy",
	})
	for row := 0; row < vt.Rows(); row++ {
		got := c.At(row)
		if got[0] != uint8(red[row]) {
			t.Fatalf("red channel at %d = %d, want %v", row, got[0], red[row])
		}
		if got[1] != 127 || got[2] != 127 {
			t.Fatalf("fallback channels at %d = %d, %d; want 127, 127", row, got[1], got[2])
		}
	}
}

func TestColoringClampsChannels(t *testing.T) {
	vals := []float64{-40, 300, 0, 255, 127.9, 1, 2, 3}
	vt := cubeVertexTable(map[string][]float64{"v": vals})
	c := surface.ResolveColoring(vt, surface.ColoringParams{
		Kind: surface.ColorPerVertex,
		Red:  "v", Green: "v", Blue: "v",
	})
	want := []uint8{0, 255, 0, 255, 127, 1, 2, 3}
	for row, w := range want {
		if got := c.At(row)[0]; got != w {
			t.Fatalf("At(%d) = %d, want %d", row, got, w)
		}
	}
}
