package surface

import viper "github.com/oscarrojasl/molstar-viper"

// RGB is a color triple with 0..255 channels.
type RGB [3]uint8

// ColoringKind selects how vertex colors are produced.
type ColoringKind uint8

const (
	// ColorUniform paints every vertex with one constant color.
	ColorUniform ColoringKind = iota
	// ColorPerVertex reads each channel from a named vertex property.
	ColorPerVertex
)

// ColoringParams configures the coloring resolver. For ColorUniform only
// Color is read; for ColorPerVertex the three channel property names are
// resolved against the vertex table.
type ColoringParams struct {
	Kind  ColoringKind
	Color RGB

	Red, Green, Blue string
}

// fallbackChannel is the constant mid-gray used for unset or absent
// per-vertex channel properties.
const fallbackChannel = 127

// Coloring holds the three resolved channel properties. Each is either a
// real column or a constant, so readers never branch on the mode.
type Coloring struct {
	R, G, B viper.Prop
}

// ResolveColoring resolves coloring parameters against the vertex table.
// It never fails: absent per-vertex channels fall back to mid-gray and the
// uniform mode decomposes its color into three constants.
func ResolveColoring(vt *viper.Table, p ColoringParams) Coloring {
	if p.Kind == ColorUniform {
		return Coloring{
			R: viper.ConstProp(float64(p.Color[0])),
			G: viper.ConstProp(float64(p.Color[1])),
			B: viper.ConstProp(float64(p.Color[2])),
		}
	}
	return Coloring{
		R: channelProp(vt, p.Red),
		G: channelProp(vt, p.Green),
		B: channelProp(vt, p.Blue),
	}
}

func channelProp(vt *viper.Table, name string) viper.Prop {
	p := vt.Prop(name)
	if p.IsAbsent() {
		return viper.ConstProp(fallbackChannel)
	}
	return p
}

// At reads the color of a vertex row, clamping channels to 0..255.
func (c Coloring) At(row int) RGB {
	return RGB{
		clampChannel(c.R.Value(row)),
		clampChannel(c.G.Value(row)),
		clampChannel(c.B.Value(row)),
	}
}

func clampChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
