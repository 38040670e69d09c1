package surface

import (
	"fmt"

	viper "github.com/oscarrojasl/molstar-viper"
)

// Shape is the finished handle over a built mesh: it references the source
// dataset and answers color, size and label queries keyed by group id. Its
// callbacks are valid for every group id present in the mesh's group
// buffer.
type Shape struct {
	dataset  *viper.Dataset
	grouping *Grouping
	coloring Coloring

	Mesh *Mesh
}

func newShape(ds *viper.Dataset, m *Mesh, g *Grouping, c Coloring) *Shape {
	return &Shape{dataset: ds, grouping: g, coloring: c, Mesh: m}
}

// Dataset returns the source dataset the shape was built from.
func (s *Shape) Dataset() *viper.Dataset { return s.dataset }

// Grouping returns the resolved grouping.
func (s *Shape) Grouping() *Grouping { return s.grouping }

// Color returns the color of a group. Unknown ids get the mid-gray
// fallback rather than an error; shapes are queried from render loops.
func (s *Shape) Color(group uint32) RGB {
	row := s.grouping.Row(group)
	if row < 0 {
		return RGB{fallbackChannel, fallbackChannel, fallbackChannel}
	}
	return s.coloring.At(row)
}

// Size returns the display size of a group. Constant in this pipeline.
func (s *Shape) Size(group uint32) float64 { return 1 }

// Label returns a human-readable label for a group.
func (s *Shape) Label(group uint32) string {
	row := s.grouping.Row(group)
	if row < 0 {
		return ""
	}
	return fmt.Sprintf("Vertex %d", row)
}
