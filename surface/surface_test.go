package surface_test

import (
	"context"
	"time"

	viper "github.com/oscarrojasl/molstar-viper"
	"github.com/oscarrojasl/molstar-viper/task"
)

// testContext returns an execution context that never wants to yield, so
// tests exercise pipeline logic without timing sensitivity.
func testContext() *task.Context {
	return task.NewContext(context.Background(), task.WithBudget(time.Hour))
}

var (
	cubeX = []float64{-1, 1, 1, -1, -1, 1, 1, -1}
	cubeY = []float64{-1, -1, 1, 1, -1, -1, 1, 1}
	cubeZ = []float64{-1, -1, -1, -1, 1, 1, 1, 1}

	// 12 triangles, wound counter-clockwise seen from outside.
	cubeFaces = [][]uint32{
		{0, 2, 1}, {0, 3, 2}, // -z
		{4, 5, 6}, {4, 6, 7}, // +z
		{0, 1, 5}, {0, 5, 4}, // -y
		{2, 3, 7}, {2, 7, 6}, // +y
		{0, 4, 7}, {0, 7, 3}, // -x
		{1, 2, 6}, {1, 6, 5}, // +x
	}
)

// cubeVertexTable returns the 8-corner cube vertex table. extra columns
// are added on top of x/y/z.
func cubeVertexTable(extra map[string][]float64) *viper.Table {
	vt := viper.NewTable(viper.ElemVertex, 8).
		AddFloats("x", cubeX).
		AddFloats("y", cubeY).
		AddFloats("z", cubeZ)
	for name, data := range extra {
		vt.AddFloats(name, data)
	}
	return vt
}

func cubeFaceTable() *viper.Table {
	return viper.NewTable(viper.ElemFace, len(cubeFaces)).AddList("indices", cubeFaces)
}

func cubeDataset(extra map[string][]float64) *viper.Dataset {
	return viper.NewDataset("cube", map[string]*viper.Table{
		viper.ElemVertex: cubeVertexTable(extra),
		viper.ElemFace:   cubeFaceTable(),
	})
}
