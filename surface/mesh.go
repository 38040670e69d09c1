// Package surface builds renderable surface representations from tabular
// mesh data: a mesh builder that converts vertex/face tables into flat
// vertex, normal and index buffers, grouping and coloring resolvers, and a
// single-slot incremental cache that avoids rebuilding geometry when only
// cosmetic parameters change.
package surface

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"gonum.org/v1/gonum/spatial/r3"

	viper "github.com/oscarrojasl/molstar-viper"
	"github.com/oscarrojasl/molstar-viper/internal/chunk"
	"github.com/oscarrojasl/molstar-viper/task"
)

// Property names consumed from the input tables.
const (
	PropX = "x"
	PropY = "y"
	PropZ = "z"

	PropNX = "nx"
	PropNY = "ny"
	PropNZ = "nz"

	// PropIndices is the list-valued face column holding one ordered
	// vertex index list per face row.
	PropIndices = "indices"
)

// yieldStride is the row interval between cooperative checkpoints in the
// vertex and face loops. It bounds worst-case unresponsiveness, not
// average throughput; the time budget on the task context decides whether
// a checkpoint actually suspends.
const yieldStride = 100_000

// Mesh is the immutable result of a build: flat float32 positions and
// normals (3 per vertex), triangle indices and one group id per vertex.
// Vertex index equals input row index.
type Mesh struct {
	Vertices []float32
	Normals  []float32
	Indices  []uint32
	Groups   []uint32

	VertexCount   int
	TriangleCount int

	// NormalsComputed records that the input supplied no normals and the
	// builder derived them from the triangle list.
	NormalsComputed bool

	Bounds r3.Box
}

// Build constructs a Mesh from a vertex table and a face table.
//
// The vertex table must carry x, y and z columns; nx, ny and nz are used
// only when all three are present. The face table must carry the "indices"
// list column; rows with exactly 3 indices become triangles, all other
// arities are silently skipped. Group ids are taken from g, one per vertex
// row.
//
// prev is an optional buffer-reuse hint: when non-nil its backing arrays
// are reused if large enough, and the caller must not use prev afterwards.
// Output is identical with or without it.
//
// Every 100000 rows the builder probes tc for cancellation and yields if
// the time budget has elapsed. tc must be non-nil.
func Build(tc *task.Context, vt, ft *viper.Table, g *Grouping, prev *Mesh) (*Mesh, error) {
	x, err := vt.RequireProp(PropX)
	if err != nil {
		return nil, err
	}
	y, err := vt.RequireProp(PropY)
	if err != nil {
		return nil, err
	}
	z, err := vt.RequireProp(PropZ)
	if err != nil {
		return nil, err
	}
	faces, err := ft.RequireList(PropIndices)
	if err != nil {
		return nil, err
	}
	nx, ny, nz := vt.Prop(PropNX), vt.Prop(PropNY), vt.Prop(PropNZ)
	hasNormals := !nx.IsAbsent() && !ny.IsAbsent() && !nz.IsAbsent()

	rows := vt.Rows()
	verts := chunk.NewFloat32(3 * rows)
	groups := chunk.NewUint32(rows)
	var norms *chunk.Float32
	if hasNormals {
		norms = chunk.NewFloat32(3 * rows)
	}
	bbMin := ms3.Vec{X: math32.Inf(1), Y: math32.Inf(1), Z: math32.Inf(1)}
	bbMax := ms3.Vec{X: math32.Inf(-1), Y: math32.Inf(-1), Z: math32.Inf(-1)}

	for i := 0; i < rows; i++ {
		if i%yieldStride == 0 {
			if err := checkpoint(tc, i, rows, "building vertices"); err != nil {
				return nil, err
			}
		}
		px, py, pz := float32(x.Value(i)), float32(y.Value(i)), float32(z.Value(i))
		verts.Append3(px, py, pz)
		bbMin.X = math32.Min(bbMin.X, px)
		bbMin.Y = math32.Min(bbMin.Y, py)
		bbMin.Z = math32.Min(bbMin.Z, pz)
		bbMax.X = math32.Max(bbMax.X, px)
		bbMax.Y = math32.Max(bbMax.Y, py)
		bbMax.Z = math32.Max(bbMax.Z, pz)
		if hasNormals {
			norms.Append3(float32(nx.Value(i)), float32(ny.Value(i)), float32(nz.Value(i)))
		}
		groups.Append(g.IDs[i])
	}

	frows := ft.Rows()
	idx := chunk.NewUint32(3 * frows)
	triangles := 0
	for i := 0; i < frows; i++ {
		if i%yieldStride == 0 {
			if err := checkpoint(tc, i, frows, "building faces"); err != nil {
				return nil, err
			}
		}
		ent := faces.Indices(i)
		if len(ent) != 3 {
			continue
		}
		idx.Append3(ent[0], ent[1], ent[2])
		triangles++
	}

	// Past this point the build cannot fail, so reusing prev's arrays
	// cannot corrupt a mesh a caller still depends on.
	m := &Mesh{
		VertexCount:   rows,
		TriangleCount: triangles,
	}
	if prev != nil {
		m.Vertices = verts.CompactInto(prev.Vertices)
		m.Indices = idx.CompactInto(prev.Indices)
		m.Groups = groups.CompactInto(prev.Groups)
	} else {
		m.Vertices = verts.Compact()
		m.Indices = idx.Compact()
		m.Groups = groups.Compact()
	}
	if hasNormals {
		if prev != nil {
			m.Normals = norms.CompactInto(prev.Normals)
		} else {
			m.Normals = norms.Compact()
		}
	} else {
		var dst []float32
		if prev != nil {
			dst = prev.Normals
		}
		m.Normals = computeVertexNormals(m.Vertices, m.Indices, dst)
		m.NormalsComputed = true
	}
	if rows > 0 {
		m.Bounds = r3.Box{
			Min: r3.Vec{X: float64(bbMin.X), Y: float64(bbMin.Y), Z: float64(bbMin.Z)},
			Max: r3.Vec{X: float64(bbMax.X), Y: float64(bbMax.Y), Z: float64(bbMax.Z)},
		}
	}
	return m, nil
}

func checkpoint(tc *task.Context, current, max int, msg string) error {
	if err := tc.Err(); err != nil {
		return err
	}
	if tc.ShouldYield() {
		return tc.Yield(task.Progress{Current: int64(current), Max: int64(max), Message: msg})
	}
	return nil
}

// computeVertexNormals accumulates area-weighted face normals onto each
// incident vertex and normalizes the sums. Vertices not referenced by any
// triangle keep a zero normal.
func computeVertexNormals(verts []float32, idx []uint32, dst []float32) []float32 {
	if cap(dst) < len(verts) {
		dst = make([]float32, len(verts))
	}
	dst = dst[:len(verts)]
	for i := range dst {
		dst[i] = 0
	}
	for t := 0; t+2 < len(idx); t += 3 {
		ia, ib, ic := 3*idx[t], 3*idx[t+1], 3*idx[t+2]
		a := ms3.Vec{X: verts[ia], Y: verts[ia+1], Z: verts[ia+2]}
		b := ms3.Vec{X: verts[ib], Y: verts[ib+1], Z: verts[ib+2]}
		c := ms3.Vec{X: verts[ic], Y: verts[ic+1], Z: verts[ic+2]}
		// Cross product length is twice the face area, so summing raw
		// cross products weights each face by area.
		fn := ms3.Cross(ms3.Sub(b, a), ms3.Sub(c, a))
		for _, vi := range [3]uint32{ia, ib, ic} {
			dst[vi] += fn.X
			dst[vi+1] += fn.Y
			dst[vi+2] += fn.Z
		}
	}
	for v := 0; v+2 < len(dst); v += 3 {
		n := ms3.Vec{X: dst[v], Y: dst[v+1], Z: dst[v+2]}
		if l := ms3.Norm(n); l > 0 {
			n = ms3.Scale(1/l, n)
			dst[v], dst[v+1], dst[v+2] = n.X, n.Y, n.Z
		}
	}
	return dst
}
