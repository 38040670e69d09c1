package surface

import (
	viper "github.com/oscarrojasl/molstar-viper"
	"github.com/oscarrojasl/molstar-viper/task"
)

// Cache is the single-slot incremental shape cache. It remembers the last
// dataset identity, a snapshot of the last parameter set and the last
// mesh/grouping/coloring, and on each request picks the cheapest action:
//
//   - same dataset, same grouping and coloring params: return the cached
//     shape untouched;
//   - same dataset and grouping params, different coloring params:
//     re-resolve coloring only and rebuild the shape over the cached mesh
//     and grouping;
//   - anything else: full rebuild.
//
// On any error the cache keeps its previous state, so a failed or
// cancelled request never invalidates the last good shape.
//
// The cache is a single mutable slot with no internal locking; callers
// sharing one across goroutines must serialize requests.
type Cache struct {
	dataset  *viper.Dataset
	params   Params
	mesh     *Mesh
	grouping *Grouping
	coloring Coloring
	shape    *Shape
}

// Shape returns the shape for (ds, p), rebuilding as little as the diff
// against the previous request allows. Dataset identity is pointer
// identity; parameter equality is structural.
func (c *Cache) Shape(tc *task.Context, ds *viper.Dataset, p Params) (*Shape, error) {
	if c.shape != nil && ds == c.dataset && p.Grouping == c.params.Grouping {
		if p.Coloring == c.params.Coloring {
			return c.shape, nil
		}
		// Color-only rebuild: keep mesh and grouping.
		vt, err := ds.Element(viper.ElemVertex)
		if err != nil {
			return nil, err
		}
		c.coloring = ResolveColoring(vt, p.Coloring)
		c.shape = newShape(ds, c.mesh, c.grouping, c.coloring)
		c.params = p
		return c.shape, nil
	}

	vt, err := ds.Element(viper.ElemVertex)
	if err != nil {
		return nil, err
	}
	ft, err := ds.Element(viper.ElemFace)
	if err != nil {
		return nil, err
	}
	grouping, err := ResolveGrouping(vt, p.groupProp(vt))
	if err != nil {
		return nil, err
	}
	coloring := ResolveColoring(vt, p.Coloring)
	// The cached mesh is a reuse hint only: Build touches its arrays
	// solely on the success path, so an error here leaves it intact.
	mesh, err := Build(tc, vt, ft, grouping, c.mesh)
	if err != nil {
		return nil, err
	}

	c.dataset = ds
	c.params = p
	c.mesh = mesh
	c.grouping = grouping
	c.coloring = coloring
	c.shape = newShape(ds, mesh, grouping, coloring)
	return c.shape, nil
}
