package surface

import viper "github.com/oscarrojasl/molstar-viper"

// GroupingKind selects how vertices are grouped.
type GroupingKind uint8

const (
	// GroupNone assigns each vertex its own sequential group id.
	GroupNone GroupingKind = iota
	// GroupByVertex reads group ids from a named vertex property.
	GroupByVertex
)

// GroupingParams configures the grouping resolver. Property is only read
// for GroupByVertex.
type GroupingParams struct {
	Kind     GroupingKind
	Property string
}

// Params is the full user-configurable parameter set of a shape request.
// Coloring and grouping vary independently: the cache compares them
// separately so changing one never forces recomputing the other.
//
// Params is a plain value type; copying it is the deep snapshot the cache
// stores as its comparison baseline.
type Params struct {
	Coloring ColoringParams
	Grouping GroupingParams
}

// groupProp resolves the grouping property selection against the vertex
// table. GroupNone and absent properties both yield the absent Prop, which
// the resolver turns into sequential ids.
func (p Params) groupProp(vt *viper.Table) viper.Prop {
	if p.Grouping.Kind != GroupByVertex {
		return viper.Prop{}
	}
	return vt.Prop(p.Grouping.Property)
}

// Fallbacks lists the property names referenced by p that are not present
// on the dataset's vertex table and will therefore resolve to their
// documented fallbacks (sequential ids, mid-gray channels). Informational;
// an empty result means every referenced name is real.
func (p Params) Fallbacks(ds *viper.Dataset) []string {
	vt, err := ds.Element(viper.ElemVertex)
	if err != nil {
		return nil
	}
	var missing []string
	add := func(name string) {
		if name != "" && vt.Prop(name).IsAbsent() {
			missing = append(missing, name)
		}
	}
	if p.Grouping.Kind == GroupByVertex {
		add(p.Grouping.Property)
	}
	if p.Coloring.Kind == ColorPerVertex {
		add(p.Coloring.Red)
		add(p.Coloring.Green)
		add(p.Coloring.Blue)
	}
	return missing
}
