package surface

import (
	"fmt"

	viper "github.com/oscarrojasl/molstar-viper"
)

// Grouping tags every vertex row with a group id and provides the reverse
// lookup. IDs holds one raw id per row; Map is a dense array sized
// max(id)+1 mapping id back to a vertex row, -1 for unused ids.
//
// Group ids are usually small-range but non-contiguous (external atom ids
// and the like); the dense map trades O(max id) memory for O(1) lookups at
// shape-query time. When several rows share an id the last row wins: the
// map serves picking and labeling, not per-vertex uniqueness.
type Grouping struct {
	IDs []uint32
	Map []int32
}

// ResolveGrouping reads the group id of every vertex row from prop, or
// synthesizes sequential ids 0..rows-1 when prop is absent. Ids must be
// non-negative.
func ResolveGrouping(vt *viper.Table, prop viper.Prop) (*Grouping, error) {
	rows := vt.Rows()
	ids := make([]uint32, rows)
	var maxID uint32
	if prop.IsAbsent() {
		for i := range ids {
			ids[i] = uint32(i)
		}
		if rows > 0 {
			maxID = uint32(rows - 1)
		}
	} else {
		for i := 0; i < rows; i++ {
			v := prop.Value(i)
			if v < 0 {
				return nil, fmt.Errorf("surface: negative group id %v at %s row %d", v, vt.Element(), i)
			}
			id := uint32(v)
			ids[i] = id
			if id > maxID {
				maxID = id
			}
		}
	}
	var m []int32
	if rows > 0 {
		m = make([]int32, maxID+1)
		for i := range m {
			m[i] = -1
		}
		for i, id := range ids {
			m[id] = int32(i) // last write wins
		}
	}
	return &Grouping{IDs: ids, Map: m}, nil
}

// Row returns the vertex row recorded for a group id, or -1 when the id
// was never assigned.
func (g *Grouping) Row(id uint32) int {
	if int(id) >= len(g.Map) {
		return -1
	}
	return int(g.Map[id])
}
