package shadows4d

import "fmt"

// Edge is an unordered pair of vertex indices.
type Edge [2]int

// Shape is what a Registry needs from a 3D or 4D shape.
type Shape interface {
	Name() string
	Dim() int
	RefreshShadow()
	RefreshEdges()
	Commit()
}

var (
	_ Shape = (*Shape3D)(nil)
	_ Shape = (*Shape4D)(nil)
)

// EdgesFromPairs converts loosely typed index pairs (as decoded from config)
// into edges, rejecting anything that is not a pair.
func EdgesFromPairs(pairs [][]int) ([]Edge, error) {
	out := make([]Edge, 0, len(pairs))
	for i, p := range pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("edge #%d has %d indices: %w", i, len(p), ErrEdgeShape)
		}
		out = append(out, Edge{p[0], p[1]})
	}
	return out, nil
}

// validateShape checks the construction contract shared by 3D and 4D shapes.
func validateShape(name string, nVerts int, edges []Edge, scale Real, light *Light) error {
	if nVerts == 0 {
		return fmt.Errorf("shape %q: %w", name, ErrNoVertices)
	}
	if !(scale > 0) || !isFinite(scale) {
		return fmt.Errorf("shape %q: got %.6g: %w", name, scale, ErrScale)
	}
	if light == nil {
		return fmt.Errorf("shape %q: %w", name, ErrNoLight)
	}
	for k, e := range edges {
		for _, idx := range e {
			if idx < 0 || idx >= nVerts {
				return fmt.Errorf("shape %q: edge #%d (%d,%d) with %d vertices: %w", name, k, e[0], e[1], nVerts, ErrEdgeIndex)
			}
		}
		if e[0] == e[1] {
			return fmt.Errorf("shape %q: edge #%d loops on vertex %d: %w", name, k, e[0], ErrEdgeShape)
		}
	}
	return nil
}
