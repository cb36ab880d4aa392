package shadows4d

import (
	"fmt"
	"math"
	"sort"
)

// Canonical wireframes, centered at the origin with unit edge length.
// Edges are the vertex pairs at the minimal nonzero distance, which is
// exactly the edge set for every regular polytope listed here.

var polytopes3 = map[string]func() []Vector3{
	"cube":        cubeVerts,
	"tetrahedron": tetrahedronVerts,
	"octahedron":  octahedronVerts,
}

var polytopes4 = map[string]func() []Vector4{
	"cell5":     cell5Verts,
	"cell8":     cell8Verts,
	"tesseract": cell8Verts,
	"cell16":    cell16Verts,
	"cell24":    cell24Verts,
	"cell600":   cell600Verts,
}

// Kinds3 and Kinds4 list the known polytope names, sorted.
func Kinds3() []string { return sortedKeys(polytopes3) }
func Kinds4() []string { return sortedKeys(polytopes4) }

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Polytope3 returns the vertices and edges of a named 3D polytope.
func Polytope3(kind string) ([]Vector3, []Edge, error) {
	gen, ok := polytopes3[kind]
	if !ok {
		return nil, nil, fmt.Errorf("3D kind %q (known: %v): %w", kind, Kinds3(), ErrUnknownKind)
	}
	V := gen()
	edges, base := minDistEdges(len(V), func(i, j int) Real { return V[i].Sub(V[j]).Len() })
	for i := range V {
		V[i] = V[i].Mul(1 / base)
	}
	return V, edges, nil
}

// Polytope4 returns the vertices and edges of a named 4D polytope.
func Polytope4(kind string) ([]Vector4, []Edge, error) {
	gen, ok := polytopes4[kind]
	if !ok {
		return nil, nil, fmt.Errorf("4D kind %q (known: %v): %w", kind, Kinds4(), ErrUnknownKind)
	}
	V := gen()
	edges, base := minDistEdges(len(V), func(i, j int) Real { return V[i].Sub(V[j]).Len() })
	for i := range V {
		V[i] = V[i].Mul(1 / base)
	}
	return V, edges, nil
}

// minDistEdges connects every pair at the minimal nonzero distance and
// returns that distance.
func minDistEdges(n int, dist func(i, j int) Real) ([]Edge, Real) {
	base := math.Inf(1)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if d := dist(i, j); d > Epsilon && d < base {
				base = d
			}
		}
	}
	var edges []Edge
	tol := base * 1e-6
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(dist(i, j)-base) <= tol {
				edges = append(edges, Edge{i, j})
			}
		}
	}
	return edges, base
}

// signs enumerates all ±1 combinations of length n in a stable order.
func signs(n int) [][]Real {
	out := make([][]Real, 0, 1<<n)
	for m := 0; m < 1<<n; m++ {
		s := make([]Real, n)
		for k := 0; k < n; k++ {
			s[k] = 1
			if m&(1<<k) != 0 {
				s[k] = -1
			}
		}
		out = append(out, s)
	}
	return out
}

func cubeVerts() []Vector3 {
	var V []Vector3
	for _, s := range signs(3) {
		V = append(V, Vector3{s[0], s[1], s[2]})
	}
	return V
}

// alternate corners of the cube
func tetrahedronVerts() []Vector3 {
	return []Vector3{{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}}
}

func octahedronVerts() []Vector3 {
	return []Vector3{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
}

// cell5Verts projects the five unit vectors of R^5, minus their centroid,
// onto the 4D subspace orthogonal to (1,1,1,1,1) using the Helmert basis
// b_k = (1,..,1,-k,0,..)/sqrt(k(k+1)).
func cell5Verts() []Vector4 {
	var B [4][5]Real
	for k := 1; k <= 4; k++ {
		n := math.Sqrt(Real(k * (k + 1)))
		for i := 0; i < k; i++ {
			B[k-1][i] = 1 / n
		}
		B[k-1][k] = -Real(k) / n
	}
	V := make([]Vector4, 5)
	for i := 0; i < 5; i++ {
		var c [4]Real
		for k := 0; k < 4; k++ {
			for j := 0; j < 5; j++ {
				e := -0.2
				if i == j {
					e = 0.8
				}
				c[k] += B[k][j] * e
			}
		}
		V[i] = Vector4{c[0], c[1], c[2], c[3]}
	}
	return V
}

func cell8Verts() []Vector4 {
	var V []Vector4
	for _, s := range signs(4) {
		V = append(V, Vector4{s[0], s[1], s[2], s[3]})
	}
	return V
}

// ±1 on a single axis
func cell16Verts() []Vector4 {
	var V []Vector4
	for axis := 0; axis < 4; axis++ {
		for _, s := range []Real{1, -1} {
			var c [4]Real
			c[axis] = s
			V = append(V, Vector4{c[0], c[1], c[2], c[3]})
		}
	}
	return V
}

// all permutations of (±1, ±1, 0, 0)
func cell24Verts() []Vector4 {
	var V []Vector4
	pos := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	for _, p := range pos {
		for _, s := range signs(2) {
			var c [4]Real
			c[p[0]], c[p[1]] = s[0], s[1]
			V = append(V, Vector4{c[0], c[1], c[2], c[3]})
		}
	}
	return V
}

// the 12 even permutations of (0,1,2,3)
var evenPerms4 = [12][4]int{
	{0, 1, 2, 3}, {0, 2, 3, 1}, {0, 3, 1, 2},
	{1, 0, 3, 2}, {1, 2, 0, 3}, {1, 3, 2, 0},
	{2, 0, 1, 3}, {2, 1, 3, 0}, {2, 3, 0, 1},
	{3, 0, 2, 1}, {3, 1, 0, 2}, {3, 2, 1, 0},
}

// cell600Verts is the unit-radius 600-cell: 8 axis points, 16 of (±1/2,±1/2,±1/2,±1/2)
// and 96 even permutations of (0, ±1/2, ±φ/2, ±1/(2φ)) with every sign choice.
func cell600Verts() []Vector4 {
	phi := (1 + math.Sqrt(5)) / 2
	V := cell16Verts()
	for _, s := range signs(4) {
		V = append(V, Vector4{s[0] / 2, s[1] / 2, s[2] / 2, s[3] / 2})
	}
	base := [4]Real{0, 0.5, phi / 2, 1 / (2 * phi)}
	for _, p := range evenPerms4 {
		for _, s := range signs(3) {
			var c [4]Real
			k := 0
			for i := 0; i < 4; i++ {
				c[i] = base[p[i]]
				if c[i] != 0 {
					c[i] *= s[k]
					k++
				}
			}
			V = append(V, Vector4{c[0], c[1], c[2], c[3]})
		}
	}
	return V
}
