package shadows4d

import (
	"math"
	"slices"
)

// Shape3D is a rigid wireframe in 3D whose shadow falls on the ground plane y=0.
//
// The rest pose holds vertex offsets from Center as of the last Commit. Rotate
// always starts from the rest pose, so repeated interactive rotations do not
// accumulate floating point drift; between calls vertex[i] == rest[i] + center.
type Shape3D struct {
	name      string
	scale     Real // object scale baked into the vertices
	grabRange Real // fine-tunes the controller reach for this shape
	light     *Light

	center Vector3
	rest   []Vector3
	verts  []Vector3
	edges  []Edge

	minY, maxY   Real
	shadow       []Vector2 // ground (x,z) of each vertex shadow
	depth        []Real    // depth scale per vertex, Occluded when hidden
	edgeXf       []EdgeTransform
	shadowEdgeXf []EdgeTransform
}

// NewShape3D places vertices (in model space) scaled by scale around center.
func NewShape3D(name string, vertices []Vector3, edges []Edge, scale, grabRange Real, center Vector3, light *Light) (*Shape3D, error) {
	if err := validateShape(name, len(vertices), edges, scale, light); err != nil {
		return nil, err
	}
	if grabRange <= 0 {
		grabRange = 1
	}
	s := &Shape3D{
		name:         name,
		scale:        scale,
		grabRange:    grabRange,
		light:        light,
		center:       center,
		rest:         make([]Vector3, len(vertices)),
		verts:        make([]Vector3, len(vertices)),
		edges:        slices.Clone(edges),
		shadow:       make([]Vector2, len(vertices)),
		depth:        make([]Real, len(vertices)),
		edgeXf:       make([]EdgeTransform, len(edges)),
		shadowEdgeXf: make([]EdgeTransform, len(edges)),
	}
	for i, v := range vertices {
		s.verts[i] = v.Mul(scale).Add(center)
	}
	s.Commit()
	s.RefreshShadow()
	s.RefreshEdges()
	DebugLog("Created 3D shape %q: %d vertices, %d edges, scale=%.3f", name, len(vertices), len(edges), scale)
	return s, nil
}

func (s *Shape3D) Name() string { return s.name }
func (s *Shape3D) Dim() int     { return 3 }

// Rotate turns the rest pose by r around the center.
func (s *Shape3D) Rotate(r Rot3) {
	m := Rotation3D(r)
	for i, p := range s.rest {
		s.verts[i] = RotatePoint3(p.Add(s.center), m, s.center)
	}
	s.RefreshShadow()
	s.RefreshEdges()
}

// Translate moves the center to c, keeping the rest pose orientation.
func (s *Shape3D) Translate(c Vector3) {
	s.center = c
	for i, p := range s.rest {
		s.verts[i] = p.Add(c)
	}
	s.RefreshShadow()
	s.RefreshEdges()
}

// Commit captures the current vertices as the new rest pose. Callers must
// commit at the end of every manipulation, otherwise the next Rotate starts
// again from the previous rest pose and the manipulation is lost.
func (s *Shape3D) Commit() {
	for i, v := range s.verts {
		s.rest[i] = v.Sub(s.center)
	}
}

func (s *Shape3D) minmax() {
	s.minY, s.maxY = math.Inf(1), math.Inf(-1)
	for _, v := range s.verts {
		s.minY = math.Min(s.minY, v.Y)
		s.maxY = math.Max(s.maxY, v.Y)
	}
}

// RefreshShadow recomputes every shadow point from the current vertices and light.
func (s *Shape3D) RefreshShadow() {
	s.minmax()
	L := s.light.State()
	for i, v := range s.verts {
		s.shadow[i], s.depth[i] = Project3(L.Position, v, s.minY, s.maxY)
	}
}

// RefreshEdges realigns the edge primitives of the wireframe and of its shadow.
func (s *Shape3D) RefreshEdges() {
	norm := 1 / s.scale
	for k, e := range s.edges {
		s.edgeXf[k] = AlignEdge(s.verts[e[0]], s.verts[e[1]], norm)
		a, b := s.shadow[e[0]], s.shadow[e[1]]
		xf := AlignEdge(Vector3{a.X, 0, a.Y}, Vector3{b.X, 0, b.Y}, norm)
		xf.Hidden = s.depth[e[0]] == Occluded || s.depth[e[1]] == Occluded
		s.shadowEdgeXf[k] = xf
	}
}

// Reaches reports whether a controller at p with the given reach can grab the shape.
func (s *Shape3D) Reaches(p Vector3, reach Real) bool {
	return p.Sub(s.center).Len() <= reach*s.scale*s.grabRange
}

func (s *Shape3D) Center() Vector3                       { return s.center }
func (s *Shape3D) Scale() Real                           { return s.scale }
func (s *Shape3D) Vertices() []Vector3                   { return slices.Clone(s.verts) }
func (s *Shape3D) RestPose() []Vector3                   { return slices.Clone(s.rest) }
func (s *Shape3D) Edges() []Edge                         { return slices.Clone(s.edges) }
func (s *Shape3D) Shadow() []Vector2                     { return slices.Clone(s.shadow) }
func (s *Shape3D) DepthScales() []Real                   { return slices.Clone(s.depth) }
func (s *Shape3D) EdgeTransforms() []EdgeTransform       { return slices.Clone(s.edgeXf) }
func (s *Shape3D) ShadowEdgeTransforms() []EdgeTransform { return slices.Clone(s.shadowEdgeXf) }
