package shadows4d

import (
	"math"
	"slices"
)

// Shape4D is a rigid wireframe in 4D. It is never drawn directly: only its
// shadow in the w=0 space is, so edges are aligned between shadow points.
type Shape4D struct {
	name  string
	scale Real
	light *Light

	center Vector4
	rest   []Vector4
	verts  []Vector4
	edges  []Edge

	minW, maxW Real
	shadow     []Vector3
	depth      []Real
	edgeXf     []EdgeTransform
}

// NewShape4D places vertices (in model space) scaled by scale around center.
func NewShape4D(name string, vertices []Vector4, edges []Edge, scale Real, center Vector4, light *Light) (*Shape4D, error) {
	if err := validateShape(name, len(vertices), edges, scale, light); err != nil {
		return nil, err
	}
	s := &Shape4D{
		name:   name,
		scale:  scale,
		light:  light,
		center: center,
		rest:   make([]Vector4, len(vertices)),
		verts:  make([]Vector4, len(vertices)),
		edges:  slices.Clone(edges),
		shadow: make([]Vector3, len(vertices)),
		depth:  make([]Real, len(vertices)),
		edgeXf: make([]EdgeTransform, len(edges)),
	}
	for i, v := range vertices {
		s.verts[i] = v.Mul(scale).Add(center)
	}
	s.Commit()
	s.RefreshShadow()
	s.RefreshEdges()
	DebugLog("Created 4D shape %q: %d vertices, %d edges, scale=%.3f", name, len(vertices), len(edges), scale)
	return s, nil
}

func (s *Shape4D) Name() string { return s.name }
func (s *Shape4D) Dim() int     { return 4 }

// Rotate turns the rest pose by r (see Rotation4D for the plane order) around the center.
func (s *Shape4D) Rotate(r Rot4) {
	s.rotateBy(Rotation4D(r))
}

// rotateBy turns the rest pose by m around the center.
func (s *Shape4D) rotateBy(m Mat4) {
	for i, p := range s.rest {
		s.verts[i] = RotatePoint4(p.Add(s.center), m, s.center)
	}
	s.RefreshShadow()
	s.RefreshEdges()
}

// Translate moves the center to c, keeping the rest pose orientation.
func (s *Shape4D) Translate(c Vector4) {
	s.center = c
	for i, p := range s.rest {
		s.verts[i] = p.Add(c)
	}
	s.RefreshShadow()
	s.RefreshEdges()
}

// Commit captures the current vertices as the new rest pose.
func (s *Shape4D) Commit() {
	for i, v := range s.verts {
		s.rest[i] = v.Sub(s.center)
	}
}

func (s *Shape4D) minmax() {
	s.minW, s.maxW = math.Inf(1), math.Inf(-1)
	for _, v := range s.verts {
		s.minW = math.Min(s.minW, v.W)
		s.maxW = math.Max(s.maxW, v.W)
	}
}

// RefreshShadow recomputes every shadow point from the current vertices and light.
func (s *Shape4D) RefreshShadow() {
	s.minmax()
	L := s.light.State().Vec4()
	for i, v := range s.verts {
		s.shadow[i], s.depth[i] = Project4(L, v, s.minW, s.maxW)
	}
}

// RefreshEdges realigns the edge primitives between shadow points.
func (s *Shape4D) RefreshEdges() {
	for k, e := range s.edges {
		xf := AlignEdge(s.shadow[e[0]], s.shadow[e[1]], 1)
		xf.Hidden = s.depth[e[0]] == Occluded || s.depth[e[1]] == Occluded
		s.edgeXf[k] = xf
	}
}

// BoundingBox is the smallest axis-aligned box holding every visible shadow
// point. Occluded points are left out rather than counted at their parking
// spot below the ground. It reports false when the whole shadow is occluded.
func (s *Shape4D) BoundingBox() (Box3, bool) {
	b := emptyBox3()
	for i, p := range s.shadow {
		if s.depth[i] == Occluded {
			continue
		}
		b.expand(p)
	}
	if b.IsEmpty() {
		return Box3{}, false
	}
	return b, true
}

// Hit reports whether p lies inside the shadow's bounding box.
func (s *Shape4D) Hit(p Vector3) bool {
	b, ok := s.BoundingBox()
	return ok && b.Contains(p)
}

func (s *Shape4D) Center() Vector4                 { return s.center }
func (s *Shape4D) Scale() Real                     { return s.scale }
func (s *Shape4D) Vertices() []Vector4             { return slices.Clone(s.verts) }
func (s *Shape4D) RestPose() []Vector4             { return slices.Clone(s.rest) }
func (s *Shape4D) Edges() []Edge                   { return slices.Clone(s.edges) }
func (s *Shape4D) Shadow() []Vector3               { return slices.Clone(s.shadow) }
func (s *Shape4D) DepthScales() []Real             { return slices.Clone(s.depth) }
func (s *Shape4D) EdgeTransforms() []EdgeTransform { return slices.Clone(s.edgeXf) }
