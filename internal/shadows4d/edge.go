package shadows4d

import "math"

// Quat is a rotation quaternion; W is the scalar part.
type Quat struct {
	X, Y, Z, W Real
}

func QuatIdentity() Quat { return Quat{W: 1} }

// Mul returns q*r: rotating by the result applies r first, then q.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

func (q Quat) Conj() Quat { return Quat{-q.X, -q.Y, -q.Z, q.W} }

func (q Quat) Len() Real { return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W) }

func (q Quat) Norm() Quat {
	l := q.Len()
	if l == 0 {
		return QuatIdentity()
	}
	return Quat{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

// Rotate applies q to v.
func (q Quat) Rotate(v Vector3) Vector3 {
	u := Vector3{q.X, q.Y, q.Z}
	t := u.Cross(v).Mul(2)
	return v.Add(t.Mul(q.W)).Add(u.Cross(t))
}

// quatFromUnitVectors is the shortest-arc rotation taking from onto to.
// Both vectors must be unit length.
func quatFromUnitVectors(from, to Vector3) Quat {
	var axis Vector3
	r := from.Dot(to) + 1
	if r < Epsilon {
		// opposite vectors: any axis perpendicular to from will do
		r = 0
		if math.Abs(from.X) > math.Abs(from.Z) {
			axis = Vector3{-from.Y, from.X, 0}
		} else {
			axis = Vector3{0, -from.Z, from.Y}
		}
	} else {
		axis = from.Cross(to)
	}
	return Quat{axis.X, axis.Y, axis.Z, r}.Norm()
}

// EdgeAxis is the long axis of the edge primitive in its own frame.
var EdgeAxis = Vector3{0, 1, 0}

// EdgeTransform places a unit cylinder-like primitive so that it spans an edge.
type EdgeTransform struct {
	Position    Vector3 // midpoint of the edge
	Orientation Quat    // turns EdgeAxis to point from the second endpoint to the first
	Length      Real    // half the edge length, times the normalization factor
	Hidden      bool    // an endpoint's shadow is occluded
}

// AlignEdge computes the transform of a primitive connecting b to a.
// norm compensates for the scale of the primitive's parent: the primitive's
// local length is half the distance divided by that scale.
func AlignEdge(a, b Vector3, norm Real) EdgeTransform {
	d := a.Sub(b)
	dist := d.Len()
	et := EdgeTransform{
		Position:    a.Add(b).Mul(0.5),
		Orientation: QuatIdentity(),
		Length:      dist * 0.5 * norm,
	}
	if dist < Epsilon {
		return et
	}
	et.Orientation = quatFromUnitVectors(EdgeAxis, d.Mul(1/dist))
	return et
}
