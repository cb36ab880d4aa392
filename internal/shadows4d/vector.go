package shadows4d

import "math"

// Vector2 is a point on the ground plane of a 3D scene: X is world x, Y is world z.
type Vector2 struct {
	X, Y Real
}

// Vector3 is a point or direction in 3D space.
type Vector3 struct {
	X, Y, Z Real
}

// Vector4 is a point or direction in 4D space.
type Vector4 struct {
	X, Y, Z, W Real
}

// Vector functions
func (a Vector2) Add(b Vector2) Vector2 { return Vector2{a.X + b.X, a.Y + b.Y} }
func (a Vector2) Sub(b Vector2) Vector2 { return Vector2{a.X - b.X, a.Y - b.Y} }
func (v Vector2) Mul(s Real) Vector2    { return Vector2{v.X * s, v.Y * s} }

func (a Vector3) Add(b Vector3) Vector3 { return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vector3) Sub(b Vector3) Vector3 { return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vector3) Mul(s Real) Vector3    { return Vector3{v.X * s, v.Y * s, v.Z * s} }

func (a Vector4) Add(b Vector4) Vector4 { return Vector4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W} }
func (a Vector4) Sub(b Vector4) Vector4 { return Vector4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W} }
func (v Vector4) Mul(s Real) Vector4    { return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s} }

// Dot returns the dot product between two 3D vectors.
func (a Vector3) Dot(b Vector3) Real { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Dot returns the dot product between two 4D vectors.
func (a Vector4) Dot(b Vector4) Real { return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W }

// Cross returns the 3D cross product a × b.
func (a Vector3) Cross(b Vector3) Vector3 {
	return Vector3{a.Y*b.Z - a.Z*b.Y, a.Z*b.X - a.X*b.Z, a.X*b.Y - a.Y*b.X}
}

// Len returns the Euclidean length of the vector.
func (v Vector2) Len() Real { return math.Hypot(v.X, v.Y) }
func (v Vector3) Len() Real { return math.Sqrt(v.Dot(v)) }
func (v Vector4) Len() Real { return math.Sqrt(v.Dot(v)) }

// Norm returns a unit-length version of the vector.
// A zero vector is returned unchanged.
func (v Vector3) Norm() Vector3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}
}

func (v Vector4) Norm() Vector4 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vector4{v.X / l, v.Y / l, v.Z / l, v.W / l}
}

// XYZ drops the w coordinate.
func (v Vector4) XYZ() Vector3 { return Vector3{v.X, v.Y, v.Z} }

// WithW lifts a 3D vector into 4D.
func (v Vector3) WithW(w Real) Vector4 { return Vector4{v.X, v.Y, v.Z, w} }
