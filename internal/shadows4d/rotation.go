package shadows4d

import "math"

// Rot3 holds rotation angles (radians) around the x, y and z axes.
type Rot3 struct {
	X, Y, Z Real
}

// Rot4 holds rotation angles (radians) in the six coordinate planes of 4D space.
type Rot4 struct {
	XY, XZ, XW, YZ, YW, ZW Real
}

func (r Rot3) Neg() Rot3 { return Rot3{-r.X, -r.Y, -r.Z} }
func (r Rot4) Neg() Rot4 { return Rot4{-r.XY, -r.XZ, -r.XW, -r.YZ, -r.YW, -r.ZW} }

// Scale multiplies every angle by k.
func (r Rot3) Scale(k Real) Rot3 { return Rot3{r.X * k, r.Y * k, r.Z * k} }
func (r Rot4) Scale(k Real) Rot4 {
	return Rot4{r.XY * k, r.XZ * k, r.XW * k, r.YZ * k, r.YW * k, r.ZW * k}
}

func rotX(a Real) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	M := I3()
	M.M[1][1], M.M[1][2] = c, s
	M.M[2][1], M.M[2][2] = -s, c
	return M
}
func rotY(a Real) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	M := I3()
	M.M[0][0], M.M[0][2] = c, -s
	M.M[2][0], M.M[2][2] = s, c
	return M
}
func rotZ(a Real) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	M := I3()
	M.M[0][0], M.M[0][1] = c, s
	M.M[1][0], M.M[1][1] = -s, c
	return M
}

// Rotation3D builds the combined rotation for the given Euler angles.
// Angles are negated before use (Rz(-z)·Ry(-y)·Rx(-x) in row form), which is
// what makes a positive drag turn the shape clockwise on screen. The result is
// the same as rotX(x).Mul(rotY(y)).Mul(rotZ(z)): z is applied first.
func Rotation3D(r Rot3) Mat3 {
	cx, sx := math.Cos(-r.X), math.Sin(-r.X)
	cy, sy := math.Cos(-r.Y), math.Sin(-r.Y)
	cz, sz := math.Cos(-r.Z), math.Sin(-r.Z)
	return Mat3{M: [3][3]Real{
		{cy * cz, sx*sy*cz - cx*sz, cx*sy*cz + sx*sz},
		{cy * sz, sx*sy*sz + cx*cz, cx*sy*sz - sx*cz},
		{-sy, sx * cy, cx * cy},
	}}
}

// Plane rotations: each one turns the first named axis towards the second
// and leaves the other two axes fixed.
func rotXY(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][1] = c, s
	M.M[1][0], M.M[1][1] = -s, c
	return M
}
func rotXZ(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][2] = c, s
	M.M[2][0], M.M[2][2] = -s, c
	return M
}
func rotXW(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][3] = c, s
	M.M[3][0], M.M[3][3] = -s, c
	return M
}
func rotYZ(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[1][1], M.M[1][2] = c, s
	M.M[2][1], M.M[2][2] = -s, c
	return M
}
func rotYW(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[1][1], M.M[1][3] = c, s
	M.M[3][1], M.M[3][3] = -s, c
	return M
}
func rotZW(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[2][2], M.M[2][3] = c, s
	M.M[3][2], M.M[3][3] = -s, c
	return M
}

// Rotation4D composes the six plane rotations in the fixed order
// xy, xz, xw, yz, yw, zw. Plane rotations do not commute, so this order
// defines how a set of angles turns a shape and must not change.
// Applied to a vector, zw acts first and xy last.
func Rotation4D(r Rot4) Mat4 {
	R := rotXY(r.XY)
	R = R.Mul(rotXZ(r.XZ))
	R = R.Mul(rotXW(r.XW))
	R = R.Mul(rotYZ(r.YZ))
	R = R.Mul(rotYW(r.YW))
	R = R.Mul(rotZW(r.ZW))
	return R
}

// embed3 lifts a 3D rotation into 4D, leaving w fixed.
func embed3(m Mat3) Mat4 {
	R := I4()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R.M[i][j] = m.M[i][j]
		}
	}
	return R
}

// RotatePoint3 rotates p by m around the pivot c.
func RotatePoint3(p Vector3, m Mat3, c Vector3) Vector3 {
	return m.MulVec(p.Sub(c)).Add(c)
}

// RotatePoint4 rotates p by m around the pivot c.
func RotatePoint4(p Vector4, m Mat4, c Vector4) Vector4 {
	return m.MulVec(p.Sub(c)).Add(c)
}
