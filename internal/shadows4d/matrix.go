package shadows4d

// Mat3 is a 3×3 matrix whose rows are the images of the basis vectors:
// row j is where e_j ends up, so MulVec(v) = Σ_j v[j]·M[j].
type Mat3 struct {
	M [3][3]Real
}

// Mat4 is the 4×4 counterpart of Mat3, same convention.
type Mat4 struct {
	M [4][4]Real
}

func I3() Mat3 {
	return Mat3{M: [3][3]Real{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

func I4() Mat4 {
	return Mat4{M: [4][4]Real{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// MulVec applies A to v: r[i] = Σ_j A[j][i]·v[j].
func (A Mat3) MulVec(v Vector3) Vector3 {
	return Vector3{
		v.X*A.M[0][0] + v.Y*A.M[1][0] + v.Z*A.M[2][0],
		v.X*A.M[0][1] + v.Y*A.M[1][1] + v.Z*A.M[2][1],
		v.X*A.M[0][2] + v.Y*A.M[1][2] + v.Z*A.M[2][2],
	}
}

func (A Mat4) MulVec(v Vector4) Vector4 {
	return Vector4{
		v.X*A.M[0][0] + v.Y*A.M[1][0] + v.Z*A.M[2][0] + v.W*A.M[3][0],
		v.X*A.M[0][1] + v.Y*A.M[1][1] + v.Z*A.M[2][1] + v.W*A.M[3][1],
		v.X*A.M[0][2] + v.Y*A.M[1][2] + v.Z*A.M[2][2] + v.W*A.M[3][2],
		v.X*A.M[0][3] + v.Y*A.M[1][3] + v.Z*A.M[2][3] + v.W*A.M[3][3],
	}
}

// Mul composes A and B so that A.Mul(B).MulVec(v) == A.MulVec(B.MulVec(v)),
// i.e. B is applied first.
func (A Mat3) Mul(B Mat3) Mat3 {
	var R Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += A.M[k][j] * B.M[i][k]
			}
			R.M[i][j] = sum
		}
	}
	return R
}

func (A Mat4) Mul(B Mat4) Mat4 {
	var R Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += A.M[k][j] * B.M[i][k]
			}
			R.M[i][j] = sum
		}
	}
	return R
}

func (A Mat3) Transpose() Mat3 {
	var R Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			R.M[r][c] = A.M[c][r]
		}
	}
	return R
}

func (A Mat4) Transpose() Mat4 {
	var R Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			R.M[r][c] = A.M[c][r]
		}
	}
	return R
}
