package shadows4d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-9

func near2(t *testing.T, want, got Vector2, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, tol, msgAndArgs...)
}

func near3(t *testing.T, want, got Vector3, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, tol, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, tol, msgAndArgs...)
}

func near4(t *testing.T, want, got Vector4, msgAndArgs ...interface{}) {
	t.Helper()
	near3(t, want.XYZ(), got.XYZ(), msgAndArgs...)
	assert.InDelta(t, want.W, got.W, tol, msgAndArgs...)
}

func nearMat3(t *testing.T, want, got Mat3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, want.M[i][j], got.M[i][j], tol, "M[%d][%d]", i, j)
		}
	}
}

func nearMat4(t *testing.T, want, got Mat4) {
	t.Helper()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, want.M[i][j], got.M[i][j], tol, "M[%d][%d]", i, j)
		}
	}
}
