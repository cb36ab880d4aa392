package shadows4d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gestureScene has a cube at (0,1,0) and a tesseract whose shadow (the light
// has w=0, so shadows are isometric) spans [2.5,3.5]x[0.5,1.5]x[-0.5,0.5].
func gestureScene(t *testing.T) (*Controller, *Shape3D, *Shape4D) {
	t.Helper()
	reg := NewRegistry(NewLight(Vector3{0, 5, 0}, 0))
	V3, E3, err := Polytope3("cube")
	require.NoError(t, err)
	s3, err := NewShape3D("cube", V3, E3, 1, 1, Vector3{0, 1, 0}, reg.Light)
	require.NoError(t, err)
	V4, E4, err := Polytope4("tesseract")
	require.NoError(t, err)
	s4, err := NewShape4D("tesseract", V4, E4, 1, Vector4{3, 1, 0, 0}, reg.Light)
	require.NoError(t, err)
	reg.Add(s3, true)
	reg.Add(s4, true)
	return NewController(reg), s3, s4
}

func TestGrab3D(t *testing.T) {
	c, s3, _ := gestureScene(t)
	rest := s3.RestPose()
	assert.Equal(t, Idle{}, c.State())

	hand := Pose{Position: Vector3{0.2, 1, 0}}
	require.Equal(t, Grabbing{Target: s3}, c.Update(hand, true, false))

	// the shape keeps its offset from the hand
	hand.Position = Vector3{1.2, 1, 0}
	c.Update(hand, true, false)
	near3(t, Vector3{1, 1, 0}, s3.Center())

	// turning the hand by 90 degrees turns the shape by 1.5 radians
	hand.Euler = Vector3{0, 0, 90}
	c.Update(hand, true, false)
	delta := Rot3{Z: 90 / EulerGain}
	m := Rotation3D(delta)
	near3(t, hand.Position.Add(m.MulVec(Vector3{-0.2, 0, 0})), s3.Center())
	for i, v := range s3.Vertices() {
		near3(t, m.MulVec(rest[i]).Add(s3.Center()), v)
	}
	moved := s3.Vertices()

	assert.Equal(t, Idle{}, c.Update(hand, false, false))
	s3.Rotate(Rot3{})
	for i, v := range s3.Vertices() {
		near3(t, moved[i], v, "release commits the pose")
	}
}

func TestGrabNothingKeepsHandEmpty(t *testing.T) {
	c, s3, _ := gestureScene(t)
	before := s3.Vertices()

	far := Pose{Position: Vector3{10, 10, 10}}
	assert.Equal(t, Grabbing{}, c.Update(far, true, false))

	// sweeping through the cube with the trigger held does not pick it up
	near := Pose{Position: Vector3{0, 1, 0}, Euler: Vector3{30, 0, 0}}
	assert.Equal(t, Grabbing{}, c.Update(near, true, false))
	assert.Equal(t, before, s3.Vertices())

	assert.Equal(t, Idle{}, c.Update(near, false, false))
	assert.Equal(t, Grabbing{Target: s3}, c.Update(near, true, false))
}

func TestGrab4D(t *testing.T) {
	c, _, s4 := gestureScene(t)
	rest := s4.RestPose()

	hand := Pose{Position: Vector3{3, 1, 0}}
	require.Equal(t, Grabbing{Target: s4}, c.Update(hand, true, false))

	// a twist turns the 4D shape like a 3D one and leaves w alone
	for _, euler := range []Vector3{{60, 0, 0}, {0, 60, 0}, {0, 0, 60}, {30, -20, 45}} {
		hand.Euler = euler
		c.Update(hand, true, false)
		d := euler.Mul(1 / EulerGain)
		m := Rotation3D(Rot3{d.X, d.Y, d.Z})
		near4(t, Vector4{3, 1, 0, 0}, s4.Center())
		for i, v := range s4.Vertices() {
			near3(t, m.MulVec(rest[i].XYZ()).Add(s4.Center().XYZ()), v.XYZ(), "euler %v", euler)
			assert.InDelta(t, rest[i].W+s4.Center().W, v.W, tol, "euler %v moved w", euler)
		}
	}
	assert.Equal(t, Idle{}, c.Update(hand, false, false))
}

func TestGrab4DPlanes(t *testing.T) {
	// x twist turns y toward z, y twist turns z toward x, z twist turns x toward y
	near4(t, rotYZ(0.3).MulVec(Vector4{1, 2, 3, 4}), embed3(Rotation3D(Rot3{X: 0.3})).MulVec(Vector4{1, 2, 3, 4}))
	near4(t, rotXZ(-0.3).MulVec(Vector4{1, 2, 3, 4}), embed3(Rotation3D(Rot3{Y: 0.3})).MulVec(Vector4{1, 2, 3, 4}))
	near4(t, rotXY(0.3).MulVec(Vector4{1, 2, 3, 4}), embed3(Rotation3D(Rot3{Z: 0.3})).MulVec(Vector4{1, 2, 3, 4}))
}

func TestSelect4D(t *testing.T) {
	c, _, s4 := gestureScene(t)
	rest := s4.RestPose()

	hand := Pose{Position: Vector3{3, 1, 0}}
	require.Equal(t, Selecting{Target: s4}, c.Update(hand, false, true))

	cases := []struct {
		to Vector3
		m  Mat4
	}{
		{Vector3{3.1, 1, 0}, rotXW(0.1 * SelectGain)},
		{Vector3{3, 1.1, 0}, rotYW(0.1 * SelectGain)},
		{Vector3{3, 1, 0.1}, rotZW(0.1 * SelectGain)},
		{Vector3{3.1, 0.9, 0.2}, rotZW(0.2 * SelectGain).Mul(rotYW(-0.1 * SelectGain)).Mul(rotXW(0.1 * SelectGain))},
	}
	for _, tc := range cases {
		hand.Position = tc.to
		// the trigger is ignored while selecting
		assert.Equal(t, Selecting{Target: s4}, c.Update(hand, true, true))
		movedW := false
		for i, v := range s4.Vertices() {
			near4(t, tc.m.MulVec(rest[i]).Add(s4.Center()), v, "hand at %v", tc.to)
			if d := v.W - rest[i].W - s4.Center().W; d > 1e-3 || d < -1e-3 {
				movedW = true
			}
		}
		assert.True(t, movedW, "selecting turns the shape through w")
	}
	selected := s4.Vertices()

	assert.Equal(t, Idle{}, c.Update(hand, false, false))
	s4.Rotate(Rot4{})
	for i, v := range s4.Vertices() {
		near4(t, selected[i], v, "unselect commits the pose")
	}
}

func TestSelectOnlyPicks4D(t *testing.T) {
	c, _, _ := gestureScene(t)
	onCube := Pose{Position: Vector3{0, 1, 0}}
	assert.Equal(t, Selecting{}, c.Update(onCube, false, true))
	assert.Equal(t, Idle{}, c.Update(onCube, false, false))
}
