package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5, Distance3(0, 0, 0, 3, 4, 0), 1e-6)

	a := Isometry3FromParts(Vec3{1, 2, 3}, QuatIdentity())
	b := Isometry3FromParts(Vec3{3, 5, 9}, QuatIdentity())
	assert.InDelta(t, 7, DistanceT(a, b), 1e-6)

	// 2D poses sit on the z = 0 plane.
	c := NewIsometry2(Vec2{3, 5}, 1)
	assert.InDelta(t, math.Sqrt(4+9+9), DistanceT(a, c), 1e-5)
}

func TestVecScaleDiv(t *testing.T) {
	v := Vec3{1, -2, 4}
	assert.Equal(t, Vec3{2, -4, 8}, v.Scale(2))
	assert.Equal(t, Vec3{0.5, -1, 2}, v.Div(2))
	assert.Equal(t, Vec2{3, 0}, Vec2{6, 0}.Div(2))
}

func TestQuaternion(t *testing.T) {
	assert.True(t, QuatIdentity().IsIdentity())
	assert.Zero(t, QuatIdentity().Angle())

	q := QuatFromXYZW(0, 0, 3, 4)
	assert.InDelta(t, 5, q.Norm(), 1e-6)
	n := q.Normalize()
	assert.InDelta(t, 1, n.Norm(), 1e-6)
	assert.Equal(t, UnitQuaternion{K: 0.6, W: 0.8}, n)

	half := QuatFromXYZW(0, 0, float32(math.Sin(math.Pi/4)), float32(math.Cos(math.Pi/4)))
	assert.InDelta(t, math.Pi/2, half.Angle(), 1e-5)
}

func TestRotation2KeepsAngle(t *testing.T) {
	r := NewRotation2(7)
	assert.Equal(t, Real(7), r.Angle())
	assert.False(t, r.IsIdentity())
	assert.True(t, Identity2().Rotation.IsIdentity())
}
