package physics

import "math"

// Rotation2 is a planar rotation stored as its angle in radians.
type Rotation2 struct {
	angle Real
}

// NewRotation2 builds a rotation of angle radians. The angle is kept as is,
// without wrapping into (-pi, pi].
func NewRotation2(angle Real) Rotation2 { return Rotation2{angle: angle} }

// Angle returns the rotation angle in radians.
func (r Rotation2) Angle() Real { return r.angle }

// IsIdentity reports whether the rotation is exactly zero.
func (r Rotation2) IsIdentity() bool { return r.angle == 0 }

// UnitQuaternion is a 3D rotation. Coordinates are ordered (i, j, k, w).
// Unit length is the caller's responsibility; nothing in this package
// normalizes implicitly.
type UnitQuaternion struct {
	I, J, K, W Real
}

// QuatIdentity returns the identity rotation.
func QuatIdentity() UnitQuaternion { return UnitQuaternion{W: 1} }

// QuatFromXYZW builds a quaternion from its imaginary parts and scalar part.
func QuatFromXYZW(x, y, z, w Real) UnitQuaternion {
	return UnitQuaternion{I: x, J: y, K: z, W: w}
}

// Norm returns the Euclidean length of the four coordinates.
func (q UnitQuaternion) Norm() Real {
	i, j, k, w := float64(q.I), float64(q.J), float64(q.K), float64(q.W)
	return Real(math.Sqrt(i*i + j*j + k*k + w*w))
}

// Normalize returns q scaled to unit length.
func (q UnitQuaternion) Normalize() UnitQuaternion {
	n := q.Norm()
	return UnitQuaternion{I: q.I / n, J: q.J / n, K: q.K / n, W: q.W / n}
}

// Angle returns the rotation angle in radians, in [0, pi].
func (q UnitQuaternion) Angle() Real {
	w := math.Abs(float64(q.W))
	if w > 1 {
		w = 1
	}
	return Real(2 * math.Acos(w))
}

// IsIdentity reports whether q is exactly the identity rotation.
func (q UnitQuaternion) IsIdentity() bool {
	return q.I == 0 && q.J == 0 && q.K == 0 && q.W == 1
}

// Isometry2 is a 2D rigid body pose.
type Isometry2 struct {
	Translation Vec2
	Rotation    Rotation2
}

// NewIsometry2 builds a 2D pose from a translation and an angle in radians.
func NewIsometry2(translation Vec2, angle Real) Isometry2 {
	return Isometry2{Translation: translation, Rotation: NewRotation2(angle)}
}

// Identity2 returns the pose at the origin with no rotation.
func Identity2() Isometry2 { return Isometry2{} }

func (iso Isometry2) Position3() (x, y, z Real) { return iso.Translation.Xv, iso.Translation.Yv, 0 }

// Isometry3 is a 3D rigid body pose.
type Isometry3 struct {
	Translation Vec3
	Rotation    UnitQuaternion
}

// Isometry3FromParts builds a 3D pose from its translation and rotation.
func Isometry3FromParts(translation Vec3, rotation UnitQuaternion) Isometry3 {
	return Isometry3{Translation: translation, Rotation: rotation}
}

// Identity3 returns the pose at the origin with no rotation.
func Identity3() Isometry3 { return Isometry3{Rotation: QuatIdentity()} }

func (iso Isometry3) Position3() (x, y, z Real) {
	return iso.Translation.Xv, iso.Translation.Yv, iso.Translation.Zv
}
