package physics

// Physics-side shapes of a rigid body pose. Lengths are in physics units,
// rotations are unit-less.

// Real is the scalar type used by the physics engine.
type Real = float32

// Transform provides the translation part of a pose.
// Both isometry kinds implement it, 2D poses lying on the z = 0 plane.
type Transform interface {
	Position3() (x, y, z Real)
}
