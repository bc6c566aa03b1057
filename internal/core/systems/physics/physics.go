package physics

import "math"

var (
	_ Transform = Isometry2{}
	_ Transform = Isometry3{}
)

type Vec2 struct{ Xv, Yv Real }

// Scale multiplies every component by s.
func (v Vec2) Scale(s Real) Vec2 { return Vec2{v.Xv * s, v.Yv * s} }

// Div divides every component by s. A zero s yields Inf/NaN components.
func (v Vec2) Div(s Real) Vec2 { return Vec2{v.Xv / s, v.Yv / s} }

type Vec3 struct{ Xv, Yv, Zv Real }

// Scale multiplies every component by s.
func (v Vec3) Scale(s Real) Vec3 { return Vec3{v.Xv * s, v.Yv * s, v.Zv * s} }

// Div divides every component by s. A zero s yields Inf/NaN components.
func (v Vec3) Div(s Real) Vec3 { return Vec3{v.Xv / s, v.Yv / s, v.Zv / s} }

// Distance3 computes Euclidean distance between two 3D points.
func Distance3(x1, y1, z1, x2, y2, z2 Real) Real {
	dx, dy, dz := float64(x2-x1), float64(y2-y1), float64(z2-z1)
	return Real(math.Sqrt(dx*dx + dy*dy + dz*dz))
}

// DistanceT computes the distance between the translations of two poses.
func DistanceT(a, b Transform) Real {
	x1, y1, z1 := a.Position3()
	x2, y2, z2 := b.Position3()
	return Distance3(x1, y1, z1, x2, y2, z2)
}
