// Package bridge mirrors rigid body poses between the physics world and the
// render scene.
//
// Physics translations are multiplied by the physics scale on the way to the
// scene and divided by it on the way back. Rotations are copied component by
// component in both directions: nothing here normalizes, wraps or snaps them.
package bridge

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/zeusync/posesync/internal/core/systems/physics"
	"github.com/zeusync/posesync/internal/core/systems/render"
)

// IsoToTransform2 converts a 2D physics pose to a scene transform.
//
// The translation is multiplied by physicsScale. Scale and depth of the
// result are left at their defaults.
func IsoToTransform2(iso physics.Isometry2, physicsScale physics.Real) render.Transform2D {
	t := iso.Translation.Scale(physicsScale)

	out := render.NewTransform2D()
	out.Translation = mgl32.Vec2{t.Xv, t.Yv}
	out.Rotation = iso.Rotation.Angle()
	return out
}

// IsoToTransform3 converts a 3D physics pose to a scene transform.
//
// The translation is multiplied by physicsScale. Scale of the result is left
// at its default.
func IsoToTransform3(iso physics.Isometry3, physicsScale physics.Real) render.Transform {
	t := iso.Translation.Scale(physicsScale)
	q := iso.Rotation

	out := render.NewTransform()
	out.Translation = mgl32.Vec3{t.Xv, t.Yv, t.Zv}
	out.Rotation = mgl32.Quat{W: q.W, V: mgl32.Vec3{q.I, q.J, q.K}}
	return out
}

// transformToIso2 converts a 2D scene transform back to a physics pose.
// The translation is divided by physicsScale; scale and depth are dropped.
func transformToIso2(t render.Transform2D, physicsScale physics.Real) physics.Isometry2 {
	translation := physics.Vec2{Xv: t.Translation.X(), Yv: t.Translation.Y()}
	return physics.NewIsometry2(translation.Div(physicsScale), t.Rotation)
}

// transformToIso3 converts a 3D scene transform back to a physics pose.
// The translation is divided by physicsScale; scale is dropped.
func transformToIso3(t render.Transform, physicsScale physics.Real) physics.Isometry3 {
	translation := physics.Vec3{Xv: t.Translation.X(), Yv: t.Translation.Y(), Zv: t.Translation.Z()}
	q := t.Rotation
	return physics.Isometry3FromParts(
		translation.Div(physicsScale),
		physics.QuatFromXYZW(q.V[0], q.V[1], q.V[2], q.W),
	)
}

// VisualDistance returns how far apart two bodies appear in the scene, in
// render units.
func VisualDistance(a, b physics.Transform, physicsScale physics.Real) physics.Real {
	return physics.DistanceT(a, b) * physicsScale
}
