package bridge

import (
	"github.com/zeusync/posesync/internal/core/systems/physics"
	"github.com/zeusync/posesync/internal/core/systems/render"
)

var (
	_ Dimension[physics.Isometry2, render.Transform2D] = Dim2{}
	_ Dimension[physics.Isometry3, render.Transform]   = Dim3{}
)

// Dimension pairs a physics pose type I with its scene transform type T.
// Only Dim2 and Dim3 implement it.
type Dimension[I, T any] interface {
	// Name is "2d" or "3d".
	Name() string
	ToVisual(iso I, physicsScale physics.Real) T
	toPhysics(t T, physicsScale physics.Real) I
}

// Dim2 bridges planar bodies.
type Dim2 struct{}

func (Dim2) Name() string { return "2d" }

func (Dim2) ToVisual(iso physics.Isometry2, physicsScale physics.Real) render.Transform2D {
	return IsoToTransform2(iso, physicsScale)
}

func (Dim2) toPhysics(t render.Transform2D, physicsScale physics.Real) physics.Isometry2 {
	return transformToIso2(t, physicsScale)
}

// Dim3 bridges spatial bodies.
type Dim3 struct{}

func (Dim3) Name() string { return "3d" }

func (Dim3) ToVisual(iso physics.Isometry3, physicsScale physics.Real) render.Transform {
	return IsoToTransform3(iso, physicsScale)
}

func (Dim3) toPhysics(t render.Transform, physicsScale physics.Real) physics.Isometry3 {
	return transformToIso3(t, physicsScale)
}
