package render

import "github.com/go-gl/mathgl/mgl32"

// Transform places a scene node in world units.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// NewTransform returns the identity transform with unit scale.
func NewTransform() Transform {
	return Transform{
		Translation: mgl32.Vec3{0, 0, 0},
		Rotation:    mgl32.QuatIdent(),
		Scale:       mgl32.Vec3{1, 1, 1},
	}
}

// FromTranslation returns an unrotated, unit-scaled transform at t.
func FromTranslation(t mgl32.Vec3) Transform {
	tr := NewTransform()
	tr.Translation = t
	return tr
}

// Transform2D places a flat scene node. Depth orders sprites along the
// view axis and carries no physical meaning.
type Transform2D struct {
	Translation mgl32.Vec2
	Rotation    float32
	Scale       mgl32.Vec2
	Depth       float32
}

// NewTransform2D returns the identity 2D transform with unit scale at depth 0.
func NewTransform2D() Transform2D {
	return Transform2D{
		Translation: mgl32.Vec2{0, 0},
		Scale:       mgl32.Vec2{1, 1},
	}
}
