package bridge

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/zeusync/posesync/internal/core/observability/log"
)

// Vec2Field logs a scene vector as a two element array.
func Vec2Field(key string, v mgl32.Vec2) log.Field {
	return log.Float32s(key, v[:])
}

// Vec3Field logs a scene vector as a three element array.
func Vec3Field(key string, v mgl32.Vec3) log.Field {
	return log.Float32s(key, v[:])
}

// QuatField logs a quaternion as [x, y, z, w].
func QuatField(key string, q mgl32.Quat) log.Field {
	return log.Float32s(key, []float32{q.V[0], q.V[1], q.V[2], q.W})
}
