package bridge

import (
	"math"
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zeusync/posesync/internal/core/observability/log"
	"github.com/zeusync/posesync/internal/core/systems/physics"
	"github.com/zeusync/posesync/internal/core/systems/render"
)

func observedLogger(level zapcore.Level) (*log.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return log.NewWithCore(core, log.LevelDebug), logs
}

func TestSyncerWriteVisual(t *testing.T) {
	logger, logs := observedLogger(zapcore.DebugLevel)
	s := NewSyncer3(10, logger)
	require.Equal(t, "3d", s.Dimension())
	require.Equal(t, physics.Real(10), s.PhysicsScale())

	a, b := NewEntityID(), NewEntityID()
	bodies := map[EntityID]physics.Isometry3{
		a: physics.Isometry3FromParts(physics.Vec3{Xv: 1}, physics.QuatIdentity()),
		b: physics.Isometry3FromParts(physics.Vec3{Yv: -2}, physics.QuatFromXYZW(0, 0, 0.6, 0.8)),
	}
	transforms := map[EntityID]render.Transform{
		a: {Translation: mgl32.Vec3{99, 99, 99}, Scale: mgl32.Vec3{5, 5, 5}},
	}

	n := s.WriteVisual(bodies, transforms)

	assert.Equal(t, 2, n)
	assert.Equal(t, mgl32.Vec3{10, 0, 0}, transforms[a].Translation)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, transforms[a].Scale)
	assert.Equal(t, mgl32.Vec3{0, -20, 0}, transforms[b].Translation)
	assert.Equal(t, mgl32.Quat{W: 0.8, V: mgl32.Vec3{0, 0, 0.6}}, transforms[b].Rotation)

	entries := logs.FilterMessage("wrote body poses to scene").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].ContextMap()["count"])
	assert.Equal(t, "3d", entries[0].ContextMap()["dimension"])
}

func TestSyncerReadVisualSkipsUnknownEntities(t *testing.T) {
	logger, logs := observedLogger(zapcore.DebugLevel)
	s := NewSyncer2(2, logger)

	known, stranger := NewEntityID(), NewEntityID()
	bodies := map[EntityID]physics.Isometry2{
		known: physics.Identity2(),
	}
	transforms := map[EntityID]render.Transform2D{
		known:    {Translation: mgl32.Vec2{4, -6}, Rotation: 0.5, Scale: mgl32.Vec2{7, 7}, Depth: 3},
		stranger: {Translation: mgl32.Vec2{1, 1}},
	}

	n := s.ReadVisual(transforms, bodies)

	assert.Equal(t, 1, n)
	require.Len(t, bodies, 1)
	assert.Equal(t, physics.NewIsometry2(physics.Vec2{Xv: 2, Yv: -3}, 0.5), bodies[known])

	entries := logs.FilterMessage("read scene transforms into bodies").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].ContextMap()["skipped"])
}

func TestSyncerRoundTripThroughScene(t *testing.T) {
	s := NewSyncer3(0.5, nil)

	id := NewEntityID()
	want := physics.Isometry3FromParts(
		physics.Vec3{Xv: -3, Yv: 0.125, Zv: 8},
		physics.QuatFromXYZW(0.18257419, 0.36514837, 0.54772256, 0.73029674),
	)
	bodies := map[EntityID]physics.Isometry3{id: want}
	transforms := map[EntityID]render.Transform{}

	s.WriteVisual(bodies, transforms)
	bodies[id] = physics.Identity3()
	s.ReadVisual(transforms, bodies)

	assert.Equal(t, want, bodies[id])
}

func TestSyncerWarnsOnDegenerateScale(t *testing.T) {
	for _, scale := range []physics.Real{0, -1, physics.Real(math.NaN()), physics.Real(math.Inf(1))} {
		logger, logs := observedLogger(zapcore.WarnLevel)
		NewSyncer3(scale, logger)
		assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len(), "scale %v", scale)
	}

	logger, logs := observedLogger(zapcore.WarnLevel)
	NewSyncer2(1, logger)
	assert.Zero(t, logs.Len())
}

func TestSyncerConcurrentUse(t *testing.T) {
	s := NewSyncer3(4, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v := physics.Real(i)
			tr := s.ToVisual(physics.Isometry3FromParts(physics.Vec3{Xv: v, Yv: v, Zv: v}, physics.QuatIdentity()))
			assert.Equal(t, mgl32.Vec3{4 * v, 4 * v, 4 * v}, tr.Translation)
		}(i)
	}
	wg.Wait()
}
