package bridge

import (
	"math"

	"github.com/google/uuid"

	"github.com/zeusync/posesync/internal/core/observability/log"
	"github.com/zeusync/posesync/internal/core/systems/physics"
	"github.com/zeusync/posesync/internal/core/systems/render"
)

// EntityID identifies a body and the scene node that mirrors it.
type EntityID = uuid.UUID

// NewEntityID returns a fresh random EntityID.
func NewEntityID() EntityID { return uuid.New() }

type (
	Syncer2 = Syncer[physics.Isometry2, render.Transform2D, Dim2]
	Syncer3 = Syncer[physics.Isometry3, render.Transform, Dim3]
)

// Syncer copies poses between physics bodies and scene transforms in batches.
// It keeps no state besides its configuration and may be shared between
// goroutines as long as the maps passed to one call are not shared.
type Syncer[I, T any, D Dimension[I, T]] struct {
	dim    D
	scale  physics.Real
	logger log.Log
}

// NewSyncer builds a Syncer for dimension D. A nil logger discards output.
func NewSyncer[I, T any, D Dimension[I, T]](physicsScale physics.Real, logger log.Log) *Syncer[I, T, D] {
	var dim D
	if logger == nil {
		logger = log.Nop()
	}
	logger = logger.With(log.String("dimension", dim.Name()), log.Float32("physics_scale", physicsScale))

	if !(physicsScale > 0) || math.IsInf(float64(physicsScale), 0) {
		logger.Warn("physics scale is not a positive finite number, poses will not be finite")
	}

	return &Syncer[I, T, D]{
		dim:    dim,
		scale:  physicsScale,
		logger: logger,
	}
}

// NewSyncer2 builds a Syncer for planar bodies.
func NewSyncer2(physicsScale physics.Real, logger log.Log) *Syncer2 {
	return NewSyncer[physics.Isometry2, render.Transform2D, Dim2](physicsScale, logger)
}

// NewSyncer3 builds a Syncer for spatial bodies.
func NewSyncer3(physicsScale physics.Real, logger log.Log) *Syncer3 {
	return NewSyncer[physics.Isometry3, render.Transform, Dim3](physicsScale, logger)
}

func (s *Syncer[I, T, D]) PhysicsScale() physics.Real { return s.scale }

func (s *Syncer[I, T, D]) Dimension() string { return s.dim.Name() }

// ToVisual converts a single body pose.
func (s *Syncer[I, T, D]) ToVisual(iso I) T {
	return s.dim.ToVisual(iso, s.scale)
}

// WriteVisual stores the scene transform of every body into transforms,
// overwriting what was there. It returns the number of transforms written.
func (s *Syncer[I, T, D]) WriteVisual(bodies map[EntityID]I, transforms map[EntityID]T) int {
	for id, iso := range bodies {
		transforms[id] = s.dim.ToVisual(iso, s.scale)
	}
	s.logger.Debug("wrote body poses to scene", log.Int("count", len(bodies)))
	return len(bodies)
}

// ReadVisual pulls scene transforms back into bodies. Only entities already
// present in bodies are updated; transforms without a body are skipped.
// It returns the number of bodies updated.
func (s *Syncer[I, T, D]) ReadVisual(transforms map[EntityID]T, bodies map[EntityID]I) int {
	updated, skipped := 0, 0
	for id, t := range transforms {
		if _, ok := bodies[id]; !ok {
			skipped++
			continue
		}
		bodies[id] = s.dim.toPhysics(t, s.scale)
		updated++
	}
	s.logger.Debug("read scene transforms into bodies",
		log.Int("count", updated),
		log.Int("skipped", skipped),
	)
	return updated
}
