package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/zeusync/posesync/internal/config"
	"github.com/zeusync/posesync/internal/core/observability/log"
	"github.com/zeusync/posesync/internal/core/systems/bridge"
	"github.com/zeusync/posesync/internal/core/systems/physics"
	"github.com/zeusync/posesync/internal/core/systems/render"
	"github.com/zeusync/posesync/internal/injector"
)

func main() {
	path := flag.String("config", "", "path to a YAML config; defaults are used when empty")
	x := flag.Float64("x", 1, "body translation x in physics units")
	y := flag.Float64("y", 2, "body translation y in physics units")
	z := flag.Float64("z", 3, "body translation z in physics units, ignored in 2d")
	angle := flag.Float64("angle", 0, "rotation around +z in radians")
	flag.Parse()

	cfg, err := loadConfig(*path)
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	translation := physics.Vec3{Xv: float32(*x), Yv: float32(*y), Zv: float32(*z)}
	if err = run(cfg, translation, float32(*angle)); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		cfg := config.Default()
		return &cfg, nil
	}
	return config.LoadFile(path)
}

func run(cfg *config.Config, translation physics.Vec3, angle float32) error {
	id := bridge.NewEntityID()

	switch cfg.Dimension {
	case config.Dim2:
		s, err := injector.InitializeSyncer2(cfg)
		if err != nil {
			return err
		}
		body := physics.NewIsometry2(physics.Vec2{Xv: translation.Xv, Yv: translation.Yv}, angle)
		scene := make(map[bridge.EntityID]render.Transform2D, 1)
		s.WriteVisual(map[bridge.EntityID]physics.Isometry2{id: body}, scene)
		tr := scene[id]
		log.Provide().Info("body mirrored",
			log.String("entity", id.String()),
			bridge.Vec2Field("translation", tr.Translation),
			log.Float32("rotation", tr.Rotation),
			log.Float32("distance_from_origin", bridge.VisualDistance(physics.Identity2(), body, s.PhysicsScale())),
		)
	default:
		s, err := injector.InitializeSyncer3(cfg)
		if err != nil {
			return err
		}
		body := physics.Isometry3FromParts(translation, quatAroundZ(angle))
		tr := s.ToVisual(body)
		log.Provide().Info("body mirrored",
			log.String("entity", id.String()),
			bridge.Vec3Field("translation", tr.Translation),
			bridge.QuatField("rotation", tr.Rotation),
			bridge.Vec3Field("scale", tr.Scale),
			log.Float32("distance_from_origin", bridge.VisualDistance(physics.Identity3(), body, s.PhysicsScale())),
		)
	}
	// stderr may not support fsync
	_ = log.Provide().Sync()
	return nil
}

func quatAroundZ(angle float32) physics.UnitQuaternion {
	q := mgl32.QuatRotate(angle, mgl32.Vec3{0, 0, 1})
	return physics.QuatFromXYZW(q.V[0], q.V[1], q.V[2], q.W)
}
