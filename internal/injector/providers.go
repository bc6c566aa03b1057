package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/posesync/internal/config"
	"github.com/zeusync/posesync/internal/core/observability/log"
	"github.com/zeusync/posesync/internal/core/systems/bridge"
)

var LoggerSet = wire.NewSet(
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
)

// ProvideLogger builds the process logger at the configured level.
func ProvideLogger(cfg *config.Config) (*log.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	return log.New(level), nil
}

func ProvideSyncer2(cfg *config.Config, logger log.Log) *bridge.Syncer2 {
	return bridge.NewSyncer2(cfg.PhysicsScale, logger)
}

func ProvideSyncer3(cfg *config.Config, logger log.Log) *bridge.Syncer3 {
	return bridge.NewSyncer3(cfg.PhysicsScale, logger)
}
