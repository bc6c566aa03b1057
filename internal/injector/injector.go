//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/posesync/internal/config"
	"github.com/zeusync/posesync/internal/core/systems/bridge"
)

func InitializeSyncer2(cfg *config.Config) (*bridge.Syncer2, error) {
	wire.Build(LoggerSet, ProvideSyncer2)
	return nil, nil
}

func InitializeSyncer3(cfg *config.Config) (*bridge.Syncer3, error) {
	wire.Build(LoggerSet, ProvideSyncer3)
	return nil, nil
}
