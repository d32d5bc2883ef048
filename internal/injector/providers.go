package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/ballpit/internal/config"
	"github.com/zeusync/ballpit/internal/core/observability/log"
	"github.com/zeusync/ballpit/internal/sim"
)

var ProviderSet = wire.NewSet(
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	sim.NewRunner,
	NewApp,
)

// App bundles what the command line needs to run simulations.
type App struct {
	Runner *sim.Runner
	Logger log.Log
}

func NewApp(runner *sim.Runner, logger log.Log) *App {
	return &App{Runner: runner, Logger: logger}
}

// ProvideLogger builds the logger described by cfg.Log. The cleanup flushes it.
func ProvideLogger(cfg config.Config) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	logger, err := log.NewWithFormat(level, cfg.Log.Format)
	if err != nil {
		return nil, nil, err
	}
	return logger, logger.Sync, nil
}
