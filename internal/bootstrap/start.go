package bootstrap

import (
	"github.com/ukaji3/xltables-go/internal/config"
	"go.uber.org/fx"
)

// Run starts the service and blocks until it receives a stop signal.
func Run(cfg *config.Config) {
	app := fx.New(
		Options(cfg),
		fx.StopTimeout(cfg.ShutdownTimeout),
	)

	app.Run()
}
