// Package bootstrap assembles the HTTP service with fx.
package bootstrap

import (
	"github.com/ukaji3/xltables-go/internal/config"
	"github.com/ukaji3/xltables-go/internal/server"
	"go.uber.org/fx"
)

// Options returns the complete option set for the service.
func Options(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		coreOptions(),
		appOptions(),
	)
}

func appOptions() fx.Option {
	return fx.Options(
		server.Register(),
	)
}
