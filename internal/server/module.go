package server

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Register provides the Server and ties it to the application lifecycle.
func Register() fx.Option {
	return fx.Options(
		fx.Provide(New),
		fx.Invoke(runLifecycle),
	)
}

func runLifecycle(lc fx.Lifecycle, s *Server, shutdowner fx.Shutdowner) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := s.Start(); err != nil {
					s.log.Error("server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Shutdown(ctx)
		},
	})
}
