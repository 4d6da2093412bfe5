package bootstrap

import (
	"github.com/ukaji3/xltables-go/internal/config"
	"github.com/ukaji3/xltables-go/internal/logger"
	"github.com/ukaji3/xltables-go/internal/storage"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func coreOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			newLogger,
			newStore,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
	)
}

func newLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg.LogLevel, cfg.Development)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func() {
		_ = log.Sync()
	}))
	return log, nil
}

func newStore(cfg *config.Config) (*storage.Store, error) {
	return storage.New(cfg.UploadDir)
}
