// Package server exposes the upload store and the extraction pipeline over
// HTTP.
package server

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ukaji3/xltables-go/internal/config"
	"github.com/ukaji3/xltables-go/internal/storage"
	"github.com/ukaji3/xltables-go/pkg/xltables"
)

// Server is the HTTP front end of the service.
type Server struct {
	app *fiber.App
	cfg *config.Config
	log *zap.Logger
}

// New builds the fiber application and registers all routes.
func New(cfg *config.Config, store *storage.Store, log *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "xltables",
		BodyLimit:    cfg.MaxUploadBytes,
		ErrorHandler: errorHandler(log),
	})

	app.Use(recoverer.New())
	app.Use(cors.New())
	app.Use(requestLogger(log))

	NewFilesHandler(store, log).Register(app)

	return &Server{app: app, cfg: cfg, log: log}
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start listens on the configured address until Shutdown is called.
func (s *Server) Start() error {
	s.log.Info("listening", zap.String("addr", s.cfg.Addr))
	return s.app.Listen(s.cfg.Addr, fiber.ListenConfig{DisableStartupMessage: true})
}

// Shutdown stops accepting connections and waits for active requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// errorHandler renders errors that escaped a handler.
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(xltables.Failure(fe.Message, nil))
		}

		log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(xltables.Failure("Something broke!", nil))
	}
}

// requestLogger logs one line per request and tags it with a request id.
func requestLogger(log *zap.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		id := uuid.NewString()
		c.Set("X-Request-ID", id)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		log.Info("request",
			zap.String("request_id", id),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		)
		return err
	}
}
