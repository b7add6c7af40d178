package server

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/vayload/contact-validator/config"
	"github.com/vayload/contact-validator/internal/services"
	"github.com/vayload/contact-validator/internal/shared/container"
	"github.com/vayload/contact-validator/internal/transport/controllers"
	"github.com/vayload/contact-validator/internal/transport/middleware"
	"github.com/vayload/contact-validator/pkg/httpi"
	"github.com/vayload/contact-validator/pkg/logger"
)

type Server struct {
	app *fiber.App
	cfg *config.Config
	log logger.Logger
}

// Register puts the services the HTTP layer needs into registry. Entries
// already present (for example a test logger) are kept.
func Register(registry *container.Container, cfg *config.Config, log logger.Logger) {
	registry.Set(container.Config, cfg)
	registry.Set(container.Logger, log)
	registry.Register(container.ValidationService, container.Singleton, func(c *container.Container) (any, error) {
		log, err := container.MapTo[logger.Logger](c, container.Logger)
		if err != nil {
			return nil, err
		}
		return services.NewValidationService(log), nil
	})
}

// New builds the fiber application from the services in registry.
func New(registry *container.Container, version string) (*Server, error) {
	cfg, err := container.MapTo[*config.Config](registry, container.Config)
	if err != nil {
		return nil, err
	}
	log, err := container.MapTo[logger.Logger](registry, container.Logger)
	if err != nil {
		return nil, err
	}
	validationService, err := container.MapTo[*services.ValidationService](registry, container.ValidationService)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:               "contact-validator",
		DisableStartupMessage: true,
		ErrorHandler:          httpi.FiberErrorHandler,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		BodyLimit:             cfg.Server.BodyLimit,
		ReadTimeout:           cfg.Server.ReadTimeout.Duration,
		WriteTimeout:          cfg.Server.WriteTimeout.Duration,
		UnescapePath:          true,
	})

	app.Use(recover.New())
	app.Use(httpi.FiberWrap(middleware.NewRequestID()))
	app.Use(httpi.FiberWrap(middleware.NewRequestLogger(log)))
	if len(cfg.Server.AllowOrigins) > 0 {
		app.Use(cors.New(cors.Config{
			AllowOrigins:  strings.Join(cfg.Server.AllowOrigins, ","),
			AllowMethods:  "GET,POST,OPTIONS",
			ExposeHeaders: httpi.HTTP_REQUEST_ID_HEADER,
		}))
	}

	httpi.RegisterController(app, controllers.NewHealthController(version))

	api := app.Group(cfg.Server.Prefix)
	httpi.RegisterController(api, controllers.NewValidationController(validationService, log))

	return &Server{app: app, cfg: cfg, log: log}, nil
}

func (s *Server) App() *fiber.App {
	return s.app
}

// Run listens until ctx is cancelled, then shuts down within the configured
// grace period.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", logger.Fields{"addr": s.cfg.Addr(), "prefix": s.cfg.Server.Prefix})
		errCh <- s.app.Listen(s.cfg.Addr())
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen %s: %w", s.cfg.Addr(), err)
	case <-ctx.Done():
	}

	timeout := s.cfg.Server.ShutdownTimeout.Duration
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	s.log.Info("shutting down", logger.Fields{"timeout": timeout.String()})

	if err := s.app.ShutdownWithTimeout(timeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
