package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/househarmony/internal/config"
	"github.com/nfrund/househarmony/internal/middleware"
	"github.com/nfrund/househarmony/internal/module"
	"github.com/nfrund/househarmony/internal/registry"
	"github.com/nfrund/househarmony/internal/rendering"
	"github.com/nfrund/househarmony/web"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E       *echo.Echo
	Cfg     config.Provider
	reg     *registry.Registry
	modules []module.Module
	closers []func() error
}

// New creates the echo instance with the shared middleware chain. Modules
// are registered and booted by InitModules.
func New(cfg config.Provider, modules []module.Module) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = rendering.NewUniversalRenderer()
	setupErrorHandling(e)

	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			middleware.FromContext(c.Request().Context()).Info("Request handled",
				"uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))
	e.Use(echomw.Recover())

	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))
	e.FileFS("/placeholder.svg", "static/placeholder.svg", web.FS)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	return &Server{
		E:       e,
		Cfg:     cfg,
		reg:     registry.New(cfg),
		modules: modules,
	}
}

// Registry returns the service registry shared by the modules.
func (s *Server) Registry() *registry.Registry {
	return s.reg
}

// OnShutdown registers fn to run after the modules shut down, e.g. closing
// the event bus.
func (s *Server) OnShutdown(fn func() error) {
	s.closers = append(s.closers, fn)
}

// InitModules registers every module, then boots each one under "/<name>".
// The first module becomes the landing page.
func (s *Server) InitModules(ctx context.Context) error {
	for _, m := range s.modules {
		if err := m.Register(s.reg); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}
	for _, m := range s.modules {
		if err := m.Boot(ctx, s.E.Group("/"+m.Name()), s.reg); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
		slog.Info("Module booted", "module", m.Name())
	}

	if len(s.modules) > 0 {
		home := "/" + s.modules[0].Name()
		s.E.GET("/", func(c echo.Context) error {
			return c.Redirect(http.StatusFound, home)
		})
	}
	return nil
}

// Shutdown stops the HTTP server, the modules and the registered closers.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.E.Shutdown(ctx)
	for i := len(s.modules) - 1; i >= 0; i-- {
		if merr := s.modules[i].Shutdown(ctx); merr != nil {
			slog.Error("Module shutdown failed", "module", s.modules[i].Name(), "error", merr)
		}
	}
	for _, fn := range s.closers {
		if cerr := fn(); cerr != nil {
			slog.Error("Shutdown hook failed", "error", cerr)
		}
	}
	return err
}
