package profiles

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/househarmony/internal/middleware"
	"github.com/nfrund/househarmony/internal/module"
	"github.com/nfrund/househarmony/internal/pubsub"
	"github.com/nfrund/househarmony/internal/registry"
	"github.com/nfrund/househarmony/internal/rendering"
)

// ServiceKey is the registry key of the event-publishing profiles Service.
var ServiceKey = registry.Key[Service]("profiles.service")

// DefaultViewTTL is how long an idle browser session keeps its view.
const DefaultViewTTL = 30 * time.Minute

// Dependencies holds all the services that the module requires.
type Dependencies struct {
	Service            Service
	Publisher          pubsub.Publisher
	Subscriber         pubsub.Subscriber
	Renderer           rendering.Renderer
	ViewTTL            time.Duration
	MutationsPerMinute float64
}

// Module is the profile management screen.
type Module struct {
	module.BaseModule
	deps    Dependencies
	service Service
	store   *ViewStore
	stop    context.CancelFunc
}

// New creates a new instance of the module.
func New(deps Dependencies) *Module {
	if deps.ViewTTL <= 0 {
		deps.ViewTTL = DefaultViewTTL
	}
	if deps.Renderer == nil {
		deps.Renderer = rendering.NewUniversalRenderer()
	}
	service := WithEvents(deps.Service, deps.Publisher)
	return &Module{
		deps:    deps,
		service: service,
		store:   NewViewStore(service, deps.ViewTTL),
	}
}

// Name returns the module's unique identifier.
func (m *Module) Name() string {
	return "profiles"
}

// Register exposes the profiles service to other modules.
func (m *Module) Register(reg *registry.Registry) error {
	slog.Info("Registering profiles module")
	registry.Set(reg, ServiceKey, m.service)
	return nil
}

// Boot sets up the routes and the audit subscriber.
func (m *Module) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting profiles module: setting up routes...")

	if m.deps.Subscriber != nil {
		subCtx, cancel := context.WithCancel(ctx)
		m.stop = cancel
		if err := SubscribeAudit(subCtx, m.deps.Subscriber, slog.Default().With("module", m.Name())); err != nil {
			cancel()
			return err
		}
	}

	handler := NewHandler(m.store, m.deps.Renderer)
	handler.Routes(g, middleware.RateLimiter(m.deps.MutationsPerMinute))
	return nil
}

// Shutdown stops the audit subscriber.
func (m *Module) Shutdown(ctx context.Context) error {
	if m.stop != nil {
		m.stop()
	}
	return nil
}
