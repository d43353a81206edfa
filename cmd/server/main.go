package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/househarmony/internal/app"
	"github.com/nfrund/househarmony/internal/config"
	"github.com/nfrund/househarmony/internal/logging"
	"github.com/nfrund/househarmony/internal/profileapi"
	"github.com/nfrund/househarmony/internal/pubsub"
	"github.com/nfrund/househarmony/internal/rendering"
	"github.com/nfrund/househarmony/internal/server"
)

func main() {
	cfg := config.New()
	logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

	bus := pubsub.NewWatermillBridge()
	modules := app.NewModules(app.Dependencies{
		Service:    profileapi.NewClient(cfg.GetProfilesAPIURL()),
		Publisher:  bus,
		Subscriber: bus,
		Renderer:   rendering.NewUniversalRenderer(),
		Config:     cfg,
	})

	// Create a new server instance.
	s := server.New(cfg, modules)
	s.OnShutdown(bus.Close)

	if err := s.InitModules(context.Background()); err != nil {
		slog.Error("Failed to initialize modules", "error", err)
		os.Exit(1)
	}

	// Start the server.
	s.Start()
}
