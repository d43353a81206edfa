package app

import (
	"github.com/nfrund/househarmony/internal/config"
	"github.com/nfrund/househarmony/internal/modules/profiles"
	"github.com/nfrund/househarmony/internal/pubsub"
	"github.com/nfrund/househarmony/internal/rendering"
)

// Dependencies holds the core services that are required by the application's modules.
// This struct is passed from the main application entrypoint to wire up the modules.
type Dependencies struct {
	Service    profiles.Service
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Renderer   rendering.Renderer
	Config     config.Provider
}

// profilesDeps creates the dependency struct for the profiles module.
func profilesDeps(deps Dependencies) profiles.Dependencies {
	d := profiles.Dependencies{
		Service:    deps.Service,
		Publisher:  deps.Publisher,
		Subscriber: deps.Subscriber,
		Renderer:   deps.Renderer,
	}
	if deps.Config != nil {
		d.ViewTTL = deps.Config.GetViewTTL()
		d.MutationsPerMinute = deps.Config.GetMutationsPerMinute()
	}
	return d
}
