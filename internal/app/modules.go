package app

import (
	"github.com/nfrund/househarmony/internal/module"
	"github.com/nfrund/househarmony/internal/modules/profiles"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled. The
// first module is the landing page.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		profiles.New(profilesDeps(deps)),
	}
}
