package app

import (
	"testing"
	"time"

	"github.com/nfrund/househarmony/internal/config"
	"github.com/nfrund/househarmony/internal/profileapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModules(t *testing.T) {
	mods := NewModules(Dependencies{Service: profileapi.NewClient("")})

	require.Len(t, mods, 1)
	assert.Equal(t, "profiles", mods[0].Name())
}

func TestProfilesDeps_FromConfig(t *testing.T) {
	cfg := &config.Config{ViewTTL: 5 * time.Minute, MutationsPerMinute: 12}

	d := profilesDeps(Dependencies{Config: cfg})

	assert.Equal(t, 5*time.Minute, d.ViewTTL)
	assert.Equal(t, 12.0, d.MutationsPerMinute)
}
