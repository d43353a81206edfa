package registry_test

import (
	"testing"

	"github.com/nfrund/househarmony/internal/registry"
	"github.com/stretchr/testify/assert"
)

type greeter interface{ Greet() string }

type english struct{}

func (english) Greet() string { return "hello" }

func TestRegistry_SetGet(t *testing.T) {
	reg := registry.New(nil)
	key := registry.Key[greeter]("test.greeter")

	_, ok := registry.Get(reg, key)
	assert.False(t, ok)

	registry.Set[greeter](reg, key, english{})

	got, ok := registry.Get(reg, key)
	assert.True(t, ok)
	assert.Equal(t, "hello", got.Greet())
	assert.Equal(t, "hello", registry.MustGet(reg, key).Greet())
}

func TestRegistry_MustGetPanics(t *testing.T) {
	reg := registry.New(nil)
	assert.Panics(t, func() {
		registry.MustGet(reg, registry.Key[string]("missing"))
	})
}
