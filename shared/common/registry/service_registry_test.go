package registry_test

import (
	"testing"

	"go-oms/shared/common/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeter interface{ Greet() string }

type english struct{}

func (english) Greet() string { return "hello" }

func TestResolveAs(t *testing.T) {
	reg := registry.NewServiceRegistry()
	reg.Register("greeter", english{})
	reg.Register("number", 42)

	g, err := registry.ResolveAs[greeter](reg, "greeter")
	require.NoError(t, err)
	assert.Equal(t, "hello", g.Greet())

	_, err = registry.ResolveAs[greeter](reg, "number")
	assert.Error(t, err)

	_, err = registry.ResolveAs[greeter](reg, "missing")
	assert.EqualError(t, err, "service not found: missing")
}
