package vimbax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModule(t *testing.T) {
	expected := map[string]Module{
		"remote_device": ModuleRemoteDevice,
		"system":        ModuleSystem,
		"interface":     ModuleInterface,
		"local_device":  ModuleLocalDevice,
		"stream":        ModuleStream,
	}
	for name, module := range expected {
		m, err := ParseModule(name)
		require.NoError(t, err)
		assert.Equal(t, module, m)
		assert.Equal(t, name, m.String())
	}
	assert.Equal(t, uint8(0), ModuleRemoteDevice.msg().Id)
	assert.Equal(t, uint8(4), ModuleStream.msg().Id)
}

func TestParseModuleRejects(t *testing.T) {
	_, err := ParseModule("camera")
	assert.Error(t, err)
	assert.Equal(t, "unknown", Module(9).String())
}
