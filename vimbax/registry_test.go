package vimbax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	expected := map[string]string{
		"Int":    "features/int",
		"Float":  "features/float",
		"String": "features/string",
		"Raw":    "features/raw",
		"Bool":   "features/bool",
		"Enum":   "features/enum",
	}
	assert.Equal(t, []string{"Int", "Float", "String", "Raw", "Bool", "Enum"}, TypeNames())
	for name, base := range expected {
		ft, err := LookupType(name)
		require.NoError(t, err)
		assert.Equal(t, name, ft.Name)
		assert.Equal(t, base, ft.BasePath)
		assert.NotNil(t, ft.GetService, name)
		assert.NotNil(t, ft.SetService, name)
		assert.Equal(t, name != "Bool", ft.SupportsInfo(), name)
	}
}

func TestLookupUnknownType(t *testing.T) {
	_, err := LookupType("Command")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Int, Float, String, Raw, Bool, Enum")
}

func TestServiceTypeNames(t *testing.T) {
	ft, err := LookupType("Float")
	require.NoError(t, err)
	assert.Equal(t, "vimbax_camera_msgs/FeatureFloatGet", ft.GetService.Name())
	assert.Equal(t, "vimbax_camera_msgs/FeatureFloatSet", ft.SetService.Name())
	assert.Equal(t, "vimbax_camera_msgs/FeatureFloatInfoGet", ft.InfoService.Name())
}
