package vimbax

import (
	"testing"

	msgs "github.com/edwinhayes/rosgo-vimbax/msgs/vimbax_camera_msgs"
	"github.com/stretchr/testify/assert"
)

func TestInfoString(t *testing.T) {
	assert.Equal(t, "Min: 0\nMax: 4095\nInc: 1", IntInfo{0, 4095, 1}.String())
	assert.Equal(t, "Min: 0.5\nMax: 1e+06\nInc: 0.5", FloatInfo{0.5, 1e6, 0.5, true}.String())
	assert.Equal(t, "Min: 0\nMax: 10\nInc: not available", FloatInfo{Max: 10}.String())
	assert.Equal(t, "Max length: 64", LengthInfo{64}.String())
	assert.Equal(t, "Possible values: Off, Once, Continuous\nAvailable values: Off, Continuous",
		EnumInfo{[]string{"Off", "Once", "Continuous"}, []string{"Off", "Continuous"}}.String())
}

func TestFormatFeatureInfo(t *testing.T) {
	info := msgs.FeatureInfo{
		Name:          "ExposureTime",
		Category:      "/AcquisitionControl",
		DisplayName:   "Exposure Time",
		SfncNamespace: "Standard",
		Unit:          "us",
		DataType:      2,
		Flags:         msgs.FeatureFlags{FlagRead: true, FlagWrite: true},
		PollingTime:   0,
	}
	expected := "Name: ExposureTime\n" +
		"Category: /AcquisitionControl\n" +
		"Display name: Exposure Time\n" +
		"SFNC namespace: Standard\n" +
		"Unit: us\n" +
		"Data type: Float\n" +
		"Flags: read, write\n" +
		"Polling time: 0"
	assert.Equal(t, expected, FormatFeatureInfo(info))

	info.DataType = 42
	info.Flags = msgs.FeatureFlags{FlagNone: true}
	out := FormatFeatureInfo(info)
	assert.Contains(t, out, "Data type: Unknown")
	assert.Contains(t, out, "Flags: none")
}
