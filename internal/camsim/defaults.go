package camsim

// DefaultDescription is the camera served when no description is
// configured.
func DefaultDescription() Description {
	return Description{
		Features: []FeatureConfig{
			{Name: "DeviceModelName", Type: "String", Category: "DeviceControl", Access: "ro",
				Namespace: "Standard", Value: "Alvium 1800 U-500c (simulated)", MaxLength: 64},
			{Name: "DeviceUserID", Type: "String", Category: "DeviceControl", Namespace: "Standard", MaxLength: 64},
			{Name: "Width", Type: "Int", Category: "ImageFormatControl", Namespace: "Standard",
				Value: "2048", Min: "8", Max: "4096", Inc: "8"},
			{Name: "Height", Type: "Int", Category: "ImageFormatControl", Namespace: "Standard",
				Value: "1536", Min: "8", Max: "3072", Inc: "2"},
			{Name: "PixelFormat", Type: "Enum", Category: "ImageFormatControl", Namespace: "Standard",
				Values: []string{"Mono8", "Mono10", "BayerRG8", "RGB8"}, Unavailable: []string{"Mono10"}},
			{Name: "ReverseX", Type: "Bool", Category: "ImageFormatControl", Namespace: "Standard"},
			{Name: "ExposureTime", Type: "Float", Category: "AcquisitionControl", Namespace: "Standard",
				Unit: "us", Value: "5000", Min: "20", Max: "10000000"},
			{Name: "Gain", Type: "Float", Category: "AnalogControl", Namespace: "Standard",
				Unit: "dB", Min: "0", Max: "24", Inc: "0.1"},
			{Name: "AcquisitionMode", Type: "Enum", Category: "AcquisitionControl", Namespace: "Standard",
				Values: []string{"Continuous", "SingleFrame", "MultiFrame"}},
			{Name: "DeviceTemperature", Type: "Float", Category: "DeviceControl", Namespace: "Standard",
				Unit: "C", Access: "ro", Volatile: true, Value: "41.5"},
			{Name: "UserData", Type: "Raw", Category: "UserSetControl", Namespace: "Custom", MaxLength: 16, Value: "00"},
			{Name: "TLVersion", Type: "String", Module: "system", Category: "System", Access: "ro", Value: "1.0"},
			{Name: "StreamBufferHandlingMode", Type: "Enum", Module: "stream", Category: "BufferHandlingControl",
				Namespace: "Standard", Values: []string{"NewestOnly", "OldestFirst", "OldestFirstOverwrite"}},
		},
		Events: []string{"EventTest", "ExposureEnd"},
	}
}
