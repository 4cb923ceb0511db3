package vimbax

import (
	"fmt"
	"strings"

	msgs "github.com/edwinhayes/rosgo-vimbax/msgs/vimbax_camera_msgs"
)

// Info is the type specific description returned by an info service.
// String renders it one property per line.
type Info interface {
	fmt.Stringer
}

type IntInfo struct {
	Min int64
	Max int64
	Inc int64
}

func (i IntInfo) String() string {
	return fmt.Sprintf("Min: %d\nMax: %d\nInc: %d", i.Min, i.Max, i.Inc)
}

type FloatInfo struct {
	Min          float64
	Max          float64
	Inc          float64
	IncAvailable bool
}

func (i FloatInfo) String() string {
	lines := []string{
		"Min: " + FormatValue(i.Min),
		"Max: " + FormatValue(i.Max),
	}
	if i.IncAvailable {
		lines = append(lines, "Inc: "+FormatValue(i.Inc))
	} else {
		lines = append(lines, "Inc: not available")
	}
	return strings.Join(lines, "\n")
}

// LengthInfo describes String and Raw features.
type LengthInfo struct {
	MaxLength int64
}

func (i LengthInfo) String() string {
	return fmt.Sprintf("Max length: %d", i.MaxLength)
}

type EnumInfo struct {
	PossibleValues  []string
	AvailableValues []string
}

func (i EnumInfo) String() string {
	return "Possible values: " + strings.Join(i.PossibleValues, ", ") +
		"\nAvailable values: " + strings.Join(i.AvailableValues, ", ")
}

// VmbFeatureDataType names, indexed by value.
var dataTypeNames = []string{"Unknown", "Int", "Float", "Enum", "String", "Bool", "Command", "Raw", "None"}

// FormatFeatureInfo renders a generic feature description returned by the
// feature info query.
func FormatFeatureInfo(info msgs.FeatureInfo) string {
	dataType := "Unknown"
	if int(info.DataType) < len(dataTypeNames) {
		dataType = dataTypeNames[info.DataType]
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", info.Name)
	fmt.Fprintf(&b, "Category: %s\n", info.Category)
	fmt.Fprintf(&b, "Display name: %s\n", info.DisplayName)
	fmt.Fprintf(&b, "SFNC namespace: %s\n", info.SfncNamespace)
	fmt.Fprintf(&b, "Unit: %s\n", info.Unit)
	fmt.Fprintf(&b, "Data type: %s\n", dataType)
	fmt.Fprintf(&b, "Flags: %s\n", formatFlags(info.Flags))
	fmt.Fprintf(&b, "Polling time: %d", info.PollingTime)
	return b.String()
}

func formatFlags(flags msgs.FeatureFlags) string {
	var set []string
	for _, f := range []struct {
		on   bool
		name string
	}{
		{flags.FlagRead, "read"},
		{flags.FlagWrite, "write"},
		{flags.FlagVolatile, "volatile"},
		{flags.FlagModifyWrite, "modify_write"},
	} {
		if f.on {
			set = append(set, f.name)
		}
	}
	if len(set) == 0 {
		return "none"
	}
	return strings.Join(set, ", ")
}
