package ros

import (
	"math"
	"strings"

	"github.com/buger/jsonparser"
)

// Remap separates the key and value of a ROS command line argument.
const Remap = ":="

// processArguments sorts ROS command line arguments into remappings,
// private parameters (leading '_', stripped) and specials (leading "__").
// Anything else is returned in rest.
func processArguments(args []string) (NameMap, NameMap, NameMap, []string) {
	mapping := make(NameMap)
	params := make(NameMap)
	specials := make(NameMap)
	rest := make([]string, 0)
	for _, arg := range args {
		components := strings.Split(arg, Remap)
		if len(components) == 2 {
			key := components[0]
			value := components[1]
			if strings.HasPrefix(key, "__") {
				specials[key] = value
			} else if strings.HasPrefix(key, "_") {
				params[key[1:]] = value
			} else {
				mapping[key] = value
			}
		} else {
			rest = append(rest, arg)
		}
	}
	return mapping, params, specials, rest
}

// IsRosArgument reports whether arg is consumed by NewNode.
func IsRosArgument(arg string) bool {
	return len(strings.Split(arg, Remap)) == 2
}

// decodeParamValue converts the text of a _param:=value argument into
// the XML-RPC value sent to the parameter server. Numbers, booleans and
// quoted strings are decoded, everything else is kept verbatim.
func decodeParamValue(s string) interface{} {
	value, dataType, _, err := jsonparser.Get([]byte(strings.TrimSpace(s)))
	if err != nil {
		return s
	}
	switch dataType {
	case jsonparser.Number:
		if i, err := jsonparser.ParseInt(value); err == nil && i >= math.MinInt32 && i <= math.MaxInt32 {
			return int32(i)
		}
		if f, err := jsonparser.ParseFloat(value); err == nil {
			return f
		}
	case jsonparser.Boolean:
		if b, err := jsonparser.ParseBoolean(value); err == nil {
			return b
		}
	case jsonparser.String:
		if str, err := jsonparser.ParseString(value); err == nil {
			return str
		}
	}
	return s
}
