// Package vimbax talks to the feature services of a Vimba X camera node.
package vimbax

import (
	"strings"

	msgs "github.com/edwinhayes/rosgo-vimbax/msgs/vimbax_camera_msgs"
	"github.com/edwinhayes/rosgo-vimbax/ros"
	"github.com/pkg/errors"
)

// getCall reads the value and status of a completed get service.
type getCall func() (interface{}, Status)

// setCall reads the bare error code of a completed set service.
type setCall func() ErrorCode

// infoCall reads the info and status of a completed info service.
type infoCall func() (Info, Status)

// FeatureType describes the services serving one kind of feature value.
type FeatureType struct {
	Name     string
	BasePath string

	GetService  ros.ServiceType
	SetService  ros.ServiceType
	InfoService ros.ServiceType

	parse   func(string) (interface{}, error)
	newGet  func(feature string, module msgs.FeatureModule) (ros.Service, getCall)
	newSet  func(feature string, value interface{}, module msgs.FeatureModule) (ros.Service, setCall)
	newInfo func(feature string, module msgs.FeatureModule) (ros.Service, infoCall)
}

// SupportsInfo reports whether the type has an info service.
func (t *FeatureType) SupportsInfo() bool {
	return t.InfoService != nil
}

// ParseValue converts a command line value into the type's native value.
func (t *FeatureType) ParseValue(text string) (interface{}, error) {
	v, err := t.parse(text)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s value %q", t.Name, text)
	}
	return v, nil
}

var featureTypes = map[string]*FeatureType{
	"Int": {
		Name:        "Int",
		BasePath:    "features/int",
		GetService:  msgs.SrvFeatureIntGet,
		SetService:  msgs.SrvFeatureIntSet,
		InfoService: msgs.SrvFeatureIntInfoGet,
		parse:       parseInt,
		newGet: func(feature string, module msgs.FeatureModule) (ros.Service, getCall) {
			srv := new(msgs.FeatureIntGet)
			srv.Request.FeatureName = feature
			srv.Request.FeatureModule = module
			return srv, func() (interface{}, Status) {
				return srv.Response.Value, statusOf(srv.Response.Error)
			}
		},
		newSet: func(feature string, value interface{}, module msgs.FeatureModule) (ros.Service, setCall) {
			srv := new(msgs.FeatureIntSet)
			srv.Request.FeatureName = feature
			srv.Request.Value = value.(int64)
			srv.Request.FeatureModule = module
			return srv, func() ErrorCode { return ErrorCode(srv.Response.Error) }
		},
		newInfo: func(feature string, module msgs.FeatureModule) (ros.Service, infoCall) {
			srv := new(msgs.FeatureIntInfoGet)
			srv.Request.FeatureName = feature
			srv.Request.FeatureModule = module
			return srv, func() (Info, Status) {
				res := srv.Response
				return IntInfo{Min: res.Min, Max: res.Max, Inc: res.Inc}, statusOf(res.Error)
			}
		},
	},
	"Float": {
		Name:        "Float",
		BasePath:    "features/float",
		GetService:  msgs.SrvFeatureFloatGet,
		SetService:  msgs.SrvFeatureFloatSet,
		InfoService: msgs.SrvFeatureFloatInfoGet,
		parse:       parseFloat,
		newGet: func(feature string, module msgs.FeatureModule) (ros.Service, getCall) {
			srv := new(msgs.FeatureFloatGet)
			srv.Request.FeatureName = feature
			srv.Request.FeatureModule = module
			return srv, func() (interface{}, Status) {
				return srv.Response.Value, statusOf(srv.Response.Error)
			}
		},
		newSet: func(feature string, value interface{}, module msgs.FeatureModule) (ros.Service, setCall) {
			srv := new(msgs.FeatureFloatSet)
			srv.Request.FeatureName = feature
			srv.Request.Value = value.(float64)
			srv.Request.FeatureModule = module
			return srv, func() ErrorCode { return ErrorCode(srv.Response.Error) }
		},
		newInfo: func(feature string, module msgs.FeatureModule) (ros.Service, infoCall) {
			srv := new(msgs.FeatureFloatInfoGet)
			srv.Request.FeatureName = feature
			srv.Request.FeatureModule = module
			return srv, func() (Info, Status) {
				res := srv.Response
				info := FloatInfo{Min: res.Min, Max: res.Max, Inc: res.Inc, IncAvailable: res.IncAvailable}
				return info, statusOf(res.Error)
			}
		},
	},
	"String": {
		Name:        "String",
		BasePath:    "features/string",
		GetService:  msgs.SrvFeatureStringGet,
		SetService:  msgs.SrvFeatureStringSet,
		InfoService: msgs.SrvFeatureStringInfoGet,
		parse:       parseString,
		newGet: func(feature string, module msgs.FeatureModule) (ros.Service, getCall) {
			srv := new(msgs.FeatureStringGet)
			srv.Request.FeatureName = feature
			srv.Request.FeatureModule = module
			return srv, func() (interface{}, Status) {
				return srv.Response.Value, statusOf(srv.Response.Error)
			}
		},
		newSet: func(feature string, value interface{}, module msgs.FeatureModule) (ros.Service, setCall) {
			srv := new(msgs.FeatureStringSet)
			srv.Request.FeatureName = feature
			srv.Request.Value = value.(string)
			srv.Request.FeatureModule = module
			return srv, func() ErrorCode { return ErrorCode(srv.Response.Error) }
		},
		newInfo: func(feature string, module msgs.FeatureModule) (ros.Service, infoCall) {
			srv := new(msgs.FeatureStringInfoGet)
			srv.Request.FeatureName = feature
			srv.Request.FeatureModule = module
			return srv, func() (Info, Status) {
				return LengthInfo{MaxLength: srv.Response.MaxLength}, statusOf(srv.Response.Error)
			}
		},
	},
	"Raw": {
		Name:        "Raw",
		BasePath:    "features/raw",
		GetService:  msgs.SrvFeatureRawGet,
		SetService:  msgs.SrvFeatureRawSet,
		InfoService: msgs.SrvFeatureRawInfoGet,
		parse:       parseRaw,
		newGet: func(feature string, module msgs.FeatureModule) (ros.Service, getCall) {
			srv := new(msgs.FeatureRawGet)
			srv.Request.FeatureName = feature
			srv.Request.FeatureModule = module
			return srv, func() (interface{}, Status) {
				return srv.Response.Buffer, statusOf(srv.Response.Error)
			}
		},
		newSet: func(feature string, value interface{}, module msgs.FeatureModule) (ros.Service, setCall) {
			srv := new(msgs.FeatureRawSet)
			srv.Request.FeatureName = feature
			srv.Request.Buffer = value.([]byte)
			srv.Request.FeatureModule = module
			return srv, func() ErrorCode { return ErrorCode(srv.Response.Error) }
		},
		newInfo: func(feature string, module msgs.FeatureModule) (ros.Service, infoCall) {
			srv := new(msgs.FeatureRawInfoGet)
			srv.Request.FeatureName = feature
			srv.Request.FeatureModule = module
			return srv, func() (Info, Status) {
				return LengthInfo{MaxLength: srv.Response.MaxLength}, statusOf(srv.Response.Error)
			}
		},
	},
	"Bool": {
		Name:       "Bool",
		BasePath:   "features/bool",
		GetService: msgs.SrvFeatureBoolGet,
		SetService: msgs.SrvFeatureBoolSet,
		parse:      parseBool,
		newGet: func(feature string, module msgs.FeatureModule) (ros.Service, getCall) {
			srv := new(msgs.FeatureBoolGet)
			srv.Request.FeatureName = feature
			srv.Request.FeatureModule = module
			return srv, func() (interface{}, Status) {
				return srv.Response.Value, statusOf(srv.Response.Error)
			}
		},
		newSet: func(feature string, value interface{}, module msgs.FeatureModule) (ros.Service, setCall) {
			srv := new(msgs.FeatureBoolSet)
			srv.Request.FeatureName = feature
			srv.Request.Value = value.(bool)
			srv.Request.FeatureModule = module
			return srv, func() ErrorCode { return ErrorCode(srv.Response.Error) }
		},
	},
	"Enum": {
		Name:        "Enum",
		BasePath:    "features/enum",
		GetService:  msgs.SrvFeatureEnumGet,
		SetService:  msgs.SrvFeatureEnumSet,
		InfoService: msgs.SrvFeatureEnumInfoGet,
		parse:       parseString,
		newGet: func(feature string, module msgs.FeatureModule) (ros.Service, getCall) {
			srv := new(msgs.FeatureEnumGet)
			srv.Request.FeatureName = feature
			srv.Request.FeatureModule = module
			return srv, func() (interface{}, Status) {
				return srv.Response.Value, statusOf(srv.Response.Error)
			}
		},
		newSet: func(feature string, value interface{}, module msgs.FeatureModule) (ros.Service, setCall) {
			srv := new(msgs.FeatureEnumSet)
			srv.Request.FeatureName = feature
			srv.Request.Value = value.(string)
			srv.Request.FeatureModule = module
			return srv, func() ErrorCode { return ErrorCode(srv.Response.Error) }
		},
		newInfo: func(feature string, module msgs.FeatureModule) (ros.Service, infoCall) {
			srv := new(msgs.FeatureEnumInfoGet)
			srv.Request.FeatureName = feature
			srv.Request.FeatureModule = module
			return srv, func() (Info, Status) {
				res := srv.Response
				info := EnumInfo{PossibleValues: res.PossibleValues, AvailableValues: res.AvailableValues}
				return info, statusOf(res.Error)
			}
		},
	},
}

// typeOrder is the order types are offered on the command line.
var typeOrder = []string{"Int", "Float", "String", "Raw", "Bool", "Enum"}

// TypeNames returns the registered feature type names.
func TypeNames() []string {
	names := make([]string, len(typeOrder))
	copy(names, typeOrder)
	return names
}

// LookupType returns the feature type registered under name.
func LookupType(name string) (*FeatureType, error) {
	t, ok := featureTypes[name]
	if !ok {
		return nil, errors.Errorf("unknown feature type %q (choose from %s)", name, strings.Join(typeOrder, ", "))
	}
	return t, nil
}
