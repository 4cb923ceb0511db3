package vimbax

import (
	"strings"

	msgs "github.com/edwinhayes/rosgo-vimbax/msgs/vimbax_camera_msgs"
	"github.com/pkg/errors"
)

// Module selects which GenICam module of the camera a feature lives in.
type Module uint8

const (
	ModuleRemoteDevice Module = Module(msgs.FeatureModule_MODULE_REMOTE_DEVICE)
	ModuleSystem       Module = Module(msgs.FeatureModule_MODULE_SYSTEM)
	ModuleInterface    Module = Module(msgs.FeatureModule_MODULE_INTERFACE)
	ModuleLocalDevice  Module = Module(msgs.FeatureModule_MODULE_LOCAL_DEVICE)
	ModuleStream       Module = Module(msgs.FeatureModule_MODULE_STREAM)
)

var moduleNames = []string{"remote_device", "system", "interface", "local_device", "stream"}

// ModuleNames returns the command line spelling of every module.
func ModuleNames() []string {
	names := make([]string, len(moduleNames))
	copy(names, moduleNames)
	return names
}

// ParseModule maps a command line module name to its Module.
func ParseModule(name string) (Module, error) {
	for i, n := range moduleNames {
		if n == name {
			return Module(i), nil
		}
	}
	return 0, errors.Errorf("invalid module %q (choose from %s)", name, strings.Join(moduleNames, ", "))
}

func (m Module) String() string {
	if int(m) < len(moduleNames) {
		return moduleNames[m]
	}
	return "unknown"
}

func (m Module) msg() msgs.FeatureModule {
	return msgs.FeatureModule{Id: uint8(m)}
}
