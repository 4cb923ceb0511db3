package camsim

import (
	"sync"

	msgs "github.com/edwinhayes/rosgo-vimbax/msgs/vimbax_camera_msgs"
	"github.com/edwinhayes/rosgo-vimbax/vimbax"
	"github.com/pkg/errors"
)

type featureKey struct {
	module vimbax.Module
	name   string
}

// Camera holds the feature values of a simulated camera. It is safe for
// concurrent use.
type Camera struct {
	mu       sync.Mutex
	features map[featureKey]*feature
	order    []featureKey
	events   map[string]bool
}

// NewCamera builds a camera from d. Feature names must be unique within
// their module.
func NewCamera(d Description) (*Camera, error) {
	c := &Camera{
		features: make(map[featureKey]*feature),
		events:   make(map[string]bool),
	}
	for _, fc := range d.Features {
		f, err := newFeature(fc)
		if err != nil {
			return nil, err
		}
		key := featureKey{f.module, f.info.Name}
		if _, ok := c.features[key]; ok {
			return nil, errors.Errorf("feature %s defined twice in module %s", key.name, key.module)
		}
		c.features[key] = f
		c.order = append(c.order, key)
	}
	for _, name := range d.Events {
		c.events[name] = true
	}
	return c, nil
}

func status(code vimbax.ErrorCode, text string) vimbax.Status {
	return vimbax.Status{Code: code, Text: text}
}

// lookup finds a feature of type t. Callers hold c.mu.
func (c *Camera) lookup(t *vimbax.FeatureType, name string, module vimbax.Module) (*feature, vimbax.Status) {
	f, ok := c.features[featureKey{module, name}]
	if !ok {
		return nil, status(vimbax.ErrorNotFound, "feature "+name+" not found in module "+module.String())
	}
	if t != nil && f.typ != t {
		return nil, status(vimbax.ErrorWrongType, "feature "+name+" is of type "+f.typ.Name)
	}
	return f, vimbax.Status{}
}

// Get returns the current value of a feature.
func (c *Camera) Get(t *vimbax.FeatureType, name string, module vimbax.Module) (interface{}, vimbax.Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	f, st := c.lookup(t, name, module)
	if !st.OK() {
		return nil, st
	}
	if !f.readable() {
		return nil, status(vimbax.ErrorInvalidAccess, "feature "+name+" is not readable")
	}
	if b, ok := f.value.([]byte); ok {
		return append([]byte{}, b...), st
	}
	return f.value, st
}

// Set stores value, which must have the native type of t. Set services
// only carry a bare code.
func (c *Camera) Set(t *vimbax.FeatureType, name string, module vimbax.Module, value interface{}) vimbax.ErrorCode {
	c.mu.Lock()
	defer c.mu.Unlock()
	f, st := c.lookup(t, name, module)
	if !st.OK() {
		return st.Code
	}
	if !f.writable() {
		return vimbax.ErrorInvalidAccess
	}
	if code := f.check(value); !code.OK() {
		return code
	}
	if b, ok := value.([]byte); ok {
		value = append([]byte{}, b...)
	}
	f.value = value
	return vimbax.ErrorSuccess
}

// Info returns the type specific description of a feature.
func (c *Camera) Info(t *vimbax.FeatureType, name string, module vimbax.Module) (vimbax.Info, vimbax.Status) {
	if !t.SupportsInfo() {
		return nil, status(vimbax.ErrorNotSupported, "type "+t.Name+" has no info")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	f, st := c.lookup(t, name, module)
	if !st.OK() {
		return nil, st
	}
	switch t.Name {
	case "Int":
		return vimbax.IntInfo{Min: f.intMin, Max: f.intMax, Inc: f.intInc}, st
	case "Float":
		return vimbax.FloatInfo{Min: f.floatMin, Max: f.floatMax, Inc: f.floatInc, IncAvailable: f.floatIncAvailable}, st
	case "Enum":
		return vimbax.EnumInfo{PossibleValues: append([]string{}, f.possible...), AvailableValues: f.available()}, st
	default:
		return vimbax.LengthInfo{MaxLength: f.maxLength}, st
	}
}

// List returns the feature names of module in description order.
func (c *Camera) List(module vimbax.Module) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	names := []string{}
	for _, key := range c.order {
		if key.module == module {
			names = append(names, key.name)
		}
	}
	return names
}

// Query returns the generic description of the named features of module,
// or of all of them when names is empty.
func (c *Camera) Query(names []string, module vimbax.Module) ([]msgs.FeatureInfo, vimbax.Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	infos := []msgs.FeatureInfo{}
	if len(names) == 0 {
		for _, key := range c.order {
			if key.module == module {
				infos = append(infos, c.features[key].info)
			}
		}
		return infos, vimbax.Status{}
	}
	for _, name := range names {
		f, st := c.lookup(nil, name, module)
		if !st.OK() {
			return infos, st
		}
		infos = append(infos, f.info)
	}
	return infos, vimbax.Status{}
}

// HasEvent reports whether the camera can emit the named event.
func (c *Camera) HasEvent(name string) bool {
	return c.events[name]
}
