// Package camsim simulates the feature and event services of a Vimba X
// camera node, backed by an in-memory feature table.
package camsim

import (
	"strings"

	msgs "github.com/edwinhayes/rosgo-vimbax/msgs/vimbax_camera_msgs"
	"github.com/edwinhayes/rosgo-vimbax/vimbax"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// FeatureConfig is one entry of a camera description. Values and limits
// are written the way feature_set takes them on the command line.
type FeatureConfig struct {
	Name        string   `mapstructure:"name"`
	Type        string   `mapstructure:"type"`
	Module      string   `mapstructure:"module"`
	Category    string   `mapstructure:"category"`
	DisplayName string   `mapstructure:"display_name"`
	Namespace   string   `mapstructure:"sfnc_namespace"`
	Unit        string   `mapstructure:"unit"`
	Access      string   `mapstructure:"access"`
	Volatile    bool     `mapstructure:"volatile"`
	Value       string   `mapstructure:"value"`
	Min         string   `mapstructure:"min"`
	Max         string   `mapstructure:"max"`
	Inc         string   `mapstructure:"inc"`
	MaxLength   int64    `mapstructure:"max_length"`
	Values      []string `mapstructure:"values"`
	Unavailable []string `mapstructure:"unavailable"`
}

// Description is the whole simulated camera.
type Description struct {
	Features []FeatureConfig `mapstructure:"features"`
	Events   []string        `mapstructure:"events"`
}

// LoadDescription reads the camera description under key of v.
func LoadDescription(v *viper.Viper, key string) (Description, error) {
	var d Description
	if err := v.UnmarshalKey(key, &d); err != nil {
		return Description{}, errors.Wrapf(err, "decode %s", key)
	}
	if len(d.Features) == 0 {
		return Description{}, errors.Errorf("%s describes no features", key)
	}
	return d, nil
}

// VmbFeatureDataType values.
var dataTypes = map[string]uint32{
	"Int":    1,
	"Float":  2,
	"Enum":   3,
	"String": 4,
	"Bool":   5,
	"Raw":    7,
}

type feature struct {
	info   msgs.FeatureInfo
	typ    *vimbax.FeatureType
	module vimbax.Module
	value  interface{}

	intMin, intMax, intInc       int64
	floatMin, floatMax, floatInc float64
	floatIncAvailable            bool
	maxLength                    int64
	possible                     []string
	unavailable                  map[string]bool
}

func (f *feature) readable() bool {
	return f.info.Flags.FlagRead
}

func (f *feature) writable() bool {
	return f.info.Flags.FlagWrite
}

func (f *feature) available() []string {
	values := []string{}
	for _, v := range f.possible {
		if !f.unavailable[v] {
			values = append(values, v)
		}
	}
	return values
}

func newFeature(c FeatureConfig) (*feature, error) {
	if c.Name == "" {
		return nil, errors.New("feature without a name")
	}
	typ, err := vimbax.LookupType(c.Type)
	if err != nil {
		return nil, errors.Wrapf(err, "feature %s", c.Name)
	}
	module := vimbax.ModuleRemoteDevice
	if c.Module != "" {
		if module, err = vimbax.ParseModule(c.Module); err != nil {
			return nil, errors.Wrapf(err, "feature %s", c.Name)
		}
	}

	f := &feature{typ: typ, module: module, unavailable: make(map[string]bool)}
	f.info = msgs.FeatureInfo{
		Name:          c.Name,
		Category:      c.Category,
		DisplayName:   c.DisplayName,
		SfncNamespace: c.Namespace,
		Unit:          c.Unit,
		DataType:      dataTypes[typ.Name],
	}
	if f.info.DisplayName == "" {
		f.info.DisplayName = c.Name
	}
	switch strings.ToLower(c.Access) {
	case "", "rw":
		f.info.Flags.FlagRead, f.info.Flags.FlagWrite = true, true
	case "ro":
		f.info.Flags.FlagRead = true
	case "wo":
		f.info.Flags.FlagWrite = true
	default:
		return nil, errors.Errorf("feature %s: invalid access %q (choose from rw, ro, wo)", c.Name, c.Access)
	}
	f.info.Flags.FlagVolatile = c.Volatile

	parse := func(field string, text string, fallback interface{}) (interface{}, error) {
		if text == "" {
			return fallback, nil
		}
		v, err := typ.ParseValue(text)
		return v, errors.Wrapf(err, "feature %s %s", c.Name, field)
	}
	var zero interface{}
	switch typ.Name {
	case "Int":
		zero = int64(0)
	case "Float":
		zero = float64(0)
	case "Bool":
		zero = false
	case "Raw":
		zero = []byte{}
	default:
		zero = ""
	}
	if f.value, err = parse("value", c.Value, zero); err != nil {
		return nil, err
	}

	switch typ.Name {
	case "Int":
		lo, err := parse("min", c.Min, int64(-1<<63))
		if err != nil {
			return nil, err
		}
		hi, err := parse("max", c.Max, int64(1<<63-1))
		if err != nil {
			return nil, err
		}
		step, err := parse("inc", c.Inc, int64(1))
		if err != nil {
			return nil, err
		}
		f.intMin, f.intMax, f.intInc = lo.(int64), hi.(int64), step.(int64)
		if f.intInc <= 0 || f.intMin > f.intMax {
			return nil, errors.Errorf("feature %s: invalid range [%d, %d] step %d", c.Name, f.intMin, f.intMax, f.intInc)
		}
	case "Float":
		lo, err := parse("min", c.Min, -1e308)
		if err != nil {
			return nil, err
		}
		hi, err := parse("max", c.Max, 1e308)
		if err != nil {
			return nil, err
		}
		f.floatIncAvailable = c.Inc != ""
		step, err := parse("inc", c.Inc, float64(0))
		if err != nil {
			return nil, err
		}
		f.floatMin, f.floatMax, f.floatInc = lo.(float64), hi.(float64), step.(float64)
		if f.floatMin > f.floatMax {
			return nil, errors.Errorf("feature %s: invalid range [%g, %g]", c.Name, f.floatMin, f.floatMax)
		}
	case "String", "Raw":
		f.maxLength = c.MaxLength
	case "Enum":
		if len(c.Values) == 0 {
			return nil, errors.Errorf("feature %s: enum without values", c.Name)
		}
		f.possible = append([]string{}, c.Values...)
		for _, v := range c.Unavailable {
			f.unavailable[v] = true
		}
		available := f.available()
		if len(available) == 0 {
			return nil, errors.Errorf("feature %s: no enum value is available", c.Name)
		}
		if c.Value == "" {
			f.value = available[0]
		}
	}
	if code := f.check(f.value); !code.OK() {
		return nil, errors.Errorf("feature %s: initial value %s is invalid: %s", c.Name, vimbax.FormatValue(f.value), code)
	}
	return f, nil
}

// check validates value against the feature's limits.
func (f *feature) check(value interface{}) vimbax.ErrorCode {
	switch v := value.(type) {
	case int64:
		if v < f.intMin || v > f.intMax || uint64(v-f.intMin)%uint64(f.intInc) != 0 {
			return vimbax.ErrorInvalidValue
		}
	case float64:
		if v < f.floatMin || v > f.floatMax {
			return vimbax.ErrorInvalidValue
		}
	case string:
		if f.typ.Name == "Enum" {
			for _, p := range f.possible {
				if p == v {
					if f.unavailable[v] {
						return vimbax.ErrorInvalidValue
					}
					return vimbax.ErrorSuccess
				}
			}
			return vimbax.ErrorInvalidValue
		}
		if f.maxLength > 0 && int64(len(v)) > f.maxLength {
			return vimbax.ErrorInvalidValue
		}
	case []byte:
		if f.maxLength > 0 && int64(len(v)) > f.maxLength {
			return vimbax.ErrorInvalidValue
		}
	}
	return vimbax.ErrorSuccess
}
