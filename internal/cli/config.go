package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/edwinhayes/rosgo-vimbax/ros"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configDirName  = ".vimbax"
	envPrefix      = "VIMBAX"

	cfgKeyMasterURI = "master_uri"
	cfgKeyTimeout   = "timeout"
	cfgKeyLogLevel  = "log_level"

	defaultLogLevel = "info"
)

// Config holds the settings shared by every command.
type Config struct {
	// MasterURI overrides ROS_MASTER_URI when set.
	MasterURI string
	Timeout   time.Duration
	LogLevel  string
}

func addConfigFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file (default ~/.vimbax/config.yaml)")
	flags.String("master-uri", "", "ROS master URI (default $ROS_MASTER_URI)")
	flags.Duration("timeout", ros.DefaultServiceTimeout, "service call timeout")
	flags.String("log-level", defaultLogLevel, "log level (debug, info, warn, error)")
}

// loadConfig layers flags over VIMBAX_* environment variables over the
// config file. A missing default config file is not an error.
func loadConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyTimeout, ros.DefaultServiceTimeout)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	for key, flag := range map[string]string{
		cfgKeyMasterURI: "master-uri",
		cfgKeyTimeout:   "timeout",
		cfgKeyLogLevel:  "log-level",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, errors.Wrapf(err, "bind flag %s", flag)
		}
	}

	path, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	} else if home, err := os.UserHomeDir(); err == nil {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(filepath.Join(home, configDirName))
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, errors.Wrap(err, "read config")
			}
		}
	}

	cfg := &Config{
		MasterURI: v.GetString(cfgKeyMasterURI),
		Timeout:   v.GetDuration(cfgKeyTimeout),
		LogLevel:  v.GetString(cfgKeyLogLevel),
	}
	if cfg.Timeout <= 0 {
		return nil, errors.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}
	return cfg, nil
}
