// Command vimbax_camera_sim serves the feature and event services of a
// simulated Vimba X camera, so the vimbax tools can be tried without
// hardware.
//
//	vimbax_camera_sim [--config camera.yaml] [--event-interval 1s] [node_name] [name:=value...]
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/edwinhayes/rosgo-vimbax/internal/camsim"
	"github.com/edwinhayes/rosgo-vimbax/ros"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	defaultNodeName = "vimbax_camera_sim"
	envPrefix       = "VIMBAX"

	cfgKeyMasterURI     = "master_uri"
	cfgKeyLogLevel      = "log_level"
	cfgKeyEventInterval = "event_interval"
	cfgKeyCamera        = "camera"
)

// settings are resolved from flags, VIMBAX_* variables and the config file.
type settings struct {
	masterURI     string
	logLevel      logrus.Level
	eventInterval time.Duration
	description   camsim.Description
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	for key, flag := range map[string]string{
		cfgKeyMasterURI:     "master-uri",
		cfgKeyLogLevel:      "log-level",
		cfgKeyEventInterval: "event-interval",
	} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return nil, errors.Wrapf(err, "bind flag %s", flag)
		}
	}
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	level, err := logrus.ParseLevel(v.GetString(cfgKeyLogLevel))
	if err != nil {
		return nil, err
	}
	s := &settings{
		masterURI:     v.GetString(cfgKeyMasterURI),
		logLevel:      level,
		eventInterval: v.GetDuration(cfgKeyEventInterval),
		description:   camsim.DefaultDescription(),
	}
	if v.IsSet(cfgKeyCamera) {
		if s.description, err = camsim.LoadDescription(v, cfgKeyCamera); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func splitRosArgs(args []string) (rosArgs []string, rest []string) {
	for _, arg := range args {
		if ros.IsRosArgument(arg) {
			rosArgs = append(rosArgs, arg)
		} else {
			rest = append(rest, arg)
		}
	}
	return rosArgs, rest
}

// splitArgs leaves the arguments after "--" untouched.
func splitArgs(cmd *cobra.Command, args []string) (rosArgs []string, rest []string) {
	var plain []string
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		args, plain = args[:dash], args[dash:]
	}
	rosArgs, rest = splitRosArgs(args)
	return rosArgs, append(rest, plain...)
}

func serve(ctx context.Context, s *settings, name string, rosArgs []string) error {
	camera, err := camsim.NewCamera(s.description)
	if err != nil {
		return err
	}
	logger := ros.NewLogger(s.logLevel)
	opts := []ros.NodeOption{ros.WithLogger(logger)}
	if s.masterURI != "" {
		opts = append(opts, ros.WithMasterURI(s.masterURI))
	}
	node, err := ros.NewNode(name, rosArgs, opts...)
	if err != nil {
		return errors.Wrap(err, "create node")
	}
	defer node.Shutdown()

	server, err := camsim.Serve(node, node.QualifiedName(), camera, node.Logger())
	if err != nil {
		return err
	}
	defer server.Shutdown()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if s.eventInterval > 0 {
		go server.Run(ctx, s.eventInterval)
	}
	node.Logger().Infof("Simulated camera %s is up", node.QualifiedName())
	node.Spin()
	return nil
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "vimbax_camera_sim [node_name]",
		Short:         "Serve the feature and event services of a simulated camera",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rosArgs, rest := splitArgs(cmd, args)
			if len(rest) > 1 {
				return errors.Errorf("accepts at most one node name, received %d", len(rest))
			}
			name := defaultNodeName
			if len(rest) == 1 {
				name = rest[0]
			}
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), s, name, rosArgs)
		},
	}
	flags := cmd.Flags()
	flags.String("config", "", "config file with a camera description")
	flags.String("master-uri", "", "ROS master URI (default $ROS_MASTER_URI)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Duration("event-interval", time.Second, "period of emitted events, 0 disables them")
	return cmd
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
