// Command gengo generates Go message and service types from ROS
// definition files.
//
//	gengo [--out dir] [--path dir...] pkg vimbax_camera_msgs
//	gengo msg std_msgs/Header
//	gengo srv vimbax_camera_msgs/FeatureIntGet
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/edwinhayes/rosgo-vimbax/internal/gengo"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	defaultImportPrefix = "github.com/edwinhayes/rosgo-vimbax/msgs"
	defaultRosImport    = "github.com/edwinhayes/rosgo-vimbax/ros"
)

type options struct {
	out          string
	paths        []string
	importPrefix string
	rosImport    string
	verbose      bool
}

func (o *options) generator() *gengo.Generator {
	return &gengo.Generator{ImportPrefix: o.importPrefix, RosImport: o.rosImport}
}

func (o *options) generate(log *logrus.Logger, msgs, srvs []string) error {
	ctx := gengo.NewContext(o.paths)
	written, err := o.generator().WriteFiles(ctx, o.out, msgs, srvs)
	for _, path := range written {
		log.WithField("file", path).Debug("Generated")
	}
	if err != nil {
		return err
	}
	log.Infof("Generated %d files in %s", len(written), o.out)
	return nil
}

func newRootCommand(log *logrus.Logger) *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "gengo",
		Short:         "Generate Go types from ROS message definitions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if o.verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&o.out, "out", ".", "directory to generate packages in")
	flags.StringSliceVar(&o.paths, "path", filepath.SplitList(os.Getenv("ROS_PACKAGE_PATH")),
		"directories holding ROS packages (default $ROS_PACKAGE_PATH)")
	flags.StringVar(&o.importPrefix, "import-prefix", defaultImportPrefix, "import path of the generated packages")
	flags.StringVar(&o.rosImport, "ros-import", defaultRosImport, "import path of the ros package")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log every generated file")

	root.AddCommand(&cobra.Command{
		Use:   "msg pkg/Name [file]",
		Short: "Generate one message",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				return o.generateFromFile(log, args[0], args[1], false)
			}
			return o.generate(log, args[:1], nil)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "srv pkg/Name [file]",
		Short: "Generate one service with its request and response",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				return o.generateFromFile(log, args[0], args[1], true)
			}
			return o.generate(log, nil, args[:1])
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "pkg name...",
		Short: "Generate every message and service of ROS packages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := gengo.NewContext(o.paths)
			var msgs, srvs []string
			for _, pkg := range args {
				m, s := ctx.Messages(pkg), ctx.Services(pkg)
				if len(m)+len(s) == 0 {
					return errors.Errorf("no definitions found for package %s in %s", pkg, strings.Join(o.paths, ":"))
				}
				msgs = append(msgs, m...)
				srvs = append(srvs, s...)
			}
			return o.generate(log, msgs, srvs)
		},
	})
	return root
}

// generateFromFile handles a definition that is not on the package path.
func (o *options) generateFromFile(log *logrus.Logger, fullName, file string, service bool) error {
	ctx := gengo.NewContext(o.paths)
	g := o.generator()
	if service {
		spec, err := ctx.LoadSrvFromFile(file, fullName)
		if err != nil {
			return err
		}
		if _, err := g.WriteService(o.out, spec); err != nil {
			return err
		}
	} else {
		spec, err := ctx.LoadMsgFromFile(file, fullName)
		if err != nil {
			return err
		}
		if _, err := g.WriteMessage(o.out, spec); err != nil {
			return err
		}
	}
	log.Infof("Generated %s from %s", fullName, file)
	return nil
}

func main() {
	log := logrus.New()
	if err := newRootCommand(log).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
