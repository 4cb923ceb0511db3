// Package cli implements the vimbax command line utilities. Each utility
// is a single cobra command that talks to a running camera node over ROS.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/edwinhayes/rosgo-vimbax/ros"
	"github.com/edwinhayes/rosgo-vimbax/vimbax"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Exit codes returned by Execute.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Node is the part of ros.Node the commands use.
type Node interface {
	vimbax.EventNode
	Spin()
	Shutdown()
	Logger() *logrus.Entry
}

// NodeFactory creates the node a command talks through. rosArgs are the
// name:=value style arguments taken from the command line.
type NodeFactory func(name string, rosArgs []string, cfg *Config, logger *logrus.Logger) (Node, error)

// Env carries the process level dependencies of a command.
type Env struct {
	Stdout  io.Writer
	Stderr  io.Writer
	NewNode NodeFactory

	rosArgs []string
}

// DefaultEnv writes to the process streams and creates real ROS nodes.
func DefaultEnv() *Env {
	return &Env{Stdout: os.Stdout, Stderr: os.Stderr, NewNode: newRosNode}
}

func newRosNode(name string, rosArgs []string, cfg *Config, logger *logrus.Logger) (Node, error) {
	opts := []ros.NodeOption{
		ros.WithLogger(logger),
		ros.WithServiceTimeout(cfg.Timeout),
	}
	if cfg.MasterURI != "" {
		opts = append(opts, ros.WithMasterURI(cfg.MasterURI))
	}
	return ros.NewNode(name, rosArgs, opts...)
}

// exitError ends a command with a specific exit code. A nil err means the
// command already reported the problem.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func usageError(err error) error {
	return &exitError{code: ExitUsage, err: err}
}

func usageErrorf(format string, args ...interface{}) error {
	return usageError(errors.Errorf(format, args...))
}

// exitWith ends the command with code after its output has been written.
func exitWith(code int) error {
	return &exitError{code: code}
}

func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

// splitRosArgs separates remappings and private parameters from the
// arguments cobra should parse. Everything from a "--" on is left to cobra,
// so values containing ":=" can still be passed.
func splitRosArgs(args []string) (rosArgs []string, rest []string) {
	for i, arg := range args {
		if arg == "--" {
			rest = append(rest, args[i:]...)
			break
		}
		if ros.IsRosArgument(arg) {
			rosArgs = append(rosArgs, arg)
		} else {
			rest = append(rest, arg)
		}
	}
	return rosArgs, rest
}

// Command constructors take an Env and return a ready cobra command.
type CommandFunc func(env *Env) *cobra.Command

// Main runs a command against the process environment.
func Main(newCommand CommandFunc) {
	os.Exit(Execute(context.Background(), DefaultEnv(), newCommand, os.Args[1:]))
}

// Execute runs the command built by newCommand with args and returns the
// process exit code.
func Execute(ctx context.Context, env *Env, newCommand CommandFunc, args []string) int {
	rosArgs, rest := splitRosArgs(args)
	run := *env
	run.rosArgs = rosArgs

	cmd := newCommand(&run)
	cmd.SetArgs(rest)
	cmd.SetOut(env.Stdout)
	cmd.SetErr(env.Stderr)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	code := ExitFailure
	if e, ok := errors.Cause(err).(*exitError); ok {
		code = e.code
		if e.err == nil {
			return code
		}
	}
	fmt.Fprintf(env.Stderr, "Error: %v\n", err)
	if code == ExitUsage {
		fmt.Fprint(env.Stderr, cmd.UsageString())
	}
	return code
}

// session is the state of one command invocation.
type session struct {
	env    *Env
	cmd    *cobra.Command
	cfg    *Config
	logger *logrus.Logger
}

func newSession(env *Env, cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return nil, usageError(err)
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, usageError(err)
	}
	logger := ros.NewLogger(level)
	logger.SetOutput(env.Stderr)
	return &session{env: env, cmd: cmd, cfg: cfg, logger: logger}, nil
}

// openNode starts an anonymous node derived from base.
func (s *session) openNode(base string) (Node, error) {
	name := ros.AnonymousName(base, strings.SplitN(uuid.NewString(), "-", 2)[0])
	node, err := s.env.NewNode(name, s.env.rosArgs, s.cfg, s.logger)
	if err != nil {
		return nil, errors.Wrap(err, "create node")
	}
	return node, nil
}

func (s *session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.env.Stdout, format, args...)
}

// newCommand builds a command with the shared flags. run is called with a
// ready session after flags and positional arguments validated.
func newCommand(env *Env, use, short string, args cobra.PositionalArgs, run func(s *session, args []string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  usageArgs(args),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(env, cmd)
			if err != nil {
				return err
			}
			return run(s, args)
		},
	}
	addConfigFlags(cmd.Flags())
	return cmd
}

func addModuleFlag(cmd *cobra.Command, module *string) {
	cmd.Flags().StringVarP(module, "module", "m", vimbax.ModuleRemoteDevice.String(),
		"feature module ("+strings.Join(vimbax.ModuleNames(), ", ")+")")
}

func parseModule(name string) (vimbax.Module, error) {
	m, err := vimbax.ParseModule(name)
	if err != nil {
		return 0, usageError(err)
	}
	return m, nil
}

func lookupType(name string) (*vimbax.FeatureType, error) {
	t, err := vimbax.LookupType(name)
	if err != nil {
		return nil, usageError(err)
	}
	return t, nil
}
