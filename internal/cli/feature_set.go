package cli

import (
	"strings"

	"github.com/edwinhayes/rosgo-vimbax/vimbax"
	"github.com/spf13/cobra"
)

const featureSetLong = `Set the value of a camera feature.

Flags must come before node_name, so that a negative value is not taken
for a flag. Put "--" before a value containing ":=" to keep it from being
read as a ROS remapping.`

// NewFeatureSetCommand writes one feature value.
func NewFeatureSetCommand(env *Env) *cobra.Command {
	var module string
	cmd := newCommand(env,
		"feature_set [flags] node_name {"+strings.Join(vimbax.TypeNames(), ",")+"} feature_name [--] value",
		"Set the value of a camera feature",
		func(cmd *cobra.Command, args []string) error {
			return cobra.ExactArgs(4)(cmd, withoutTerminator(args))
		},
		func(s *session, args []string) error {
			args = withoutTerminator(args)
			return featureSet(s, args[0], args[1], args[2], args[3], module)
		})
	cmd.Long = featureSetLong
	addModuleFlag(cmd, &module)
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// withoutTerminator drops the first "--". Once flag parsing stops at the
// node name, pflag hands it over as a positional argument.
func withoutTerminator(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return append(append([]string{}, args[:i]...), args[i+1:]...)
		}
	}
	return args
}

func featureSet(s *session, namespace, typeName, feature, text, moduleName string) error {
	t, err := lookupType(typeName)
	if err != nil {
		return err
	}
	module, err := parseModule(moduleName)
	if err != nil {
		return err
	}
	value, err := t.ParseValue(text)
	if err != nil {
		return usageError(err)
	}

	node, err := s.openNode("vimbax_feature_set_example")
	if err != nil {
		return err
	}
	defer node.Shutdown()

	client := vimbax.NewClient(node, namespace, node.Logger())
	code, err := client.Set(s.cmd.Context(), t, feature, value, module)
	if err != nil {
		return err
	}
	if !code.OK() {
		s.printf("Setting feature %s value failed with %s\n", feature, code)
		return nil
	}
	s.printf("Changed feature %s to %s\n", feature, text)
	return nil
}
