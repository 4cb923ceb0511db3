package cli

import (
	"strings"

	"github.com/edwinhayes/rosgo-vimbax/vimbax"
	"github.com/spf13/cobra"
)

// NewFeatureGetCommand reads one feature value.
func NewFeatureGetCommand(env *Env) *cobra.Command {
	var module string
	cmd := newCommand(env,
		"feature_get node_namespace {"+strings.Join(vimbax.TypeNames(), ",")+"} feature_name",
		"Get the value of a camera feature",
		cobra.ExactArgs(3),
		func(s *session, args []string) error {
			return featureGet(s, args[0], args[1], args[2], module)
		})
	addModuleFlag(cmd, &module)
	return cmd
}

func featureGet(s *session, namespace, typeName, feature, moduleName string) error {
	t, err := lookupType(typeName)
	if err != nil {
		return err
	}
	module, err := parseModule(moduleName)
	if err != nil {
		return err
	}

	node, err := s.openNode("vimbax_feature_get_example")
	if err != nil {
		return err
	}
	defer node.Shutdown()

	client := vimbax.NewClient(node, namespace, node.Logger())
	value, status, err := client.Get(s.cmd.Context(), t, feature, module)
	if err != nil {
		return err
	}
	if !status.OK() {
		s.printf("Getting feature %s value failed with %s\n", feature, status)
		return nil
	}
	s.printf("Feature %s value: %s\n", feature, vimbax.FormatValue(value))
	return nil
}
