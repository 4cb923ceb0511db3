package cli

import (
	"strings"

	"github.com/edwinhayes/rosgo-vimbax/vimbax"
	"github.com/spf13/cobra"
)

// NewFeatureInfoGetCommand prints the constraints of one feature.
func NewFeatureInfoGetCommand(env *Env) *cobra.Command {
	var module string
	cmd := newCommand(env,
		"feature_info_get node_namespace {"+strings.Join(vimbax.TypeNames(), ",")+"} feature_name",
		"Get the info of a camera feature",
		cobra.ExactArgs(3),
		func(s *session, args []string) error {
			return featureInfoGet(s, args[0], args[1], args[2], module)
		})
	addModuleFlag(cmd, &module)
	return cmd
}

func featureInfoGet(s *session, namespace, typeName, feature, moduleName string) error {
	t, err := lookupType(typeName)
	if err != nil {
		return err
	}
	module, err := parseModule(moduleName)
	if err != nil {
		return err
	}
	if !t.SupportsInfo() {
		s.printf("Feature type %s does not support info query\n", t.Name)
		return exitWith(ExitFailure)
	}

	node, err := s.openNode("vimbax_feature_info_get_example")
	if err != nil {
		return err
	}
	defer node.Shutdown()

	client := vimbax.NewClient(node, namespace, node.Logger())
	info, status, err := client.InfoGet(s.cmd.Context(), t, feature, module)
	if err != nil {
		return err
	}
	if !status.OK() {
		s.printf("Getting feature %s info failed with %s\n", feature, status)
		return nil
	}
	s.printf("%s\n", info)
	return nil
}
