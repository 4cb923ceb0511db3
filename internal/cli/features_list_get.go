package cli

import (
	"github.com/edwinhayes/rosgo-vimbax/vimbax"
	"github.com/spf13/cobra"
)

// NewFeaturesListGetCommand lists the feature names of one module.
func NewFeaturesListGetCommand(env *Env) *cobra.Command {
	var module string
	cmd := newCommand(env,
		"features_list_get node_namespace",
		"List the features of a camera",
		cobra.ExactArgs(1),
		func(s *session, args []string) error {
			return featuresListGet(s, args[0], module)
		})
	addModuleFlag(cmd, &module)
	return cmd
}

func featuresListGet(s *session, namespace, moduleName string) error {
	module, err := parseModule(moduleName)
	if err != nil {
		return err
	}

	node, err := s.openNode("vimbax_features_list_get_example")
	if err != nil {
		return err
	}
	defer node.Shutdown()

	client := vimbax.NewClient(node, namespace, node.Logger())
	names, status, err := client.ListFeatures(s.cmd.Context(), module)
	if err != nil {
		return err
	}
	if !status.OK() {
		s.printf("Getting feature list failed with %s\n", status)
		return nil
	}
	for _, name := range names {
		s.printf("%s\n", name)
	}
	return nil
}
