package cli

import (
	"github.com/edwinhayes/rosgo-vimbax/vimbax"
	"github.com/spf13/cobra"
)

// NewFeatureInfoQueryCommand prints the generic info of some features, or
// of all of them when no names are given.
func NewFeatureInfoQueryCommand(env *Env) *cobra.Command {
	var module string
	cmd := newCommand(env,
		"feature_info_query node_namespace [feature_name...]",
		"Query the generic info of camera features",
		cobra.MinimumNArgs(1),
		func(s *session, args []string) error {
			return featureInfoQuery(s, args[0], args[1:], module)
		})
	addModuleFlag(cmd, &module)
	return cmd
}

func featureInfoQuery(s *session, namespace string, names []string, moduleName string) error {
	module, err := parseModule(moduleName)
	if err != nil {
		return err
	}

	node, err := s.openNode("vimbax_feature_info_query_example")
	if err != nil {
		return err
	}
	defer node.Shutdown()

	client := vimbax.NewClient(node, namespace, node.Logger())
	infos, status, err := client.QueryFeatureInfo(s.cmd.Context(), names, module)
	if err != nil {
		return err
	}
	if !status.OK() {
		s.printf("Querying feature info failed with %s\n", status)
		return nil
	}
	for i, info := range infos {
		if i > 0 {
			s.printf("\n")
		}
		s.printf("%s\n", vimbax.FormatFeatureInfo(info))
	}
	return nil
}
