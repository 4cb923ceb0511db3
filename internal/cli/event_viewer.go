package cli

import (
	"context"

	msgs "github.com/edwinhayes/rosgo-vimbax/msgs/vimbax_camera_msgs"
	"github.com/edwinhayes/rosgo-vimbax/vimbax"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewEventViewerCommand logs the meta data of one camera event until the
// node is interrupted.
func NewEventViewerCommand(env *Env) *cobra.Command {
	return newCommand(env,
		"event_viewer node_namespace event_name",
		"Print camera events as they arrive",
		cobra.ExactArgs(2),
		func(s *session, args []string) error {
			return eventViewer(s, args[0], args[1])
		})
}

func eventViewer(s *session, namespace, event string) error {
	node, err := s.openNode("vimbax_event_viewer_example")
	if err != nil {
		return err
	}
	defer node.Shutdown()

	logger := node.Logger()
	events := vimbax.NewEventSubscriber(node, namespace, logger)
	sub, err := events.Subscribe(s.cmd.Context(), event, func(data *msgs.EventData) {
		logEventData(logger, data)
	})
	if err != nil {
		logger.WithError(err).Error("Event subscription failed")
		return exitWith(ExitFailure)
	}

	node.Spin()

	// The command context may already be done after an interrupt.
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout)
	defer cancel()
	if err := sub.Unsubscribe(ctx); err != nil {
		logger.WithError(err).Warn("Unsubscribing event failed")
	}
	return nil
}

func logEventData(logger *logrus.Entry, data *msgs.EventData) {
	logger.Info("Got event meta data:")
	for _, entry := range data.Entries {
		logger.Infof("%s: %s", entry.Name, entry.Value)
	}
}
