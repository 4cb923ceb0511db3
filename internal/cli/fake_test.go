package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/edwinhayes/rosgo-vimbax/ros"
	"github.com/sirupsen/logrus"
)

type fakeCall struct {
	service string
	srv     ros.Service
}

type fakeNode struct {
	logger    *logrus.Entry
	respond   func(service string, srv ros.Service) error
	calls     []fakeCall
	callbacks map[string]interface{}
	onSpin    func(n *fakeNode)
	spun      bool
	shutdown  bool
}

func (n *fakeNode) NewServiceClient(service string, srvType ros.ServiceType) ros.ServiceClient {
	return &fakeClient{node: n, service: service}
}

func (n *fakeNode) NewSubscriber(topic string, msgType ros.MessageType, callback interface{}) (ros.Subscriber, error) {
	n.callbacks[topic] = callback
	return &fakeSubscriber{}, nil
}

func (n *fakeNode) Spin() {
	n.spun = true
	if n.onSpin != nil {
		n.onSpin(n)
	}
}

func (n *fakeNode) Shutdown()             { n.shutdown = true }
func (n *fakeNode) Logger() *logrus.Entry { return n.logger }

type fakeClient struct {
	node    *fakeNode
	service string
}

func (c *fakeClient) Call(srv ros.Service) error {
	return c.CallContext(context.Background(), srv)
}

func (c *fakeClient) CallContext(ctx context.Context, srv ros.Service) error {
	c.node.calls = append(c.node.calls, fakeCall{c.service, srv})
	if c.node.respond == nil {
		return nil
	}
	return c.node.respond(c.service, srv)
}

func (c *fakeClient) Shutdown() {}

type fakeSubscriber struct{}

func (s *fakeSubscriber) GetNumPublishers() int { return 1 }
func (s *fakeSubscriber) Shutdown()             {}

// harness runs commands against a fakeNode and captures their output.
type harness struct {
	t        *testing.T
	node     *fakeNode
	created  []string
	rosArgs  []string
	stdout   bytes.Buffer
	stderr   bytes.Buffer
	nodeLogs bytes.Buffer
}

func newHarness(t *testing.T, respond func(service string, srv ros.Service) error) *harness {
	t.Setenv("HOME", t.TempDir())
	h := &harness{t: t}
	logger := logrus.New()
	logger.SetOutput(&h.nodeLogs)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	h.node = &fakeNode{
		logger:    logrus.NewEntry(logger),
		respond:   respond,
		callbacks: make(map[string]interface{}),
	}
	return h
}

func (h *harness) run(newCommand CommandFunc, args ...string) int {
	env := &Env{
		Stdout: &h.stdout,
		Stderr: &h.stderr,
		NewNode: func(name string, rosArgs []string, cfg *Config, logger *logrus.Logger) (Node, error) {
			h.created = append(h.created, name)
			h.rosArgs = rosArgs
			return h.node, nil
		},
	}
	return Execute(context.Background(), env, newCommand, args)
}
