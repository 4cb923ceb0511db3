package vimbax

import (
	"context"

	"github.com/edwinhayes/rosgo-vimbax/ros"
	"github.com/sirupsen/logrus"
)

type fakeCall struct {
	service string
	srvType string
	srv     ros.Service
}

// fakeNode records service calls and lets a test fill in responses.
type fakeNode struct {
	calls       []fakeCall
	respond     func(service string, srv ros.Service) error
	topics      []string
	callbacks   map[string]interface{}
	subscribers []*fakeSubscriber
	subErr      error
}

func newFakeNode(respond func(service string, srv ros.Service) error) *fakeNode {
	return &fakeNode{respond: respond, callbacks: make(map[string]interface{})}
}

func (n *fakeNode) NewServiceClient(service string, srvType ros.ServiceType) ros.ServiceClient {
	return &fakeClient{node: n, service: service, srvType: srvType}
}

func (n *fakeNode) NewSubscriber(topic string, msgType ros.MessageType, callback interface{}) (ros.Subscriber, error) {
	if n.subErr != nil {
		return nil, n.subErr
	}
	n.topics = append(n.topics, topic)
	n.callbacks[topic] = callback
	sub := new(fakeSubscriber)
	n.subscribers = append(n.subscribers, sub)
	return sub, nil
}

func (n *fakeNode) services() []string {
	var names []string
	for _, c := range n.calls {
		names = append(names, c.service)
	}
	return names
}

type fakeClient struct {
	node    *fakeNode
	service string
	srvType ros.ServiceType
}

func (c *fakeClient) Call(srv ros.Service) error {
	return c.CallContext(context.Background(), srv)
}

func (c *fakeClient) CallContext(ctx context.Context, srv ros.Service) error {
	c.node.calls = append(c.node.calls, fakeCall{c.service, c.srvType.Name(), srv})
	if c.node.respond == nil {
		return nil
	}
	return c.node.respond(c.service, srv)
}

func (c *fakeClient) Shutdown() {}

type fakeSubscriber struct {
	shutdown bool
}

func (s *fakeSubscriber) GetNumPublishers() int { return 1 }
func (s *fakeSubscriber) Shutdown()             { s.shutdown = true }

func testLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	return logrus.NewEntry(logger)
}
