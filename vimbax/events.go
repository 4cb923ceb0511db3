package vimbax

import (
	"context"

	msgs "github.com/edwinhayes/rosgo-vimbax/msgs/vimbax_camera_msgs"
	"github.com/edwinhayes/rosgo-vimbax/ros"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// EventNode is the part of a ROS node an EventSubscriber needs.
type EventNode interface {
	ServiceNode
	NewSubscriber(topic string, msgType ros.MessageType, callback interface{}) (ros.Subscriber, error)
}

// EventSubscriber subscribes to camera events published below the
// "events" namespace of a camera node.
type EventSubscriber struct {
	node      EventNode
	client    *Client
	namespace string
}

func NewEventSubscriber(node EventNode, namespace string, logger *logrus.Entry) *EventSubscriber {
	return &EventSubscriber{
		node:      node,
		client:    NewClient(node, namespace, logger),
		namespace: namespace,
	}
}

// EventSubscription is an active subscription to one event.
type EventSubscription struct {
	owner      *EventSubscriber
	name       string
	subscriber ros.Subscriber
}

// Subscribe starts listening for the named event and asks the camera node
// to emit it. callback runs inside the node's Spin loop.
func (e *EventSubscriber) Subscribe(ctx context.Context, name string, callback func(*msgs.EventData)) (*EventSubscription, error) {
	sub, err := e.node.NewSubscriber(EventTopic(e.namespace, name), msgs.MsgEventData, func(m *msgs.EventData) {
		callback(m)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "subscribe to event %s", name)
	}

	srv := new(msgs.EventSubscribe)
	srv.Request.Name = name
	if err := e.client.singleServiceCall(ctx, EventSubscribePath(e.namespace), msgs.SrvEventSubscribe, srv); err != nil {
		sub.Shutdown()
		return nil, err
	}
	if status := statusOf(srv.Response.Error); !status.OK() {
		sub.Shutdown()
		return nil, errors.Errorf("subscribing event %s failed with %s", name, status)
	}
	return &EventSubscription{owner: e, name: name, subscriber: sub}, nil
}

// Unsubscribe stops delivery and tells the camera node to stop emitting
// the event.
func (s *EventSubscription) Unsubscribe(ctx context.Context) error {
	s.subscriber.Shutdown()
	srv := new(msgs.EventUnsubscribe)
	srv.Request.Name = s.name
	return s.owner.client.singleServiceCall(ctx, EventUnsubscribePath(s.owner.namespace), msgs.SrvEventUnsubscribe, srv)
}
