// Automatically generated from the message definition "vimbax_camera_msgs/EventUnsubscribe.srv"
package vimbax_camera_msgs

import (
	"github.com/edwinhayes/rosgo-vimbax/ros"
)

// Service type metadata
type _SrvEventUnsubscribe struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvEventUnsubscribe) Name() string                  { return t.name }
func (t *_SrvEventUnsubscribe) MD5Sum() string                { return t.md5sum }
func (t *_SrvEventUnsubscribe) Text() string                  { return t.text }
func (t *_SrvEventUnsubscribe) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvEventUnsubscribe) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvEventUnsubscribe) NewService() ros.Service {
	return new(EventUnsubscribe)
}

var (
	SrvEventUnsubscribe = &_SrvEventUnsubscribe{
		"vimbax_camera_msgs/EventUnsubscribe",
		"c1f3d28f1b044c871e6eff2e9fc3c667",
		`string name
---
`,
		MsgEventUnsubscribeRequest,
		MsgEventUnsubscribeResponse,
	}
)

type EventUnsubscribe struct {
	Request  EventUnsubscribeRequest
	Response EventUnsubscribeResponse
}

func (s *EventUnsubscribe) ReqMessage() ros.Message { return &s.Request }
func (s *EventUnsubscribe) ResMessage() ros.Message { return &s.Response }
