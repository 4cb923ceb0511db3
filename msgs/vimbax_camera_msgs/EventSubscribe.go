// Automatically generated from the message definition "vimbax_camera_msgs/EventSubscribe.srv"
package vimbax_camera_msgs

import (
	"github.com/edwinhayes/rosgo-vimbax/ros"
)

// Service type metadata
type _SrvEventSubscribe struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvEventSubscribe) Name() string                  { return t.name }
func (t *_SrvEventSubscribe) MD5Sum() string                { return t.md5sum }
func (t *_SrvEventSubscribe) Text() string                  { return t.text }
func (t *_SrvEventSubscribe) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvEventSubscribe) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvEventSubscribe) NewService() ros.Service {
	return new(EventSubscribe)
}

var (
	SrvEventSubscribe = &_SrvEventSubscribe{
		"vimbax_camera_msgs/EventSubscribe",
		"119f87e2b78ba6069654c58b4eafa83a",
		`string name
---
Error error
`,
		MsgEventSubscribeRequest,
		MsgEventSubscribeResponse,
	}
)

type EventSubscribe struct {
	Request  EventSubscribeRequest
	Response EventSubscribeResponse
}

func (s *EventSubscribe) ReqMessage() ros.Message { return &s.Request }
func (s *EventSubscribe) ResMessage() ros.Message { return &s.Response }
