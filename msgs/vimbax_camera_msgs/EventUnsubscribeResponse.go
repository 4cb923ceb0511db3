// Automatically generated from the message definition "vimbax_camera_msgs/EventUnsubscribeResponse.msg"
package vimbax_camera_msgs

import (
	"bytes"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgEventUnsubscribeResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgEventUnsubscribeResponse) Text() string {
	return t.text
}

func (t *_MsgEventUnsubscribeResponse) Name() string {
	return t.name
}

func (t *_MsgEventUnsubscribeResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgEventUnsubscribeResponse) NewMessage() ros.Message {
	m := new(EventUnsubscribeResponse)
	return m
}

var (
	MsgEventUnsubscribeResponse = &_MsgEventUnsubscribeResponse{
		``,
		"vimbax_camera_msgs/EventUnsubscribeResponse",
		"d41d8cd98f00b204e9800998ecf8427e",
	}
)

type EventUnsubscribeResponse struct{}

func (m *EventUnsubscribeResponse) Type() ros.MessageType {
	return MsgEventUnsubscribeResponse
}

func (m *EventUnsubscribeResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	return err
}

func (m *EventUnsubscribeResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	return err
}
