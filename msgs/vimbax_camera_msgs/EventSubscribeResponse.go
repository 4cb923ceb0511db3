// Automatically generated from the message definition "vimbax_camera_msgs/EventSubscribeResponse.msg"
package vimbax_camera_msgs

import (
	"bytes"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgEventSubscribeResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgEventSubscribeResponse) Text() string {
	return t.text
}

func (t *_MsgEventSubscribeResponse) Name() string {
	return t.name
}

func (t *_MsgEventSubscribeResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgEventSubscribeResponse) NewMessage() ros.Message {
	m := new(EventSubscribeResponse)
	m.Error = Error{}
	return m
}

var (
	MsgEventSubscribeResponse = &_MsgEventSubscribeResponse{
		`Error error
`,
		"vimbax_camera_msgs/EventSubscribeResponse",
		"0c326146f5d0f3b76ebc0aefcd501c7d",
	}
)

type EventSubscribeResponse struct {
	Error Error `rosmsg:"error:Error"`
}

func (m *EventSubscribeResponse) Type() ros.MessageType {
	return MsgEventSubscribeResponse
}

func (m *EventSubscribeResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	if err = m.Error.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *EventSubscribeResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = m.Error.Deserialize(buf); err != nil {
		return err
	}
	return err
}
