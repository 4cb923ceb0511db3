// Automatically generated from the message definition "vimbax_camera_msgs/EventSubscribeRequest.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgEventSubscribeRequest struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgEventSubscribeRequest) Text() string {
	return t.text
}

func (t *_MsgEventSubscribeRequest) Name() string {
	return t.name
}

func (t *_MsgEventSubscribeRequest) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgEventSubscribeRequest) NewMessage() ros.Message {
	m := new(EventSubscribeRequest)
	m.Name = ""
	return m
}

var (
	MsgEventSubscribeRequest = &_MsgEventSubscribeRequest{
		`string name
`,
		"vimbax_camera_msgs/EventSubscribeRequest",
		"c1f3d28f1b044c871e6eff2e9fc3c667",
	}
)

type EventSubscribeRequest struct {
	Name string `rosmsg:"name:string"`
}

func (m *EventSubscribeRequest) Type() ros.MessageType {
	return MsgEventSubscribeRequest
}

func (m *EventSubscribeRequest) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.Name))))
	buf.Write([]byte(m.Name))
	return err
}

func (m *EventSubscribeRequest) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		data := make([]byte, int(size))
		if err = binary.Read(buf, binary.LittleEndian, data); err != nil {
			return err
		}
		m.Name = string(data)
	}
	return err
}
