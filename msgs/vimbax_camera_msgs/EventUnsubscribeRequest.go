// Automatically generated from the message definition "vimbax_camera_msgs/EventUnsubscribeRequest.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgEventUnsubscribeRequest struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgEventUnsubscribeRequest) Text() string {
	return t.text
}

func (t *_MsgEventUnsubscribeRequest) Name() string {
	return t.name
}

func (t *_MsgEventUnsubscribeRequest) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgEventUnsubscribeRequest) NewMessage() ros.Message {
	m := new(EventUnsubscribeRequest)
	m.Name = ""
	return m
}

var (
	MsgEventUnsubscribeRequest = &_MsgEventUnsubscribeRequest{
		`string name
`,
		"vimbax_camera_msgs/EventUnsubscribeRequest",
		"c1f3d28f1b044c871e6eff2e9fc3c667",
	}
)

type EventUnsubscribeRequest struct {
	Name string `rosmsg:"name:string"`
}

func (m *EventUnsubscribeRequest) Type() ros.MessageType {
	return MsgEventUnsubscribeRequest
}

func (m *EventUnsubscribeRequest) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.Name))))
	buf.Write([]byte(m.Name))
	return err
}

func (m *EventUnsubscribeRequest) Deserialize(buf *bytes.Reader) error {
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
