// Automatically generated from the message definition "vimbax_camera_msgs/EventDataEntry.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgEventDataEntry struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgEventDataEntry) Text() string {
	return t.text
}

func (t *_MsgEventDataEntry) Name() string {
	return t.name
}

func (t *_MsgEventDataEntry) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgEventDataEntry) NewMessage() ros.Message {
	m := new(EventDataEntry)
	m.Name = ""
	m.Value = ""
	return m
}

var (
	MsgEventDataEntry = &_MsgEventDataEntry{
		`string name
string value
`,
		"vimbax_camera_msgs/EventDataEntry",
		"bc6ccc4a57f61779c8eaae61e9f422e0",
	}
)

type EventDataEntry struct {
	Name  string `rosmsg:"name:string"`
	Value string `rosmsg:"value:string"`
}

func (m *EventDataEntry) Type() ros.MessageType {
	return MsgEventDataEntry
}

func (m *EventDataEntry) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.Name))))
	buf.Write([]byte(m.Name))
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.Value))))
	buf.Write([]byte(m.Value))
	return err
}

func (m *EventDataEntry) Deserialize(buf *bytes.Reader) error {
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
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		data := make([]byte, int(size))
		if err = binary.Read(buf, binary.LittleEndian, data); err != nil {
			return err
		}
		m.Value = string(data)
	}
	return err
}
