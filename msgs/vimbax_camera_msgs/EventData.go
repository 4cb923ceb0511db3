// Automatically generated from the message definition "vimbax_camera_msgs/EventData.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/msgs/std_msgs"
	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgEventData struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgEventData) Text() string {
	return t.text
}

func (t *_MsgEventData) Name() string {
	return t.name
}

func (t *_MsgEventData) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgEventData) NewMessage() ros.Message {
	m := new(EventData)
	m.Header = std_msgs.Header{}
	m.Entries = []EventDataEntry{}
	return m
}

var (
	MsgEventData = &_MsgEventData{
		`Header header
EventDataEntry[] entries
`,
		"vimbax_camera_msgs/EventData",
		"1b1170a539d02222b7ba62ef0835f5e7",
	}
)

type EventData struct {
	Header  std_msgs.Header  `rosmsg:"header:Header"`
	Entries []EventDataEntry `rosmsg:"entries:EventDataEntry[]"`
}

func (m *EventData) Type() ros.MessageType {
	return MsgEventData
}

func (m *EventData) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	if err = m.Header.Serialize(buf); err != nil {
		return err
	}
	binary.Write(buf, binary.LittleEndian, uint32(len(m.Entries)))
	for _, e := range m.Entries {
		if err = e.Serialize(buf); err != nil {
			return err
		}
	}
	return err
}

func (m *EventData) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = m.Header.Deserialize(buf); err != nil {
		return err
	}
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		m.Entries = make([]EventDataEntry, int(size))
		for i := 0; i < int(size); i++ {
			if err = m.Entries[i].Deserialize(buf); err != nil {
				return err
			}
		}
	}
	return err
}
