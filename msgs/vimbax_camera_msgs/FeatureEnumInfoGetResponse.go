// Automatically generated from the message definition "vimbax_camera_msgs/FeatureEnumInfoGetResponse.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureEnumInfoGetResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureEnumInfoGetResponse) Text() string {
	return t.text
}

func (t *_MsgFeatureEnumInfoGetResponse) Name() string {
	return t.name
}

func (t *_MsgFeatureEnumInfoGetResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureEnumInfoGetResponse) NewMessage() ros.Message {
	m := new(FeatureEnumInfoGetResponse)
	m.PossibleValues = []string{}
	m.AvailableValues = []string{}
	m.Error = Error{}
	return m
}

var (
	MsgFeatureEnumInfoGetResponse = &_MsgFeatureEnumInfoGetResponse{
		`string[] possible_values
string[] available_values
Error error
`,
		"vimbax_camera_msgs/FeatureEnumInfoGetResponse",
		"7b828cb5fc46a6d0ba6b277b70215db5",
	}
)

type FeatureEnumInfoGetResponse struct {
	PossibleValues  []string `rosmsg:"possible_values:string[]"`
	AvailableValues []string `rosmsg:"available_values:string[]"`
	Error           Error    `rosmsg:"error:Error"`
}

func (m *FeatureEnumInfoGetResponse) Type() ros.MessageType {
	return MsgFeatureEnumInfoGetResponse
}

func (m *FeatureEnumInfoGetResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, uint32(len(m.PossibleValues)))
	for _, e := range m.PossibleValues {
		binary.Write(buf, binary.LittleEndian, uint32(len([]byte(e))))
		buf.Write([]byte(e))
	}
	binary.Write(buf, binary.LittleEndian, uint32(len(m.AvailableValues)))
	for _, e := range m.AvailableValues {
		binary.Write(buf, binary.LittleEndian, uint32(len([]byte(e))))
		buf.Write([]byte(e))
	}
	if err = m.Error.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *FeatureEnumInfoGetResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		m.PossibleValues = make([]string, int(size))
		for i := 0; i < int(size); i++ {
			{
				var size uint32
				if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
					return err
				}
				data := make([]byte, int(size))
				if err = binary.Read(buf, binary.LittleEndian, data); err != nil {
					return err
				}
				m.PossibleValues[i] = string(data)
			}
		}
	}
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		m.AvailableValues = make([]string, int(size))
		for i := 0; i < int(size); i++ {
			{
				var size uint32
				if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
					return err
				}
				data := make([]byte, int(size))
				if err = binary.Read(buf, binary.LittleEndian, data); err != nil {
					return err
				}
				m.AvailableValues[i] = string(data)
			}
		}
	}
	if err = m.Error.Deserialize(buf); err != nil {
		return err
	}
	return err
}
