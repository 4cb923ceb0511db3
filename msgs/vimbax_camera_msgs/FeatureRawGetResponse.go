// Automatically generated from the message definition "vimbax_camera_msgs/FeatureRawGetResponse.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureRawGetResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureRawGetResponse) Text() string {
	return t.text
}

func (t *_MsgFeatureRawGetResponse) Name() string {
	return t.name
}

func (t *_MsgFeatureRawGetResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureRawGetResponse) NewMessage() ros.Message {
	m := new(FeatureRawGetResponse)
	m.Buffer = []uint8{}
	m.BufferSize = 0
	m.Error = Error{}
	return m
}

var (
	MsgFeatureRawGetResponse = &_MsgFeatureRawGetResponse{
		`uint8[] buffer
int64 buffer_size
Error error
`,
		"vimbax_camera_msgs/FeatureRawGetResponse",
		"6f7bd059aa30a636c526df3634b0db91",
	}
)

type FeatureRawGetResponse struct {
	Buffer     []uint8 `rosmsg:"buffer:uint8[]"`
	BufferSize int64   `rosmsg:"buffer_size:int64"`
	Error      Error   `rosmsg:"error:Error"`
}

func (m *FeatureRawGetResponse) Type() ros.MessageType {
	return MsgFeatureRawGetResponse
}

func (m *FeatureRawGetResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, uint32(len(m.Buffer)))
	buf.Write(m.Buffer)
	binary.Write(buf, binary.LittleEndian, m.BufferSize)
	if err = m.Error.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *FeatureRawGetResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		m.Buffer = make([]uint8, int(size))
		if err = binary.Read(buf, binary.LittleEndian, m.Buffer); err != nil {
			return err
		}
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.BufferSize); err != nil {
		return err
	}
	if err = m.Error.Deserialize(buf); err != nil {
		return err
	}
	return err
}
