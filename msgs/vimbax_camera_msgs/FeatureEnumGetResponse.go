// Automatically generated from the message definition "vimbax_camera_msgs/FeatureEnumGetResponse.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureEnumGetResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureEnumGetResponse) Text() string {
	return t.text
}

func (t *_MsgFeatureEnumGetResponse) Name() string {
	return t.name
}

func (t *_MsgFeatureEnumGetResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureEnumGetResponse) NewMessage() ros.Message {
	m := new(FeatureEnumGetResponse)
	m.Value = ""
	m.Error = Error{}
	return m
}

var (
	MsgFeatureEnumGetResponse = &_MsgFeatureEnumGetResponse{
		`string value
Error error
`,
		"vimbax_camera_msgs/FeatureEnumGetResponse",
		"d4320ddfd82f7f7a91ea7d8842175168",
	}
)

type FeatureEnumGetResponse struct {
	Value string `rosmsg:"value:string"`
	Error Error  `rosmsg:"error:Error"`
}

func (m *FeatureEnumGetResponse) Type() ros.MessageType {
	return MsgFeatureEnumGetResponse
}

func (m *FeatureEnumGetResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.Value))))
	buf.Write([]byte(m.Value))
	if err = m.Error.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *FeatureEnumGetResponse) Deserialize(buf *bytes.Reader) error {
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
		m.Value = string(data)
	}
	if err = m.Error.Deserialize(buf); err != nil {
		return err
	}
	return err
}
