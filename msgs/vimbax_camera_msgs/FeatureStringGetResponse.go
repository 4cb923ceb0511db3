// Automatically generated from the message definition "vimbax_camera_msgs/FeatureStringGetResponse.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureStringGetResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureStringGetResponse) Text() string {
	return t.text
}

func (t *_MsgFeatureStringGetResponse) Name() string {
	return t.name
}

func (t *_MsgFeatureStringGetResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureStringGetResponse) NewMessage() ros.Message {
	m := new(FeatureStringGetResponse)
	m.Value = ""
	m.Error = Error{}
	return m
}

var (
	MsgFeatureStringGetResponse = &_MsgFeatureStringGetResponse{
		`string value
Error error
`,
		"vimbax_camera_msgs/FeatureStringGetResponse",
		"d4320ddfd82f7f7a91ea7d8842175168",
	}
)

type FeatureStringGetResponse struct {
	Value string `rosmsg:"value:string"`
	Error Error  `rosmsg:"error:Error"`
}

func (m *FeatureStringGetResponse) Type() ros.MessageType {
	return MsgFeatureStringGetResponse
}

func (m *FeatureStringGetResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.Value))))
	buf.Write([]byte(m.Value))
	if err = m.Error.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *FeatureStringGetResponse) Deserialize(buf *bytes.Reader) error {
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
