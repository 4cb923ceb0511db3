// Automatically generated from the message definition "vimbax_camera_msgs/FeatureStringInfoGetResponse.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureStringInfoGetResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureStringInfoGetResponse) Text() string {
	return t.text
}

func (t *_MsgFeatureStringInfoGetResponse) Name() string {
	return t.name
}

func (t *_MsgFeatureStringInfoGetResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureStringInfoGetResponse) NewMessage() ros.Message {
	m := new(FeatureStringInfoGetResponse)
	m.MaxLength = 0
	m.Error = Error{}
	return m
}

var (
	MsgFeatureStringInfoGetResponse = &_MsgFeatureStringInfoGetResponse{
		`int64 max_length
Error error
`,
		"vimbax_camera_msgs/FeatureStringInfoGetResponse",
		"6e93294a60b57424a4aa6a6a62978a37",
	}
)

type FeatureStringInfoGetResponse struct {
	MaxLength int64 `rosmsg:"max_length:int64"`
	Error     Error `rosmsg:"error:Error"`
}

func (m *FeatureStringInfoGetResponse) Type() ros.MessageType {
	return MsgFeatureStringInfoGetResponse
}

func (m *FeatureStringInfoGetResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.MaxLength)
	if err = m.Error.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *FeatureStringInfoGetResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.MaxLength); err != nil {
		return err
	}
	if err = m.Error.Deserialize(buf); err != nil {
		return err
	}
	return err
}
