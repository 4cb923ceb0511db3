// Automatically generated from the message definition "vimbax_camera_msgs/FeatureRawInfoGetResponse.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureRawInfoGetResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureRawInfoGetResponse) Text() string {
	return t.text
}

func (t *_MsgFeatureRawInfoGetResponse) Name() string {
	return t.name
}

func (t *_MsgFeatureRawInfoGetResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureRawInfoGetResponse) NewMessage() ros.Message {
	m := new(FeatureRawInfoGetResponse)
	m.MaxLength = 0
	m.Error = Error{}
	return m
}

var (
	MsgFeatureRawInfoGetResponse = &_MsgFeatureRawInfoGetResponse{
		`int64 max_length
Error error
`,
		"vimbax_camera_msgs/FeatureRawInfoGetResponse",
		"6e93294a60b57424a4aa6a6a62978a37",
	}
)

type FeatureRawInfoGetResponse struct {
	MaxLength int64 `rosmsg:"max_length:int64"`
	Error     Error `rosmsg:"error:Error"`
}

func (m *FeatureRawInfoGetResponse) Type() ros.MessageType {
	return MsgFeatureRawInfoGetResponse
}

func (m *FeatureRawInfoGetResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.MaxLength)
	if err = m.Error.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *FeatureRawInfoGetResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.MaxLength); err != nil {
		return err
	}
	if err = m.Error.Deserialize(buf); err != nil {
		return err
	}
	return err
}
