// Automatically generated from the message definition "vimbax_camera_msgs/FeatureBoolGetResponse.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureBoolGetResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureBoolGetResponse) Text() string {
	return t.text
}

func (t *_MsgFeatureBoolGetResponse) Name() string {
	return t.name
}

func (t *_MsgFeatureBoolGetResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureBoolGetResponse) NewMessage() ros.Message {
	m := new(FeatureBoolGetResponse)
	m.Value = false
	m.Error = Error{}
	return m
}

var (
	MsgFeatureBoolGetResponse = &_MsgFeatureBoolGetResponse{
		`bool value
Error error
`,
		"vimbax_camera_msgs/FeatureBoolGetResponse",
		"1a31137193836db61a2b62f557401258",
	}
)

type FeatureBoolGetResponse struct {
	Value bool  `rosmsg:"value:bool"`
	Error Error `rosmsg:"error:Error"`
}

func (m *FeatureBoolGetResponse) Type() ros.MessageType {
	return MsgFeatureBoolGetResponse
}

func (m *FeatureBoolGetResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Value)
	if err = m.Error.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *FeatureBoolGetResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.Value); err != nil {
		return err
	}
	if err = m.Error.Deserialize(buf); err != nil {
		return err
	}
	return err
}
