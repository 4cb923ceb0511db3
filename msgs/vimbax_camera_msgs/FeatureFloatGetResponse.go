// Automatically generated from the message definition "vimbax_camera_msgs/FeatureFloatGetResponse.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureFloatGetResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureFloatGetResponse) Text() string {
	return t.text
}

func (t *_MsgFeatureFloatGetResponse) Name() string {
	return t.name
}

func (t *_MsgFeatureFloatGetResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureFloatGetResponse) NewMessage() ros.Message {
	m := new(FeatureFloatGetResponse)
	m.Value = 0
	m.Error = Error{}
	return m
}

var (
	MsgFeatureFloatGetResponse = &_MsgFeatureFloatGetResponse{
		`float64 value
Error error
`,
		"vimbax_camera_msgs/FeatureFloatGetResponse",
		"94fa53a2f280086b7f199fff3463d467",
	}
)

type FeatureFloatGetResponse struct {
	Value float64 `rosmsg:"value:float64"`
	Error Error   `rosmsg:"error:Error"`
}

func (m *FeatureFloatGetResponse) Type() ros.MessageType {
	return MsgFeatureFloatGetResponse
}

func (m *FeatureFloatGetResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Value)
	if err = m.Error.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *FeatureFloatGetResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.Value); err != nil {
		return err
	}
	if err = m.Error.Deserialize(buf); err != nil {
		return err
	}
	return err
}
