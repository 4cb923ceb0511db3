// Automatically generated from the message definition "vimbax_camera_msgs/FeatureFloatSetResponse.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureFloatSetResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureFloatSetResponse) Text() string {
	return t.text
}

func (t *_MsgFeatureFloatSetResponse) Name() string {
	return t.name
}

func (t *_MsgFeatureFloatSetResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureFloatSetResponse) NewMessage() ros.Message {
	m := new(FeatureFloatSetResponse)
	m.Error = 0
	return m
}

var (
	MsgFeatureFloatSetResponse = &_MsgFeatureFloatSetResponse{
		`int32 error
`,
		"vimbax_camera_msgs/FeatureFloatSetResponse",
		"d9e7447d5716e291370d8c7c21840938",
	}
)

type FeatureFloatSetResponse struct {
	Error int32 `rosmsg:"error:int32"`
}

func (m *FeatureFloatSetResponse) Type() ros.MessageType {
	return MsgFeatureFloatSetResponse
}

func (m *FeatureFloatSetResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Error)
	return err
}

func (m *FeatureFloatSetResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.Error); err != nil {
		return err
	}
	return err
}
