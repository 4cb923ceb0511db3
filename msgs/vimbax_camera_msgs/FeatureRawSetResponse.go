// Automatically generated from the message definition "vimbax_camera_msgs/FeatureRawSetResponse.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureRawSetResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureRawSetResponse) Text() string {
	return t.text
}

func (t *_MsgFeatureRawSetResponse) Name() string {
	return t.name
}

func (t *_MsgFeatureRawSetResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureRawSetResponse) NewMessage() ros.Message {
	m := new(FeatureRawSetResponse)
	m.Error = 0
	return m
}

var (
	MsgFeatureRawSetResponse = &_MsgFeatureRawSetResponse{
		`int32 error
`,
		"vimbax_camera_msgs/FeatureRawSetResponse",
		"d9e7447d5716e291370d8c7c21840938",
	}
)

type FeatureRawSetResponse struct {
	Error int32 `rosmsg:"error:int32"`
}

func (m *FeatureRawSetResponse) Type() ros.MessageType {
	return MsgFeatureRawSetResponse
}

func (m *FeatureRawSetResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Error)
	return err
}

func (m *FeatureRawSetResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.Error); err != nil {
		return err
	}
	return err
}
