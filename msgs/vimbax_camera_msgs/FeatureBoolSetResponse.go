// Automatically generated from the message definition "vimbax_camera_msgs/FeatureBoolSetResponse.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureBoolSetResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureBoolSetResponse) Text() string {
	return t.text
}

func (t *_MsgFeatureBoolSetResponse) Name() string {
	return t.name
}

func (t *_MsgFeatureBoolSetResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureBoolSetResponse) NewMessage() ros.Message {
	m := new(FeatureBoolSetResponse)
	m.Error = 0
	return m
}

var (
	MsgFeatureBoolSetResponse = &_MsgFeatureBoolSetResponse{
		`int32 error
`,
		"vimbax_camera_msgs/FeatureBoolSetResponse",
		"d9e7447d5716e291370d8c7c21840938",
	}
)

type FeatureBoolSetResponse struct {
	Error int32 `rosmsg:"error:int32"`
}

func (m *FeatureBoolSetResponse) Type() ros.MessageType {
	return MsgFeatureBoolSetResponse
}

func (m *FeatureBoolSetResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Error)
	return err
}

func (m *FeatureBoolSetResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.Error); err != nil {
		return err
	}
	return err
}
