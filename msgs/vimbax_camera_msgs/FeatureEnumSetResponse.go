// Automatically generated from the message definition "vimbax_camera_msgs/FeatureEnumSetResponse.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureEnumSetResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureEnumSetResponse) Text() string {
	return t.text
}

func (t *_MsgFeatureEnumSetResponse) Name() string {
	return t.name
}

func (t *_MsgFeatureEnumSetResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureEnumSetResponse) NewMessage() ros.Message {
	m := new(FeatureEnumSetResponse)
	m.Error = 0
	return m
}

var (
	MsgFeatureEnumSetResponse = &_MsgFeatureEnumSetResponse{
		`int32 error
`,
		"vimbax_camera_msgs/FeatureEnumSetResponse",
		"d9e7447d5716e291370d8c7c21840938",
	}
)

type FeatureEnumSetResponse struct {
	Error int32 `rosmsg:"error:int32"`
}

func (m *FeatureEnumSetResponse) Type() ros.MessageType {
	return MsgFeatureEnumSetResponse
}

func (m *FeatureEnumSetResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Error)
	return err
}

func (m *FeatureEnumSetResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.Error); err != nil {
		return err
	}
	return err
}
