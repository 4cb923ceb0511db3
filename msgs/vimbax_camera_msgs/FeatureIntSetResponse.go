// Automatically generated from the message definition "vimbax_camera_msgs/FeatureIntSetResponse.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureIntSetResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureIntSetResponse) Text() string {
	return t.text
}

func (t *_MsgFeatureIntSetResponse) Name() string {
	return t.name
}

func (t *_MsgFeatureIntSetResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureIntSetResponse) NewMessage() ros.Message {
	m := new(FeatureIntSetResponse)
	m.Error = 0
	return m
}

var (
	MsgFeatureIntSetResponse = &_MsgFeatureIntSetResponse{
		`int32 error
`,
		"vimbax_camera_msgs/FeatureIntSetResponse",
		"d9e7447d5716e291370d8c7c21840938",
	}
)

type FeatureIntSetResponse struct {
	Error int32 `rosmsg:"error:int32"`
}

func (m *FeatureIntSetResponse) Type() ros.MessageType {
	return MsgFeatureIntSetResponse
}

func (m *FeatureIntSetResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Error)
	return err
}

func (m *FeatureIntSetResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.Error); err != nil {
		return err
	}
	return err
}
