// Automatically generated from the message definition "vimbax_camera_msgs/FeatureStringSetResponse.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureStringSetResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureStringSetResponse) Text() string {
	return t.text
}

func (t *_MsgFeatureStringSetResponse) Name() string {
	return t.name
}

func (t *_MsgFeatureStringSetResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureStringSetResponse) NewMessage() ros.Message {
	m := new(FeatureStringSetResponse)
	m.Error = 0
	return m
}

var (
	MsgFeatureStringSetResponse = &_MsgFeatureStringSetResponse{
		`int32 error
`,
		"vimbax_camera_msgs/FeatureStringSetResponse",
		"d9e7447d5716e291370d8c7c21840938",
	}
)

type FeatureStringSetResponse struct {
	Error int32 `rosmsg:"error:int32"`
}

func (m *FeatureStringSetResponse) Type() ros.MessageType {
	return MsgFeatureStringSetResponse
}

func (m *FeatureStringSetResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Error)
	return err
}

func (m *FeatureStringSetResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.Error); err != nil {
		return err
	}
	return err
}
