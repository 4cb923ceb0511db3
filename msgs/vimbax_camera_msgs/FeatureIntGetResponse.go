// Automatically generated from the message definition "vimbax_camera_msgs/FeatureIntGetResponse.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureIntGetResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureIntGetResponse) Text() string {
	return t.text
}

func (t *_MsgFeatureIntGetResponse) Name() string {
	return t.name
}

func (t *_MsgFeatureIntGetResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureIntGetResponse) NewMessage() ros.Message {
	m := new(FeatureIntGetResponse)
	m.Value = 0
	m.Error = Error{}
	return m
}

var (
	MsgFeatureIntGetResponse = &_MsgFeatureIntGetResponse{
		`int64 value
Error error
`,
		"vimbax_camera_msgs/FeatureIntGetResponse",
		"74155c5f21ce93eebc50e37897e377b6",
	}
)

type FeatureIntGetResponse struct {
	Value int64 `rosmsg:"value:int64"`
	Error Error `rosmsg:"error:Error"`
}

func (m *FeatureIntGetResponse) Type() ros.MessageType {
	return MsgFeatureIntGetResponse
}

func (m *FeatureIntGetResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Value)
	if err = m.Error.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *FeatureIntGetResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.Value); err != nil {
		return err
	}
	if err = m.Error.Deserialize(buf); err != nil {
		return err
	}
	return err
}
