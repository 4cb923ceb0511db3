// Automatically generated from the message definition "vimbax_camera_msgs/FeatureInfoQueryResponse.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureInfoQueryResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureInfoQueryResponse) Text() string {
	return t.text
}

func (t *_MsgFeatureInfoQueryResponse) Name() string {
	return t.name
}

func (t *_MsgFeatureInfoQueryResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureInfoQueryResponse) NewMessage() ros.Message {
	m := new(FeatureInfoQueryResponse)
	m.FeatureInfo = []FeatureInfo{}
	m.Error = Error{}
	return m
}

var (
	MsgFeatureInfoQueryResponse = &_MsgFeatureInfoQueryResponse{
		`FeatureInfo[] feature_info
Error error
`,
		"vimbax_camera_msgs/FeatureInfoQueryResponse",
		"b3648434cb2d488096e2846616b2db16",
	}
)

type FeatureInfoQueryResponse struct {
	FeatureInfo []FeatureInfo `rosmsg:"feature_info:FeatureInfo[]"`
	Error       Error         `rosmsg:"error:Error"`
}

func (m *FeatureInfoQueryResponse) Type() ros.MessageType {
	return MsgFeatureInfoQueryResponse
}

func (m *FeatureInfoQueryResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, uint32(len(m.FeatureInfo)))
	for _, e := range m.FeatureInfo {
		if err = e.Serialize(buf); err != nil {
			return err
		}
	}
	if err = m.Error.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *FeatureInfoQueryResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		m.FeatureInfo = make([]FeatureInfo, int(size))
		for i := 0; i < int(size); i++ {
			if err = m.FeatureInfo[i].Deserialize(buf); err != nil {
				return err
			}
		}
	}
	if err = m.Error.Deserialize(buf); err != nil {
		return err
	}
	return err
}
