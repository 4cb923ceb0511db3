// Automatically generated from the message definition "vimbax_camera_msgs/FeatureFloatSetRequest.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureFloatSetRequest struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureFloatSetRequest) Text() string {
	return t.text
}

func (t *_MsgFeatureFloatSetRequest) Name() string {
	return t.name
}

func (t *_MsgFeatureFloatSetRequest) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureFloatSetRequest) NewMessage() ros.Message {
	m := new(FeatureFloatSetRequest)
	m.FeatureName = ""
	m.Value = 0
	m.FeatureModule = FeatureModule{}
	return m
}

var (
	MsgFeatureFloatSetRequest = &_MsgFeatureFloatSetRequest{
		`string feature_name
float64 value
FeatureModule feature_module
`,
		"vimbax_camera_msgs/FeatureFloatSetRequest",
		"051478b5d323af23b5bc6514353435cc",
	}
)

type FeatureFloatSetRequest struct {
	FeatureName   string        `rosmsg:"feature_name:string"`
	Value         float64       `rosmsg:"value:float64"`
	FeatureModule FeatureModule `rosmsg:"feature_module:FeatureModule"`
}

func (m *FeatureFloatSetRequest) Type() ros.MessageType {
	return MsgFeatureFloatSetRequest
}

func (m *FeatureFloatSetRequest) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.FeatureName))))
	buf.Write([]byte(m.FeatureName))
	binary.Write(buf, binary.LittleEndian, m.Value)
	if err = m.FeatureModule.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *FeatureFloatSetRequest) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		data := make([]byte, int(size))
		if err = binary.Read(buf, binary.LittleEndian, data); err != nil {
			return err
		}
		m.FeatureName = string(data)
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Value); err != nil {
		return err
	}
	if err = m.FeatureModule.Deserialize(buf); err != nil {
		return err
	}
	return err
}
