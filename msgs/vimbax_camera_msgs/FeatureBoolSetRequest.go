// Automatically generated from the message definition "vimbax_camera_msgs/FeatureBoolSetRequest.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureBoolSetRequest struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureBoolSetRequest) Text() string {
	return t.text
}

func (t *_MsgFeatureBoolSetRequest) Name() string {
	return t.name
}

func (t *_MsgFeatureBoolSetRequest) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureBoolSetRequest) NewMessage() ros.Message {
	m := new(FeatureBoolSetRequest)
	m.FeatureName = ""
	m.Value = false
	m.FeatureModule = FeatureModule{}
	return m
}

var (
	MsgFeatureBoolSetRequest = &_MsgFeatureBoolSetRequest{
		`string feature_name
bool value
FeatureModule feature_module
`,
		"vimbax_camera_msgs/FeatureBoolSetRequest",
		"dca667adf8c186b3c86b203ce80c6bbd",
	}
)

type FeatureBoolSetRequest struct {
	FeatureName   string        `rosmsg:"feature_name:string"`
	Value         bool          `rosmsg:"value:bool"`
	FeatureModule FeatureModule `rosmsg:"feature_module:FeatureModule"`
}

func (m *FeatureBoolSetRequest) Type() ros.MessageType {
	return MsgFeatureBoolSetRequest
}

func (m *FeatureBoolSetRequest) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.FeatureName))))
	buf.Write([]byte(m.FeatureName))
	binary.Write(buf, binary.LittleEndian, m.Value)
	if err = m.FeatureModule.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *FeatureBoolSetRequest) Deserialize(buf *bytes.Reader) error {
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
