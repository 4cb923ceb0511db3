// Automatically generated from the message definition "vimbax_camera_msgs/FeatureIntSetRequest.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureIntSetRequest struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureIntSetRequest) Text() string {
	return t.text
}

func (t *_MsgFeatureIntSetRequest) Name() string {
	return t.name
}

func (t *_MsgFeatureIntSetRequest) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureIntSetRequest) NewMessage() ros.Message {
	m := new(FeatureIntSetRequest)
	m.FeatureName = ""
	m.Value = 0
	m.FeatureModule = FeatureModule{}
	return m
}

var (
	MsgFeatureIntSetRequest = &_MsgFeatureIntSetRequest{
		`string feature_name
int64 value
FeatureModule feature_module
`,
		"vimbax_camera_msgs/FeatureIntSetRequest",
		"fc1a1d7a8cd9666edf8e23d78465fc01",
	}
)

type FeatureIntSetRequest struct {
	FeatureName   string        `rosmsg:"feature_name:string"`
	Value         int64         `rosmsg:"value:int64"`
	FeatureModule FeatureModule `rosmsg:"feature_module:FeatureModule"`
}

func (m *FeatureIntSetRequest) Type() ros.MessageType {
	return MsgFeatureIntSetRequest
}

func (m *FeatureIntSetRequest) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.FeatureName))))
	buf.Write([]byte(m.FeatureName))
	binary.Write(buf, binary.LittleEndian, m.Value)
	if err = m.FeatureModule.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *FeatureIntSetRequest) Deserialize(buf *bytes.Reader) error {
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
