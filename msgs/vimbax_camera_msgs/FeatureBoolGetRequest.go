// Automatically generated from the message definition "vimbax_camera_msgs/FeatureBoolGetRequest.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureBoolGetRequest struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureBoolGetRequest) Text() string {
	return t.text
}

func (t *_MsgFeatureBoolGetRequest) Name() string {
	return t.name
}

func (t *_MsgFeatureBoolGetRequest) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureBoolGetRequest) NewMessage() ros.Message {
	m := new(FeatureBoolGetRequest)
	m.FeatureName = ""
	m.FeatureModule = FeatureModule{}
	return m
}

var (
	MsgFeatureBoolGetRequest = &_MsgFeatureBoolGetRequest{
		`string feature_name
FeatureModule feature_module
`,
		"vimbax_camera_msgs/FeatureBoolGetRequest",
		"ad64264c1685ad88938c20492e4e4f98",
	}
)

type FeatureBoolGetRequest struct {
	FeatureName   string        `rosmsg:"feature_name:string"`
	FeatureModule FeatureModule `rosmsg:"feature_module:FeatureModule"`
}

func (m *FeatureBoolGetRequest) Type() ros.MessageType {
	return MsgFeatureBoolGetRequest
}

func (m *FeatureBoolGetRequest) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.FeatureName))))
	buf.Write([]byte(m.FeatureName))
	if err = m.FeatureModule.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *FeatureBoolGetRequest) Deserialize(buf *bytes.Reader) error {
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
	if err = m.FeatureModule.Deserialize(buf); err != nil {
		return err
	}
	return err
}
