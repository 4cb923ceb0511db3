// Automatically generated from the message definition "vimbax_camera_msgs/FeatureFloatInfoGetRequest.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureFloatInfoGetRequest struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureFloatInfoGetRequest) Text() string {
	return t.text
}

func (t *_MsgFeatureFloatInfoGetRequest) Name() string {
	return t.name
}

func (t *_MsgFeatureFloatInfoGetRequest) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureFloatInfoGetRequest) NewMessage() ros.Message {
	m := new(FeatureFloatInfoGetRequest)
	m.FeatureName = ""
	m.FeatureModule = FeatureModule{}
	return m
}

var (
	MsgFeatureFloatInfoGetRequest = &_MsgFeatureFloatInfoGetRequest{
		`string feature_name
FeatureModule feature_module
`,
		"vimbax_camera_msgs/FeatureFloatInfoGetRequest",
		"ad64264c1685ad88938c20492e4e4f98",
	}
)

type FeatureFloatInfoGetRequest struct {
	FeatureName   string        `rosmsg:"feature_name:string"`
	FeatureModule FeatureModule `rosmsg:"feature_module:FeatureModule"`
}

func (m *FeatureFloatInfoGetRequest) Type() ros.MessageType {
	return MsgFeatureFloatInfoGetRequest
}

func (m *FeatureFloatInfoGetRequest) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.FeatureName))))
	buf.Write([]byte(m.FeatureName))
	if err = m.FeatureModule.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *FeatureFloatInfoGetRequest) Deserialize(buf *bytes.Reader) error {
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
