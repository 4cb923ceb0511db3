// Automatically generated from the message definition "vimbax_camera_msgs/FeatureStringSetRequest.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureStringSetRequest struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureStringSetRequest) Text() string {
	return t.text
}

func (t *_MsgFeatureStringSetRequest) Name() string {
	return t.name
}

func (t *_MsgFeatureStringSetRequest) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureStringSetRequest) NewMessage() ros.Message {
	m := new(FeatureStringSetRequest)
	m.FeatureName = ""
	m.Value = ""
	m.FeatureModule = FeatureModule{}
	return m
}

var (
	MsgFeatureStringSetRequest = &_MsgFeatureStringSetRequest{
		`string feature_name
string value
FeatureModule feature_module
`,
		"vimbax_camera_msgs/FeatureStringSetRequest",
		"ba2bf479bc0fe50080b99fa5b26f99be",
	}
)

type FeatureStringSetRequest struct {
	FeatureName   string        `rosmsg:"feature_name:string"`
	Value         string        `rosmsg:"value:string"`
	FeatureModule FeatureModule `rosmsg:"feature_module:FeatureModule"`
}

func (m *FeatureStringSetRequest) Type() ros.MessageType {
	return MsgFeatureStringSetRequest
}

func (m *FeatureStringSetRequest) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.FeatureName))))
	buf.Write([]byte(m.FeatureName))
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.Value))))
	buf.Write([]byte(m.Value))
	if err = m.FeatureModule.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *FeatureStringSetRequest) Deserialize(buf *bytes.Reader) error {
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
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		data := make([]byte, int(size))
		if err = binary.Read(buf, binary.LittleEndian, data); err != nil {
			return err
		}
		m.Value = string(data)
	}
	if err = m.FeatureModule.Deserialize(buf); err != nil {
		return err
	}
	return err
}
