// Automatically generated from the message definition "vimbax_camera_msgs/FeatureRawSetRequest.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureRawSetRequest struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureRawSetRequest) Text() string {
	return t.text
}

func (t *_MsgFeatureRawSetRequest) Name() string {
	return t.name
}

func (t *_MsgFeatureRawSetRequest) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureRawSetRequest) NewMessage() ros.Message {
	m := new(FeatureRawSetRequest)
	m.FeatureName = ""
	m.Buffer = []uint8{}
	m.FeatureModule = FeatureModule{}
	return m
}

var (
	MsgFeatureRawSetRequest = &_MsgFeatureRawSetRequest{
		`string feature_name
uint8[] buffer
FeatureModule feature_module
`,
		"vimbax_camera_msgs/FeatureRawSetRequest",
		"5facb23d37355aa5a29dba2c89963d48",
	}
)

type FeatureRawSetRequest struct {
	FeatureName   string        `rosmsg:"feature_name:string"`
	Buffer        []uint8       `rosmsg:"buffer:uint8[]"`
	FeatureModule FeatureModule `rosmsg:"feature_module:FeatureModule"`
}

func (m *FeatureRawSetRequest) Type() ros.MessageType {
	return MsgFeatureRawSetRequest
}

func (m *FeatureRawSetRequest) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.FeatureName))))
	buf.Write([]byte(m.FeatureName))
	binary.Write(buf, binary.LittleEndian, uint32(len(m.Buffer)))
	buf.Write(m.Buffer)
	if err = m.FeatureModule.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *FeatureRawSetRequest) Deserialize(buf *bytes.Reader) error {
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
		m.Buffer = make([]uint8, int(size))
		if err = binary.Read(buf, binary.LittleEndian, m.Buffer); err != nil {
			return err
		}
	}
	if err = m.FeatureModule.Deserialize(buf); err != nil {
		return err
	}
	return err
}
