// Automatically generated from the message definition "vimbax_camera_msgs/FeatureInfoQueryRequest.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureInfoQueryRequest struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureInfoQueryRequest) Text() string {
	return t.text
}

func (t *_MsgFeatureInfoQueryRequest) Name() string {
	return t.name
}

func (t *_MsgFeatureInfoQueryRequest) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureInfoQueryRequest) NewMessage() ros.Message {
	m := new(FeatureInfoQueryRequest)
	m.FeatureNames = []string{}
	m.FeatureModule = FeatureModule{}
	return m
}

var (
	MsgFeatureInfoQueryRequest = &_MsgFeatureInfoQueryRequest{
		`string[] feature_names
FeatureModule feature_module
`,
		"vimbax_camera_msgs/FeatureInfoQueryRequest",
		"52a20a1318f9c4e4ba6b3df11990dcd8",
	}
)

type FeatureInfoQueryRequest struct {
	FeatureNames  []string      `rosmsg:"feature_names:string[]"`
	FeatureModule FeatureModule `rosmsg:"feature_module:FeatureModule"`
}

func (m *FeatureInfoQueryRequest) Type() ros.MessageType {
	return MsgFeatureInfoQueryRequest
}

func (m *FeatureInfoQueryRequest) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, uint32(len(m.FeatureNames)))
	for _, e := range m.FeatureNames {
		binary.Write(buf, binary.LittleEndian, uint32(len([]byte(e))))
		buf.Write([]byte(e))
	}
	if err = m.FeatureModule.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *FeatureInfoQueryRequest) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		m.FeatureNames = make([]string, int(size))
		for i := 0; i < int(size); i++ {
			{
				var size uint32
				if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
					return err
				}
				data := make([]byte, int(size))
				if err = binary.Read(buf, binary.LittleEndian, data); err != nil {
					return err
				}
				m.FeatureNames[i] = string(data)
			}
		}
	}
	if err = m.FeatureModule.Deserialize(buf); err != nil {
		return err
	}
	return err
}
