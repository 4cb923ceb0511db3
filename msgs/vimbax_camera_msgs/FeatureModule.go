// Automatically generated from the message definition "vimbax_camera_msgs/FeatureModule.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

const (
	FeatureModule_MODULE_REMOTE_DEVICE uint8 = 0
	FeatureModule_MODULE_SYSTEM        uint8 = 1
	FeatureModule_MODULE_INTERFACE     uint8 = 2
	FeatureModule_MODULE_LOCAL_DEVICE  uint8 = 3
	FeatureModule_MODULE_STREAM        uint8 = 4
)

type _MsgFeatureModule struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureModule) Text() string {
	return t.text
}

func (t *_MsgFeatureModule) Name() string {
	return t.name
}

func (t *_MsgFeatureModule) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureModule) NewMessage() ros.Message {
	m := new(FeatureModule)
	m.Id = 0
	return m
}

var (
	MsgFeatureModule = &_MsgFeatureModule{
		`uint8 MODULE_REMOTE_DEVICE=0
uint8 MODULE_SYSTEM=1
uint8 MODULE_INTERFACE=2
uint8 MODULE_LOCAL_DEVICE=3
uint8 MODULE_STREAM=4

uint8 id
`,
		"vimbax_camera_msgs/FeatureModule",
		"520cbaa8e4570b9c020465ac90723004",
	}
)

type FeatureModule struct {
	Id uint8 `rosmsg:"id:uint8"`
}

func (m *FeatureModule) Type() ros.MessageType {
	return MsgFeatureModule
}

func (m *FeatureModule) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Id)
	return err
}

func (m *FeatureModule) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.Id); err != nil {
		return err
	}
	return err
}
