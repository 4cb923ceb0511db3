// Automatically generated from the message definition "vimbax_camera_msgs/FeatureFlags.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureFlags struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureFlags) Text() string {
	return t.text
}

func (t *_MsgFeatureFlags) Name() string {
	return t.name
}

func (t *_MsgFeatureFlags) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureFlags) NewMessage() ros.Message {
	m := new(FeatureFlags)
	m.FlagNone = false
	m.FlagRead = false
	m.FlagWrite = false
	m.FlagVolatile = false
	m.FlagModifyWrite = false
	return m
}

var (
	MsgFeatureFlags = &_MsgFeatureFlags{
		`bool flag_none
bool flag_read
bool flag_write
bool flag_volatile
bool flag_modify_write
`,
		"vimbax_camera_msgs/FeatureFlags",
		"cd1dd58a8bd7685811e3ec2d741af471",
	}
)

type FeatureFlags struct {
	FlagNone        bool `rosmsg:"flag_none:bool"`
	FlagRead        bool `rosmsg:"flag_read:bool"`
	FlagWrite       bool `rosmsg:"flag_write:bool"`
	FlagVolatile    bool `rosmsg:"flag_volatile:bool"`
	FlagModifyWrite bool `rosmsg:"flag_modify_write:bool"`
}

func (m *FeatureFlags) Type() ros.MessageType {
	return MsgFeatureFlags
}

func (m *FeatureFlags) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.FlagNone)
	binary.Write(buf, binary.LittleEndian, m.FlagRead)
	binary.Write(buf, binary.LittleEndian, m.FlagWrite)
	binary.Write(buf, binary.LittleEndian, m.FlagVolatile)
	binary.Write(buf, binary.LittleEndian, m.FlagModifyWrite)
	return err
}

func (m *FeatureFlags) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.FlagNone); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.FlagRead); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.FlagWrite); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.FlagVolatile); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.FlagModifyWrite); err != nil {
		return err
	}
	return err
}
