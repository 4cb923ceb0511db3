// Automatically generated from the message definition "vimbax_camera_msgs/FeatureInfo.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureInfo struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureInfo) Text() string {
	return t.text
}

func (t *_MsgFeatureInfo) Name() string {
	return t.name
}

func (t *_MsgFeatureInfo) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureInfo) NewMessage() ros.Message {
	m := new(FeatureInfo)
	m.Name = ""
	m.Category = ""
	m.DisplayName = ""
	m.SfncNamespace = ""
	m.Unit = ""
	m.DataType = 0
	m.Flags = FeatureFlags{}
	m.PollingTime = 0
	return m
}

var (
	MsgFeatureInfo = &_MsgFeatureInfo{
		`string name
string category
string display_name
string sfnc_namespace
string unit
uint32 data_type
FeatureFlags flags
uint32 polling_time
`,
		"vimbax_camera_msgs/FeatureInfo",
		"7bcd308088a12e458db1a3f96d2b0004",
	}
)

type FeatureInfo struct {
	Name          string       `rosmsg:"name:string"`
	Category      string       `rosmsg:"category:string"`
	DisplayName   string       `rosmsg:"display_name:string"`
	SfncNamespace string       `rosmsg:"sfnc_namespace:string"`
	Unit          string       `rosmsg:"unit:string"`
	DataType      uint32       `rosmsg:"data_type:uint32"`
	Flags         FeatureFlags `rosmsg:"flags:FeatureFlags"`
	PollingTime   uint32       `rosmsg:"polling_time:uint32"`
}

func (m *FeatureInfo) Type() ros.MessageType {
	return MsgFeatureInfo
}

func (m *FeatureInfo) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.Name))))
	buf.Write([]byte(m.Name))
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.Category))))
	buf.Write([]byte(m.Category))
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.DisplayName))))
	buf.Write([]byte(m.DisplayName))
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.SfncNamespace))))
	buf.Write([]byte(m.SfncNamespace))
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.Unit))))
	buf.Write([]byte(m.Unit))
	binary.Write(buf, binary.LittleEndian, m.DataType)
	if err = m.Flags.Serialize(buf); err != nil {
		return err
	}
	binary.Write(buf, binary.LittleEndian, m.PollingTime)
	return err
}

func (m *FeatureInfo) Deserialize(buf *bytes.Reader) error {
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
		m.Name = string(data)
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
		m.Category = string(data)
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
		m.DisplayName = string(data)
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
		m.SfncNamespace = string(data)
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
		m.Unit = string(data)
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.DataType); err != nil {
		return err
	}
	if err = m.Flags.Deserialize(buf); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.PollingTime); err != nil {
		return err
	}
	return err
}
