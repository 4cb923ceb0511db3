// Automatically generated from the message definition "vimbax_camera_msgs/FeatureFloatInfoGetResponse.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureFloatInfoGetResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureFloatInfoGetResponse) Text() string {
	return t.text
}

func (t *_MsgFeatureFloatInfoGetResponse) Name() string {
	return t.name
}

func (t *_MsgFeatureFloatInfoGetResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureFloatInfoGetResponse) NewMessage() ros.Message {
	m := new(FeatureFloatInfoGetResponse)
	m.Min = 0
	m.Max = 0
	m.Inc = 0
	m.IncAvailable = false
	m.Error = Error{}
	return m
}

var (
	MsgFeatureFloatInfoGetResponse = &_MsgFeatureFloatInfoGetResponse{
		`float64 min
float64 max
float64 inc
bool inc_available
Error error
`,
		"vimbax_camera_msgs/FeatureFloatInfoGetResponse",
		"a4991cace7829929e68ae856399c38a4",
	}
)

type FeatureFloatInfoGetResponse struct {
	Min          float64 `rosmsg:"min:float64"`
	Max          float64 `rosmsg:"max:float64"`
	Inc          float64 `rosmsg:"inc:float64"`
	IncAvailable bool    `rosmsg:"inc_available:bool"`
	Error        Error   `rosmsg:"error:Error"`
}

func (m *FeatureFloatInfoGetResponse) Type() ros.MessageType {
	return MsgFeatureFloatInfoGetResponse
}

func (m *FeatureFloatInfoGetResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Min)
	binary.Write(buf, binary.LittleEndian, m.Max)
	binary.Write(buf, binary.LittleEndian, m.Inc)
	binary.Write(buf, binary.LittleEndian, m.IncAvailable)
	if err = m.Error.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *FeatureFloatInfoGetResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.Min); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Max); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Inc); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.IncAvailable); err != nil {
		return err
	}
	if err = m.Error.Deserialize(buf); err != nil {
		return err
	}
	return err
}
