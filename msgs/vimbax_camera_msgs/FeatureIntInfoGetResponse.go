// Automatically generated from the message definition "vimbax_camera_msgs/FeatureIntInfoGetResponse.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeatureIntInfoGetResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeatureIntInfoGetResponse) Text() string {
	return t.text
}

func (t *_MsgFeatureIntInfoGetResponse) Name() string {
	return t.name
}

func (t *_MsgFeatureIntInfoGetResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeatureIntInfoGetResponse) NewMessage() ros.Message {
	m := new(FeatureIntInfoGetResponse)
	m.Min = 0
	m.Max = 0
	m.Inc = 0
	m.Error = Error{}
	return m
}

var (
	MsgFeatureIntInfoGetResponse = &_MsgFeatureIntInfoGetResponse{
		`int64 min
int64 max
int64 inc
Error error
`,
		"vimbax_camera_msgs/FeatureIntInfoGetResponse",
		"7a3341288a6d10f2d6840b77b40c3f59",
	}
)

type FeatureIntInfoGetResponse struct {
	Min   int64 `rosmsg:"min:int64"`
	Max   int64 `rosmsg:"max:int64"`
	Inc   int64 `rosmsg:"inc:int64"`
	Error Error `rosmsg:"error:Error"`
}

func (m *FeatureIntInfoGetResponse) Type() ros.MessageType {
	return MsgFeatureIntInfoGetResponse
}

func (m *FeatureIntInfoGetResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Min)
	binary.Write(buf, binary.LittleEndian, m.Max)
	binary.Write(buf, binary.LittleEndian, m.Inc)
	if err = m.Error.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *FeatureIntInfoGetResponse) Deserialize(buf *bytes.Reader) error {
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
	if err = m.Error.Deserialize(buf); err != nil {
		return err
	}
	return err
}
