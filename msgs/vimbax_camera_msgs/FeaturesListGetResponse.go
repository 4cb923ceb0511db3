// Automatically generated from the message definition "vimbax_camera_msgs/FeaturesListGetResponse.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeaturesListGetResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeaturesListGetResponse) Text() string {
	return t.text
}

func (t *_MsgFeaturesListGetResponse) Name() string {
	return t.name
}

func (t *_MsgFeaturesListGetResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeaturesListGetResponse) NewMessage() ros.Message {
	m := new(FeaturesListGetResponse)
	m.FeatureList = []string{}
	m.Error = Error{}
	return m
}

var (
	MsgFeaturesListGetResponse = &_MsgFeaturesListGetResponse{
		`string[] feature_list
Error error
`,
		"vimbax_camera_msgs/FeaturesListGetResponse",
		"5c3f61f96b6a3aa5f15756d098b72564",
	}
)

type FeaturesListGetResponse struct {
	FeatureList []string `rosmsg:"feature_list:string[]"`
	Error       Error    `rosmsg:"error:Error"`
}

func (m *FeaturesListGetResponse) Type() ros.MessageType {
	return MsgFeaturesListGetResponse
}

func (m *FeaturesListGetResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, uint32(len(m.FeatureList)))
	for _, e := range m.FeatureList {
		binary.Write(buf, binary.LittleEndian, uint32(len([]byte(e))))
		buf.Write([]byte(e))
	}
	if err = m.Error.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *FeaturesListGetResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		m.FeatureList = make([]string, int(size))
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
				m.FeatureList[i] = string(data)
			}
		}
	}
	if err = m.Error.Deserialize(buf); err != nil {
		return err
	}
	return err
}
