// Automatically generated from the message definition "vimbax_camera_msgs/Error.msg"
package vimbax_camera_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgError struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgError) Text() string {
	return t.text
}

func (t *_MsgError) Name() string {
	return t.name
}

func (t *_MsgError) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgError) NewMessage() ros.Message {
	m := new(Error)
	m.Code = 0
	m.Text = ""
	return m
}

var (
	MsgError = &_MsgError{
		`int32 code
string text
`,
		"vimbax_camera_msgs/Error",
		"efdeb4325441a311f1ff4ce36a24daab",
	}
)

type Error struct {
	Code int32  `rosmsg:"code:int32"`
	Text string `rosmsg:"text:string"`
}

func (m *Error) Type() ros.MessageType {
	return MsgError
}

func (m *Error) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Code)
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.Text))))
	buf.Write([]byte(m.Text))
	return err
}

func (m *Error) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.Code); err != nil {
		return err
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
		m.Text = string(data)
	}
	return err
}
