// Automatically generated from the message definition "vimbax_camera_msgs/FeaturesListGetRequest.msg"
package vimbax_camera_msgs

import (
	"bytes"

	"github.com/edwinhayes/rosgo-vimbax/ros"
)

type _MsgFeaturesListGetRequest struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFeaturesListGetRequest) Text() string {
	return t.text
}

func (t *_MsgFeaturesListGetRequest) Name() string {
	return t.name
}

func (t *_MsgFeaturesListGetRequest) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFeaturesListGetRequest) NewMessage() ros.Message {
	m := new(FeaturesListGetRequest)
	m.FeatureModule = FeatureModule{}
	return m
}

var (
	MsgFeaturesListGetRequest = &_MsgFeaturesListGetRequest{
		`FeatureModule feature_module
`,
		"vimbax_camera_msgs/FeaturesListGetRequest",
		"b9421067778e2d78293fd1040f6ba4d7",
	}
)

type FeaturesListGetRequest struct {
	FeatureModule FeatureModule `rosmsg:"feature_module:FeatureModule"`
}

func (m *FeaturesListGetRequest) Type() ros.MessageType {
	return MsgFeaturesListGetRequest
}

func (m *FeaturesListGetRequest) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	if err = m.FeatureModule.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *FeaturesListGetRequest) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = m.FeatureModule.Deserialize(buf); err != nil {
		return err
	}
	return err
}
