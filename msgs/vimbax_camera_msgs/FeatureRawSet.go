// Automatically generated from the message definition "vimbax_camera_msgs/FeatureRawSet.srv"
package vimbax_camera_msgs

import (
	"github.com/edwinhayes/rosgo-vimbax/ros"
)

// Service type metadata
type _SrvFeatureRawSet struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvFeatureRawSet) Name() string                  { return t.name }
func (t *_SrvFeatureRawSet) MD5Sum() string                { return t.md5sum }
func (t *_SrvFeatureRawSet) Text() string                  { return t.text }
func (t *_SrvFeatureRawSet) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvFeatureRawSet) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvFeatureRawSet) NewService() ros.Service {
	return new(FeatureRawSet)
}

var (
	SrvFeatureRawSet = &_SrvFeatureRawSet{
		"vimbax_camera_msgs/FeatureRawSet",
		"3fec0eb92577aec43c87fd865362d1af",
		`string feature_name
uint8[] buffer
FeatureModule feature_module
---
int32 error
`,
		MsgFeatureRawSetRequest,
		MsgFeatureRawSetResponse,
	}
)

type FeatureRawSet struct {
	Request  FeatureRawSetRequest
	Response FeatureRawSetResponse
}

func (s *FeatureRawSet) ReqMessage() ros.Message { return &s.Request }
func (s *FeatureRawSet) ResMessage() ros.Message { return &s.Response }
