// Automatically generated from the message definition "vimbax_camera_msgs/FeatureFloatSet.srv"
package vimbax_camera_msgs

import (
	"github.com/edwinhayes/rosgo-vimbax/ros"
)

// Service type metadata
type _SrvFeatureFloatSet struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvFeatureFloatSet) Name() string                  { return t.name }
func (t *_SrvFeatureFloatSet) MD5Sum() string                { return t.md5sum }
func (t *_SrvFeatureFloatSet) Text() string                  { return t.text }
func (t *_SrvFeatureFloatSet) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvFeatureFloatSet) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvFeatureFloatSet) NewService() ros.Service {
	return new(FeatureFloatSet)
}

var (
	SrvFeatureFloatSet = &_SrvFeatureFloatSet{
		"vimbax_camera_msgs/FeatureFloatSet",
		"3010e2fa8b21eee32420411cecb2d881",
		`string feature_name
float64 value
FeatureModule feature_module
---
int32 error
`,
		MsgFeatureFloatSetRequest,
		MsgFeatureFloatSetResponse,
	}
)

type FeatureFloatSet struct {
	Request  FeatureFloatSetRequest
	Response FeatureFloatSetResponse
}

func (s *FeatureFloatSet) ReqMessage() ros.Message { return &s.Request }
func (s *FeatureFloatSet) ResMessage() ros.Message { return &s.Response }
