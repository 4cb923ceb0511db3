// Automatically generated from the message definition "vimbax_camera_msgs/FeatureBoolSet.srv"
package vimbax_camera_msgs

import (
	"github.com/edwinhayes/rosgo-vimbax/ros"
)

// Service type metadata
type _SrvFeatureBoolSet struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvFeatureBoolSet) Name() string                  { return t.name }
func (t *_SrvFeatureBoolSet) MD5Sum() string                { return t.md5sum }
func (t *_SrvFeatureBoolSet) Text() string                  { return t.text }
func (t *_SrvFeatureBoolSet) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvFeatureBoolSet) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvFeatureBoolSet) NewService() ros.Service {
	return new(FeatureBoolSet)
}

var (
	SrvFeatureBoolSet = &_SrvFeatureBoolSet{
		"vimbax_camera_msgs/FeatureBoolSet",
		"6a2dc820b2a072e0977ee3ab5cd68758",
		`string feature_name
bool value
FeatureModule feature_module
---
int32 error
`,
		MsgFeatureBoolSetRequest,
		MsgFeatureBoolSetResponse,
	}
)

type FeatureBoolSet struct {
	Request  FeatureBoolSetRequest
	Response FeatureBoolSetResponse
}

func (s *FeatureBoolSet) ReqMessage() ros.Message { return &s.Request }
func (s *FeatureBoolSet) ResMessage() ros.Message { return &s.Response }
