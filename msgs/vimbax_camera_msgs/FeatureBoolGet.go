// Automatically generated from the message definition "vimbax_camera_msgs/FeatureBoolGet.srv"
package vimbax_camera_msgs

import (
	"github.com/edwinhayes/rosgo-vimbax/ros"
)

// Service type metadata
type _SrvFeatureBoolGet struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvFeatureBoolGet) Name() string                  { return t.name }
func (t *_SrvFeatureBoolGet) MD5Sum() string                { return t.md5sum }
func (t *_SrvFeatureBoolGet) Text() string                  { return t.text }
func (t *_SrvFeatureBoolGet) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvFeatureBoolGet) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvFeatureBoolGet) NewService() ros.Service {
	return new(FeatureBoolGet)
}

var (
	SrvFeatureBoolGet = &_SrvFeatureBoolGet{
		"vimbax_camera_msgs/FeatureBoolGet",
		"ece75413fe2c51861bea7db3590f4389",
		`string feature_name
FeatureModule feature_module
---
bool value
Error error
`,
		MsgFeatureBoolGetRequest,
		MsgFeatureBoolGetResponse,
	}
)

type FeatureBoolGet struct {
	Request  FeatureBoolGetRequest
	Response FeatureBoolGetResponse
}

func (s *FeatureBoolGet) ReqMessage() ros.Message { return &s.Request }
func (s *FeatureBoolGet) ResMessage() ros.Message { return &s.Response }
