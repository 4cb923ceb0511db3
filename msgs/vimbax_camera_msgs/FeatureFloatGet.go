// Automatically generated from the message definition "vimbax_camera_msgs/FeatureFloatGet.srv"
package vimbax_camera_msgs

import (
	"github.com/edwinhayes/rosgo-vimbax/ros"
)

// Service type metadata
type _SrvFeatureFloatGet struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvFeatureFloatGet) Name() string                  { return t.name }
func (t *_SrvFeatureFloatGet) MD5Sum() string                { return t.md5sum }
func (t *_SrvFeatureFloatGet) Text() string                  { return t.text }
func (t *_SrvFeatureFloatGet) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvFeatureFloatGet) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvFeatureFloatGet) NewService() ros.Service {
	return new(FeatureFloatGet)
}

var (
	SrvFeatureFloatGet = &_SrvFeatureFloatGet{
		"vimbax_camera_msgs/FeatureFloatGet",
		"98e5bec4a33e15649f78cb196cb96677",
		`string feature_name
FeatureModule feature_module
---
float64 value
Error error
`,
		MsgFeatureFloatGetRequest,
		MsgFeatureFloatGetResponse,
	}
)

type FeatureFloatGet struct {
	Request  FeatureFloatGetRequest
	Response FeatureFloatGetResponse
}

func (s *FeatureFloatGet) ReqMessage() ros.Message { return &s.Request }
func (s *FeatureFloatGet) ResMessage() ros.Message { return &s.Response }
