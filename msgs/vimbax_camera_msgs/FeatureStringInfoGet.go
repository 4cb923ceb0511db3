// Automatically generated from the message definition "vimbax_camera_msgs/FeatureStringInfoGet.srv"
package vimbax_camera_msgs

import (
	"github.com/edwinhayes/rosgo-vimbax/ros"
)

// Service type metadata
type _SrvFeatureStringInfoGet struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvFeatureStringInfoGet) Name() string                  { return t.name }
func (t *_SrvFeatureStringInfoGet) MD5Sum() string                { return t.md5sum }
func (t *_SrvFeatureStringInfoGet) Text() string                  { return t.text }
func (t *_SrvFeatureStringInfoGet) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvFeatureStringInfoGet) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvFeatureStringInfoGet) NewService() ros.Service {
	return new(FeatureStringInfoGet)
}

var (
	SrvFeatureStringInfoGet = &_SrvFeatureStringInfoGet{
		"vimbax_camera_msgs/FeatureStringInfoGet",
		"afd2ecbf440de0ab35751f54d1f18f6c",
		`string feature_name
FeatureModule feature_module
---
int64 max_length
Error error
`,
		MsgFeatureStringInfoGetRequest,
		MsgFeatureStringInfoGetResponse,
	}
)

type FeatureStringInfoGet struct {
	Request  FeatureStringInfoGetRequest
	Response FeatureStringInfoGetResponse
}

func (s *FeatureStringInfoGet) ReqMessage() ros.Message { return &s.Request }
func (s *FeatureStringInfoGet) ResMessage() ros.Message { return &s.Response }
