// Automatically generated from the message definition "vimbax_camera_msgs/FeatureRawInfoGet.srv"
package vimbax_camera_msgs

import (
	"github.com/edwinhayes/rosgo-vimbax/ros"
)

// Service type metadata
type _SrvFeatureRawInfoGet struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvFeatureRawInfoGet) Name() string                  { return t.name }
func (t *_SrvFeatureRawInfoGet) MD5Sum() string                { return t.md5sum }
func (t *_SrvFeatureRawInfoGet) Text() string                  { return t.text }
func (t *_SrvFeatureRawInfoGet) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvFeatureRawInfoGet) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvFeatureRawInfoGet) NewService() ros.Service {
	return new(FeatureRawInfoGet)
}

var (
	SrvFeatureRawInfoGet = &_SrvFeatureRawInfoGet{
		"vimbax_camera_msgs/FeatureRawInfoGet",
		"afd2ecbf440de0ab35751f54d1f18f6c",
		`string feature_name
FeatureModule feature_module
---
int64 max_length
Error error
`,
		MsgFeatureRawInfoGetRequest,
		MsgFeatureRawInfoGetResponse,
	}
)

type FeatureRawInfoGet struct {
	Request  FeatureRawInfoGetRequest
	Response FeatureRawInfoGetResponse
}

func (s *FeatureRawInfoGet) ReqMessage() ros.Message { return &s.Request }
func (s *FeatureRawInfoGet) ResMessage() ros.Message { return &s.Response }
