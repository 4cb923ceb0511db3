// Automatically generated from the message definition "vimbax_camera_msgs/FeatureIntInfoGet.srv"
package vimbax_camera_msgs

import (
	"github.com/edwinhayes/rosgo-vimbax/ros"
)

// Service type metadata
type _SrvFeatureIntInfoGet struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvFeatureIntInfoGet) Name() string                  { return t.name }
func (t *_SrvFeatureIntInfoGet) MD5Sum() string                { return t.md5sum }
func (t *_SrvFeatureIntInfoGet) Text() string                  { return t.text }
func (t *_SrvFeatureIntInfoGet) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvFeatureIntInfoGet) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvFeatureIntInfoGet) NewService() ros.Service {
	return new(FeatureIntInfoGet)
}

var (
	SrvFeatureIntInfoGet = &_SrvFeatureIntInfoGet{
		"vimbax_camera_msgs/FeatureIntInfoGet",
		"bdbf3710498f20dd886adce5544d1ca1",
		`string feature_name
FeatureModule feature_module
---
int64 min
int64 max
int64 inc
Error error
`,
		MsgFeatureIntInfoGetRequest,
		MsgFeatureIntInfoGetResponse,
	}
)

type FeatureIntInfoGet struct {
	Request  FeatureIntInfoGetRequest
	Response FeatureIntInfoGetResponse
}

func (s *FeatureIntInfoGet) ReqMessage() ros.Message { return &s.Request }
func (s *FeatureIntInfoGet) ResMessage() ros.Message { return &s.Response }
