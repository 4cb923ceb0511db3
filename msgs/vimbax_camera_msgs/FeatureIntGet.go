// Automatically generated from the message definition "vimbax_camera_msgs/FeatureIntGet.srv"
package vimbax_camera_msgs

import (
	"github.com/edwinhayes/rosgo-vimbax/ros"
)

// Service type metadata
type _SrvFeatureIntGet struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvFeatureIntGet) Name() string                  { return t.name }
func (t *_SrvFeatureIntGet) MD5Sum() string                { return t.md5sum }
func (t *_SrvFeatureIntGet) Text() string                  { return t.text }
func (t *_SrvFeatureIntGet) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvFeatureIntGet) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvFeatureIntGet) NewService() ros.Service {
	return new(FeatureIntGet)
}

var (
	SrvFeatureIntGet = &_SrvFeatureIntGet{
		"vimbax_camera_msgs/FeatureIntGet",
		"49e22bfbc61a6d60441c77708139e51f",
		`string feature_name
FeatureModule feature_module
---
int64 value
Error error
`,
		MsgFeatureIntGetRequest,
		MsgFeatureIntGetResponse,
	}
)

type FeatureIntGet struct {
	Request  FeatureIntGetRequest
	Response FeatureIntGetResponse
}

func (s *FeatureIntGet) ReqMessage() ros.Message { return &s.Request }
func (s *FeatureIntGet) ResMessage() ros.Message { return &s.Response }
