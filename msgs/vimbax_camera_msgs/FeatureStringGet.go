// Automatically generated from the message definition "vimbax_camera_msgs/FeatureStringGet.srv"
package vimbax_camera_msgs

import (
	"github.com/edwinhayes/rosgo-vimbax/ros"
)

// Service type metadata
type _SrvFeatureStringGet struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvFeatureStringGet) Name() string                  { return t.name }
func (t *_SrvFeatureStringGet) MD5Sum() string                { return t.md5sum }
func (t *_SrvFeatureStringGet) Text() string                  { return t.text }
func (t *_SrvFeatureStringGet) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvFeatureStringGet) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvFeatureStringGet) NewService() ros.Service {
	return new(FeatureStringGet)
}

var (
	SrvFeatureStringGet = &_SrvFeatureStringGet{
		"vimbax_camera_msgs/FeatureStringGet",
		"83c91b38ae016a055b696e8d7da31776",
		`string feature_name
FeatureModule feature_module
---
string value
Error error
`,
		MsgFeatureStringGetRequest,
		MsgFeatureStringGetResponse,
	}
)

type FeatureStringGet struct {
	Request  FeatureStringGetRequest
	Response FeatureStringGetResponse
}

func (s *FeatureStringGet) ReqMessage() ros.Message { return &s.Request }
func (s *FeatureStringGet) ResMessage() ros.Message { return &s.Response }
