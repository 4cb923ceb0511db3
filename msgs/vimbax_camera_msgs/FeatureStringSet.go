// Automatically generated from the message definition "vimbax_camera_msgs/FeatureStringSet.srv"
package vimbax_camera_msgs

import (
	"github.com/edwinhayes/rosgo-vimbax/ros"
)

// Service type metadata
type _SrvFeatureStringSet struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvFeatureStringSet) Name() string                  { return t.name }
func (t *_SrvFeatureStringSet) MD5Sum() string                { return t.md5sum }
func (t *_SrvFeatureStringSet) Text() string                  { return t.text }
func (t *_SrvFeatureStringSet) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvFeatureStringSet) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvFeatureStringSet) NewService() ros.Service {
	return new(FeatureStringSet)
}

var (
	SrvFeatureStringSet = &_SrvFeatureStringSet{
		"vimbax_camera_msgs/FeatureStringSet",
		"77b73f8b3abbfa0c5587a09e799591d3",
		`string feature_name
string value
FeatureModule feature_module
---
int32 error
`,
		MsgFeatureStringSetRequest,
		MsgFeatureStringSetResponse,
	}
)

type FeatureStringSet struct {
	Request  FeatureStringSetRequest
	Response FeatureStringSetResponse
}

func (s *FeatureStringSet) ReqMessage() ros.Message { return &s.Request }
func (s *FeatureStringSet) ResMessage() ros.Message { return &s.Response }
