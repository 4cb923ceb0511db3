// Automatically generated from the message definition "vimbax_camera_msgs/FeatureEnumSet.srv"
package vimbax_camera_msgs

import (
	"github.com/edwinhayes/rosgo-vimbax/ros"
)

// Service type metadata
type _SrvFeatureEnumSet struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvFeatureEnumSet) Name() string                  { return t.name }
func (t *_SrvFeatureEnumSet) MD5Sum() string                { return t.md5sum }
func (t *_SrvFeatureEnumSet) Text() string                  { return t.text }
func (t *_SrvFeatureEnumSet) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvFeatureEnumSet) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvFeatureEnumSet) NewService() ros.Service {
	return new(FeatureEnumSet)
}

var (
	SrvFeatureEnumSet = &_SrvFeatureEnumSet{
		"vimbax_camera_msgs/FeatureEnumSet",
		"77b73f8b3abbfa0c5587a09e799591d3",
		`string feature_name
string value
FeatureModule feature_module
---
int32 error
`,
		MsgFeatureEnumSetRequest,
		MsgFeatureEnumSetResponse,
	}
)

type FeatureEnumSet struct {
	Request  FeatureEnumSetRequest
	Response FeatureEnumSetResponse
}

func (s *FeatureEnumSet) ReqMessage() ros.Message { return &s.Request }
func (s *FeatureEnumSet) ResMessage() ros.Message { return &s.Response }
