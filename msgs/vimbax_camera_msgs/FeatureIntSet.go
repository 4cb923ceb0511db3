// Automatically generated from the message definition "vimbax_camera_msgs/FeatureIntSet.srv"
package vimbax_camera_msgs

import (
	"github.com/edwinhayes/rosgo-vimbax/ros"
)

// Service type metadata
type _SrvFeatureIntSet struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvFeatureIntSet) Name() string                  { return t.name }
func (t *_SrvFeatureIntSet) MD5Sum() string                { return t.md5sum }
func (t *_SrvFeatureIntSet) Text() string                  { return t.text }
func (t *_SrvFeatureIntSet) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvFeatureIntSet) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvFeatureIntSet) NewService() ros.Service {
	return new(FeatureIntSet)
}

var (
	SrvFeatureIntSet = &_SrvFeatureIntSet{
		"vimbax_camera_msgs/FeatureIntSet",
		"4e145d222c403a42cff875b7da563369",
		`string feature_name
int64 value
FeatureModule feature_module
---
int32 error
`,
		MsgFeatureIntSetRequest,
		MsgFeatureIntSetResponse,
	}
)

type FeatureIntSet struct {
	Request  FeatureIntSetRequest
	Response FeatureIntSetResponse
}

func (s *FeatureIntSet) ReqMessage() ros.Message { return &s.Request }
func (s *FeatureIntSet) ResMessage() ros.Message { return &s.Response }
