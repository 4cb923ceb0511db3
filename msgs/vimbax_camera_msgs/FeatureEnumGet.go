// Automatically generated from the message definition "vimbax_camera_msgs/FeatureEnumGet.srv"
package vimbax_camera_msgs

import (
	"github.com/edwinhayes/rosgo-vimbax/ros"
)

// Service type metadata
type _SrvFeatureEnumGet struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvFeatureEnumGet) Name() string                  { return t.name }
func (t *_SrvFeatureEnumGet) MD5Sum() string                { return t.md5sum }
func (t *_SrvFeatureEnumGet) Text() string                  { return t.text }
func (t *_SrvFeatureEnumGet) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvFeatureEnumGet) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvFeatureEnumGet) NewService() ros.Service {
	return new(FeatureEnumGet)
}

var (
	SrvFeatureEnumGet = &_SrvFeatureEnumGet{
		"vimbax_camera_msgs/FeatureEnumGet",
		"83c91b38ae016a055b696e8d7da31776",
		`string feature_name
FeatureModule feature_module
---
string value
Error error
`,
		MsgFeatureEnumGetRequest,
		MsgFeatureEnumGetResponse,
	}
)

type FeatureEnumGet struct {
	Request  FeatureEnumGetRequest
	Response FeatureEnumGetResponse
}

func (s *FeatureEnumGet) ReqMessage() ros.Message { return &s.Request }
func (s *FeatureEnumGet) ResMessage() ros.Message { return &s.Response }
