// Automatically generated from the message definition "vimbax_camera_msgs/FeatureEnumInfoGet.srv"
package vimbax_camera_msgs

import (
	"github.com/edwinhayes/rosgo-vimbax/ros"
)

// Service type metadata
type _SrvFeatureEnumInfoGet struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvFeatureEnumInfoGet) Name() string                  { return t.name }
func (t *_SrvFeatureEnumInfoGet) MD5Sum() string                { return t.md5sum }
func (t *_SrvFeatureEnumInfoGet) Text() string                  { return t.text }
func (t *_SrvFeatureEnumInfoGet) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvFeatureEnumInfoGet) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvFeatureEnumInfoGet) NewService() ros.Service {
	return new(FeatureEnumInfoGet)
}

var (
	SrvFeatureEnumInfoGet = &_SrvFeatureEnumInfoGet{
		"vimbax_camera_msgs/FeatureEnumInfoGet",
		"585e213d6ffd423faf100f03ef349a50",
		`string feature_name
FeatureModule feature_module
---
string[] possible_values
string[] available_values
Error error
`,
		MsgFeatureEnumInfoGetRequest,
		MsgFeatureEnumInfoGetResponse,
	}
)

type FeatureEnumInfoGet struct {
	Request  FeatureEnumInfoGetRequest
	Response FeatureEnumInfoGetResponse
}

func (s *FeatureEnumInfoGet) ReqMessage() ros.Message { return &s.Request }
func (s *FeatureEnumInfoGet) ResMessage() ros.Message { return &s.Response }
