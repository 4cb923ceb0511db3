// Automatically generated from the message definition "vimbax_camera_msgs/FeatureFloatInfoGet.srv"
package vimbax_camera_msgs

import (
	"github.com/edwinhayes/rosgo-vimbax/ros"
)

// Service type metadata
type _SrvFeatureFloatInfoGet struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvFeatureFloatInfoGet) Name() string                  { return t.name }
func (t *_SrvFeatureFloatInfoGet) MD5Sum() string                { return t.md5sum }
func (t *_SrvFeatureFloatInfoGet) Text() string                  { return t.text }
func (t *_SrvFeatureFloatInfoGet) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvFeatureFloatInfoGet) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvFeatureFloatInfoGet) NewService() ros.Service {
	return new(FeatureFloatInfoGet)
}

var (
	SrvFeatureFloatInfoGet = &_SrvFeatureFloatInfoGet{
		"vimbax_camera_msgs/FeatureFloatInfoGet",
		"bacba6ca0abf7174a125f11e2e5bbf3e",
		`string feature_name
FeatureModule feature_module
---
float64 min
float64 max
float64 inc
bool inc_available
Error error
`,
		MsgFeatureFloatInfoGetRequest,
		MsgFeatureFloatInfoGetResponse,
	}
)

type FeatureFloatInfoGet struct {
	Request  FeatureFloatInfoGetRequest
	Response FeatureFloatInfoGetResponse
}

func (s *FeatureFloatInfoGet) ReqMessage() ros.Message { return &s.Request }
func (s *FeatureFloatInfoGet) ResMessage() ros.Message { return &s.Response }
