// Automatically generated from the message definition "vimbax_camera_msgs/FeatureRawGet.srv"
package vimbax_camera_msgs

import (
	"github.com/edwinhayes/rosgo-vimbax/ros"
)

// Service type metadata
type _SrvFeatureRawGet struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvFeatureRawGet) Name() string                  { return t.name }
func (t *_SrvFeatureRawGet) MD5Sum() string                { return t.md5sum }
func (t *_SrvFeatureRawGet) Text() string                  { return t.text }
func (t *_SrvFeatureRawGet) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvFeatureRawGet) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvFeatureRawGet) NewService() ros.Service {
	return new(FeatureRawGet)
}

var (
	SrvFeatureRawGet = &_SrvFeatureRawGet{
		"vimbax_camera_msgs/FeatureRawGet",
		"011a7fe09268df77b4fe53284a91d51a",
		`string feature_name
FeatureModule feature_module
---
uint8[] buffer
int64 buffer_size
Error error
`,
		MsgFeatureRawGetRequest,
		MsgFeatureRawGetResponse,
	}
)

type FeatureRawGet struct {
	Request  FeatureRawGetRequest
	Response FeatureRawGetResponse
}

func (s *FeatureRawGet) ReqMessage() ros.Message { return &s.Request }
func (s *FeatureRawGet) ResMessage() ros.Message { return &s.Response }
