// Automatically generated from the message definition "vimbax_camera_msgs/FeaturesListGet.srv"
package vimbax_camera_msgs

import (
	"github.com/edwinhayes/rosgo-vimbax/ros"
)

// Service type metadata
type _SrvFeaturesListGet struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvFeaturesListGet) Name() string                  { return t.name }
func (t *_SrvFeaturesListGet) MD5Sum() string                { return t.md5sum }
func (t *_SrvFeaturesListGet) Text() string                  { return t.text }
func (t *_SrvFeaturesListGet) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvFeaturesListGet) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvFeaturesListGet) NewService() ros.Service {
	return new(FeaturesListGet)
}

var (
	SrvFeaturesListGet = &_SrvFeaturesListGet{
		"vimbax_camera_msgs/FeaturesListGet",
		"a2116cc2a2618498057117f68209444e",
		`FeatureModule feature_module
---
string[] feature_list
Error error
`,
		MsgFeaturesListGetRequest,
		MsgFeaturesListGetResponse,
	}
)

type FeaturesListGet struct {
	Request  FeaturesListGetRequest
	Response FeaturesListGetResponse
}

func (s *FeaturesListGet) ReqMessage() ros.Message { return &s.Request }
func (s *FeaturesListGet) ResMessage() ros.Message { return &s.Response }
