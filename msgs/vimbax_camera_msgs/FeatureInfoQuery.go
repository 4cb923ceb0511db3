// Automatically generated from the message definition "vimbax_camera_msgs/FeatureInfoQuery.srv"
package vimbax_camera_msgs

import (
	"github.com/edwinhayes/rosgo-vimbax/ros"
)

// Service type metadata
type _SrvFeatureInfoQuery struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvFeatureInfoQuery) Name() string                  { return t.name }
func (t *_SrvFeatureInfoQuery) MD5Sum() string                { return t.md5sum }
func (t *_SrvFeatureInfoQuery) Text() string                  { return t.text }
func (t *_SrvFeatureInfoQuery) RequestType() ros.MessageType  { return t.reqType }
func (t *_SrvFeatureInfoQuery) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvFeatureInfoQuery) NewService() ros.Service {
	return new(FeatureInfoQuery)
}

var (
	SrvFeatureInfoQuery = &_SrvFeatureInfoQuery{
		"vimbax_camera_msgs/FeatureInfoQuery",
		"ab22d95ae252f16d4de32f1589afbb66",
		`string[] feature_names
FeatureModule feature_module
---
FeatureInfo[] feature_info
Error error
`,
		MsgFeatureInfoQueryRequest,
		MsgFeatureInfoQueryResponse,
	}
)

type FeatureInfoQuery struct {
	Request  FeatureInfoQueryRequest
	Response FeatureInfoQueryResponse
}

func (s *FeatureInfoQuery) ReqMessage() ros.Message { return &s.Request }
func (s *FeatureInfoQuery) ResMessage() ros.Message { return &s.Response }
