package vimbax

import (
	"context"
	"testing"

	msgs "github.com/edwinhayes/rosgo-vimbax/msgs/vimbax_camera_msgs"
	"github.com/edwinhayes/rosgo-vimbax/ros"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustType(t *testing.T, name string) *FeatureType {
	t.Helper()
	ft, err := LookupType(name)
	require.NoError(t, err)
	return ft
}

func TestClientSetInt(t *testing.T) {
	node := newFakeNode(nil)
	client := NewClient(node, "/vimbax_camera_0", testLogger())

	ft := mustType(t, "Int")
	value, err := ft.ParseValue("42")
	require.NoError(t, err)
	code, err := client.Set(context.Background(), ft, "Width", value, ModuleRemoteDevice)
	require.NoError(t, err)
	assert.True(t, code.OK())

	require.Len(t, node.calls, 1)
	call := node.calls[0]
	assert.Equal(t, "/vimbax_camera_0/features/int_set", call.service)
	assert.Equal(t, "vimbax_camera_msgs/FeatureIntSet", call.srvType)
	srv := call.srv.(*msgs.FeatureIntSet)
	assert.Equal(t, "Width", srv.Request.FeatureName)
	assert.Equal(t, int64(42), srv.Request.Value)
	assert.Equal(t, uint8(0), srv.Request.FeatureModule.Id)
}

func TestClientSetReportsBareErrorCode(t *testing.T) {
	node := newFakeNode(func(service string, srv ros.Service) error {
		srv.(*msgs.FeatureBoolSet).Response.Error = -6
		return nil
	})
	client := NewClient(node, "/cam", testLogger())

	ft := mustType(t, "Bool")
	value, err := ft.ParseValue("true")
	require.NoError(t, err)
	code, err := client.Set(context.Background(), ft, "ReverseX", value, ModuleRemoteDevice)
	require.NoError(t, err)
	assert.Equal(t, ErrorCode(-6), code)
	assert.True(t, node.calls[0].srv.(*msgs.FeatureBoolSet).Request.Value)
}

func TestClientSetEachType(t *testing.T) {
	values := map[string]string{
		"Int":    "1",
		"Float":  "2.5",
		"String": "id",
		"Raw":    "0102",
		"Bool":   "false",
		"Enum":   "Mono8",
	}
	for name, text := range values {
		node := newFakeNode(nil)
		client := NewClient(node, "/cam", testLogger())
		ft := mustType(t, name)
		value, err := ft.ParseValue(text)
		require.NoError(t, err)
		_, err = client.Set(context.Background(), ft, "Feature", value, ModuleStream)
		require.NoError(t, err, name)
		assert.Equal(t, "/cam/"+ft.BasePath+"_set", node.calls[0].service)
		assert.Equal(t, ft.SetService.Name(), node.calls[0].srvType)
	}
}

func TestClientGet(t *testing.T) {
	node := newFakeNode(func(service string, srv ros.Service) error {
		res := &srv.(*msgs.FeatureRawGet).Response
		res.Buffer = []byte{0xde, 0xad}
		res.BufferSize = 2
		return nil
	})
	client := NewClient(node, "/cam", testLogger())

	value, status, err := client.Get(context.Background(), mustType(t, "Raw"), "UserData", ModuleSystem)
	require.NoError(t, err)
	assert.True(t, status.OK())
	assert.Equal(t, "dead", FormatValue(value))
	assert.Equal(t, "/cam/features/raw_get", node.calls[0].service)
	assert.Equal(t, uint8(1), node.calls[0].srv.(*msgs.FeatureRawGet).Request.FeatureModule.Id)
}

func TestClientInfoGet(t *testing.T) {
	node := newFakeNode(func(service string, srv ros.Service) error {
		res := &srv.(*msgs.FeatureIntInfoGet).Response
		res.Min, res.Max, res.Inc = 8, 4096, 8
		return nil
	})
	client := NewClient(node, "/cam", testLogger())

	info, status, err := client.InfoGet(context.Background(), mustType(t, "Int"), "Width", ModuleRemoteDevice)
	require.NoError(t, err)
	assert.True(t, status.OK())
	assert.Equal(t, IntInfo{Min: 8, Max: 4096, Inc: 8}, info)
	assert.Equal(t, "/cam/features/int_info_get", node.calls[0].service)
}

func TestClientInfoGetRemoteError(t *testing.T) {
	node := newFakeNode(func(service string, srv ros.Service) error {
		srv.(*msgs.FeatureEnumInfoGet).Response.Error = msgs.Error{Code: -3, Text: "not found"}
		return nil
	})
	client := NewClient(node, "/cam", testLogger())

	_, status, err := client.InfoGet(context.Background(), mustType(t, "Enum"), "Nope", ModuleRemoteDevice)
	require.NoError(t, err)
	assert.False(t, status.OK())
	assert.Equal(t, "-3 (VmbErrorNotFound): not found", status.String())
}

func TestClientInfoGetUnsupported(t *testing.T) {
	node := newFakeNode(nil)
	client := NewClient(node, "/cam", testLogger())

	_, _, err := client.InfoGet(context.Background(), mustType(t, "Bool"), "ReverseX", ModuleRemoteDevice)
	require.Error(t, err)
	assert.Equal(t, ErrUnsupportedOperation, errors.Cause(err))
	assert.Empty(t, node.calls)
}

func TestClientTransportError(t *testing.T) {
	node := newFakeNode(func(service string, srv ros.Service) error {
		return errors.New("connection refused")
	})
	client := NewClient(node, "/cam", testLogger())

	_, _, err := client.Get(context.Background(), mustType(t, "Float"), "Gain", ModuleRemoteDevice)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/cam/features/float_get")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestClientListFeatures(t *testing.T) {
	node := newFakeNode(func(service string, srv ros.Service) error {
		srv.(*msgs.FeaturesListGet).Response.FeatureList = []string{"Width", "Height"}
		return nil
	})
	client := NewClient(node, "/cam", testLogger())

	names, status, err := client.ListFeatures(context.Background(), ModuleInterface)
	require.NoError(t, err)
	assert.True(t, status.OK())
	assert.Equal(t, []string{"Width", "Height"}, names)
	assert.Equal(t, "/cam/features/list_get", node.calls[0].service)
	assert.Equal(t, uint8(2), node.calls[0].srv.(*msgs.FeaturesListGet).Request.FeatureModule.Id)
}

func TestClientQueryFeatureInfo(t *testing.T) {
	node := newFakeNode(func(service string, srv ros.Service) error {
		q := srv.(*msgs.FeatureInfoQuery)
		for _, name := range q.Request.FeatureNames {
			q.Response.FeatureInfo = append(q.Response.FeatureInfo, msgs.FeatureInfo{Name: name})
		}
		return nil
	})
	client := NewClient(node, "/cam", testLogger())

	infos, status, err := client.QueryFeatureInfo(context.Background(), []string{"Width", "Gain"}, ModuleRemoteDevice)
	require.NoError(t, err)
	assert.True(t, status.OK())
	require.Len(t, infos, 2)
	assert.Equal(t, "Gain", infos[1].Name)
	assert.Equal(t, "/cam/feature_info_query", node.calls[0].service)
}
