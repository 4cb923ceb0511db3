package cli

import (
	"testing"

	msgs "github.com/edwinhayes/rosgo-vimbax/msgs/vimbax_camera_msgs"
	"github.com/edwinhayes/rosgo-vimbax/ros"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureInfoGetUnsupportedType(t *testing.T) {
	h := newHarness(t, nil)
	code := h.run(NewFeatureInfoGetCommand, "/cam", "Bool", "ReverseX")
	assert.Equal(t, ExitFailure, code)
	assert.Equal(t, "Feature type Bool does not support info query\n", h.stdout.String())
	assert.Empty(t, h.created)
	assert.Empty(t, h.node.calls)
}

func TestFeatureInfoGetInt(t *testing.T) {
	h := newHarness(t, func(service string, srv ros.Service) error {
		res := &srv.(*msgs.FeatureIntInfoGet).Response
		res.Min, res.Max, res.Inc = 8, 4096, 8
		return nil
	})
	code := h.run(NewFeatureInfoGetCommand, "/cam", "Int", "Width")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "Min: 8\nMax: 4096\nInc: 8\n", h.stdout.String())

	require.Len(t, h.node.calls, 1)
	assert.Equal(t, "/cam/features/int_info_get", h.node.calls[0].service)
	req := h.node.calls[0].srv.(*msgs.FeatureIntInfoGet).Request
	assert.Equal(t, "Width", req.FeatureName)
	assert.Equal(t, msgs.FeatureModule_MODULE_REMOTE_DEVICE, req.FeatureModule.Id)
}

func TestFeatureInfoGetEnumModule(t *testing.T) {
	h := newHarness(t, func(service string, srv ros.Service) error {
		res := &srv.(*msgs.FeatureEnumInfoGet).Response
		res.PossibleValues = []string{"Mono8", "Mono12"}
		res.AvailableValues = []string{"Mono8"}
		return nil
	})
	code := h.run(NewFeatureInfoGetCommand, "-m", "stream", "/cam", "Enum", "PixelFormat")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "Possible values: Mono8, Mono12\nAvailable values: Mono8\n", h.stdout.String())
	req := h.node.calls[0].srv.(*msgs.FeatureEnumInfoGet).Request
	assert.Equal(t, msgs.FeatureModule_MODULE_STREAM, req.FeatureModule.Id)
}

func TestFeatureInfoGetRemoteFailure(t *testing.T) {
	h := newHarness(t, func(service string, srv ros.Service) error {
		srv.(*msgs.FeatureFloatInfoGet).Response.Error = msgs.Error{Code: -19, Text: "incomplete"}
		return nil
	})
	code := h.run(NewFeatureInfoGetCommand, "/cam", "Float", "Gain")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "Getting feature Gain info failed with -19 (VmbErrorIncomplete): incomplete\n", h.stdout.String())
}

func TestFeatureSetInt(t *testing.T) {
	h := newHarness(t, nil)
	code := h.run(NewFeatureSetCommand, "/cam", "Int", "Width", "42")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "Changed feature Width to 42\n", h.stdout.String())

	require.Len(t, h.node.calls, 1)
	assert.Equal(t, "/cam/features/int_set", h.node.calls[0].service)
	req := h.node.calls[0].srv.(*msgs.FeatureIntSet).Request
	assert.Equal(t, int64(42), req.Value)
	assert.Equal(t, "Width", req.FeatureName)
}

func TestFeatureSetNegativeValue(t *testing.T) {
	h := newHarness(t, nil)
	code := h.run(NewFeatureSetCommand, "/cam", "Float", "ExposureOffset", "-1.5")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, -1.5, h.node.calls[0].srv.(*msgs.FeatureFloatSet).Request.Value)
}

func TestFeatureSetBool(t *testing.T) {
	for text, want := range map[string]bool{"true": true, "False": false, "1": true} {
		h := newHarness(t, nil)
		code := h.run(NewFeatureSetCommand, "/cam", "Bool", "ReverseX", text)
		require.Equal(t, ExitOK, code, text)
		assert.Equal(t, want, h.node.calls[0].srv.(*msgs.FeatureBoolSet).Request.Value, text)
	}
}

func TestFeatureSetInvalidValue(t *testing.T) {
	h := newHarness(t, nil)
	code := h.run(NewFeatureSetCommand, "/cam", "Int", "Width", "wide")
	assert.Equal(t, ExitUsage, code)
	assert.Empty(t, h.created)
}

func TestFeatureSetRemoteFailure(t *testing.T) {
	h := newHarness(t, func(service string, srv ros.Service) error {
		srv.(*msgs.FeatureIntSet).Response.Error = -11
		return nil
	})
	code := h.run(NewFeatureSetCommand, "/cam", "Int", "Width", "7")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "Setting feature Width value failed with -11 (VmbErrorInvalidValue)\n", h.stdout.String())
}

func TestFeatureSetModuleFlag(t *testing.T) {
	h := newHarness(t, nil)
	code := h.run(NewFeatureSetCommand, "--module", "system", "/cam", "String", "UserId", "left")
	assert.Equal(t, ExitOK, code)
	req := h.node.calls[0].srv.(*msgs.FeatureStringSet).Request
	assert.Equal(t, "left", req.Value)
	assert.Equal(t, msgs.FeatureModule_MODULE_SYSTEM, req.FeatureModule.Id)
}

func TestFeatureSetValueWithAssignment(t *testing.T) {
	h := newHarness(t, nil)
	code := h.run(NewFeatureSetCommand, "/cam", "String", "DeviceUserID", "--", "a:=b")
	assert.Equal(t, ExitOK, code)
	assert.Empty(t, h.rosArgs)
	assert.Equal(t, "a:=b", h.node.calls[0].srv.(*msgs.FeatureStringSet).Request.Value)
	assert.Equal(t, "Changed feature DeviceUserID to a:=b\n", h.stdout.String())

	h = newHarness(t, nil)
	code = h.run(NewFeatureSetCommand, "--", "/cam", "String", "DeviceUserID", "a:=b")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "a:=b", h.node.calls[0].srv.(*msgs.FeatureStringSet).Request.Value)
}

func TestFeatureSetFlagsAfterArguments(t *testing.T) {
	h := newHarness(t, nil)
	code := h.run(NewFeatureSetCommand, "/cam", "Int", "Width", "42", "-m", "stream")
	assert.Equal(t, ExitUsage, code)
	assert.Empty(t, h.created)
	assert.Contains(t, h.stderr.String(), "feature_set [flags] node_name")

	h = newHarness(t, nil)
	code = h.run(NewFeatureSetCommand, "--help")
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, h.stdout.String(), "feature_set [flags] node_name")
	assert.Contains(t, h.stdout.String(), "Flags must come before node_name")
}

func TestFeatureGet(t *testing.T) {
	h := newHarness(t, func(service string, srv ros.Service) error {
		srv.(*msgs.FeatureRawGet).Response.Buffer = []byte{0xca, 0xfe}
		return nil
	})
	code := h.run(NewFeatureGetCommand, "/cam", "Raw", "LUTValueAll")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "Feature LUTValueAll value: cafe\n", h.stdout.String())
	assert.Equal(t, "/cam/features/raw_get", h.node.calls[0].service)
}

func TestFeatureGetRemoteFailure(t *testing.T) {
	h := newHarness(t, func(service string, srv ros.Service) error {
		srv.(*msgs.FeatureIntGet).Response.Error = msgs.Error{Code: -6}
		return nil
	})
	code := h.run(NewFeatureGetCommand, "/cam", "Int", "Width")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "Getting feature Width value failed with -6 (VmbErrorInvalidAccess)\n", h.stdout.String())
}

func TestFeaturesListGet(t *testing.T) {
	h := newHarness(t, func(service string, srv ros.Service) error {
		srv.(*msgs.FeaturesListGet).Response.FeatureList = []string{"Width", "Height"}
		return nil
	})
	code := h.run(NewFeaturesListGetCommand, "/cam")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "Width\nHeight\n", h.stdout.String())
	assert.Equal(t, "/cam/features/list_get", h.node.calls[0].service)
}

func TestFeatureInfoQuery(t *testing.T) {
	h := newHarness(t, func(service string, srv ros.Service) error {
		q := srv.(*msgs.FeatureInfoQuery)
		for _, name := range q.Request.FeatureNames {
			q.Response.FeatureInfo = append(q.Response.FeatureInfo, msgs.FeatureInfo{
				Name:     name,
				DataType: 1,
				Flags:    msgs.FeatureFlags{FlagRead: true},
			})
		}
		return nil
	})
	code := h.run(NewFeatureInfoQueryCommand, "/cam", "Width", "Height")
	assert.Equal(t, ExitOK, code)
	out := h.stdout.String()
	assert.Contains(t, out, "Name: Width\n")
	assert.Contains(t, out, "Name: Height\n")
	assert.Contains(t, out, "Data type: Int\n")
	assert.Contains(t, out, "Flags: read\n")
	assert.Equal(t, "/cam/feature_info_query", h.node.calls[0].service)
}

func TestEventViewer(t *testing.T) {
	h := newHarness(t, nil)
	h.node.onSpin = func(n *fakeNode) {
		callback := n.callbacks["/cam/events/event_EventTest"].(func(*msgs.EventData))
		callback(&msgs.EventData{Entries: []msgs.EventDataEntry{
			{Name: "EventTestTimestamp", Value: "1234"},
		}})
	}
	code := h.run(NewEventViewerCommand, "/cam", "EventTest")
	assert.Equal(t, ExitOK, code)
	assert.True(t, h.node.spun)
	assert.True(t, h.node.shutdown)

	logs := h.nodeLogs.String()
	assert.Contains(t, logs, "Got event meta data:")
	assert.Contains(t, logs, "EventTestTimestamp: 1234")

	var services []string
	for _, c := range h.node.calls {
		services = append(services, c.service)
	}
	assert.Equal(t, []string{"/cam/events/_event_subscribe", "/cam/events/_event_unsubscribe"}, services)
	assert.Equal(t, "EventTest", h.node.calls[1].srv.(*msgs.EventUnsubscribe).Request.Name)
}

func TestEventViewerSubscribeFailure(t *testing.T) {
	h := newHarness(t, func(service string, srv ros.Service) error {
		srv.(*msgs.EventSubscribe).Response.Error = msgs.Error{Code: -19}
		return nil
	})
	code := h.run(NewEventViewerCommand, "/cam", "EventTest")
	assert.Equal(t, ExitFailure, code)
	assert.False(t, h.node.spun)
	assert.Contains(t, h.nodeLogs.String(), "subscribing event EventTest failed with -19 (VmbErrorIncomplete)")
}
