package camsim

import (
	"context"
	"testing"
	"time"

	"github.com/edwinhayes/rosgo-vimbax/internal/rostest"
	msgs "github.com/edwinhayes/rosgo-vimbax/msgs/vimbax_camera_msgs"
	"github.com/edwinhayes/rosgo-vimbax/ros"
	"github.com/edwinhayes/rosgo-vimbax/vimbax"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testNamespace = "/vimbax_camera_test"

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	return logger
}

// startNode starts a spinning node that shuts down with the test.
func startNode(t *testing.T, master *rostest.Master, name string) ros.Node {
	t.Helper()
	node, err := ros.NewNode(name, nil,
		ros.WithMasterURI(master.URI()),
		ros.WithLogger(testLogger()),
		ros.WithoutSignalHandler())
	require.NoError(t, err)
	done := make(chan struct{})
	go func() {
		defer close(done)
		node.Spin()
	}()
	t.Cleanup(func() {
		node.Shutdown()
		<-done
	})
	return node
}

type simFixture struct {
	master *rostest.Master
	server *Server
	client ros.Node
}

func newSimFixture(t *testing.T) *simFixture {
	t.Helper()
	t.Setenv("ROS_NAMESPACE", "")
	t.Setenv("ROS_HOSTNAME", "127.0.0.1")
	master := rostest.NewMaster(t)

	camera, err := NewCamera(DefaultDescription())
	require.NoError(t, err)
	simNode := startNode(t, master, "vimbax_camera_test")
	server, err := Serve(simNode, testNamespace, camera, simNode.Logger())
	require.NoError(t, err)
	t.Cleanup(server.Shutdown)

	return &simFixture{
		master: master,
		server: server,
		client: startNode(t, master, "client"),
	}
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestServeRegistersServices(t *testing.T) {
	f := newSimFixture(t)
	services := f.master.Services()
	assert.Len(t, services, 21)
	assert.Contains(t, services, testNamespace+"/features/int_get")
	assert.Contains(t, services, testNamespace+"/features/enum_info_get")
	assert.NotContains(t, services, testNamespace+"/features/bool_info_get")
	assert.Contains(t, services, testNamespace+"/features/list_get")
	assert.Contains(t, services, testNamespace+"/feature_info_query")
	assert.Contains(t, services, testNamespace+"/events/_event_subscribe")

	f.server.Shutdown()
	assert.Empty(t, f.master.Services())
}

func TestServerFeatureCalls(t *testing.T) {
	f := newSimFixture(t)
	ctx := testContext(t)
	client := vimbax.NewClient(f.client, testNamespace, f.client.Logger())
	intType := mustType(t, "Int")

	value, st, err := client.Get(ctx, intType, "Width", vimbax.ModuleRemoteDevice)
	require.NoError(t, err)
	require.True(t, st.OK(), st.String())
	assert.Equal(t, int64(2048), value)

	code, err := client.Set(ctx, intType, "Width", int64(1024), vimbax.ModuleRemoteDevice)
	require.NoError(t, err)
	assert.True(t, code.OK())
	value, _, err = client.Get(ctx, intType, "Width", vimbax.ModuleRemoteDevice)
	require.NoError(t, err)
	assert.Equal(t, int64(1024), value)

	code, err = client.Set(ctx, intType, "Width", int64(1025), vimbax.ModuleRemoteDevice)
	require.NoError(t, err)
	assert.Equal(t, vimbax.ErrorInvalidValue, code)

	_, st, err = client.Get(ctx, mustType(t, "Float"), "Width", vimbax.ModuleRemoteDevice)
	require.NoError(t, err)
	assert.Equal(t, vimbax.ErrorWrongType, st.Code)

	rawType := mustType(t, "Raw")
	code, err = client.Set(ctx, rawType, "UserData", []byte{0xca, 0xfe}, vimbax.ModuleRemoteDevice)
	require.NoError(t, err)
	require.True(t, code.OK())
	value, st, err = client.Get(ctx, rawType, "UserData", vimbax.ModuleRemoteDevice)
	require.NoError(t, err)
	require.True(t, st.OK())
	assert.Equal(t, []byte{0xca, 0xfe}, value)

	value, _, err = client.Get(ctx, mustType(t, "String"), "TLVersion", vimbax.ModuleSystem)
	require.NoError(t, err)
	assert.Equal(t, "1.0", value)

	code, err = client.Set(ctx, mustType(t, "Bool"), "ReverseX", true, vimbax.ModuleRemoteDevice)
	require.NoError(t, err)
	require.True(t, code.OK())
	value, _, err = client.Get(ctx, mustType(t, "Bool"), "ReverseX", vimbax.ModuleRemoteDevice)
	require.NoError(t, err)
	assert.Equal(t, true, value)
}

func TestServerInfoCalls(t *testing.T) {
	f := newSimFixture(t)
	ctx := testContext(t)
	client := vimbax.NewClient(f.client, testNamespace, f.client.Logger())

	info, st, err := client.InfoGet(ctx, mustType(t, "Enum"), "PixelFormat", vimbax.ModuleRemoteDevice)
	require.NoError(t, err)
	require.True(t, st.OK())
	assert.Equal(t, []string{"Mono8", "BayerRG8", "RGB8"}, info.(vimbax.EnumInfo).AvailableValues)

	info, st, err = client.InfoGet(ctx, mustType(t, "Float"), "Gain", vimbax.ModuleRemoteDevice)
	require.NoError(t, err)
	require.True(t, st.OK())
	assert.Equal(t, vimbax.FloatInfo{Min: 0, Max: 24, Inc: 0.1, IncAvailable: true}, info)

	_, st, err = client.InfoGet(ctx, mustType(t, "Int"), "Missing", vimbax.ModuleRemoteDevice)
	require.NoError(t, err)
	assert.Equal(t, vimbax.ErrorNotFound, st.Code)

	names, st, err := client.ListFeatures(ctx, vimbax.ModuleStream)
	require.NoError(t, err)
	require.True(t, st.OK())
	assert.Equal(t, []string{"StreamBufferHandlingMode"}, names)

	infos, st, err := client.QueryFeatureInfo(ctx, []string{"Gain"}, vimbax.ModuleRemoteDevice)
	require.NoError(t, err)
	require.True(t, st.OK())
	require.Len(t, infos, 1)
	assert.Equal(t, "dB", infos[0].Unit)

	_, st, err = client.QueryFeatureInfo(ctx, []string{"Missing"}, vimbax.ModuleRemoteDevice)
	require.NoError(t, err)
	assert.Equal(t, vimbax.ErrorNotFound, st.Code)
}

func TestServerEvents(t *testing.T) {
	f := newSimFixture(t)
	ctx := testContext(t)
	events := vimbax.NewEventSubscriber(f.client, testNamespace, f.client.Logger())

	emitted, err := f.server.Emit("EventTest", nil)
	require.NoError(t, err)
	assert.False(t, emitted)

	received := make(chan *msgs.EventData, 100)
	sub, err := events.Subscribe(ctx, "EventTest", func(m *msgs.EventData) {
		received <- m
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"EventTest"}, f.server.Subscribed())
	topic := vimbax.EventTopic(testNamespace, "EventTest")
	assert.Len(t, f.master.Publishers(topic), 1)

	runCtx, stop := context.WithCancel(ctx)
	defer stop()
	go f.server.Run(runCtx, 20*time.Millisecond)

	select {
	case m := <-received:
		assert.Equal(t, testNamespace, m.Header.FrameId)
		require.Len(t, m.Entries, 2)
		assert.Equal(t, "EventID", m.Entries[0].Name)
		assert.Equal(t, "EventTestTimestamp", m.Entries[1].Name)
	case <-ctx.Done():
		t.Fatal("no event received")
	}
	stop()

	require.NoError(t, sub.Unsubscribe(ctx))
	assert.Empty(t, f.server.Subscribed())
	assert.Empty(t, f.master.Publishers(topic))
	emitted, err = f.server.Emit("EventTest", nil)
	require.NoError(t, err)
	assert.False(t, emitted)
}

func TestServerEventSubscribeUnknown(t *testing.T) {
	f := newSimFixture(t)
	events := vimbax.NewEventSubscriber(f.client, testNamespace, f.client.Logger())

	_, err := events.Subscribe(testContext(t), "FrameStart", func(*msgs.EventData) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subscribing event FrameStart failed with -3")
	assert.Empty(t, f.server.Subscribed())
}

func TestServerEventSubscriptionsAreCounted(t *testing.T) {
	f := newSimFixture(t)
	ctx := testContext(t)
	other := startNode(t, f.master, "other")

	first, err := vimbax.NewEventSubscriber(f.client, testNamespace, f.client.Logger()).
		Subscribe(ctx, "ExposureEnd", func(*msgs.EventData) {})
	require.NoError(t, err)
	second, err := vimbax.NewEventSubscriber(other, testNamespace, other.Logger()).
		Subscribe(ctx, "ExposureEnd", func(*msgs.EventData) {})
	require.NoError(t, err)

	require.NoError(t, first.Unsubscribe(ctx))
	assert.Equal(t, []string{"ExposureEnd"}, f.server.Subscribed())
	require.NoError(t, second.Unsubscribe(ctx))
	assert.Empty(t, f.server.Subscribed())
}
