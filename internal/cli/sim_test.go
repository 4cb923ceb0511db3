package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/edwinhayes/rosgo-vimbax/internal/camsim"
	"github.com/edwinhayes/rosgo-vimbax/internal/rostest"
	"github.com/edwinhayes/rosgo-vimbax/ros"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startSimulator serves the default simulated camera as /sim_camera.
func startSimulator(t *testing.T) *rostest.Master {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ROS_NAMESPACE", "")
	t.Setenv("ROS_HOSTNAME", "127.0.0.1")
	master := rostest.NewMaster(t)

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	node, err := ros.NewNode("sim_camera", nil,
		ros.WithMasterURI(master.URI()), ros.WithLogger(logger), ros.WithoutSignalHandler())
	require.NoError(t, err)
	camera, err := camsim.NewCamera(camsim.DefaultDescription())
	require.NoError(t, err)
	server, err := camsim.Serve(node, node.QualifiedName(), camera, node.Logger())
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		node.Spin()
	}()
	t.Cleanup(func() {
		server.Shutdown()
		node.Shutdown()
		<-done
	})
	return master
}

func runAgainst(master *rostest.Master, newCommand CommandFunc, args ...string) (int, string) {
	var stdout, stderr bytes.Buffer
	env := &Env{Stdout: &stdout, Stderr: &stderr, NewNode: newRosNode}
	args = append([]string{"--master-uri", master.URI()}, args...)
	return Execute(context.Background(), env, newCommand, args), stdout.String()
}

func TestCommandsAgainstSimulator(t *testing.T) {
	master := startSimulator(t)

	code, out := runAgainst(master, NewFeatureGetCommand, "/sim_camera", "Int", "Width")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "Feature Width value: 2048\n", out)

	code, out = runAgainst(master, NewFeatureSetCommand, "/sim_camera", "Int", "Width", "1024")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "Changed feature Width to 1024\n", out)

	code, out = runAgainst(master, NewFeatureGetCommand, "/sim_camera", "Int", "Width")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "Feature Width value: 1024\n", out)

	code, out = runAgainst(master, NewFeatureSetCommand, "/sim_camera", "Enum", "PixelFormat", "Mono10")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "Setting feature PixelFormat value failed with -11 (VmbErrorInvalidValue)\n", out)

	code, out = runAgainst(master, NewFeatureInfoGetCommand, "/sim_camera", "Int", "Height")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "Min: 8\nMax: 3072\nInc: 2\n", out)

	code, out = runAgainst(master, NewFeaturesListGetCommand, "-m", "system", "/sim_camera")
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "TLVersion")

	code, out = runAgainst(master, NewFeatureInfoQueryCommand, "/sim_camera", "Gain")
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Gain")
}

func TestCommandFailsWithoutCamera(t *testing.T) {
	master := startSimulator(t)
	code, _ := runAgainst(master, NewFeatureGetCommand, "/no_camera", "Int", "Width")
	assert.Equal(t, ExitFailure, code)
}
