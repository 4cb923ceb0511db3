package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/edwinhayes/rosgo-vimbax/ros"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRosArgs(t *testing.T) {
	rosArgs, rest := splitRosArgs([]string{"cam", "__ns:=/a", "Int", "x:=y", "Width", "_p:=1", "42"})
	assert.Equal(t, []string{"__ns:=/a", "x:=y", "_p:=1"}, rosArgs)
	assert.Equal(t, []string{"cam", "Int", "Width", "42"}, rest)
}

func TestSplitRosArgsStopsAtTerminator(t *testing.T) {
	rosArgs, rest := splitRosArgs([]string{"cam", "__ns:=/a", "String", "Id", "--", "a:=b"})
	assert.Equal(t, []string{"__ns:=/a"}, rosArgs)
	assert.Equal(t, []string{"cam", "String", "Id", "--", "a:=b"}, rest)
}

func TestExecutePassesRosArgsToNode(t *testing.T) {
	h := newHarness(t, nil)
	code := h.run(NewFeatureSetCommand, "/cam", "Int", "__ns:=/lab", "Width", "42")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, []string{"__ns:=/lab"}, h.rosArgs)
	require.Len(t, h.created, 1)
	assert.True(t, strings.HasPrefix(h.created[0], "vimbax_feature_set_example_"))
	assert.True(t, h.node.shutdown)
}

func TestExecuteUsageErrors(t *testing.T) {
	cases := map[string][]string{
		"missing args":   {"/cam", "Int"},
		"unknown type":   {"/cam", "Long", "Width"},
		"unknown flag":   {"--bogus", "/cam", "Int", "Width"},
		"unknown module": {"-m", "camera", "/cam", "Int", "Width"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, nil)
			code := h.run(NewFeatureInfoGetCommand, args...)
			assert.Equal(t, ExitUsage, code)
			assert.Empty(t, h.created)
			assert.Contains(t, h.stderr.String(), "Usage:")
		})
	}
}

func TestExecuteTransportErrorExitsNonZero(t *testing.T) {
	h := newHarness(t, func(string, ros.Service) error {
		return errors.New("connection refused")
	})
	code := h.run(NewFeatureGetCommand, "/cam", "Int", "Width")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, h.stderr.String(), "connection refused")
	assert.Empty(t, h.stdout.String())
}

func TestExecuteNodeCreationFailure(t *testing.T) {
	h := newHarness(t, nil)
	env := &Env{
		Stdout: &h.stdout,
		Stderr: &h.stderr,
		NewNode: func(string, []string, *Config, *logrus.Logger) (Node, error) {
			return nil, errors.New("ROS_MASTER_URI is not set")
		},
	}
	code := Execute(context.Background(), env, NewFeatureGetCommand, []string{"/cam", "Int", "Width"})
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, h.stderr.String(), "ROS_MASTER_URI is not set")
}
