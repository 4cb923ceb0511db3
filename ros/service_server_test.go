package ros

import (
	"strings"
	"testing"

	"github.com/edwinhayes/rosgo-vimbax/internal/rostest"
	"github.com/pkg/errors"
)

func double(srv *testDouble) error {
	if srv.Request.Value < 0 {
		return errors.New("negative input")
	}
	srv.Response.Value = srv.Request.Value * 2
	return nil
}

// spinInBackground drives node's callbacks until the node shuts down.
func spinInBackground(t *testing.T, node *defaultNode) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		node.Spin()
	}()
	t.Cleanup(func() {
		node.Shutdown()
		<-done
	})
}

func TestServiceServerRoundTrip(t *testing.T) {
	setupNodeEnv(t)
	master := rostest.NewMaster(t)
	cam := startTestNode(t, master.URI(), "cam")
	spinInBackground(t, cam)
	cli := startTestNode(t, master.URI(), "cli")

	server, err := cam.NewServiceServer("double", testDoubleType{testDoubleMD5}, double)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(server.URI(), "rosrpc://127.0.0.1:") {
		t.Error(server.URI())
	}
	if names := master.Services(); len(names) != 1 || names[0] != "/double" {
		t.Fatal(names)
	}

	srv := &testDouble{Request: testInt{21}}
	if err := cli.NewServiceClient("/double", testDoubleType{testDoubleMD5}).Call(srv); err != nil {
		t.Fatal(err)
	}
	if srv.Response.Value != 42 {
		t.Error(srv.Response.Value)
	}

	err = cli.NewServiceClient("/double", testDoubleType{testDoubleMD5}).Call(&testDouble{Request: testInt{-1}})
	if err == nil || !strings.Contains(err.Error(), "negative input") {
		t.Errorf("expected the handler error, got %v", err)
	}

	err = cli.NewServiceClient("/double", testDoubleType{"0123456789abcdef0123456789abcdef"}).Call(&testDouble{})
	if err == nil || !strings.Contains(err.Error(), "md5sums do not match") {
		t.Errorf("expected an md5 mismatch, got %v", err)
	}

	// Wildcard clients are served as well.
	srv = &testDouble{Request: testInt{4}}
	if err := cli.NewServiceClient("/double", testDoubleType{"*"}).Call(srv); err != nil {
		t.Fatal(err)
	}
	if srv.Response.Value != 8 {
		t.Error(srv.Response.Value)
	}

	server.Shutdown()
	if names := master.Services(); len(names) != 0 {
		t.Error("service still registered:", names)
	}
	if err := cli.NewServiceClient("/double", testDoubleType{testDoubleMD5}).Call(&testDouble{}); err == nil {
		t.Error("expected an error after shutdown")
	}
}

func TestServiceServerPanickingHandler(t *testing.T) {
	setupNodeEnv(t)
	master := rostest.NewMaster(t)
	cam := startTestNode(t, master.URI(), "cam")
	spinInBackground(t, cam)
	cli := startTestNode(t, master.URI(), "cli")

	_, err := cam.NewServiceServer("/boom", testDoubleType{testDoubleMD5}, func(srv *testDouble) error {
		panic("broken")
	})
	if err != nil {
		t.Fatal(err)
	}
	err = cli.NewServiceClient("/boom", testDoubleType{testDoubleMD5}).Call(&testDouble{})
	if err == nil || !strings.Contains(err.Error(), "panicked: broken") {
		t.Errorf("expected the panic to be reported, got %v", err)
	}
}

func TestNewServiceServerRejects(t *testing.T) {
	setupNodeEnv(t)
	master := rostest.NewMaster(t)
	cam := startTestNode(t, master.URI(), "cam")
	srvType := testDoubleType{testDoubleMD5}

	bad := []interface{}{
		42,
		func(srv *testDouble) {},
		func(srv *testDouble) bool { return true },
		func(n int) error { return nil },
		func(a, b *testDouble) error { return nil },
	}
	for _, handler := range bad {
		if _, err := cam.NewServiceServer("/double", srvType, handler); err == nil {
			t.Errorf("%T: expected an error", handler)
		}
	}

	// A handler taking the Service interface is accepted.
	if _, err := cam.NewServiceServer("/generic", srvType, func(srv Service) error { return nil }); err != nil {
		t.Error(err)
	}
	if _, err := cam.NewServiceServer("/generic", srvType, double); err == nil {
		t.Error("expected an error for a service served twice")
	}
}

func TestNodeShutdownUnregistersServices(t *testing.T) {
	setupNodeEnv(t)
	master := rostest.NewMaster(t)
	cam := startTestNode(t, master.URI(), "cam")

	for _, name := range []string{"a", "b"} {
		if _, err := cam.NewServiceServer(name, testDoubleType{testDoubleMD5}, double); err != nil {
			t.Fatal(err)
		}
	}
	cam.Shutdown()
	if names := master.Services(); len(names) != 0 {
		t.Error(names)
	}
}
