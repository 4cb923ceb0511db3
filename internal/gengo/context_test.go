package gengo

import (
	"os"
	"path/filepath"
	"testing"
)

const definitions = "../../msgs/definitions"

func TestContextFindsPackages(t *testing.T) {
	ctx := NewContext([]string{definitions})
	if msgs := ctx.Messages("std_msgs"); len(msgs) != 1 || msgs[0] != "std_msgs/Header" {
		t.Errorf("std_msgs: %v", msgs)
	}
	if n := len(ctx.Services("vimbax_camera_msgs")); n != 21 {
		t.Errorf("expected 21 services, got %d", n)
	}
	if n := len(ctx.Messages("vimbax_camera_msgs")); n != 6 {
		t.Errorf("expected 6 messages, got %d", n)
	}
}

func TestContextMD5Sums(t *testing.T) {
	ctx := NewContext([]string{definitions})
	for name, sum := range map[string]string{
		"std_msgs/Header":                  "2176decaecbce78abc3b96ef049fabed",
		"vimbax_camera_msgs/FeatureModule": "520cbaa8e4570b9c020465ac90723004",
		"vimbax_camera_msgs/EventData":     "1b1170a539d02222b7ba62ef0835f5e7",
	} {
		spec, err := ctx.LoadMsg(name)
		if err != nil {
			t.Fatal(err)
		}
		if spec.MD5Sum != sum {
			t.Errorf("%s: got %s", name, spec.MD5Sum)
		}
	}

	srv, err := ctx.LoadSrv("vimbax_camera_msgs/FeatureIntSet")
	if err != nil {
		t.Fatal(err)
	}
	if srv.MD5Sum != "4e145d222c403a42cff875b7da563369" {
		t.Errorf("FeatureIntSet: got %s", srv.MD5Sum)
	}
	if srv.Request.FullName() != "vimbax_camera_msgs/FeatureIntSetRequest" {
		t.Error(srv.Request.FullName())
	}
	if _, err := ctx.LoadMsg("vimbax_camera_msgs/FeatureIntSetResponse"); err != nil {
		t.Error("response should be registered:", err)
	}
}

func TestContextMissingDependency(t *testing.T) {
	ctx := NewContext(nil)
	if _, err := ctx.LoadMsgFromString("Unknown thing\n", "pkg/Msg"); err == nil {
		t.Error("expected an error for an unknown field type")
	}
	if _, err := ctx.LoadSrv("pkg/Nothing"); err == nil {
		t.Error("expected an error for an unknown service")
	}
}

func TestContextSelfReference(t *testing.T) {
	root := t.TempDir()
	pkg := filepath.Join(root, "loop_msgs")
	if err := os.MkdirAll(filepath.Join(pkg, "msg"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(pkg, "package.xml"), []byte("<package/>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(pkg, "msg", "Node.msg"), []byte("Node[] children\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ctx := NewContext([]string{root})
	if _, err := ctx.LoadMsg("loop_msgs/Node"); err == nil {
		t.Error("expected an error for a recursive message")
	}
}
