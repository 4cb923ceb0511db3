package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func runGengo(t *testing.T, args ...string) error {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	cmd := newRootCommand(log)
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestGeneratePackage(t *testing.T) {
	out := t.TempDir()
	if err := runGengo(t, "--path", "../../msgs/definitions", "--out", out, "pkg", "std_msgs", "vimbax_camera_msgs"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(out, "std_msgs", "Header.go")); err != nil {
		t.Error(err)
	}
	generated, err := filepath.Glob(filepath.Join(out, "*", "*.go"))
	if err != nil {
		t.Fatal(err)
	}
	committed, err := filepath.Glob(filepath.Join("../../msgs", "*", "*.go"))
	if err != nil {
		t.Fatal(err)
	}
	if len(generated) != len(committed) {
		t.Errorf("generated %d files, msgs holds %d", len(generated), len(committed))
	}
	for _, path := range generated {
		rel, _ := filepath.Rel(out, path)
		if _, err := os.Stat(filepath.Join("../../msgs", rel)); err != nil {
			t.Errorf("%s is not committed", rel)
		}
	}
}

func TestGenerateServiceFromFile(t *testing.T) {
	out := t.TempDir()
	file := filepath.Join(t.TempDir(), "AddTwoInts.srv")
	if err := os.WriteFile(file, []byte("int64 a\nint64 b\n---\nint64 sum\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runGengo(t, "--out", out, "srv", "rospy_tutorials/AddTwoInts", file); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"AddTwoInts.go", "AddTwoIntsRequest.go", "AddTwoIntsResponse.go"} {
		if _, err := os.Stat(filepath.Join(out, "rospy_tutorials", name)); err != nil {
			t.Error(err)
		}
	}
}

func TestGenerateUnknownPackage(t *testing.T) {
	if err := runGengo(t, "--path", "../../msgs/definitions", "--out", t.TempDir(), "pkg", "nav_msgs"); err == nil {
		t.Error("expected an error for a package without definitions")
	}
}
