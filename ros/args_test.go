package ros

import (
	"testing"
)

func TestProcessArguments(t *testing.T) {
	args := []string{
		"foo:=bar",
		"_param:=value",
		"__master:=http://localhost:11311",
		"foo",
		"42",
	}

	mapping, params, specials, rest := processArguments(args)
	if mapping["foo"] != "bar" {
		t.Fail()
	}
	if params["param"] != "value" {
		t.Fail()
	}
	if specials["__master"] != "http://localhost:11311" {
		t.Fail()
	}
	if len(rest) != 2 {
		t.Fail()
	}
	if rest[0] != "foo" || rest[1] != "42" {
		t.Fail()
	}
}

func TestIsRosArgument(t *testing.T) {
	if !IsRosArgument("__ns:=/lab") || !IsRosArgument("_rate:=5") {
		t.Fail()
	}
	if IsRosArgument("--node_name") || IsRosArgument("a:=b:=c") {
		t.Fail()
	}
}

func TestDecodeParamValue(t *testing.T) {
	cases := []struct {
		text     string
		expected interface{}
	}{
		{"42", int32(42)},
		{"-7", int32(-7)},
		{"4294967296", 4294967296.0},
		{"2.5", 2.5},
		{"true", true},
		{"false", false},
		{`"quoted"`, "quoted"},
		{"plain", "plain"},
		{"[1, 2]", "[1, 2]"},
	}
	for _, c := range cases {
		if v := decodeParamValue(c.text); v != c.expected {
			t.Errorf("%s: got %#v", c.text, v)
		}
	}
}
