package ros

import (
	"bytes"
	"testing"
)

func TestConnectionHeaderRoundTrip(t *testing.T) {
	headers := []header{
		{"service", "/vimbax_camera_0/features/int_set"},
		{"md5sum", "*"},
		{"callerid", "/cli"},
		{"probe", ""},
		{"equation", "a=b"},
	}
	var buf bytes.Buffer
	if err := writeConnectionHeader(headers, &buf); err != nil {
		t.Fatal(err)
	}
	result, err := readConnectionHeader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(result) != len(headers) {
		t.Fatal(result)
	}
	for i := range headers {
		if result[i] != headers[i] {
			t.Errorf("%d: got %v", i, result[i])
		}
	}
	if buf.Len() != 0 {
		t.Error("header not fully consumed")
	}
}

func TestConnectionHeaderWireFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := writeConnectionHeader([]header{{"a", "b"}}, &buf); err != nil {
		t.Fatal(err)
	}
	expected := []byte{7, 0, 0, 0, 3, 0, 0, 0, 'a', '=', 'b'}
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Error(buf.Bytes())
	}
}

func TestConnectionHeaderMalformed(t *testing.T) {
	inputs := [][]byte{
		{},
		{8, 0, 0, 0, 3, 0, 0, 0, 'a', '=', 'b'},
		{7, 0, 0, 0, 9, 0, 0, 0, 'a', '=', 'b'},
		{7, 0, 0, 0, 3, 0, 0, 0, 'a', 'b', 'c'},
		{0, 0, 0, 0x10, 0},
	}
	for i, in := range inputs {
		if _, err := readConnectionHeader(bytes.NewReader(in)); err == nil {
			t.Errorf("%d: expected an error", i)
		}
	}
}

func TestHeaderMap(t *testing.T) {
	m := headerMap([]header{{"type", "x/Y"}, {"md5sum", "*"}})
	if m["type"] != "x/Y" || m["md5sum"] != "*" || len(m) != 2 {
		t.Error(m)
	}
}
