package ros

import (
	"bytes"
	"context"
	"encoding/binary"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type testInt struct {
	Value int64
}

type testIntType struct{}

func (testIntType) Text() string        { return "int64 value\n" }
func (testIntType) MD5Sum() string      { return "34add168574510e6e17f5d23ecc077ef" }
func (testIntType) Name() string        { return "test_msgs/Int" }
func (testIntType) NewMessage() Message { return new(testInt) }

func (m *testInt) Type() MessageType { return testIntType{} }

func (m *testInt) Serialize(buf *bytes.Buffer) error {
	return binary.Write(buf, binary.LittleEndian, m.Value)
}

func (m *testInt) Deserialize(buf *bytes.Reader) error {
	return binary.Read(buf, binary.LittleEndian, &m.Value)
}

type testDouble struct {
	Request  testInt
	Response testInt
}

func (s *testDouble) ReqMessage() Message { return &s.Request }
func (s *testDouble) ResMessage() Message { return &s.Response }

type testDoubleType struct {
	md5sum string
}

func (t testDoubleType) MD5Sum() string          { return t.md5sum }
func (testDoubleType) Name() string              { return "test_msgs/Double" }
func (testDoubleType) RequestType() MessageType  { return testIntType{} }
func (testDoubleType) ResponseType() MessageType { return testIntType{} }
func (testDoubleType) NewService() Service       { return new(testDouble) }

const testDoubleMD5 = "6b5a6fbd3ec5bc3b0cd9e8d5e4c0c1a2"

// startFakeService accepts a single TCPROS connection, reads the client's
// header and hands the connection to respond.
func startFakeService(t *testing.T, respond func(conn net.Conn, req map[string]string)) string {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { listener.Close() })
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		headers, err := readConnectionHeader(conn)
		if err != nil {
			return
		}
		respond(conn, headerMap(headers))
	}()
	return listener.Addr().String()
}

func doubler(md5sum string, seen chan<- map[string]string) func(net.Conn, map[string]string) {
	return func(conn net.Conn, req map[string]string) {
		if seen != nil {
			seen <- req
		}
		writeConnectionHeader([]header{{"callerid", "/fake"}, {"md5sum", md5sum}, {"type", "test_msgs/Double"}}, conn)
		body, err := readSizedMessage(conn)
		if err != nil || len(body) != 8 {
			return
		}
		v := int64(binary.LittleEndian.Uint64(body))
		var buf bytes.Buffer
		buf.WriteByte(1)
		binary.Write(&buf, binary.LittleEndian, uint32(8))
		binary.Write(&buf, binary.LittleEndian, v*2)
		conn.Write(buf.Bytes())
	}
}

func failing(message string) func(net.Conn, map[string]string) {
	return func(conn net.Conn, req map[string]string) {
		writeConnectionHeader([]header{{"callerid", "/fake"}, {"md5sum", testDoubleMD5}}, conn)
		if _, err := readSizedMessage(conn); err != nil {
			return
		}
		var buf bytes.Buffer
		buf.WriteByte(0)
		binary.Write(&buf, binary.LittleEndian, uint32(len(message)))
		buf.WriteString(message)
		conn.Write(buf.Bytes())
	}
}

func newTestServiceClient(masterURI string, service string, md5sum string, timeout time.Duration) *defaultServiceClient {
	logger := logrus.NewEntry(logrus.New())
	return newDefaultServiceClient(logger, "/cli", masterURI, service, testDoubleType{md5sum}, timeout)
}

func TestServiceClientCall(t *testing.T) {
	master := newFakeMaster(t)
	seen := make(chan map[string]string, 1)
	master.addService("/double", startFakeService(t, doubler(testDoubleMD5, seen)))

	client := newTestServiceClient(master.URI(), "/double", testDoubleMD5, time.Second)
	srv := &testDouble{Request: testInt{21}}
	if err := client.Call(srv); err != nil {
		t.Fatal(err)
	}
	if srv.Response.Value != 42 {
		t.Error(srv.Response.Value)
	}

	req := <-seen
	if req["service"] != "/double" || req["md5sum"] != testDoubleMD5 || req["callerid"] != "/cli" {
		t.Error(req)
	}
}

func TestServiceClientWildcardMD5(t *testing.T) {
	master := newFakeMaster(t)
	master.addService("/double", startFakeService(t, doubler("*", nil)))

	client := newTestServiceClient(master.URI(), "/double", testDoubleMD5, time.Second)
	srv := &testDouble{Request: testInt{-4}}
	if err := client.Call(srv); err != nil {
		t.Fatal(err)
	}
	if srv.Response.Value != -8 {
		t.Error(srv.Response.Value)
	}
}

func TestServiceClientMD5Mismatch(t *testing.T) {
	master := newFakeMaster(t)
	master.addService("/double", startFakeService(t, doubler("0123456789abcdef0123456789abcdef", nil)))

	client := newTestServiceClient(master.URI(), "/double", testDoubleMD5, time.Second)
	err := client.Call(&testDouble{})
	if err == nil || !strings.Contains(err.Error(), "incompatible") {
		t.Error(err)
	}
}

func TestServiceClientRemoteFailure(t *testing.T) {
	master := newFakeMaster(t)
	master.addService("/double", startFakeService(t, failing("feature not writable")))

	client := newTestServiceClient(master.URI(), "/double", testDoubleMD5, time.Second)
	err := client.Call(&testDouble{})
	if err == nil || !strings.Contains(err.Error(), "feature not writable") {
		t.Error(err)
	}
}

func TestServiceClientErrorHeader(t *testing.T) {
	master := newFakeMaster(t)
	master.addService("/double", startFakeService(t, func(conn net.Conn, req map[string]string) {
		writeConnectionHeader([]header{{"error", "no such service"}}, conn)
	}))

	client := newTestServiceClient(master.URI(), "/double", testDoubleMD5, time.Second)
	err := client.Call(&testDouble{})
	if err == nil || !strings.Contains(err.Error(), "no such service") {
		t.Error(err)
	}
}

func TestServiceClientLookupFailure(t *testing.T) {
	master := newFakeMaster(t)

	client := newTestServiceClient(master.URI(), "/missing", testDoubleMD5, time.Second)
	if err := client.Call(&testDouble{}); err == nil {
		t.Error("expected an error for an unknown service")
	}
	if !master.called("lookupService") {
		t.Error("lookupService was not called")
	}
}

func TestServiceClientTimeout(t *testing.T) {
	master := newFakeMaster(t)
	hang := make(chan struct{})
	t.Cleanup(func() { close(hang) })
	master.addService("/double", startFakeService(t, func(conn net.Conn, req map[string]string) {
		<-hang
	}))

	client := newTestServiceClient(master.URI(), "/double", testDoubleMD5, 100*time.Millisecond)
	start := time.Now()
	err := client.Call(&testDouble{})
	if errors.Cause(err) != context.DeadlineExceeded {
		t.Errorf("expected a deadline error, got %v", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Error("call was not bounded by the timeout")
	}
}

func TestServiceClientContextCancel(t *testing.T) {
	master := newFakeMaster(t)
	hang := make(chan struct{})
	t.Cleanup(func() { close(hang) })
	master.addService("/double", startFakeService(t, func(conn net.Conn, req map[string]string) {
		<-hang
	}))

	client := newTestServiceClient(master.URI(), "/double", testDoubleMD5, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()
	if err := client.CallContext(ctx, &testDouble{}); errors.Cause(err) != context.Canceled {
		t.Errorf("expected a cancellation error, got %v", err)
	}
}

func TestMD5Compatible(t *testing.T) {
	if !md5Compatible("*", "abc") || !md5Compatible("abc", "*") || !md5Compatible("abc", "abc") {
		t.Fail()
	}
	if md5Compatible("abc", "abd") {
		t.Fail()
	}
}
