package ros

import (
	"context"
	"net"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/edwinhayes/rosgo-vimbax/xmlrpc"
)

// fakeMaster answers the master API calls a node makes. It doubles as the
// slave API of a single publisher whose TCPROS endpoint is publisherAddr.
type fakeMaster struct {
	server  *httptest.Server
	handler *xmlrpc.Handler

	mu            sync.Mutex
	services      map[string]string
	params        map[string]interface{}
	subscribers   map[string]string
	publisherAddr string
	calls         []string
}

func newFakeMaster(t *testing.T) *fakeMaster {
	t.Helper()
	m := &fakeMaster{
		services:    make(map[string]string),
		params:      make(map[string]interface{}),
		subscribers: make(map[string]string),
	}
	m.handler = xmlrpc.NewHandler(map[string]xmlrpc.Method{
		"lookupService":        m.lookupService,
		"setParam":             m.setParam,
		"registerSubscriber":   m.registerSubscriber,
		"unregisterSubscriber": m.unregisterSubscriber,
		"requestTopic":         m.requestTopic,
	})
	m.server = httptest.NewServer(m.handler)
	t.Cleanup(m.server.Close)
	return m
}

func (m *fakeMaster) URI() string {
	return m.server.URL
}

func (m *fakeMaster) record(method string) {
	m.mu.Lock()
	m.calls = append(m.calls, method)
	m.mu.Unlock()
}

func (m *fakeMaster) called(method string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.calls {
		if c == method {
			return true
		}
	}
	return false
}

func (m *fakeMaster) addService(name string, addr string) {
	m.mu.Lock()
	m.services[name] = "rosrpc://" + addr
	m.mu.Unlock()
}

func (m *fakeMaster) setPublisher(addr string) {
	m.mu.Lock()
	m.publisherAddr = addr
	m.mu.Unlock()
}

func (m *fakeMaster) param(key string) (interface{}, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.params[key]
	return v, ok
}

func (m *fakeMaster) lookupService(callerID string, service string) (interface{}, error) {
	m.record("lookupService")
	m.mu.Lock()
	defer m.mu.Unlock()
	if uri, ok := m.services[service]; ok {
		return buildRosAPIResult(APIStatusSuccess, "ok", uri), nil
	}
	return buildRosAPIResult(APIStatusError, "no provider", ""), nil
}

func (m *fakeMaster) setParam(callerID string, key string, value interface{}) (interface{}, error) {
	m.record("setParam")
	m.mu.Lock()
	m.params[key] = value
	m.mu.Unlock()
	return buildRosAPIResult(APIStatusSuccess, "ok", 0), nil
}

func (m *fakeMaster) registerSubscriber(callerID string, topic string, topicType string, callerAPI string) (interface{}, error) {
	m.record("registerSubscriber")
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers[topic] = callerAPI
	publishers := []interface{}{}
	if m.publisherAddr != "" {
		publishers = append(publishers, m.server.URL)
	}
	return buildRosAPIResult(APIStatusSuccess, "ok", publishers), nil
}

func (m *fakeMaster) unregisterSubscriber(callerID string, topic string, callerAPI string) (interface{}, error) {
	m.record("unregisterSubscriber")
	m.mu.Lock()
	delete(m.subscribers, topic)
	m.mu.Unlock()
	return buildRosAPIResult(APIStatusSuccess, "ok", 1), nil
}

func (m *fakeMaster) requestTopic(callerID string, topic string, protocols []interface{}) (interface{}, error) {
	m.record("requestTopic")
	m.mu.Lock()
	addr := m.publisherAddr
	m.mu.Unlock()
	host, portText, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	port, err := strconv.Atoi(portText)
	if err != nil {
		return nil, err
	}
	return buildRosAPIResult(APIStatusSuccess, "ok", []interface{}{"TCPROS", host, port}), nil
}

func TestCallRosAPI(t *testing.T) {
	master := newFakeMaster(t)
	master.addService("/cam/features/int_set", "127.0.0.1:5000")

	result, err := callRosAPI(context.Background(), master.URI(), "lookupService", "/cli", "/cam/features/int_set")
	if err != nil {
		t.Fatal(err)
	}
	if result != "rosrpc://127.0.0.1:5000" {
		t.Error(result)
	}

	if _, err := callRosAPI(context.Background(), master.URI(), "lookupService", "/cli", "/missing"); err == nil {
		t.Error("expected an error for an unknown service")
	}
}

func TestCallRosAPIMalformed(t *testing.T) {
	handler := xmlrpc.NewHandler(map[string]xmlrpc.Method{
		"short":   func() (interface{}, error) { return []interface{}{1, "ok"}, nil },
		"scalar":  func() (interface{}, error) { return "ok", nil },
		"badcode": func() (interface{}, error) { return []interface{}{"1", "ok", 0}, nil },
	})
	server := httptest.NewServer(handler)
	defer server.Close()

	for _, method := range []string{"short", "scalar", "badcode"} {
		if _, err := callRosAPI(context.Background(), server.URL, method); err == nil {
			t.Errorf("%s: expected an error", method)
		}
	}
}
