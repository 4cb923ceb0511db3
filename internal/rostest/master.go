// Package rostest runs an in-process ROS master for tests that need real
// nodes to find each other.
package rostest

import (
	"context"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/edwinhayes/rosgo-vimbax/xmlrpc"
	"github.com/sirupsen/logrus"
)

const (
	statusError   int32 = -1
	statusSuccess int32 = 1
)

// Timeout of a publisherUpdate notification.
const notifyTimeout = 5 * time.Second

func result(code int32, message string, value interface{}) interface{} {
	return []interface{}{code, message, value}
}

// Master implements the registration part of the ROS master API.
type Master struct {
	server  *httptest.Server
	handler *xmlrpc.Handler
	logger  *logrus.Entry
	notify  sync.WaitGroup

	mu          sync.Mutex
	services    map[string]string
	publishers  map[string][]string
	subscribers map[string][]string
	params      map[string]interface{}
}

// NewMaster starts a master that stops when the test ends.
func NewMaster(t testing.TB) *Master {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	m := &Master{
		logger:      logger.WithField("node", "/master"),
		services:    make(map[string]string),
		publishers:  make(map[string][]string),
		subscribers: make(map[string][]string),
		params:      make(map[string]interface{}),
	}
	m.handler = xmlrpc.NewHandler(map[string]xmlrpc.Method{
		"registerService":      m.registerService,
		"unregisterService":    m.unregisterService,
		"lookupService":        m.lookupService,
		"registerPublisher":    m.registerPublisher,
		"unregisterPublisher":  m.unregisterPublisher,
		"registerSubscriber":   m.registerSubscriber,
		"unregisterSubscriber": m.unregisterSubscriber,
		"setParam":             m.setParam,
		"getUri":               m.getURI,
	})
	m.server = httptest.NewServer(m.handler)
	t.Cleanup(m.Close)
	return m
}

func (m *Master) URI() string {
	return m.server.URL
}

// Close stops the master after pending notifications went out.
func (m *Master) Close() {
	m.notify.Wait()
	m.server.Close()
}

// Services returns the registered service names in order.
func (m *Master) Services() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.services))
	for name := range m.services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Publishers returns the slave APIs publishing topic.
func (m *Master) Publishers(topic string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.publishers[topic]...)
}

func (m *Master) Param(key string) (interface{}, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.params[key]
	return v, ok
}

func (m *Master) registerService(callerID string, service string, serviceAPI string, callerAPI string) (interface{}, error) {
	m.logger.Debugf("registerService(%s, %s, %s)", callerID, service, serviceAPI)
	m.mu.Lock()
	m.services[service] = serviceAPI
	m.mu.Unlock()
	return result(statusSuccess, "registered", 1), nil
}

func (m *Master) unregisterService(callerID string, service string, serviceAPI string) (interface{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.services[service] != serviceAPI {
		return result(statusSuccess, "not registered", 0), nil
	}
	delete(m.services, service)
	return result(statusSuccess, "unregistered", 1), nil
}

func (m *Master) lookupService(callerID string, service string) (interface{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if uri, ok := m.services[service]; ok {
		return result(statusSuccess, "ok", uri), nil
	}
	return result(statusError, "no provider", ""), nil
}

func (m *Master) registerPublisher(callerID string, topic string, topicType string, callerAPI string) (interface{}, error) {
	m.logger.Debugf("registerPublisher(%s, %s, %s)", callerID, topic, topicType)
	m.mu.Lock()
	m.publishers[topic] = appendUnique(m.publishers[topic], callerAPI)
	subscribers := append([]string{}, m.subscribers[topic]...)
	m.mu.Unlock()
	m.publisherUpdate(topic)
	return result(statusSuccess, "registered", subscribers), nil
}

func (m *Master) unregisterPublisher(callerID string, topic string, callerAPI string) (interface{}, error) {
	m.mu.Lock()
	m.publishers[topic] = remove(m.publishers[topic], callerAPI)
	m.mu.Unlock()
	m.publisherUpdate(topic)
	return result(statusSuccess, "unregistered", 1), nil
}

func (m *Master) registerSubscriber(callerID string, topic string, topicType string, callerAPI string) (interface{}, error) {
	m.logger.Debugf("registerSubscriber(%s, %s, %s)", callerID, topic, topicType)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers[topic] = appendUnique(m.subscribers[topic], callerAPI)
	return result(statusSuccess, "registered", append([]string{}, m.publishers[topic]...)), nil
}

func (m *Master) unregisterSubscriber(callerID string, topic string, callerAPI string) (interface{}, error) {
	m.mu.Lock()
	m.subscribers[topic] = remove(m.subscribers[topic], callerAPI)
	m.mu.Unlock()
	return result(statusSuccess, "unregistered", 1), nil
}

func (m *Master) setParam(callerID string, key string, value interface{}) (interface{}, error) {
	m.mu.Lock()
	m.params[key] = value
	m.mu.Unlock()
	return result(statusSuccess, "ok", 0), nil
}

func (m *Master) getURI(callerID string) (interface{}, error) {
	return result(statusSuccess, "ok", m.server.URL), nil
}

// publisherUpdate tells every subscriber of topic about its current
// publishers, the way the master does after a registration change.
func (m *Master) publisherUpdate(topic string) {
	m.mu.Lock()
	subscribers := append([]string{}, m.subscribers[topic]...)
	publishers := append([]string{}, m.publishers[topic]...)
	m.mu.Unlock()
	for _, api := range subscribers {
		m.notify.Add(1)
		go func(api string) {
			defer m.notify.Done()
			ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()
			if _, err := xmlrpc.CallContext(ctx, api, "publisherUpdate", "/master", topic, publishers); err != nil {
				m.logger.WithError(err).Debugf("publisherUpdate to %s failed", api)
			}
		}(api)
	}
}

func appendUnique(list []string, item string) []string {
	for _, s := range list {
		if s == item {
			return list
		}
	}
	return append(list, item)
}

func remove(list []string, item string) []string {
	out := list[:0]
	for _, s := range list {
		if s != item {
			out = append(out, s)
		}
	}
	return out
}
