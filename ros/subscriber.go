package ros

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"reflect"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Timeout of a single slave or master API call made by the subscriber.
const subscriberAPITimeout = 5 * time.Second

type messageEvent struct {
	bytes []byte
	event MessageEvent
}

// The subscription object runs in own goroutine (start).
// Do not access any properties from other goroutine.
type defaultSubscriber struct {
	topic            string
	msgType          MessageType
	pubList          []string
	numPublishers    int
	numMutex         sync.Mutex
	pubListChan      chan []string
	msgChan          chan messageEvent
	callbacks        []interface{}
	addCallbackChan  chan interface{}
	shutdownChan     chan struct{}
	shutdownOnce     sync.Once
	connections      map[string]chan struct{}
	disconnectedChan chan string
}

func newDefaultSubscriber(topic string, msgType MessageType, callback interface{}) *defaultSubscriber {
	sub := new(defaultSubscriber)
	sub.topic = topic
	sub.msgType = msgType
	sub.msgChan = make(chan messageEvent, 10)
	sub.pubListChan = make(chan []string, 10)
	sub.addCallbackChan = make(chan interface{}, 10)
	sub.shutdownChan = make(chan struct{})
	sub.disconnectedChan = make(chan string, 10)
	sub.connections = make(map[string]chan struct{})
	sub.callbacks = []interface{}{callback}
	return sub
}

// checkCallback rejects callbacks the subscriber cannot invoke.
func checkCallback(callback interface{}) error {
	fun := reflect.ValueOf(callback)
	if fun.Kind() != reflect.Func {
		return errors.Errorf("callback must be a function, got %T", callback)
	}
	if fun.Type().NumIn() > 2 {
		return errors.Errorf("callback takes %d arguments, at most 2 are supported", fun.Type().NumIn())
	}
	return nil
}

func (sub *defaultSubscriber) start(wg *sync.WaitGroup, nodeID string, nodeAPIURI string, masterURI string, jobChan chan func(), logger *logrus.Entry) {
	defer wg.Done()
	logger = logger.WithField("topic", sub.topic)
	logger.Debug("Subscriber goroutine started")
	defer logger.Debug("Subscriber goroutine exit")

	for {
		select {
		case list := <-sub.pubListChan:
			logger.Debug("Receive pubListChan")
			deadPubs := setDifference(sub.pubList, list)
			newPubs := setDifference(list, sub.pubList)
			sub.pubList = list
			sub.setNumPublishers(len(list))

			for _, pub := range deadPubs {
				if quitChan, ok := sub.connections[pub]; ok {
					close(quitChan)
					delete(sub.connections, pub)
				}
			}
			for _, pub := range newPubs {
				uri, err := requestTCPROS(pub, nodeID, sub.topic)
				if err != nil {
					logger.WithError(err).Warnf("Could not negotiate with publisher %s", pub)
					continue
				}
				quitChan := make(chan struct{})
				sub.connections[pub] = quitChan
				go startRemotePublisherConn(logger, pub, uri, sub.topic, sub.msgType, nodeID,
					sub.msgChan, quitChan, sub.disconnectedChan)
			}
		case callback := <-sub.addCallbackChan:
			logger.Debug("Receive addCallbackChan")
			sub.callbacks = append(sub.callbacks, callback)
		case msgEvent := <-sub.msgChan:
			// Pop received message then bind callbacks and enqueue to the job channel.
			callbacks := make([]interface{}, len(sub.callbacks))
			copy(callbacks, sub.callbacks)
			job := func() {
				m := sub.msgType.NewMessage()
				if err := m.Deserialize(bytes.NewReader(msgEvent.bytes)); err != nil {
					logger.WithError(err).Error("Dropping undecodable message")
					return
				}
				args := []reflect.Value{reflect.ValueOf(m), reflect.ValueOf(msgEvent.event)}
				for _, callback := range callbacks {
					fun := reflect.ValueOf(callback)
					fun.Call(args[0:fun.Type().NumIn()])
				}
			}
			select {
			case jobChan <- job:
				logger.Debug("Callback job enqueued")
			case <-sub.shutdownChan:
				sub.stop(logger, nodeID, nodeAPIURI, masterURI)
				return
			}
		case pubURI := <-sub.disconnectedChan:
			logger.Debugf("Connection to %s closed", pubURI)
			delete(sub.connections, pubURI)
		case <-sub.shutdownChan:
			sub.stop(logger, nodeID, nodeAPIURI, masterURI)
			return
		}
	}
}

func (sub *defaultSubscriber) stop(logger *logrus.Entry, nodeID string, nodeAPIURI string, masterURI string) {
	logger.Debug("Receive shutdownChan")
	for _, quitChan := range sub.connections {
		close(quitChan)
	}
	sub.connections = map[string]chan struct{}{}
	ctx, cancel := context.WithTimeout(context.Background(), subscriberAPITimeout)
	defer cancel()
	if _, err := callRosAPI(ctx, masterURI, "unregisterSubscriber", nodeID, sub.topic, nodeAPIURI); err != nil {
		logger.WithError(err).Warn("unregisterSubscriber failed")
	}
}

// requestTCPROS asks the publisher at pubURI for a TCPROS endpoint of topic.
func requestTCPROS(pubURI string, nodeID string, topic string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), subscriberAPITimeout)
	defer cancel()
	protocols := []interface{}{[]interface{}{"TCPROS"}}
	result, err := callRosAPI(ctx, pubURI, "requestTopic", nodeID, topic, protocols)
	if err != nil {
		return "", err
	}
	protocolParams, ok := result.([]interface{})
	if !ok || len(protocolParams) == 0 {
		return "", errors.New("requestTopic returned no protocol")
	}
	if name, _ := protocolParams[0].(string); name != "TCPROS" {
		return "", errors.Errorf("unsupported protocol %v", protocolParams[0])
	}
	if len(protocolParams) < 3 {
		return "", errors.New("malformed TCPROS protocol parameters")
	}
	addr, ok := protocolParams[1].(string)
	if !ok {
		return "", errors.New("TCPROS host is not a string")
	}
	port, ok := protocolParams[2].(int32)
	if !ok {
		return "", errors.New("TCPROS port is not an int")
	}
	return net.JoinHostPort(addr, fmt.Sprint(port)), nil
}

func startRemotePublisherConn(logger *logrus.Entry,
	pubURI string, addr string, topic string,
	msgType MessageType, nodeID string,
	msgChan chan messageEvent,
	quitChan chan struct{},
	disconnectedChan chan string) {
	logger = logger.WithField("publisher", pubURI)
	logger.Debug("startRemotePublisherConn()")

	disconnected := func() {
		select {
		case disconnectedChan <- pubURI:
		case <-quitChan:
		}
	}

	conn, err := net.DialTimeout("tcp", addr, subscriberAPITimeout)
	if err != nil {
		logger.WithError(err).Errorf("Failed to connect to %s", addr)
		disconnected()
		return
	}
	defer conn.Close()
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-quitChan:
			conn.Close()
		case <-done:
		}
	}()

	// 1. Write connection header
	headers := []header{
		{"topic", topic},
		{"md5sum", msgType.MD5Sum()},
		{"type", msgType.Name()},
		{"callerid", nodeID},
	}
	logger.Debug("TCPROS Connection Header")
	for _, h := range headers {
		logger.Debugf("  `%s` = `%s`", h.key, h.value)
	}
	conn.SetDeadline(time.Now().Add(subscriberAPITimeout))
	if err := writeConnectionHeader(headers, conn); err != nil {
		logger.WithError(err).Error("Failed to write connection header")
		disconnected()
		return
	}

	// 2. Read response header
	resHeaders, err := readConnectionHeader(conn)
	if err != nil {
		logger.WithError(err).Error("Failed to read response header")
		disconnected()
		return
	}
	resHeaderMap := headerMap(resHeaders)
	if msg, ok := resHeaderMap["error"]; ok {
		logger.Errorf("Publisher refused the connection: %s", msg)
		disconnected()
		return
	}
	if !md5Compatible(msgType.MD5Sum(), resHeaderMap["md5sum"]) {
		logger.Errorf("Incompatible message type: %s %s, expected %s %s",
			resHeaderMap["type"], resHeaderMap["md5sum"], msgType.Name(), msgType.MD5Sum())
		disconnected()
		return
	}
	conn.SetDeadline(time.Time{})
	logger.Debug("Start receiving messages...")
	event := MessageEvent{
		PublisherName:    resHeaderMap["callerid"],
		ConnectionHeader: resHeaderMap,
	}

	// 3. Start reading messages
	for {
		var msgSize uint32
		if err := binary.Read(conn, binary.LittleEndian, &msgSize); err != nil {
			select {
			case <-quitChan:
				return
			default:
			}
			if err != io.EOF {
				logger.WithError(err).Error("Failed to read a message size")
			}
			disconnected()
			return
		}
		buffer := make([]byte, int(msgSize))
		if _, err := io.ReadFull(conn, buffer); err != nil {
			select {
			case <-quitChan:
				return
			default:
			}
			logger.WithError(err).Error("Failed to read a message body")
			disconnected()
			return
		}
		event.ReceiptTime = time.Now()
		select {
		case msgChan <- messageEvent{bytes: buffer, event: event}:
		case <-quitChan:
			return
		}
	}
}

func (sub *defaultSubscriber) setNumPublishers(n int) {
	sub.numMutex.Lock()
	sub.numPublishers = n
	sub.numMutex.Unlock()
}

func (sub *defaultSubscriber) Shutdown() {
	sub.shutdownOnce.Do(func() {
		close(sub.shutdownChan)
	})
}

func (sub *defaultSubscriber) GetNumPublishers() int {
	sub.numMutex.Lock()
	defer sub.numMutex.Unlock()
	return sub.numPublishers
}
