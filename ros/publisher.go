package ros

import (
	"bytes"
	"context"
	"encoding/binary"
	"net"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Messages queued per subscriber before the oldest ones are dropped.
const subscriberQueueSize = 100

type defaultPublisher struct {
	logger       *logrus.Entry
	topic        string
	msgType      MessageType
	nodeID       string
	nodeAPIURI   string
	masterURI    string
	listener     net.Listener
	port         string
	sessions     map[*remoteSubscriberSession]struct{}
	sessionsLock sync.Mutex
	sessionGroup sync.WaitGroup
	shutdownChan chan struct{}
	shutdownOnce sync.Once
	acceptDone   chan struct{}
	onShutdown   func()
}

func newDefaultPublisher(node *defaultNode, topic string, msgType MessageType) (*defaultPublisher, error) {
	listener, port, err := listenAnyPort(node.listenIP)
	if err != nil {
		return nil, err
	}
	pub := new(defaultPublisher)
	pub.logger = node.logger.WithField("topic", topic)
	pub.topic = topic
	pub.msgType = msgType
	pub.nodeID = node.qualifiedName
	pub.nodeAPIURI = node.xmlrpcURI
	pub.masterURI = node.masterURI
	pub.listener = listener
	pub.port = port
	pub.sessions = make(map[*remoteSubscriberSession]struct{})
	pub.shutdownChan = make(chan struct{})
	pub.acceptDone = make(chan struct{})
	return pub, nil
}

// register announces the publisher to the master. The master notifies
// existing subscribers itself.
func (pub *defaultPublisher) register() error {
	ctx, cancel := context.WithTimeout(context.Background(), masterAPITimeout)
	defer cancel()
	_, err := callRosAPI(ctx, pub.masterURI, "registerPublisher", pub.nodeID, pub.topic, pub.msgType.Name(), pub.nodeAPIURI)
	return errors.Wrapf(err, "register publisher for %s", pub.topic)
}

func (pub *defaultPublisher) start(wg *sync.WaitGroup) {
	defer wg.Done()
	defer close(pub.acceptDone)
	logger := pub.logger
	logger.Debugf("Publisher listening on %s", pub.listener.Addr())
	defer logger.Debug("Publisher goroutine exit")

	for {
		conn, err := pub.listener.Accept()
		if err != nil {
			select {
			case <-pub.shutdownChan:
			default:
				logger.WithError(err).Error("Accept failed")
			}
			return
		}
		logger.Debugf("Connected %s", conn.RemoteAddr())
		pub.sessionGroup.Add(1)
		go pub.serve(conn)
	}
}

// serve answers the subscriber's header and hands the connection to a
// session once the header exchange succeeds.
func (pub *defaultPublisher) serve(conn net.Conn) {
	defer pub.sessionGroup.Done()
	logger := pub.logger.WithField("subscriber", conn.RemoteAddr().String())

	// 1. Read connection header
	conn.SetDeadline(time.Now().Add(serviceIOTimeout))
	headers, err := readConnectionHeader(conn)
	if err != nil {
		logger.WithError(err).Error("Failed to read connection header")
		conn.Close()
		return
	}
	reqHeaderMap := headerMap(headers)
	logger.Debug("TCPROS Connection Header:")
	for _, h := range headers {
		logger.Debugf("  `%s` = `%s`", h.key, h.value)
	}
	if t := reqHeaderMap["type"]; t != pub.msgType.Name() && t != "*" {
		logger.Errorf("Incompatible message type %s, expected %s", t, pub.msgType.Name())
		writeConnectionHeader([]header{{"error", "message type mismatch on " + pub.topic}}, conn)
		conn.Close()
		return
	}
	if !md5Compatible(pub.msgType.MD5Sum(), reqHeaderMap["md5sum"]) {
		logger.Errorf("Incompatible md5sum %s, expected %s", reqHeaderMap["md5sum"], pub.msgType.MD5Sum())
		writeConnectionHeader([]header{{"error", "md5sum mismatch on " + pub.topic}}, conn)
		conn.Close()
		return
	}

	// 2. Return response header
	resHeaders := []header{
		{"message_definition", pub.msgType.Text()},
		{"callerid", pub.nodeID},
		{"latching", "0"},
		{"md5sum", pub.msgType.MD5Sum()},
		{"topic", pub.topic},
		{"type", pub.msgType.Name()},
	}
	if err := writeConnectionHeader(resHeaders, conn); err != nil {
		logger.WithError(err).Error("Failed to write response header")
		conn.Close()
		return
	}
	conn.SetDeadline(time.Time{})

	session := &remoteSubscriberSession{
		conn:     conn,
		callerID: reqHeaderMap["callerid"],
		msgChan:  make(chan []byte, subscriberQueueSize),
		quitChan: make(chan struct{}),
		logger:   logger,
	}
	if !pub.addSession(session) {
		conn.Close()
		return
	}
	defer pub.removeSession(session)

	// 3. Start sending messages
	session.run()
}

func (pub *defaultPublisher) addSession(session *remoteSubscriberSession) bool {
	pub.sessionsLock.Lock()
	defer pub.sessionsLock.Unlock()
	if pub.sessions == nil {
		return false
	}
	pub.sessions[session] = struct{}{}
	return true
}

func (pub *defaultPublisher) removeSession(session *remoteSubscriberSession) {
	pub.sessionsLock.Lock()
	delete(pub.sessions, session)
	pub.sessionsLock.Unlock()
}

// Publish queues msg for every connected subscriber.
func (pub *defaultPublisher) Publish(msg Message) error {
	var buf bytes.Buffer
	if err := msg.Serialize(&buf); err != nil {
		return errors.Wrapf(err, "serialize %s", pub.msgType.Name())
	}
	select {
	case <-pub.shutdownChan:
		return errors.Errorf("publisher for %s is shut down", pub.topic)
	default:
	}
	data := buf.Bytes()
	pub.sessionsLock.Lock()
	defer pub.sessionsLock.Unlock()
	for session := range pub.sessions {
		session.enqueue(data)
	}
	return nil
}

func (pub *defaultPublisher) GetNumSubscribers() int {
	pub.sessionsLock.Lock()
	defer pub.sessionsLock.Unlock()
	return len(pub.sessions)
}

func (pub *defaultPublisher) Shutdown() {
	pub.shutdownOnce.Do(func() {
		close(pub.shutdownChan)
		pub.listener.Close()

		ctx, cancel := context.WithTimeout(context.Background(), masterAPITimeout)
		defer cancel()
		if _, err := callRosAPI(ctx, pub.masterURI, "unregisterPublisher", pub.nodeID, pub.topic, pub.nodeAPIURI); err != nil {
			pub.logger.WithError(err).Warn("unregisterPublisher failed")
		}

		pub.sessionsLock.Lock()
		for session := range pub.sessions {
			session.close()
		}
		pub.sessions = nil
		pub.sessionsLock.Unlock()
		<-pub.acceptDone
		pub.sessionGroup.Wait()
		if pub.onShutdown != nil {
			pub.onShutdown()
		}
		pub.logger.Debug("Publisher shut down")
	})
}

// remoteSubscriberSession streams messages to one connected subscriber.
type remoteSubscriberSession struct {
	conn      net.Conn
	callerID  string
	msgChan   chan []byte
	quitChan  chan struct{}
	closeOnce sync.Once
	logger    *logrus.Entry
}

// enqueue never blocks; a slow subscriber loses its oldest messages.
func (session *remoteSubscriberSession) enqueue(msg []byte) {
	for {
		select {
		case session.msgChan <- msg:
			return
		default:
		}
		select {
		case <-session.msgChan:
		default:
		}
	}
}

func (session *remoteSubscriberSession) close() {
	session.closeOnce.Do(func() {
		close(session.quitChan)
		session.conn.Close()
	})
}

func (session *remoteSubscriberSession) run() {
	defer session.close()
	logger := session.logger
	logger.Debugf("Start sending messages to %s", session.callerID)

	// A subscriber never writes after the header; a read returning means
	// it went away.
	go func() {
		var discard [1]byte
		session.conn.Read(discard[:])
		session.close()
	}()

	var buf bytes.Buffer
	for {
		select {
		case msg := <-session.msgChan:
			buf.Reset()
			binary.Write(&buf, binary.LittleEndian, uint32(len(msg)))
			buf.Write(msg)
			session.conn.SetWriteDeadline(time.Now().Add(serviceIOTimeout))
			if _, err := buf.WriteTo(session.conn); err != nil {
				select {
				case <-session.quitChan:
				default:
					logger.WithError(err).Warn("Failed to send a message")
				}
				return
			}
		case <-session.quitChan:
			logger.Debug("Session closed")
			return
		}
	}
}
