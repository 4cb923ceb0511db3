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

// Time allowed for a client to send its header or request.
const serviceIOTimeout = 5 * time.Second

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// checkServiceHandler rejects handlers that cannot be called with a new
// service of srvType.
func checkServiceHandler(srvType ServiceType, handler interface{}) error {
	fun := reflect.ValueOf(handler)
	if fun.Kind() != reflect.Func {
		return errors.Errorf("service handler must be a function, got %T", handler)
	}
	ft := fun.Type()
	if ft.NumIn() != 1 || ft.NumOut() != 1 || ft.Out(0) != errorType {
		return errors.Errorf("service handler must look like func(%T) error, got %v", srvType.NewService(), ft)
	}
	if srv := reflect.TypeOf(srvType.NewService()); !srv.AssignableTo(ft.In(0)) {
		return errors.Errorf("service handler takes %v, %s needs %v", ft.In(0), srvType.Name(), srv)
	}
	return nil
}

type defaultServiceServer struct {
	logger       *logrus.Entry
	service      string
	srvType      ServiceType
	handler      reflect.Value
	nodeID       string
	nodeAPIURI   string
	masterURI    string
	jobChan      chan func()
	timeout      time.Duration
	listener     net.Listener
	uri          string
	sessions     sync.WaitGroup
	conns        map[net.Conn]struct{}
	connsMutex   sync.Mutex
	shutdownChan chan struct{}
	shutdownOnce sync.Once
	acceptDone   chan struct{}
	onShutdown   func()
}

func newDefaultServiceServer(node *defaultNode, service string, srvType ServiceType, handler interface{}) (*defaultServiceServer, error) {
	listener, port, err := listenAnyPort(node.listenIP)
	if err != nil {
		return nil, err
	}
	s := new(defaultServiceServer)
	s.logger = node.logger.WithField("service", service)
	s.service = service
	s.srvType = srvType
	s.handler = reflect.ValueOf(handler)
	s.nodeID = node.qualifiedName
	s.nodeAPIURI = node.xmlrpcURI
	s.masterURI = node.masterURI
	s.jobChan = node.jobChan
	s.timeout = node.serviceTimeout
	s.listener = listener
	s.uri = "rosrpc://" + net.JoinHostPort(node.hostname, port)
	s.conns = make(map[net.Conn]struct{})
	s.shutdownChan = make(chan struct{})
	s.acceptDone = make(chan struct{})

	s.logger.Debugf("ServiceServer listen %s", s.uri)
	ctx, cancel := context.WithTimeout(context.Background(), masterAPITimeout)
	defer cancel()
	if _, err := callRosAPI(ctx, s.masterURI, "registerService", s.nodeID, service, s.uri, s.nodeAPIURI); err != nil {
		listener.Close()
		return nil, errors.Wrapf(err, "register service %s", service)
	}
	return s, nil
}

// start accepts clients until the server is shut down.
func (s *defaultServiceServer) start(wg *sync.WaitGroup) {
	defer wg.Done()
	defer close(s.acceptDone)
	s.logger.Debugf("Service server listening on %s", s.listener.Addr())
	defer s.logger.Debug("Service server goroutine exit")

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.shutdownChan:
			default:
				s.logger.WithError(err).Error("Accept failed")
			}
			return
		}
		if !s.track(conn) {
			conn.Close()
			return
		}
		s.sessions.Add(1)
		go s.serve(conn)
	}
}

func (s *defaultServiceServer) track(conn net.Conn) bool {
	s.connsMutex.Lock()
	defer s.connsMutex.Unlock()
	if s.conns == nil {
		return false
	}
	s.conns[conn] = struct{}{}
	return true
}

func (s *defaultServiceServer) untrack(conn net.Conn) {
	s.connsMutex.Lock()
	delete(s.conns, conn)
	s.connsMutex.Unlock()
}

// serve runs the TCPROS service protocol with one client.
func (s *defaultServiceServer) serve(conn net.Conn) {
	defer s.sessions.Done()
	defer s.untrack(conn)
	defer conn.Close()
	logger := s.logger.WithField("client", conn.RemoteAddr().String())

	// 1. Read request header
	conn.SetDeadline(time.Now().Add(serviceIOTimeout))
	reqHeaders, err := readConnectionHeader(conn)
	if err != nil {
		logger.WithError(err).Error("Failed to read connection header")
		return
	}
	reqHeaderMap := headerMap(reqHeaders)
	logger.Debug("TCPROS Connection Header:")
	for _, h := range reqHeaders {
		logger.Debugf("  `%s` = `%s`", h.key, h.value)
	}

	// 2. Write response header
	md5sum := s.srvType.MD5Sum()
	if remote := reqHeaderMap["md5sum"]; !md5Compatible(md5sum, remote) {
		msg := fmt.Sprintf("request from [%s]: md5sums do not match: [%s] vs. [%s]", reqHeaderMap["callerid"], remote, md5sum)
		logger.Error(msg)
		writeConnectionHeader([]header{{"error", msg}}, conn)
		return
	}
	headers := []header{
		{"service", s.service},
		{"md5sum", md5sum},
		{"type", s.srvType.Name()},
		{"callerid", s.nodeID},
	}
	if err := writeConnectionHeader(headers, conn); err != nil {
		logger.WithError(err).Error("Failed to write response header")
		return
	}
	if reqHeaderMap["probe"] == "1" {
		logger.Debug("Probe connection closed")
		return
	}
	persistent := reqHeaderMap["persistent"] == "1"

	for {
		// 3. Read request
		if persistent {
			conn.SetDeadline(time.Time{})
		} else {
			conn.SetDeadline(time.Now().Add(serviceIOTimeout))
		}
		body, err := readSizedMessage(conn)
		if err != nil {
			if err != io.EOF {
				logger.WithError(err).Debug("Failed to read request")
			}
			return
		}

		// 4. Run the handler and write OK byte plus response
		res, err := s.handle(body)
		conn.SetDeadline(time.Now().Add(serviceIOTimeout))
		if err != nil {
			logger.WithError(err).Warn("Service handler failed")
			err = writeServiceResponse(conn, 0, []byte(err.Error()))
		} else {
			err = writeServiceResponse(conn, 1, res)
		}
		if err != nil {
			logger.WithError(err).Error("Failed to write response")
			return
		}
		if !persistent {
			return
		}
	}
}

type serviceResult struct {
	body []byte
	err  error
}

// handle runs the handler for one serialized request on the node's job
// queue and returns the serialized response.
func (s *defaultServiceServer) handle(body []byte) ([]byte, error) {
	srv := s.srvType.NewService()
	if err := srv.ReqMessage().Deserialize(bytes.NewReader(body)); err != nil {
		return nil, errors.Wrap(err, "deserialize request")
	}
	resultChan := make(chan serviceResult, 1)
	job := func() {
		resultChan <- s.call(srv)
	}

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()
	select {
	case s.jobChan <- job:
	case <-s.shutdownChan:
		return nil, errors.New("service is shutting down")
	case <-timer.C:
		return nil, errors.New("service handler queue is full")
	}
	select {
	case r := <-resultChan:
		return r.body, r.err
	case <-s.shutdownChan:
		return nil, errors.New("service is shutting down")
	case <-timer.C:
		return nil, errors.New("service handler timed out")
	}
}

func (s *defaultServiceServer) call(srv Service) (result serviceResult) {
	defer func() {
		if r := recover(); r != nil {
			result = serviceResult{err: errors.Errorf("service handler panicked: %v", r)}
		}
	}()
	out := s.handler.Call([]reflect.Value{reflect.ValueOf(srv)})
	if err, _ := out[0].Interface().(error); err != nil {
		return serviceResult{err: err}
	}
	var buf bytes.Buffer
	if err := srv.ResMessage().Serialize(&buf); err != nil {
		return serviceResult{err: errors.Wrap(err, "serialize response")}
	}
	return serviceResult{body: buf.Bytes()}
}

func writeServiceResponse(w io.Writer, ok byte, body []byte) error {
	var buf bytes.Buffer
	buf.WriteByte(ok)
	binary.Write(&buf, binary.LittleEndian, uint32(len(body)))
	buf.Write(body)
	_, err := buf.WriteTo(w)
	return err
}

func (s *defaultServiceServer) URI() string {
	return s.uri
}

// Shutdown unregisters the service and closes every client connection.
func (s *defaultServiceServer) Shutdown() {
	s.shutdownOnce.Do(func() {
		close(s.shutdownChan)
		s.listener.Close()

		ctx, cancel := context.WithTimeout(context.Background(), masterAPITimeout)
		defer cancel()
		if _, err := callRosAPI(ctx, s.masterURI, "unregisterService", s.nodeID, s.service, s.uri); err != nil {
			s.logger.WithError(err).Warn("unregisterService failed")
		}

		s.connsMutex.Lock()
		for conn := range s.conns {
			conn.Close()
		}
		s.conns = nil
		s.connsMutex.Unlock()
		<-s.acceptDone
		s.sessions.Wait()
		if s.onShutdown != nil {
			s.onShutdown()
		}
		s.logger.Debug("Service server shut down")
	})
}
