package ros

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/edwinhayes/rosgo-vimbax/xmlrpc"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Timeout of the master API calls made while registering a node.
const masterAPITimeout = 5 * time.Second

type nodeOptions struct {
	masterURI      string
	logger         *logrus.Logger
	serviceTimeout time.Duration
	handleSignals  bool
}

// NodeOption customizes NewNode.
type NodeOption func(*nodeOptions)

// WithMasterURI overrides ROS_MASTER_URI. A __master:= argument still wins.
func WithMasterURI(uri string) NodeOption {
	return func(o *nodeOptions) { o.masterURI = uri }
}

func WithLogger(logger *logrus.Logger) NodeOption {
	return func(o *nodeOptions) { o.logger = logger }
}

// WithServiceTimeout sets the timeout of service calls made without a
// context deadline.
func WithServiceTimeout(d time.Duration) NodeOption {
	return func(o *nodeOptions) { o.serviceTimeout = d }
}

// WithoutSignalHandler keeps the node from treating SIGINT as a shutdown
// request.
func WithoutSignalHandler() NodeOption {
	return func(o *nodeOptions) { o.handleSignals = false }
}

// *defaultNode implements Node interface
// a defaultNode instance must be accessed in user goroutine.
type defaultNode struct {
	name             string
	namespace        string
	qualifiedName    string
	masterURI        string
	xmlrpcURI        string
	xmlrpcListener   net.Listener
	xmlrpcHandler    *xmlrpc.Handler
	subscribers      map[string]*defaultSubscriber
	subscribersMutex sync.Mutex
	publishers       map[string]*defaultPublisher
	publishersMutex  sync.Mutex
	servers          map[string]*defaultServiceServer
	serversMutex     sync.Mutex
	jobChan          chan func()
	interruptChan    chan os.Signal
	logger           *logrus.Entry
	ok               bool
	okMutex          sync.RWMutex
	shutdownOnce     sync.Once
	waitGroup        sync.WaitGroup
	hostname         string
	listenIP         string
	nameResolver     *NameResolver
	nonRosArgs       []string
	serviceTimeout   time.Duration
}

func newDefaultNode(name string, args []string, opts ...NodeOption) (*defaultNode, error) {
	options := nodeOptions{
		masterURI:      os.Getenv("ROS_MASTER_URI"),
		logger:         DefaultLogger(),
		serviceTimeout: DefaultServiceTimeout,
		handleSignals:  true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	node := new(defaultNode)

	namespace, nodeName, err := qualifyNodeName(name)
	if err != nil {
		return nil, err
	}

	remapping, params, specials, rest := processArguments(args)

	node.name = nodeName
	if value, ok := specials["__name"]; ok {
		node.name = value
	}

	node.namespace = namespace
	if ns := os.Getenv("ROS_NAMESPACE"); len(ns) > 0 {
		node.namespace = ns
	}
	if value, ok := specials["__ns"]; ok {
		node.namespace = value
	}
	node.namespace = canonicalizeName(GlobalNS + node.namespace)

	var onlyLocalhost bool
	node.hostname, onlyLocalhost = determineHost()
	if value, ok := specials["__hostname"]; ok {
		node.hostname = value
		onlyLocalhost = isLoopbackHost(value)
	} else if value, ok := specials["__ip"]; ok {
		node.hostname = value
		onlyLocalhost = isLoopbackHost(value)
	}
	if onlyLocalhost {
		node.listenIP = "127.0.0.1"
	} else {
		node.listenIP = "0.0.0.0"
	}

	node.masterURI = options.masterURI
	if value, ok := specials["__master"]; ok {
		node.masterURI = value
	}
	if node.masterURI == "" {
		return nil, errors.New("ROS master URI is not set")
	}

	node.nameResolver = newNameResolver(node.namespace, node.name, remapping)
	node.nonRosArgs = rest
	node.qualifiedName = resolveName(node.name, node.namespace, "")
	node.subscribers = make(map[string]*defaultSubscriber)
	node.publishers = make(map[string]*defaultPublisher)
	node.servers = make(map[string]*defaultServiceServer)
	node.jobChan = make(chan func(), 100)
	node.serviceTimeout = options.serviceTimeout
	node.ok = true

	logger := options.logger.WithField("node", node.qualifiedName)
	node.logger = logger
	logger.Debugf("Master URI = %s", node.masterURI)

	// Set parameters set by arguments
	for k, v := range params {
		key := node.nameResolver.resolve(PrivateNS + k)
		ctx, cancel := context.WithTimeout(context.Background(), masterAPITimeout)
		_, err := callRosAPI(ctx, node.masterURI, "setParam", node.qualifiedName, key, decodeParamValue(v))
		cancel()
		if err != nil {
			return nil, errors.Wrapf(err, "set parameter %s", key)
		}
	}

	listener, port, err := listenAnyPort(node.listenIP)
	if err != nil {
		return nil, err
	}
	node.xmlrpcURI = "http://" + net.JoinHostPort(node.hostname, port)
	logger.Debugf("listen on http://%s", listener.Addr().String())
	node.xmlrpcListener = listener
	m := map[string]xmlrpc.Method{
		"getBusStats":      func(callerID string) (interface{}, error) { return node.getBusStats(callerID) },
		"getBusInfo":       func(callerID string) (interface{}, error) { return node.getBusInfo(callerID) },
		"getMasterUri":     func(callerID string) (interface{}, error) { return node.getMasterURI(callerID) },
		"shutdown":         func(callerID string, msg string) (interface{}, error) { return node.shutdown(callerID, msg) },
		"getPid":           func(callerID string) (interface{}, error) { return node.getPid(callerID) },
		"getSubscriptions": func(callerID string) (interface{}, error) { return node.getSubscriptions(callerID) },
		"getPublications":  func(callerID string) (interface{}, error) { return node.getPublications(callerID) },
		"paramUpdate": func(callerID string, key string, value interface{}) (interface{}, error) {
			return node.paramUpdate(callerID, key, value)
		},
		"publisherUpdate": func(callerID string, topic string, publishers []interface{}) (interface{}, error) {
			return node.publisherUpdate(callerID, topic, publishers)
		},
		"requestTopic": func(callerID string, topic string, protocols []interface{}) (interface{}, error) {
			return node.requestTopic(callerID, topic, protocols)
		},
	}
	node.xmlrpcHandler = xmlrpc.NewHandler(m)
	go http.Serve(node.xmlrpcListener, node.xmlrpcHandler)

	if options.handleSignals {
		node.interruptChan = make(chan os.Signal, 1)
		signal.Notify(node.interruptChan, os.Interrupt)
		go func() {
			if _, ok := <-node.interruptChan; ok {
				logger.Info("Interrupted")
				node.setOK(false)
			}
		}()
	}

	logger.Debugf("Started %s", node.qualifiedName)
	return node, nil
}

func (node *defaultNode) OK() bool {
	node.okMutex.RLock()
	defer node.okMutex.RUnlock()
	return node.ok
}

func (node *defaultNode) setOK(ok bool) {
	node.okMutex.Lock()
	node.ok = ok
	node.okMutex.Unlock()
}

func (node *defaultNode) Name() string {
	return node.name
}

func (node *defaultNode) QualifiedName() string {
	return node.qualifiedName
}

func (node *defaultNode) Namespace() string {
	return node.namespace
}

func (node *defaultNode) getBusStats(callerID string) (interface{}, error) {
	return buildRosAPIResult(APIStatusError, "Not implemented", 0), nil
}

func (node *defaultNode) getBusInfo(callerID string) (interface{}, error) {
	return buildRosAPIResult(APIStatusError, "Not implemented", 0), nil
}

func (node *defaultNode) getMasterURI(callerID string) (interface{}, error) {
	return buildRosAPIResult(APIStatusSuccess, "Success", node.masterURI), nil
}

func (node *defaultNode) shutdown(callerID string, msg string) (interface{}, error) {
	node.logger.Infof("Shutdown requested by %s: %s", callerID, msg)
	node.setOK(false)
	return buildRosAPIResult(APIStatusSuccess, "Success", 0), nil
}

func (node *defaultNode) getPid(callerID string) (interface{}, error) {
	return buildRosAPIResult(APIStatusSuccess, "Success", os.Getpid()), nil
}

func (node *defaultNode) getSubscriptions(callerID string) (interface{}, error) {
	node.subscribersMutex.Lock()
	defer node.subscribersMutex.Unlock()
	result := []interface{}{}
	for t, s := range node.subscribers {
		result = append(result, []interface{}{t, s.msgType.Name()})
	}
	return buildRosAPIResult(APIStatusSuccess, "Success", result), nil
}

func (node *defaultNode) getPublications(callerID string) (interface{}, error) {
	node.publishersMutex.Lock()
	defer node.publishersMutex.Unlock()
	result := []interface{}{}
	for t, p := range node.publishers {
		result = append(result, []interface{}{t, p.msgType.Name()})
	}
	return buildRosAPIResult(APIStatusSuccess, "Success", result), nil
}

func (node *defaultNode) paramUpdate(callerID string, key string, value interface{}) (interface{}, error) {
	return buildRosAPIResult(APIStatusError, "Not implemented", 0), nil
}

func (node *defaultNode) publisherUpdate(callerID string, topic string, publishers []interface{}) (interface{}, error) {
	node.logger.Debugf("Slave API publisherUpdate(%s, %s, ...) called.", callerID, topic)
	node.subscribersMutex.Lock()
	sub, ok := node.subscribers[topic]
	node.subscribersMutex.Unlock()
	if !ok {
		return buildRosAPIResult(APIStatusFailure, "No such topic", 0), nil
	}
	pubURIs := make([]string, 0, len(publishers))
	for _, uri := range publishers {
		s, ok := uri.(string)
		if !ok {
			return buildRosAPIResult(APIStatusError, "Publisher URI is not a string", 0), nil
		}
		pubURIs = append(pubURIs, s)
	}
	select {
	case sub.pubListChan <- pubURIs:
	case <-sub.shutdownChan:
	}
	return buildRosAPIResult(APIStatusSuccess, "Success", 0), nil
}

func (node *defaultNode) requestTopic(callerID string, topic string, protocols []interface{}) (interface{}, error) {
	node.logger.Debugf("Slave API requestTopic(%s, %s, ...) called.", callerID, topic)
	node.publishersMutex.Lock()
	pub, ok := node.publishers[topic]
	node.publishersMutex.Unlock()
	if !ok {
		return buildRosAPIResult(APIStatusFailure, "No such topic", []interface{}{}), nil
	}

	for _, v := range protocols {
		protocol, ok := v.([]interface{})
		if !ok || len(protocol) == 0 {
			continue
		}
		if name, _ := protocol[0].(string); name == "TCPROS" {
			port, err := strconv.Atoi(pub.port)
			if err != nil {
				return buildRosAPIResult(APIStatusError, "Bad publisher port", []interface{}{}), nil
			}
			return buildRosAPIResult(APIStatusSuccess, "Success", []interface{}{"TCPROS", node.hostname, port}), nil
		}
	}
	return buildRosAPIResult(APIStatusFailure, "No supported protocol", []interface{}{}), nil
}

// RemoveSubscriber shuts down and deletes an existing topic subscriber.
func (node *defaultNode) RemoveSubscriber(topic string) {
	name := node.nameResolver.remap(topic)
	node.subscribersMutex.Lock()
	sub, ok := node.subscribers[name]
	delete(node.subscribers, name)
	node.subscribersMutex.Unlock()
	if ok {
		sub.Shutdown()
	}
}

func (node *defaultNode) NewSubscriber(topic string, msgType MessageType, callback interface{}) (Subscriber, error) {
	if err := checkCallback(callback); err != nil {
		return nil, err
	}
	name := node.nameResolver.remap(topic)
	logger := node.logger

	node.subscribersMutex.Lock()
	sub, ok := node.subscribers[name]
	node.subscribersMutex.Unlock()
	if ok {
		sub.addCallbackChan <- callback
		return sub, nil
	}

	logger.Debug("Call Master API registerSubscriber")
	ctx, cancel := context.WithTimeout(context.Background(), masterAPITimeout)
	defer cancel()
	result, err := callRosAPI(ctx, node.masterURI, "registerSubscriber",
		node.qualifiedName,
		name,
		msgType.Name(),
		node.xmlrpcURI)
	if err != nil {
		return nil, errors.Wrapf(err, "register subscriber for %s", name)
	}
	list, ok := result.([]interface{})
	if !ok {
		return nil, errors.Errorf("registerSubscriber result is not a list but %T", result)
	}
	publishers := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, errors.New("publisher list contains a non string object")
		}
		publishers = append(publishers, s)
	}
	logger.Debugf("Publisher URI list: %v", publishers)

	sub = newDefaultSubscriber(name, msgType, callback)
	node.subscribersMutex.Lock()
	node.subscribers[name] = sub
	node.subscribersMutex.Unlock()

	node.waitGroup.Add(1)
	go sub.start(&node.waitGroup, node.qualifiedName, node.xmlrpcURI, node.masterURI, node.jobChan, logger)
	sub.pubListChan <- publishers
	return sub, nil
}

// NewPublisher registers a publisher of msgType on topic. Asking twice for
// one topic returns the same publisher.
func (node *defaultNode) NewPublisher(topic string, msgType MessageType) (Publisher, error) {
	name := node.nameResolver.remap(topic)

	node.publishersMutex.Lock()
	if pub, ok := node.publishers[name]; ok {
		node.publishersMutex.Unlock()
		if pub.msgType.Name() != msgType.Name() {
			return nil, errors.Errorf("topic %s is already published as %s", name, pub.msgType.Name())
		}
		return pub, nil
	}
	pub, err := newDefaultPublisher(node, name, msgType)
	if err != nil {
		node.publishersMutex.Unlock()
		return nil, err
	}
	// The master calls requestTopic back during registerPublisher, so the
	// publisher is known before it is announced.
	pub.onShutdown = func() {
		node.publishersMutex.Lock()
		if node.publishers[name] == pub {
			delete(node.publishers, name)
		}
		node.publishersMutex.Unlock()
	}
	node.publishers[name] = pub
	node.publishersMutex.Unlock()
	node.waitGroup.Add(1)
	go pub.start(&node.waitGroup)

	node.logger.Debug("Call Master API registerPublisher")
	if err := pub.register(); err != nil {
		pub.Shutdown()
		return nil, err
	}
	return pub, nil
}

// NewServiceServer serves service with handler, a func taking the generated
// service type and returning error. Handlers run inside SpinOnce and Spin.
func (node *defaultNode) NewServiceServer(service string, srvType ServiceType, handler interface{}) (ServiceServer, error) {
	if err := checkServiceHandler(srvType, handler); err != nil {
		return nil, err
	}
	name := node.nameResolver.remap(service)

	node.serversMutex.Lock()
	defer node.serversMutex.Unlock()
	if _, ok := node.servers[name]; ok {
		return nil, errors.Errorf("service %s is already served", name)
	}
	server, err := newDefaultServiceServer(node, name, srvType, handler)
	if err != nil {
		return nil, err
	}
	node.servers[name] = server
	server.onShutdown = func() {
		node.serversMutex.Lock()
		if node.servers[name] == server {
			delete(node.servers, name)
		}
		node.serversMutex.Unlock()
	}
	node.waitGroup.Add(1)
	go server.start(&node.waitGroup)
	return server, nil
}

func (node *defaultNode) NewServiceClient(service string, srvType ServiceType) ServiceClient {
	name := node.nameResolver.remap(service)
	return newDefaultServiceClient(node.logger, node.qualifiedName, node.masterURI, name, srvType, node.serviceTimeout)
}

func (node *defaultNode) SpinOnce() {
	select {
	case job := <-node.jobChan:
		job()
	case <-time.After(10 * time.Millisecond):
	}
}

func (node *defaultNode) Spin() {
	for node.OK() {
		select {
		case job := <-node.jobChan:
			job()
		case <-time.After(100 * time.Millisecond):
		}
	}
}

func (node *defaultNode) Shutdown() {
	node.shutdownOnce.Do(node.shutdownNode)
}

func (node *defaultNode) shutdownNode() {
	logger := node.logger
	logger.Debug("Shutting node down")
	node.setOK(false)
	if node.interruptChan != nil {
		signal.Stop(node.interruptChan)
		close(node.interruptChan)
	}

	node.serversMutex.Lock()
	servers := node.servers
	node.servers = make(map[string]*defaultServiceServer)
	node.serversMutex.Unlock()
	for _, s := range servers {
		s.Shutdown()
	}

	node.publishersMutex.Lock()
	publishers := node.publishers
	node.publishers = make(map[string]*defaultPublisher)
	node.publishersMutex.Unlock()
	for _, p := range publishers {
		p.Shutdown()
	}

	node.subscribersMutex.Lock()
	for _, s := range node.subscribers {
		s.Shutdown()
	}
	node.subscribers = make(map[string]*defaultSubscriber)
	node.subscribersMutex.Unlock()

	logger.Debug("Wait all goroutines")
	node.waitGroup.Wait()
	node.xmlrpcListener.Close()
	node.xmlrpcHandler.WaitForShutdown()
	logger.Debug("Shutting node down completed")
}

func (node *defaultNode) Logger() *logrus.Entry {
	return node.logger
}

func (node *defaultNode) NonRosArgs() []string {
	return node.nonRosArgs
}

// AnonymousName appends a unique suffix to name the way anonymous nodes
// are named, so several instances of one tool can run side by side.
func AnonymousName(name string, suffix string) string {
	return name + "_" + strings.ReplaceAll(suffix, "-", "")
}
