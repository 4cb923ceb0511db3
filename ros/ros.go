package ros

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Node is a ROS participant registered with the master. A Node must be
// driven from the goroutine that created it; subscriber callbacks run
// inside SpinOnce and Spin.
type Node interface {
	// callback should be a function which takes 0, 1, or 2 arguments.
	// If it takes 0 arguments, it will simply be called without the
	// message.  1-argument functions are the normal case, and the
	// argument should be of the generated message type.  If the
	// function takes 2 arguments, the first argument should be of the
	// generated message type and the second argument should be of
	// type MessageEvent.
	NewSubscriber(topic string, msgType MessageType, callback interface{}) (Subscriber, error)
	NewPublisher(topic string, msgType MessageType) (Publisher, error)
	NewServiceClient(service string, srvType ServiceType) ServiceClient
	// handler must be a func taking the generated service type, e.g.
	// func(srv *vimbax_camera_msgs.FeatureIntGet) error. It fills in the
	// response; a non-nil error is sent to the caller instead.
	NewServiceServer(service string, srvType ServiceType, handler interface{}) (ServiceServer, error)

	OK() bool
	SpinOnce()
	Spin()
	Shutdown()

	Name() string
	QualifiedName() string
	Namespace() string
	Logger() *logrus.Entry

	NonRosArgs() []string
}

// NewNode registers a node called name. args may carry ROS command line
// arguments (remappings, _param:=value and __special:=value); everything
// else is kept in NonRosArgs.
func NewNode(name string, args []string, opts ...NodeOption) (Node, error) {
	return newDefaultNode(name, args, opts...)
}

type Publisher interface {
	// Publish is safe to call from any goroutine.
	Publish(msg Message) error
	GetNumSubscribers() int
	Shutdown()
}

type Subscriber interface {
	GetNumPublishers() int
	Shutdown()
}

// Optional second argument to a Subscriber callback.
type MessageEvent struct {
	PublisherName    string
	ReceiptTime      time.Time
	ConnectionHeader map[string]string
}

type ServiceClient interface {
	Call(srv Service) error
	// CallContext is Call bounded by ctx. Without a deadline on ctx the
	// client's default timeout applies.
	CallContext(ctx context.Context, srv Service) error
	Shutdown()
}

type ServiceServer interface {
	// URI is the rosrpc:// address registered with the master.
	URI() string
	Shutdown()
}
