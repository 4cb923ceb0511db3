package vimbax

import (
	"context"

	msgs "github.com/edwinhayes/rosgo-vimbax/msgs/vimbax_camera_msgs"
	"github.com/edwinhayes/rosgo-vimbax/ros"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ServiceNode is the part of a ROS node the feature calls need.
type ServiceNode interface {
	NewServiceClient(service string, srvType ros.ServiceType) ros.ServiceClient
}

// Client issues feature service calls against one camera node.
type Client struct {
	node      ServiceNode
	namespace string
	logger    *logrus.Entry
}

// NewClient returns a Client for the camera node living under namespace.
func NewClient(node ServiceNode, namespace string, logger *logrus.Entry) *Client {
	return &Client{
		node:      node,
		namespace: namespace,
		logger:    logger.WithField("camera", namespace),
	}
}

// singleServiceCall performs one blocking call of srv on service.
func (c *Client) singleServiceCall(ctx context.Context, service string, srvType ros.ServiceType, srv ros.Service) error {
	c.logger.Debugf("Calling %s (%s)", service, srvType.Name())
	client := c.node.NewServiceClient(service, srvType)
	defer client.Shutdown()
	if err := client.CallContext(ctx, srv); err != nil {
		return errors.Wrapf(err, "call %s", service)
	}
	return nil
}

// Get reads the current value of a feature.
func (c *Client) Get(ctx context.Context, t *FeatureType, feature string, module Module) (interface{}, Status, error) {
	srv, result := t.newGet(feature, module.msg())
	if err := c.singleServiceCall(ctx, t.GetPath(c.namespace), t.GetService, srv); err != nil {
		return nil, Status{}, err
	}
	value, status := result()
	return value, status, nil
}

// Set writes value, already converted with ParseValue, to a feature. Set
// services answer with a bare error code rather than a Status.
func (c *Client) Set(ctx context.Context, t *FeatureType, feature string, value interface{}, module Module) (ErrorCode, error) {
	srv, result := t.newSet(feature, value, module.msg())
	if err := c.singleServiceCall(ctx, t.SetPath(c.namespace), t.SetService, srv); err != nil {
		return 0, err
	}
	return result(), nil
}

// InfoGet reads the type specific description of a feature. It fails with
// ErrUnsupportedOperation, without calling out, for types lacking an info
// service.
func (c *Client) InfoGet(ctx context.Context, t *FeatureType, feature string, module Module) (Info, Status, error) {
	if !t.SupportsInfo() {
		return nil, Status{}, errors.Wrapf(ErrUnsupportedOperation, "info query on %s", t.Name)
	}
	srv, result := t.newInfo(feature, module.msg())
	if err := c.singleServiceCall(ctx, t.InfoPath(c.namespace), t.InfoService, srv); err != nil {
		return nil, Status{}, err
	}
	info, status := result()
	return info, status, nil
}

// ListFeatures returns the names of the features in module.
func (c *Client) ListFeatures(ctx context.Context, module Module) ([]string, Status, error) {
	srv := new(msgs.FeaturesListGet)
	srv.Request.FeatureModule = module.msg()
	if err := c.singleServiceCall(ctx, FeaturesListPath(c.namespace), msgs.SrvFeaturesListGet, srv); err != nil {
		return nil, Status{}, err
	}
	return srv.Response.FeatureList, statusOf(srv.Response.Error), nil
}

// QueryFeatureInfo returns the generic description of the named features,
// or of every feature when names is empty.
func (c *Client) QueryFeatureInfo(ctx context.Context, names []string, module Module) ([]msgs.FeatureInfo, Status, error) {
	srv := new(msgs.FeatureInfoQuery)
	srv.Request.FeatureNames = append([]string{}, names...)
	srv.Request.FeatureModule = module.msg()
	if err := c.singleServiceCall(ctx, FeatureInfoQueryPath(c.namespace), msgs.SrvFeatureInfoQuery, srv); err != nil {
		return nil, Status{}, err
	}
	return srv.Response.FeatureInfo, statusOf(srv.Response.Error), nil
}
