package camsim

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/edwinhayes/rosgo-vimbax/msgs/std_msgs"
	msgs "github.com/edwinhayes/rosgo-vimbax/msgs/vimbax_camera_msgs"
	"github.com/edwinhayes/rosgo-vimbax/ros"
	"github.com/edwinhayes/rosgo-vimbax/vimbax"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Node is the part of a ROS node a Server needs.
type Node interface {
	NewServiceServer(service string, srvType ros.ServiceType, handler interface{}) (ros.ServiceServer, error)
	NewPublisher(topic string, msgType ros.MessageType) (ros.Publisher, error)
}

// Server answers the camera services of one camera namespace.
type Server struct {
	camera    *Camera
	node      Node
	namespace string
	logger    *logrus.Entry
	servers   []ros.ServiceServer

	mu            sync.Mutex
	subscriptions map[string]int
	publishers    map[string]ros.Publisher
	seq           uint32
}

func module(m msgs.FeatureModule) vimbax.Module {
	return vimbax.Module(m.Id)
}

// Serve registers every feature, list, info query and event service of
// camera below namespace.
func Serve(node Node, namespace string, camera *Camera, logger *logrus.Entry) (*Server, error) {
	s := &Server{
		camera:        camera,
		node:          node,
		namespace:     namespace,
		logger:        logger.WithField("camera", namespace),
		subscriptions: make(map[string]int),
		publishers:    make(map[string]ros.Publisher),
	}
	type service struct {
		path    string
		srvType ros.ServiceType
		handler interface{}
	}
	var services []service
	for _, name := range vimbax.TypeNames() {
		t, err := vimbax.LookupType(name)
		if err != nil {
			return nil, err
		}
		services = append(services,
			service{t.GetPath(namespace), t.GetService, s.getHandler(t)},
			service{t.SetPath(namespace), t.SetService, s.setHandler(t)},
		)
		if t.SupportsInfo() {
			services = append(services, service{t.InfoPath(namespace), t.InfoService, s.infoHandler(t)})
		}
	}
	services = append(services,
		service{vimbax.FeaturesListPath(namespace), msgs.SrvFeaturesListGet, s.listFeatures},
		service{vimbax.FeatureInfoQueryPath(namespace), msgs.SrvFeatureInfoQuery, s.queryFeatureInfo},
		service{vimbax.EventSubscribePath(namespace), msgs.SrvEventSubscribe, s.subscribeEvent},
		service{vimbax.EventUnsubscribePath(namespace), msgs.SrvEventUnsubscribe, s.unsubscribeEvent},
	)

	for _, svc := range services {
		server, err := node.NewServiceServer(svc.path, svc.srvType, svc.handler)
		if err != nil {
			s.Shutdown()
			return nil, errors.Wrapf(err, "serve %s", svc.path)
		}
		s.logger.Debugf("Serving %s", svc.path)
		s.servers = append(s.servers, server)
	}
	return s, nil
}

func (s *Server) getHandler(t *vimbax.FeatureType) func(ros.Service) error {
	return func(srv ros.Service) error {
		switch srv := srv.(type) {
		case *msgs.FeatureIntGet:
			v, st := s.camera.Get(t, srv.Request.FeatureName, module(srv.Request.FeatureModule))
			srv.Response.Value, _ = v.(int64)
			srv.Response.Error = st.Msg()
		case *msgs.FeatureFloatGet:
			v, st := s.camera.Get(t, srv.Request.FeatureName, module(srv.Request.FeatureModule))
			srv.Response.Value, _ = v.(float64)
			srv.Response.Error = st.Msg()
		case *msgs.FeatureStringGet:
			v, st := s.camera.Get(t, srv.Request.FeatureName, module(srv.Request.FeatureModule))
			srv.Response.Value, _ = v.(string)
			srv.Response.Error = st.Msg()
		case *msgs.FeatureRawGet:
			v, st := s.camera.Get(t, srv.Request.FeatureName, module(srv.Request.FeatureModule))
			buffer, _ := v.([]byte)
			srv.Response.Buffer = append([]uint8{}, buffer...)
			srv.Response.BufferSize = int64(len(buffer))
			srv.Response.Error = st.Msg()
		case *msgs.FeatureBoolGet:
			v, st := s.camera.Get(t, srv.Request.FeatureName, module(srv.Request.FeatureModule))
			srv.Response.Value, _ = v.(bool)
			srv.Response.Error = st.Msg()
		case *msgs.FeatureEnumGet:
			v, st := s.camera.Get(t, srv.Request.FeatureName, module(srv.Request.FeatureModule))
			srv.Response.Value, _ = v.(string)
			srv.Response.Error = st.Msg()
		default:
			return errors.Errorf("unexpected service %T", srv)
		}
		return nil
	}
}

func (s *Server) setHandler(t *vimbax.FeatureType) func(ros.Service) error {
	return func(srv ros.Service) error {
		var name string
		var value interface{}
		var m msgs.FeatureModule
		var code *int32
		switch srv := srv.(type) {
		case *msgs.FeatureIntSet:
			name, value, m, code = srv.Request.FeatureName, srv.Request.Value, srv.Request.FeatureModule, &srv.Response.Error
		case *msgs.FeatureFloatSet:
			name, value, m, code = srv.Request.FeatureName, srv.Request.Value, srv.Request.FeatureModule, &srv.Response.Error
		case *msgs.FeatureStringSet:
			name, value, m, code = srv.Request.FeatureName, srv.Request.Value, srv.Request.FeatureModule, &srv.Response.Error
		case *msgs.FeatureRawSet:
			name, value, m, code = srv.Request.FeatureName, []byte(srv.Request.Buffer), srv.Request.FeatureModule, &srv.Response.Error
		case *msgs.FeatureBoolSet:
			name, value, m, code = srv.Request.FeatureName, srv.Request.Value, srv.Request.FeatureModule, &srv.Response.Error
		case *msgs.FeatureEnumSet:
			name, value, m, code = srv.Request.FeatureName, srv.Request.Value, srv.Request.FeatureModule, &srv.Response.Error
		default:
			return errors.Errorf("unexpected service %T", srv)
		}
		result := s.camera.Set(t, name, module(m), value)
		s.logger.WithField("feature", name).Debugf("Set %s to %s: %s", t.Name, vimbax.FormatValue(value), result)
		*code = int32(result)
		return nil
	}
}

func (s *Server) infoHandler(t *vimbax.FeatureType) func(ros.Service) error {
	return func(srv ros.Service) error {
		switch srv := srv.(type) {
		case *msgs.FeatureIntInfoGet:
			info, st := s.camera.Info(t, srv.Request.FeatureName, module(srv.Request.FeatureModule))
			if i, ok := info.(vimbax.IntInfo); ok {
				srv.Response.Min, srv.Response.Max, srv.Response.Inc = i.Min, i.Max, i.Inc
			}
			srv.Response.Error = st.Msg()
		case *msgs.FeatureFloatInfoGet:
			info, st := s.camera.Info(t, srv.Request.FeatureName, module(srv.Request.FeatureModule))
			if i, ok := info.(vimbax.FloatInfo); ok {
				srv.Response.Min, srv.Response.Max, srv.Response.Inc = i.Min, i.Max, i.Inc
				srv.Response.IncAvailable = i.IncAvailable
			}
			srv.Response.Error = st.Msg()
		case *msgs.FeatureStringInfoGet:
			info, st := s.camera.Info(t, srv.Request.FeatureName, module(srv.Request.FeatureModule))
			if i, ok := info.(vimbax.LengthInfo); ok {
				srv.Response.MaxLength = i.MaxLength
			}
			srv.Response.Error = st.Msg()
		case *msgs.FeatureRawInfoGet:
			info, st := s.camera.Info(t, srv.Request.FeatureName, module(srv.Request.FeatureModule))
			if i, ok := info.(vimbax.LengthInfo); ok {
				srv.Response.MaxLength = i.MaxLength
			}
			srv.Response.Error = st.Msg()
		case *msgs.FeatureEnumInfoGet:
			info, st := s.camera.Info(t, srv.Request.FeatureName, module(srv.Request.FeatureModule))
			srv.Response.PossibleValues = []string{}
			srv.Response.AvailableValues = []string{}
			if i, ok := info.(vimbax.EnumInfo); ok {
				srv.Response.PossibleValues, srv.Response.AvailableValues = i.PossibleValues, i.AvailableValues
			}
			srv.Response.Error = st.Msg()
		default:
			return errors.Errorf("unexpected service %T", srv)
		}
		return nil
	}
}

func (s *Server) listFeatures(srv *msgs.FeaturesListGet) error {
	srv.Response.FeatureList = s.camera.List(module(srv.Request.FeatureModule))
	srv.Response.Error = msgs.Error{}
	return nil
}

func (s *Server) queryFeatureInfo(srv *msgs.FeatureInfoQuery) error {
	infos, st := s.camera.Query(srv.Request.FeatureNames, module(srv.Request.FeatureModule))
	srv.Response.FeatureInfo = infos
	srv.Response.Error = st.Msg()
	return nil
}

func (s *Server) subscribeEvent(srv *msgs.EventSubscribe) error {
	name := srv.Request.Name
	if !s.camera.HasEvent(name) {
		srv.Response.Error = status(vimbax.ErrorNotFound, "event "+name+" not found").Msg()
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.publishers[name]; !ok {
		pub, err := s.node.NewPublisher(vimbax.EventTopic(s.namespace, name), msgs.MsgEventData)
		if err != nil {
			s.logger.WithError(err).Errorf("Could not publish event %s", name)
			srv.Response.Error = status(vimbax.ErrorResources, err.Error()).Msg()
			return nil
		}
		s.publishers[name] = pub
	}
	s.subscriptions[name]++
	s.logger.Infof("Event %s subscribed (%d)", name, s.subscriptions[name])
	srv.Response.Error = msgs.Error{}
	return nil
}

func (s *Server) unsubscribeEvent(srv *msgs.EventUnsubscribe) error {
	name := srv.Request.Name
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subscriptions[name] == 0 {
		return nil
	}
	s.subscriptions[name]--
	s.logger.Infof("Event %s unsubscribed (%d)", name, s.subscriptions[name])
	if s.subscriptions[name] == 0 {
		delete(s.subscriptions, name)
		if pub, ok := s.publishers[name]; ok {
			pub.Shutdown()
			delete(s.publishers, name)
		}
	}
	return nil
}

// Subscribed returns the events that currently have subscribers.
func (s *Server) Subscribed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.subscriptions))
	for name := range s.subscriptions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Emit publishes one occurrence of the named event. It reports false when
// nobody subscribed to it.
func (s *Server) Emit(name string, entries []msgs.EventDataEntry) (bool, error) {
	s.mu.Lock()
	pub, ok := s.publishers[name]
	s.seq++
	seq := s.seq
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	data := &msgs.EventData{
		Header:  std_msgs.Header{Seq: seq, Stamp: ros.Now(), FrameId: s.namespace},
		Entries: append([]msgs.EventDataEntry{}, entries...),
	}
	if err := pub.Publish(data); err != nil {
		return true, errors.Wrapf(err, "emit event %s", name)
	}
	return true, nil
}

// Run emits every subscribed event once per interval until ctx ends.
func (s *Server) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	var id uint64
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			for _, name := range s.Subscribed() {
				id++
				entries := []msgs.EventDataEntry{
					{Name: "EventID", Value: fmt.Sprint(id)},
					{Name: name + "Timestamp", Value: fmt.Sprint(now.UnixNano())},
				}
				if _, err := s.Emit(name, entries); err != nil {
					s.logger.WithError(err).Warn("Emitting event failed")
				}
			}
		}
	}
}

// Shutdown stops serving and publishing.
func (s *Server) Shutdown() {
	for _, server := range s.servers {
		server.Shutdown()
	}
	s.servers = nil
	s.mu.Lock()
	for name, pub := range s.publishers {
		pub.Shutdown()
		delete(s.publishers, name)
	}
	s.subscriptions = make(map[string]int)
	s.mu.Unlock()
}
