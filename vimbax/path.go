package vimbax

import "strings"

// BuildTopicPath joins a node namespace and a topic suffix with exactly one
// separator between them. An empty namespace yields the suffix alone.
func BuildTopicPath(namespace string, suffix string) string {
	if !strings.HasPrefix(suffix, "/") {
		suffix = "/" + suffix
	}
	namespace = strings.TrimSuffix(namespace, "/")
	if namespace == "" {
		return suffix
	}
	return namespace + suffix
}

// GetPath is the get service of the type below namespace.
func (t *FeatureType) GetPath(namespace string) string {
	return BuildTopicPath(namespace, t.BasePath+"_get")
}

func (t *FeatureType) SetPath(nodeName string) string {
	return BuildTopicPath(nodeName, t.BasePath+"_set")
}

func (t *FeatureType) InfoPath(namespace string) string {
	return BuildTopicPath(namespace, t.BasePath+"_info_get")
}

func FeaturesListPath(namespace string) string {
	return BuildTopicPath(namespace, "/features/list_get")
}

func FeatureInfoQueryPath(namespace string) string {
	return BuildTopicPath(namespace, "/feature_info_query")
}

// EventsPath is the namespace holding the event topics and the event
// subscription services of a camera node.
func EventsPath(namespace string) string {
	return BuildTopicPath(namespace, "/events")
}

// EventTopic is the topic an event called name is published on.
func EventTopic(namespace string, name string) string {
	return EventsPath(namespace) + "/event_" + name
}

func EventSubscribePath(namespace string) string {
	return EventsPath(namespace) + "/_event_subscribe"
}

func EventUnsubscribePath(namespace string) string {
	return EventsPath(namespace) + "/_event_unsubscribe"
}
