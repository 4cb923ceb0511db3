package ros

import (
	"testing"
	"time"

	"github.com/edwinhayes/rosgo-vimbax/internal/rostest"
	"github.com/edwinhayes/rosgo-vimbax/xmlrpc"
)

type testOtherType struct {
	testIntType
}

func (testOtherType) Name() string { return "test_msgs/Other" }

func waitUntil(t *testing.T, node *defaultNode, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		node.SpinOnce()
	}
}

func TestPublisherDeliversToSubscriber(t *testing.T) {
	setupNodeEnv(t)
	master := rostest.NewMaster(t)
	cam := startTestNode(t, master.URI(), "cam")
	viewer := startTestNode(t, master.URI(), "viewer")

	var received []int64
	var publisher string
	sub, err := viewer.NewSubscriber("/cam/events/event_Test", testIntType{}, func(m *testInt, event MessageEvent) {
		received = append(received, m.Value)
		publisher = event.PublisherName
	})
	if err != nil {
		t.Fatal(err)
	}

	pub, err := cam.NewPublisher("~events/event_Test", testIntType{})
	if err != nil {
		t.Fatal(err)
	}
	if again, err := cam.NewPublisher("/cam/events/event_Test", testIntType{}); err != nil || again != pub {
		t.Error("expected the existing publisher", err)
	}
	if _, err := cam.NewPublisher("/cam/events/event_Test", testOtherType{}); err == nil {
		t.Error("expected an error for a conflicting type")
	}

	waitUntil(t, viewer, func() bool { return pub.GetNumSubscribers() == 1 })
	for _, v := range []int64{3, 5} {
		if err := pub.Publish(&testInt{v}); err != nil {
			t.Fatal(err)
		}
	}
	waitUntil(t, viewer, func() bool { return len(received) == 2 })
	if received[0] != 3 || received[1] != 5 {
		t.Error(received)
	}
	if publisher != "/cam" {
		t.Error(publisher)
	}
	if sub.GetNumPublishers() != 1 {
		t.Error(sub.GetNumPublishers())
	}

	pub.Shutdown()
	if pubs := master.Publishers("/cam/events/event_Test"); len(pubs) != 0 {
		t.Error("publisher still registered:", pubs)
	}
	if err := pub.Publish(&testInt{7}); err == nil {
		t.Error("expected an error after shutdown")
	}
}

func TestPublisherSlaveAPI(t *testing.T) {
	setupNodeEnv(t)
	master := rostest.NewMaster(t)
	cam := startTestNode(t, master.URI(), "cam")

	if _, err := cam.NewPublisher("/chatter", testIntType{}); err != nil {
		t.Fatal(err)
	}

	result, err := xmlrpc.Call(cam.xmlrpcURI, "getPublications", "/rosnode")
	if err != nil {
		t.Fatal(err)
	}
	pubs := result.([]interface{})[2].([]interface{})
	if len(pubs) != 1 {
		t.Fatal(pubs)
	}
	if entry := pubs[0].([]interface{}); entry[0] != "/chatter" || entry[1] != "test_msgs/Int" {
		t.Error(entry)
	}

	protocols := []interface{}{[]interface{}{"TCPROS"}}
	result, err = xmlrpc.Call(cam.xmlrpcURI, "requestTopic", "/viewer", "/chatter", protocols)
	if err != nil {
		t.Fatal(err)
	}
	triplet := result.([]interface{})
	params := triplet[2].([]interface{})
	if triplet[0] != int32(APIStatusSuccess) || params[0] != "TCPROS" || params[1] != "127.0.0.1" {
		t.Error(triplet)
	}

	result, err = xmlrpc.Call(cam.xmlrpcURI, "requestTopic", "/viewer", "/missing", protocols)
	if err != nil {
		t.Fatal(err)
	}
	if result.([]interface{})[0] != int32(APIStatusFailure) {
		t.Error(result)
	}

	udp := []interface{}{[]interface{}{"UDPROS"}}
	result, err = xmlrpc.Call(cam.xmlrpcURI, "requestTopic", "/viewer", "/chatter", udp)
	if err != nil {
		t.Fatal(err)
	}
	if result.([]interface{})[0] != int32(APIStatusFailure) {
		t.Error(result)
	}
}
