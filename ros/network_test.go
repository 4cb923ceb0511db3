package ros

import (
	"os"
	"testing"
)

func TestDetermineHost(t *testing.T) {
	cases := []struct {
		hostname  string
		ip        string
		host      string
		localOnly bool
	}{
		{"localhost", "", "localhost", true},
		{"hostname.in.env.var", "", "hostname.in.env.var", false},
		{"hostname.in.env.var", "1.2.3.4", "hostname.in.env.var", false},
		{"", "1.2.3.4", "1.2.3.4", false},
		{"", "127.0.0.1", "127.0.0.1", true},
		{"", "::1", "::1", true},
	}
	t.Setenv("ROS_HOSTNAME", "")
	t.Setenv("ROS_IP", "")
	for _, c := range cases {
		os.Unsetenv("ROS_HOSTNAME")
		os.Unsetenv("ROS_IP")
		if c.hostname != "" {
			os.Setenv("ROS_HOSTNAME", c.hostname)
		}
		if c.ip != "" {
			os.Setenv("ROS_IP", c.ip)
		}
		host, localOnly := determineHost()
		if host != c.host {
			t.Errorf("ROS_HOSTNAME=%q ROS_IP=%q: got host %s", c.hostname, c.ip, host)
		}
		if localOnly != c.localOnly {
			t.Errorf("localOnly flag is wrong for %s", host)
		}
	}
}

func TestListenAnyPort(t *testing.T) {
	listener, port, err := listenAnyPort("127.0.0.1")
	if err != nil {
		t.Fatal(err)
	}
	defer listener.Close()
	if port == "" || port == "0" {
		t.Error(port)
	}
}
