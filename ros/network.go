package ros

import (
	"net"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// determineHost returns the name other nodes should use to reach this one,
// and whether only the loopback interface is reachable under that name.
func determineHost() (string, bool) {
	if rosHostname, ok := os.LookupEnv("ROS_HOSTNAME"); ok {
		return rosHostname, isLoopbackHost(rosHostname)
	}
	if rosIP, ok := os.LookupEnv("ROS_IP"); ok {
		return rosIP, isLoopbackHost(rosIP)
	}
	if osHostname, err := os.Hostname(); err == nil && osHostname != "localhost" {
		return osHostname, false
	}
	if addrs, err := net.InterfaceAddrs(); err == nil {
		for _, addr := range addrs {
			if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
				return ipnet.IP.String(), false
			}
		}
	}
	return "127.0.0.1", true
}

func isLoopbackHost(host string) bool {
	return host == "localhost" || host == "::1" || strings.HasPrefix(host, "127.")
}

// listenAnyPort opens a TCP listener on an OS assigned port of ip.
func listenAnyPort(ip string) (net.Listener, string, error) {
	listener, err := net.Listen("tcp", net.JoinHostPort(ip, "0"))
	if err != nil {
		return nil, "", errors.Wrapf(err, "listen on %s", ip)
	}
	_, port, err := net.SplitHostPort(listener.Addr().String())
	if err != nil {
		listener.Close()
		return nil, "", errors.Wrap(err, "listener address")
	}
	return listener, port, nil
}
