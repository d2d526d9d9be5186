package sysinfo

import (
	"net"
	"testing"
)

func TestIsPrivateIP(t *testing.T) {
	private := []string{"10.0.0.1", "172.16.0.1", "172.31.255.254", "192.168.1.10"}
	for _, s := range private {
		if !isPrivateIP(net.ParseIP(s)) {
			t.Fatalf("isPrivateIP(%s) = false; want true", s)
		}
	}

	public := []string{"8.8.8.8", "172.32.0.1", "192.167.0.1", "1.1.1.1"}
	for _, s := range public {
		if isPrivateIP(net.ParseIP(s)) {
			t.Fatalf("isPrivateIP(%s) = true; want false", s)
		}
	}

	if isPrivateIP(net.ParseIP("fd00::1")) {
		t.Fatal("isPrivateIP should reject non-IPv4 addresses")
	}
}
