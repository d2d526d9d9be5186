// Package sysinfo - local network address detection
package sysinfo

import (
	"net"
	"strings"
	"time"
)

// getLocalIP returns the primary local IPv4 address.
//
// It prefers the outbound/default-route address: a UDP "connection" to a
// public IP reveals the local address the kernel would use, which avoids
// picking virtual adapters (VMs, container bridges) when they are not used
// for outbound traffic. No packet is actually sent.
func getLocalIP() string {
	d := net.Dialer{Timeout: 500 * time.Millisecond}
	conn, err := d.Dial("udp", "8.8.8.8:53")
	var nonPrivateCandidate string
	if err == nil {
		if ua, ok := conn.LocalAddr().(*net.UDPAddr); ok {
			ip4 := ua.IP.To4()
			if ip4 != nil && !ip4.IsLoopback() {
				// Prefer RFC1918 private addresses (10/8, 172.16/12, 192.168/16)
				if isPrivateIP(ip4) {
					_ = conn.Close()
					return ip4.String()
				}
				nonPrivateCandidate = ip4.String()
			}
		}
		_ = conn.Close()
	}

	// Fallback: scan interfaces but prefer physical-looking interface names
	// and avoid virtual adapters by name.
	badNames := []string{"vmware", "vbox", "virtual", "veth", "docker", "br-", "loopback", "hamachi", "tunnel", "tailscale"}
	preferNames := []string{"eth", "ethernet", "lan", "en", "wl", "wlan", "wifi", "wireless"}

	ifaces, err := net.Interfaces()
	if err != nil {
		log.WithError(err).Debug("interface probe failed")
		return nonPrivateCandidate
	}

	var candidates []struct {
		name string
		ip   string
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		lname := strings.ToLower(iface.Name)
		skip := false
		for _, bad := range badNames {
			if strings.Contains(lname, bad) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, a := range addrs {
			var ip net.IP
			switch v := a.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}
			if ip == nil {
				continue
			}
			ip4 := ip.To4()
			if ip4 == nil {
				continue
			}
			candidates = append(candidates, struct{ name, ip string }{iface.Name, ip4.String()})
		}
	}

	// Prefer candidates whose interface name looks like Ethernet or Wi-Fi.
	for _, pref := range preferNames {
		for _, c := range candidates {
			if strings.Contains(strings.ToLower(c.name), pref) {
				return c.ip
			}
		}
	}

	if len(candidates) > 0 {
		return candidates[0].ip
	}

	return nonPrivateCandidate
}

// isPrivateIP reports whether ip falls in an RFC1918 private range.
func isPrivateIP(ip net.IP) bool {
	ip4 := ip.To4()
	if ip4 == nil {
		return false
	}
	switch {
	case ip4[0] == 10:
		return true
	case ip4[0] == 172 && ip4[1] >= 16 && ip4[1] <= 31:
		return true
	case ip4[0] == 192 && ip4[1] == 168:
		return true
	}
	return false
}
