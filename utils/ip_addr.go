package utils

import (
	"net"
	"net/http"
	"regexp"
	"strings"
)

// netAddrPattern strips the trailing port number off a net.Addr string
var netAddrPattern = regexp.MustCompile(`^(.*):\d+$`)

// GetIPAddress extracts the client IP address from request headers and the connection
// address. The CF-Connecting-IP header wins when present, since it carries the real
// client address when the service sits behind Cloudflare.
func GetIPAddress(header http.Header, addr net.Addr) string {

	if header != nil {
		if ip := header.Get("CF-Connecting-IP"); ip != "" {
			return ip
		}
	}
	if addr == nil {
		return ""
	}

	// Pull the IP out of the host:port address
	submatch := netAddrPattern.FindStringSubmatch(addr.String())
	if len(submatch) < 2 {
		return ""
	}

	// The trims only matter for IPv6 addresses
	ip := strings.Trim(submatch[1], "[]")
	return strings.TrimPrefix(ip, "::ffff:")

}
