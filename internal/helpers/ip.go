package helpers

import (
	"net"
	"net/http"
	"slices"
	"strings"
)

// GetClientIP returns the address of the caller. X-Forwarded-For is only
// honored when the direct peer is a trusted proxy.
func GetClientIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if !slices.Contains(trustedProxies, remoteIP) {
		return remoteIP
	}

	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" {
		return remoteIP
	}

	client := strings.TrimSpace(strings.Split(forwarded, ",")[0])
	if net.ParseIP(client) == nil {
		return remoteIP
	}
	return client
}
