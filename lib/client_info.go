package lib

import (
	"net"
	"net/http"
	"regexp"
	"strings"
)

var (
	tabletPattern = regexp.MustCompile(`(?i)tablet|ipad|playbook|silk`)
	mobilePattern = regexp.MustCompile(`(?i)mobile|iphone|ipod|android|blackberry|opera mini|windows ce|palm|smartphone|iemobile`)
)

// ClientIP returns the originating client address, preferring the first
// X-Forwarded-For entry set by the ingress.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if idx := strings.IndexByte(fwd, ','); idx >= 0 {
			return strings.TrimSpace(fwd[:idx])
		}
		return strings.TrimSpace(fwd)
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// DeviceType classifies a user agent as tablet, mobile or desktop.
func DeviceType(userAgent string) string {
	switch {
	case tabletPattern.MatchString(userAgent):
		return "tablet"
	case mobilePattern.MatchString(userAgent):
		return "mobile"
	default:
		return "desktop"
	}
}
