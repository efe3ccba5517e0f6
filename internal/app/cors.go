package app

import (
	"net/url"
	"strings"
)

// allowOriginFunc builds the CORS origin check for a list of host
// patterns. A pattern matches the host[:port] part of the Origin
// header and may be an exact host, "*.domain" for any subdomain, or
// "host:*" for any port on a host.
func allowOriginFunc(patterns []string) func(origin string) bool {
	return func(origin string) bool {
		host := origin
		if u, err := url.Parse(origin); err == nil && u.Host != "" {
			host = u.Host
		}
		for _, pattern := range patterns {
			if hostMatches(pattern, host) {
				return true
			}
		}
		return false
	}
}

func hostMatches(pattern, host string) bool {
	switch {
	case pattern == host:
		return true
	case strings.HasPrefix(pattern, "*."):
		return strings.HasSuffix(host, pattern[1:])
	case strings.HasSuffix(pattern, ":*"):
		return strings.HasPrefix(host, strings.TrimSuffix(pattern, "*"))
	}
	return false
}
