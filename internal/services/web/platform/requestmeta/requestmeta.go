// Package requestmeta resolves request scheme, origin and client address.
package requestmeta

import (
	"net"
	"net/http"
	"net/url"
	"strings"
)

// ProxyPolicy controls whether proxy headers are believed.
//
// TrustForwarded must be explicitly enabled for X-Forwarded-Proto and
// X-Forwarded-For to be considered; clients can send either header.
type ProxyPolicy struct {
	TrustForwarded bool
}

// IsHTTPS reports whether a request should be treated as HTTPS.
func IsHTTPS(r *http.Request, policy ProxyPolicy) bool {
	return requestScheme(r, policy) == "https"
}

// IsCrossOrigin reports whether the request carries evidence that it came
// from another site: an Origin header (including the opaque "null" origin)
// or, failing that, a Referer that does not match the request's own origin.
// Requests without either header are not treated as cross-origin.
func IsCrossOrigin(r *http.Request, policy ProxyPolicy) bool {
	if r == nil {
		return false
	}
	scheme, host, port := requestOriginParts(r, policy)
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
		if origin == "null" {
			return true
		}
		return !sameOrigin(origin, scheme, host, port)
	}
	if referer := strings.TrimSpace(r.Header.Get("Referer")); referer != "" {
		return !sameOrigin(referer, scheme, host, port)
	}
	return false
}

// ClientIP returns the address used to key per-client limits. The first
// X-Forwarded-For hop is used only under a trusting policy.
func ClientIP(r *http.Request, policy ProxyPolicy) string {
	if r == nil {
		return ""
	}
	if policy.TrustForwarded {
		if forwarded := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); forwarded != "" {
			first, _, _ := strings.Cut(forwarded, ",")
			if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
				return ip.String()
			}
		}
	}
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return host
}

func sameOrigin(raw string, scheme string, host string, port string) bool {
	if host == "" {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	otherScheme := strings.ToLower(strings.TrimSpace(parsed.Scheme))
	if otherScheme == "" || otherScheme != scheme {
		return false
	}
	if strings.ToLower(parsed.Hostname()) != host {
		return false
	}
	otherPort := parsed.Port()
	if otherPort == "" {
		otherPort = defaultPort(otherScheme)
	}
	return otherPort != "" && otherPort == port
}

func requestOriginParts(r *http.Request, policy ProxyPolicy) (string, string, string) {
	scheme := requestScheme(r, policy)
	host, port := hostParts(r.Host)
	if host == "" && r.URL != nil {
		host, port = hostParts(r.URL.Host)
	}
	if port == "" {
		port = defaultPort(scheme)
	}
	return scheme, host, port
}

func requestScheme(r *http.Request, policy ProxyPolicy) string {
	if r == nil {
		return ""
	}
	if policy.TrustForwarded {
		if forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded == "http" || forwarded == "https" {
			return forwarded
		}
	}
	if r.URL != nil {
		if scheme := strings.ToLower(r.URL.Scheme); scheme == "http" || scheme == "https" {
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func defaultPort(scheme string) string {
	switch scheme {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}

func hostParts(raw string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(raw))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(parsed.Hostname()), parsed.Port()
}
