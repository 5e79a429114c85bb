package httputil

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// hostPattern matches a bare hostname with an optional port (no scheme, no path).
var hostPattern = regexp.MustCompile(`^[a-zA-Z0-9.-]+(:[0-9]{1,5})?$`)

// ValidateURL checks that a URL is well-formed and uses HTTPS.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("malformed URL: %w", err)
	}
	if u.Scheme != "https" {
		return fmt.Errorf("only HTTPS URLs are allowed, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("URL has no host")
	}
	return nil
}

// ValidateHost checks that s is a bare host such as "flcksbr.xyz" or "127.0.0.1:8443".
func ValidateHost(s string) error {
	if s == "" {
		return fmt.Errorf("host cannot be empty")
	}
	if strings.Contains(s, "..") || !hostPattern.MatchString(s) {
		return fmt.Errorf("invalid host %q (expected e.g. example.com)", s)
	}
	return nil
}

// BuildURL constructs a URL from base and path components, encoding each path segment.
func BuildURL(base string, pathSegments ...string) string {
	u := strings.TrimRight(base, "/")
	for _, seg := range pathSegments {
		u += "/" + url.PathEscape(seg)
	}
	return u
}
