package web

import (
	"net/url"
	"strings"
)

// SafeRedirect reports whether target may be used as a post-login redirect.
// Relative paths beginning with a single "/" are allowed; absolute URLs only
// when the scheme is http or https and the host equals the current request
// host. Everything else is rejected to prevent open-redirect abuse.
func SafeRedirect(target, host string) bool {
	if target == "" {
		return false
	}
	if strings.HasPrefix(target, "/") {
		// "//host" and "/\host" are scheme-relative in browsers.
		return !strings.HasPrefix(target, "//") && !strings.HasPrefix(target, "/\\")
	}

	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host == host
}
