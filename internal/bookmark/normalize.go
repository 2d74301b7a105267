package bookmark

import (
	"net/url"
	"strings"
)

// NormalizeURL defaults the scheme to https when the user typed a bare
// domain. Already-prefixed URLs pass through untouched, so the
// operation is idempotent.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http") {
		return raw
	}
	return "https://" + raw
}

// DeriveDomain extracts the host from a normalized URL for the
// favicon/domain preview. A parse failure yields "" and never blocks
// creation.
func DeriveDomain(normalized string) string {
	u, err := url.Parse(normalized)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
