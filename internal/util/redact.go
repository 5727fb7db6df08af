package util

import (
	"net/url"
	"regexp"
	"strings"
)

var reToken = regexp.MustCompile(`(?i)((?:api_?key|secret|token|key)=)[^&\s]+`)

var secretParams = []string{"api_key", "apikey", "key", "secret", "token"}

// RedactURL hides credentials carried in a URL (userinfo or well-known query
// parameters) so cursors can be logged.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return reToken.ReplaceAllString(raw, "${1}[redacted]")
	}
	if u.User != nil {
		u.User = url.User("[redacted]")
	}
	q := u.Query()
	changed := false
	for k := range q {
		for _, s := range secretParams {
			if strings.EqualFold(k, s) {
				q.Set(k, "[redacted]")
				changed = true
			}
		}
	}
	if changed {
		u.RawQuery = q.Encode()
	}
	return u.String()
}
