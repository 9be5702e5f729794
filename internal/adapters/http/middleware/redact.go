package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/jsamuelsen11/landing-directory/internal/platform/logging"
)

const (
	redacted = "[REDACTED]"

	// maxHeaderValueLen truncates long values such as user agents.
	maxHeaderValueLen = 256
)

// RedactHeaders converts headers into log attributes sorted by name.
// Headers in logging.SensitiveHeaders are replaced with "[REDACTED]";
// multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, key := range keys {
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			attrs = append(attrs, slog.String(key, redacted))
			continue
		}
		attrs = append(attrs, slog.String(key, truncate(strings.Join(headers[key], ","), maxHeaderValueLen)))
	}
	return attrs
}

// RedactQuery re-encodes a raw query string with the values of
// logging.SensitiveParams replaced. Campaign parameters such as utm_source
// pass through. An unparsable query is dropped entirely.
func RedactQuery(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return redacted
	}
	for key, vals := range values {
		if logging.SensitiveParams[strings.ToLower(key)] {
			for i := range vals {
				vals[i] = redacted
			}
		}
	}
	return values.Encode()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
