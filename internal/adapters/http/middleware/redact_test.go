package middleware_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/jsamuelsen11/landing-directory/internal/adapters/http/middleware"
)

const redactedValue = "[REDACTED]"

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers http.Header
		want    map[string]string
	}{
		{
			name:    "authorization",
			headers: http.Header{"Authorization": {"Bearer secret-token"}},
			want:    map[string]string{"Authorization": redactedValue},
		},
		{
			name:    "api key",
			headers: http.Header{"X-Api-Key": {"my-api-key-value"}},
			want:    map[string]string{"X-Api-Key": redactedValue},
		},
		{
			name:    "cookie",
			headers: http.Header{"Cookie": {"session=abc"}},
			want:    map[string]string{"Cookie": redactedValue},
		},
		{
			name:    "multi value joined",
			headers: http.Header{"Accept": {"text/html", "application/xhtml+xml"}},
			want:    map[string]string{"Accept": "text/html,application/xhtml+xml"},
		},
		{
			name: "mixed",
			headers: http.Header{
				"Authorization": {"Bearer secret"},
				"Referer":       {"https://news.example.com/launch"},
			},
			want: map[string]string{
				"Authorization": redactedValue,
				"Referer":       "https://news.example.com/launch",
			},
		},
		{
			name:    "empty",
			headers: http.Header{},
			want:    map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			attrs := middleware.RedactHeaders(tt.headers)
			if len(attrs) != len(tt.want) {
				t.Fatalf("len(attrs) = %d, want %d", len(attrs), len(tt.want))
			}
			for _, a := range attrs {
				if want := tt.want[a.Key]; a.Value.String() != want {
					t.Errorf("%s = %q, want %q", a.Key, a.Value.String(), want)
				}
			}
		})
	}
}

func TestRedactHeaders_SortedByName(t *testing.T) {
	t.Parallel()

	attrs := middleware.RedactHeaders(http.Header{
		"User-Agent": {"curl/8.0"},
		"Accept":     {"*/*"},
		"Referer":    {"https://example.com"},
	})

	var keys []string
	for _, a := range attrs {
		keys = append(keys, a.Key)
	}
	if got := strings.Join(keys, ","); got != "Accept,Referer,User-Agent" {
		t.Errorf("keys = %s, want Accept,Referer,User-Agent", got)
	}
}

func TestRedactHeaders_TruncatesLongValues(t *testing.T) {
	t.Parallel()

	attrs := middleware.RedactHeaders(http.Header{"User-Agent": {strings.Repeat("x", 1000)}})

	if got := len(attrs[0].Value.String()); got != 256+len("...") {
		t.Errorf("len(User-Agent) = %d, want %d", got, 256+len("..."))
	}
}

func TestRedactQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want url.Values
	}{
		{
			name: "campaign params kept",
			raw:  "utm_source=newsletter&utm_campaign=launch",
			want: url.Values{"utm_source": {"newsletter"}, "utm_campaign": {"launch"}},
		},
		{
			name: "email redacted",
			raw:  "email=ada%40example.com&utm_source=ad",
			want: url.Values{"email": {redactedValue}, "utm_source": {"ad"}},
		},
		{
			name: "token case insensitive",
			raw:  "Token=abc&Token=def",
			want: url.Values{"Token": {redactedValue, redactedValue}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := url.ParseQuery(middleware.RedactQuery(tt.raw))
			if err != nil {
				t.Fatalf("ParseQuery: %v", err)
			}
			if got.Encode() != tt.want.Encode() {
				t.Errorf("RedactQuery(%q) = %q, want %q", tt.raw, got.Encode(), tt.want.Encode())
			}
		})
	}
}

func TestRedactQuery_EmptyAndMalformed(t *testing.T) {
	t.Parallel()

	if got := middleware.RedactQuery(""); got != "" {
		t.Errorf("RedactQuery(\"\") = %q, want empty", got)
	}
	if got := middleware.RedactQuery("email=%zz"); got != redactedValue {
		t.Errorf("RedactQuery(malformed) = %q, want %q", got, redactedValue)
	}
}
