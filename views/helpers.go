// Package views holds the view helpers and default templ components for
// the newsblog site. Helpers here are pure functions safe to call from
// any template.
package views

import (
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

// FormatDate renders a post timestamp the way the public pages show it.
func FormatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// FormatDateTime renders a timestamp with time of day for the dashboard.
func FormatDateTime(t time.Time) string {
	return t.Format("Jan 2, 2006 15:04")
}

// Excerpt truncates s to at most n runes, appending an ellipsis when the
// text was cut.
func Excerpt(s string, n int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	cut := strings.TrimRight(string(runes[:n]), " \t\n")
	return cut + "…"
}

// PathEscape escapes a string for use in a URL path segment.
func PathEscape(s string) string {
	return url.PathEscape(s)
}
