package views

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)
	if got := FormatDate(d); got != "March 9, 2024" {
		t.Errorf("FormatDate = %q, want %q", got, "March 9, 2024")
	}
	if got := FormatDateTime(d); got != "Mar 9, 2024 14:30" {
		t.Errorf("FormatDateTime = %q, want %q", got, "Mar 9, 2024 14:30")
	}
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"  padded  ", 10, "padded"},
		{"exact size", 10, "exact size"},
		{"this is a longer sentence", 9, "this is a…"},
		{"ünïcödé tèxt hërë", 7, "ünïcödé…"},
	}
	for _, tt := range tests {
		if got := Excerpt(tt.in, tt.n); got != tt.want {
			t.Errorf("Excerpt(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
