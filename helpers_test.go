package newsblog

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Trimmed  ", "trimmed"},
		{"Already-slugged", "already-slugged"},
		{"Symbols!@# Galore", "symbols-galore"},
		{"123 Numbers", "123-numbers"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"http://localhost:3000", nil, "http://localhost:3000"},
		{"http://localhost:3000", []string{"post", "abc"}, "http://localhost:3000/post/abc"},
		{"https://news.example.com/", []string{"post", "x"}, "https://news.example.com/post/x"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.want)
		}
	}
}
