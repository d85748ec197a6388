package views

import (
	"bytes"
	"context"
	"html"
	"io"
	"regexp"
	"strings"

	"github.com/a-h/templ"
)

var (
	reBold   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reItalic = regexp.MustCompile(`\*([^*]+)\*`)
	reLink   = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
)

// Markdown renders a small markdown subset (headings, paragraphs, lists,
// bold, italic, links) as HTML. Everything else passes through as
// escaped text.
func Markdown(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		renderMarkdown(&buf, content)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func renderMarkdown(buf *bytes.Buffer, md string) {
	inList := false
	inPara := false

	flushPara := func() {
		if inPara {
			buf.WriteString("</p>")
			inPara = false
		}
	}
	flushList := func() {
		if inList {
			buf.WriteString("</ul>")
			inList = false
		}
	}

	for _, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			flushPara()
			flushList()
		case strings.HasPrefix(trimmed, "## "):
			flushPara()
			flushList()
			buf.WriteString("<h3>" + inline(strings.TrimPrefix(trimmed, "## ")) + "</h3>")
		case strings.HasPrefix(trimmed, "# "):
			flushPara()
			flushList()
			buf.WriteString("<h2>" + inline(strings.TrimPrefix(trimmed, "# ")) + "</h2>")
		case strings.HasPrefix(trimmed, "- "):
			flushPara()
			if !inList {
				buf.WriteString("<ul>")
				inList = true
			}
			buf.WriteString("<li>" + inline(strings.TrimPrefix(trimmed, "- ")) + "</li>")
		default:
			flushList()
			if inPara {
				buf.WriteString("<br>")
			} else {
				buf.WriteString("<p>")
				inPara = true
			}
			buf.WriteString(inline(trimmed))
		}
	}
	flushPara()
	flushList()
}

// inline escapes raw text, then applies bold, italic, and link spans.
func inline(s string) string {
	s = html.EscapeString(s)
	s = reBold.ReplaceAllString(s, "<strong>$1</strong>")
	s = reItalic.ReplaceAllString(s, "<em>$1</em>")
	s = reLink.ReplaceAllStringFunc(s, func(m string) string {
		parts := reLink.FindStringSubmatch(m)
		href := parts[2]
		if !safeHref(href) {
			return parts[1]
		}
		return `<a href="` + href + `">` + parts[1] + `</a>`
	})
	return s
}

func safeHref(href string) bool {
	lower := strings.ToLower(href)
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "/")
}
