package newsblog

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/jadhavpratik/marathi-news-blog-live/views"
)

// ViewFuncs holds the templ components the handlers render. Every field
// has a working default from DefaultViews; sites that want their own
// markup replace them via WithViews.
type ViewFuncs struct {
	Home           func(cfg SiteConfig, posts []Post) templ.Component
	PostDetail     func(cfg SiteConfig, post Post) templ.Component
	AdminLogin     func(cfg SiteConfig, showError bool) templ.Component
	AdminDashboard func(cfg SiteConfig, posts []Post, message string) templ.Component
	AdminImages    func(cfg SiteConfig, images []Image) templ.Component
	NotFound       func(cfg SiteConfig) templ.Component
	ServerError    func(cfg SiteConfig) templ.Component
}

// DefaultViews returns the built-in components.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Home:           homeView,
		PostDetail:     postDetailView,
		AdminLogin:     adminLoginView,
		AdminDashboard: adminDashboardView,
		AdminImages:    adminImagesView,
		NotFound:       notFoundView,
		ServerError:    serverErrorView,
	}
}

// page wraps a body-writing function in the shared HTML shell.
func page(cfg SiteConfig, title string, body func(ctx context.Context, w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title><link rel="stylesheet" href="/public/style.css"></head><body><header><h1><a href="/">%s</a></h1></header><main>`,
			html.EscapeString(title), html.EscapeString(cfg.Name)); err != nil {
			return err
		}
		if err := body(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func homeView(cfg SiteConfig, posts []Post) templ.Component {
	return page(cfg, cfg.Name, func(ctx context.Context, w io.Writer) error {
		if len(posts) == 0 {
			_, err := io.WriteString(w, `<p class="empty">No posts yet.</p>`)
			return err
		}
		for _, p := range posts {
			href := "/post/" + views.PathEscape(p.ID)
			if _, err := fmt.Fprintf(w,
				`<article><h2><a href="%s">%s</a></h2><time>%s</time>`,
				href, html.EscapeString(p.Title), views.FormatDate(p.Date)); err != nil {
				return err
			}
			if p.ImageURL != "" {
				if _, err := fmt.Fprintf(w, `<img src="%s" alt="%s">`,
					html.EscapeString(p.ImageURL), html.EscapeString(p.Title)); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, `<p>%s</p><a href="%s">Read more</a></article>`,
				html.EscapeString(views.Excerpt(p.Content, 280)), href); err != nil {
				return err
			}
		}
		return nil
	})
}

func postDetailView(cfg SiteConfig, post Post) templ.Component {
	return page(cfg, post.Title+" — "+cfg.Name, func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<article><h2>%s</h2><time>%s</time>`,
			html.EscapeString(post.Title), views.FormatDate(post.Date)); err != nil {
			return err
		}
		if post.ImageURL != "" {
			if _, err := fmt.Fprintf(w, `<img src="%s" alt="%s">`,
				html.EscapeString(post.ImageURL), html.EscapeString(post.Title)); err != nil {
				return err
			}
		}
		if err := views.Markdown(post.Content).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</article>`)
		return err
	})
}

func adminLoginView(cfg SiteConfig, showError bool) templ.Component {
	return page(cfg, "Login — "+cfg.Name, func(ctx context.Context, w io.Writer) error {
		if showError {
			if _, err := io.WriteString(w, `<p class="error">Invalid username or password.</p>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w,
			`<form method="post" action="/admin/login">`+
				`<label>Username <input type="text" name="username" required></label>`+
				`<label>Password <input type="password" name="password" required></label>`+
				`<button type="submit">Log in</button></form>`)
		return err
	})
}

func adminDashboardView(cfg SiteConfig, posts []Post, message string) templ.Component {
	return page(cfg, "Dashboard — "+cfg.Name, func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w,
			`<nav><a href="/admin/images/">Images</a> <a href="/admin/logout">Log out</a></nav>`); err != nil {
			return err
		}
		if message != "" {
			if _, err := fmt.Fprintf(w, `<p class="message">%s</p>`, html.EscapeString(message)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w,
			`<form method="post" action="/admin/add-post" enctype="multipart/form-data">`+
				`<label>Title <input type="text" name="title"></label>`+
				`<label>Image URL <input type="text" name="imageUrl"></label>`+
				`<label>Image file <input type="file" name="image"></label>`+
				`<label>Content <textarea name="content"></textarea></label>`+
				`<button type="submit">Publish</button></form>`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<table><thead><tr><th>Title</th><th>Date</th><th></th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, p := range posts {
			if _, err := fmt.Fprintf(w,
				`<tr><td><a href="/post/%s">%s</a></td><td>%s</td>`+
					`<td><form method="post" action="/admin/delete-post/%s"><button type="submit">Delete</button></form></td></tr>`,
				views.PathEscape(p.ID), html.EscapeString(p.Title),
				views.FormatDateTime(p.Date), views.PathEscape(p.ID)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}

func adminImagesView(cfg SiteConfig, images []Image) templ.Component {
	return page(cfg, "Images — "+cfg.Name, func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w,
			`<nav><a href="/admin/dashboard">Dashboard</a></nav>`+
				`<form method="post" action="/admin/images/upload/" enctype="multipart/form-data">`+
				`<input type="file" name="image" accept="image/*" required>`+
				`<button type="submit">Upload</button></form><ul class="images">`); err != nil {
			return err
		}
		for _, img := range images {
			if _, err := fmt.Fprintf(w,
				`<li><img src="/uploads/%s" alt="%s" width="160"><code>/uploads/%s</code> %dx%d `+
					`<form method="post" action="/admin/images/delete/%s"><button type="submit">Delete</button></form></li>`,
				views.PathEscape(img.Filename), html.EscapeString(img.OriginalName),
				html.EscapeString(img.Filename), img.Width, img.Height,
				views.PathEscape(img.Filename)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	})
}

func notFoundView(cfg SiteConfig) templ.Component {
	return page(cfg, "Not found — "+cfg.Name, func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<p>That page does not exist. <a href="/">Back to the front page.</a></p>`)
		return err
	})
}

func serverErrorView(cfg SiteConfig) templ.Component {
	return page(cfg, "Something went wrong — "+cfg.Name, func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<p>Something went wrong on our end. Please try again later.</p>`)
		return err
	})
}
