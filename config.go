package newsblog

// SiteConfig holds all configuration for a newsblog site. Values are
// normally populated from environment variables in cmd/newsblog.
type SiteConfig struct {
	Name        string // Site name (default "News")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite path (default "data/news.db")

	AdminUser     string // Admin login username (default "admin")
	AdminPassword string // Required: admin login password
	SessionSecret string // Required: session signing secret
	CookieSecure  bool   // Set true for HTTPS

	StaticDir string // Directory served under /public (default "public")
	UploadDir string // Directory served under /uploads (default "public/uploads")
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "News"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/news.db"
	}
	if c.AdminUser == "" {
		c.AdminUser = "admin"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.UploadDir == "" {
		c.UploadDir = "public/uploads"
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithViews replaces the default templ components wholesale.
func WithViews(v ViewFuncs) Option {
	return func(a *App) {
		a.Views = v
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are set up.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
