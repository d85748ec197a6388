// Package newsblog is a small news-publishing site built with Go, Echo,
// and templ. It serves a public listing of news posts and a
// password-gated admin panel for creating and deleting them, backed by
// SQLite, with image uploads stored on the local filesystem.
//
// The default templ components can be replaced per page via the
// ViewFuncs struct; the package owns all handler logic, middleware, and
// database operations.
package newsblog

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// App is the central application. It wires together the store, handlers,
// middleware, and view components.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Views  ViewFuncs

	adminHash    []byte
	customRoutes []func(*App)
}

// New creates an App with the given configuration. Views default to the
// components in this package and can be overridden with WithViews.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  DefaultViews(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the store, middleware, and routes, then starts the
// HTTP server. It blocks until the server stops.
func (a *App) Start() error {
	if err := a.setup(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// setup performs all initialization short of binding the listen socket,
// so tests can drive the app through httptest without starting a server.
func (a *App) setup() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("newsblog: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("newsblog: SessionSecret is required")
	}

	// The configured password is hashed once at startup; logins compare
	// against the hash, never the plaintext.
	hash, err := bcrypt.GenerateFromPassword([]byte(a.Config.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("newsblog: hash admin password: %w", err)
	}
	a.adminHash = hash

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		// A failed open is logged, not fatal: the server keeps running
		// and individual requests fail with ErrStoreUnavailable until
		// the database path becomes usable again.
		log.Printf("newsblog: open store: %v (continuing without database)", err)
		store = &Store{}
	}
	a.Store = store

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Static assets and uploaded files.
	e.Static("/public", a.Config.StaticDir)
	e.Static("/uploads", a.Config.UploadDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	// Public routes.
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.GET("/post/:id", a.handlePost)

	// Login and logout are reachable without a session.
	e.GET("/admin/login", a.handleLoginForm)
	e.POST("/admin/login", a.handleLogin)
	e.GET("/admin/logout", a.handleLogout)

	// Post management, behind the admin gate.
	admin := e.Group("/admin", a.requireAdmin)
	admin.GET("/dashboard", a.handleDashboard)
	admin.POST("/add-post", a.handleAddPost)
	admin.POST("/delete-post/:id", a.handleDeletePost)
	admin.GET("/images/", a.handleImageList)
	admin.POST("/images/upload/", a.handleImageUpload)
	admin.POST("/images/delete/:filename", a.handleImageDelete)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("newsblog: required environment variable %s is not set", key)
	}
	return v
}
