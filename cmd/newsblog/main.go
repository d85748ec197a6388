// Command newsblog runs the news site. Configuration comes from
// environment variables, optionally loaded from a .env file.
package main

import (
	"log"
	"strings"

	"github.com/joho/godotenv"

	newsblog "github.com/jadhavpratik/marathi-news-blog-live"
)

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := newsblog.SiteConfig{
		Name:        newsblog.EnvOr("SITE_NAME", "News"),
		URL:         strings.TrimSuffix(newsblog.EnvOr("SITE_URL", "http://localhost:3000"), "/"),
		Description: newsblog.EnvOr("SITE_DESCRIPTION", ""),

		Addr:         ":" + newsblog.EnvOr("PORT", "3000"),
		DatabasePath: newsblog.EnvOr("DATABASE_PATH", "data/news.db"),

		AdminUser:     newsblog.EnvOr("ADMIN_USER", "admin"),
		AdminPassword: newsblog.MustEnv("ADMIN_PASSWORD"),
		SessionSecret: newsblog.MustEnv("SESSION_SECRET"),
		CookieSecure:  strings.EqualFold(newsblog.EnvOr("COOKIE_SECURE", ""), "true"),

		StaticDir: newsblog.EnvOr("STATIC_DIR", "public"),
		UploadDir: newsblog.EnvOr("UPLOAD_DIR", "public/uploads"),
	}

	app := newsblog.New(cfg)
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
