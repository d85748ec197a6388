package newsblog

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

func (a *App) handleLoginForm(c echo.Context) error {
	if IsAdmin(claims(c)) {
		return c.Redirect(http.StatusSeeOther, "/admin/dashboard")
	}
	return Render(c, a.Views.AdminLogin(a.Config, false))
}

func (a *App) handleLogin(c echo.Context) error {
	user := c.FormValue("username")
	pass := c.FormValue("password")

	// Both checks always run so a wrong username is indistinguishable
	// from a wrong password.
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(a.Config.AdminUser)) == 1
	passOK := bcrypt.CompareHashAndPassword(a.adminHash, []byte(pass)) == nil
	if userOK && passOK {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/dashboard")
	}
	return Render(c, a.Views.AdminLogin(a.Config, true))
}

func (a *App) handleLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (a *App) handleDashboard(c echo.Context) error {
	posts, err := a.Store.ListPosts()
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminDashboard(a.Config, posts, c.QueryParam("msg")))
}

func (a *App) handleAddPost(c echo.Context) error {
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	title := strings.TrimSpace(c.FormValue("title"))
	content := strings.TrimSpace(c.FormValue("content"))
	if title == "" || content == "" {
		return c.String(http.StatusBadRequest, "Title and content are required.")
	}

	imageURL := strings.TrimSpace(c.FormValue("imageUrl"))
	if file, err := c.FormFile("image"); err == nil {
		// An uploaded file wins over the imageUrl text field.
		url, err := a.saveUpload(file)
		if err != nil {
			return err
		}
		imageURL = url
	}

	if _, err := a.Store.InsertPost(Post{
		Title:    title,
		ImageURL: imageURL,
		Content:  content,
	}); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

func (a *App) handleDeletePost(c echo.Context) error {
	if err := a.Store.DeletePost(c.Param("id")); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}
