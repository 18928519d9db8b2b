package site

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	themeCookie = "theme"
	themeDark   = "dark"
	themeLight  = "light"
)

func themeFromCookie(c *fiber.Ctx) string {
	if c.Cookies(themeCookie) == themeLight {
		return themeLight
	}
	return themeDark
}

// toggleTheme flips the theme cookie, or sets it to the posted "theme"
// value, and redirects back to the referring page.
func (s *Site) toggleTheme(c *fiber.Ctx) error {
	next := themeLight
	if themeFromCookie(c) == themeLight {
		next = themeDark
	}
	if v := c.FormValue("theme"); v == themeDark || v == themeLight {
		next = v
	}

	c.Cookie(&fiber.Cookie{
		Name:     themeCookie,
		Value:    next,
		Path:     "/",
		Expires:  time.Now().AddDate(1, 0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect(backPath(c.Get(fiber.HeaderReferer), c.Hostname()), fiber.StatusSeeOther)
}

// backPath returns the path and query of referer when it points at host,
// and "/" otherwise.
func backPath(referer, host string) string {
	if referer == "" {
		return "/"
	}
	u, err := url.Parse(referer)
	if err != nil {
		return "/"
	}
	if u.Host != "" && !strings.EqualFold(u.Host, host) {
		return "/"
	}
	p := u.EscapedPath()
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.Contains(p, "\\") {
		return "/"
	}
	if u.RawQuery != "" {
		p += "?" + u.RawQuery
	}
	return p
}
