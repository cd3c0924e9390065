package web

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

const flashCookie = "flash"

// Flash is a one-shot message rendered on the page that follows a redirect.
type Flash struct {
	Level   string
	Message string
}

// SetFlash stores a one-shot message in a short-lived cookie before a redirect.
func SetFlash(c echo.Context, level, message string) {
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(level + "|" + message),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
	})
}

// PopFlash reads and clears the pending flash message, if any.
func PopFlash(c echo.Context) *Flash {
	cookie, err := c.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}

	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	decoded, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	level, message, ok := strings.Cut(decoded, "|")
	if !ok {
		return &Flash{Level: "info", Message: decoded}
	}
	return &Flash{Level: level, Message: message}
}
