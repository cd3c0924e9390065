package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropadvisor/internal/web"
)

// PageHandler serves the static landing page.
type PageHandler struct{}

// NewPageHandler creates a new page handler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Home renders the landing page.
func (h *PageHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html", echo.Map{
		"Flash": web.PopFlash(c),
	})
}
