package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropadvisor/internal/auth"
	apperrors "cropadvisor/internal/errors"
	"cropadvisor/internal/service"
	"cropadvisor/internal/web"
)

// defaultPostLoginPath is where a fresh login lands when no safe "next"
// target was supplied.
const defaultPostLoginPath = "/predict"

// AuthHandler serves the register, login and logout pages.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type credentialsForm struct {
	Username string `form:"username" validate:"required,max=150"`
	Password string `form:"password" validate:"required"`
}

// RegisterForm renders the registration page.
func (h *AuthHandler) RegisterForm(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", echo.Map{
		"Flash": web.PopFlash(c),
	})
}

// Register creates an account. Failures redirect back to the registration
// form with a flash message; success redirects to the login form.
func (h *AuthHandler) Register(c echo.Context) error {
	var form credentialsForm
	if err := c.Bind(&form); err != nil {
		web.SetFlash(c, "danger", "Invalid form submission.")
		return c.Redirect(http.StatusSeeOther, "/register")
	}
	if err := c.Validate(&form); err != nil {
		web.SetFlash(c, "danger", "Username and password are required.")
		return c.Redirect(http.StatusSeeOther, "/register")
	}

	if _, err := h.authService.Register(c.Request().Context(), form.Username, form.Password); err != nil {
		web.SetFlash(c, "danger", apperrors.UserMessage(err))
		return c.Redirect(http.StatusSeeOther, "/register")
	}

	web.SetFlash(c, "success", "Registration successful! Please log in.")
	return c.Redirect(http.StatusSeeOther, "/login")
}

// LoginForm renders the login page, carrying through any "next" target.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{
		"Flash": web.PopFlash(c),
		"Next":  c.QueryParam("next"),
	})
}

// Login authenticates the user and establishes the session cookie. The "next"
// redirect target is honored only when it passes the same-origin check.
func (h *AuthHandler) Login(c echo.Context) error {
	var form credentialsForm
	if err := c.Bind(&form); err != nil {
		web.SetFlash(c, "danger", "Invalid form submission.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	if err := c.Validate(&form); err != nil {
		web.SetFlash(c, "danger", "Username and password are required.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	token, _, err := h.authService.Login(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		web.SetFlash(c, "danger", apperrors.UserMessage(err))
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	web.SetSessionCookie(c, token, auth.SessionExpiry)

	target := defaultPostLoginPath
	if next := c.FormValue("next"); web.SafeRedirect(next, c.Request().Host) {
		target = next
	}
	return c.Redirect(http.StatusSeeOther, target)
}

// Logout revokes the session and clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(web.SessionCookie); err == nil {
		_ = h.authService.Logout(c.Request().Context(), cookie.Value)
	}
	web.ClearSessionCookie(c)

	web.SetFlash(c, "success", "Logged out successfully.")
	return c.Redirect(http.StatusSeeOther, "/login")
}
