package router

import (
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"cropadvisor/internal/auth"
	"cropadvisor/internal/config"
	"cropadvisor/internal/handler"
	"cropadvisor/internal/web"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	sessionStore auth.SessionStoreInterface,
	pageHandler *handler.PageHandler,
	authHandler *handler.AuthHandler,
	cropHandler *handler.CropHandler,
	predictHandler *handler.PredictHandler,
) error {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	renderer, err := web.NewRenderer()
	if err != nil {
		return err
	}
	e.Renderer = renderer

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.Static("/static/images", cfg.AssetsDir)

	// Public routes
	e.GET("/", pageHandler.Home)
	e.GET("/register", authHandler.RegisterForm)
	e.POST("/register", authHandler.Register)
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)

	// Protected routes: a missing, invalid or revoked session bounces to the
	// login form with the original path in "next".
	secured := e.Group("",
		echojwt.WithConfig(echojwt.Config{
			SigningKey:  []byte(cfg.SessionSecret),
			TokenLookup: "cookie:" + web.SessionCookie,
			ErrorHandler: func(c echo.Context, err error) error {
				return redirectToLogin(c)
			},
		}),
		requireActiveSession(sessionStore),
	)

	secured.GET("/logout", authHandler.Logout)
	secured.GET("/crops", cropHandler.ListCrops)
	secured.GET("/predict", predictHandler.PredictForm)
	secured.POST("/predict", predictHandler.Predict)

	return nil
}

func redirectToLogin(c echo.Context) error {
	next := c.Request().URL.Path
	return c.Redirect(http.StatusSeeOther, "/login?next="+url.QueryEscape(next))
}

// requireActiveSession rejects sessions that were revoked by logout.
func requireActiveSession(store auth.SessionStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return redirectToLogin(c)
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return redirectToLogin(c)
			}
			if jti, _ := claims["jti"].(string); jti != "" {
				if revoked, _ := store.IsSessionRevoked(c.Request().Context(), jti); revoked {
					return redirectToLogin(c)
				}
			}
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
