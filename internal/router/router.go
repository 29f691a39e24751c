package router

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	apperrors "feedbackhub/internal/errors"
	"feedbackhub/internal/handler"
	"feedbackhub/internal/web"
)

// Register wires routes, middleware, the renderer and the error page.
func Register(
	e *echo.Echo,
	renderer *web.Renderer,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	feedbackHandler *handler.FeedbackHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.Renderer = renderer
	e.HTTPErrorHandler = errorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/", authHandler.Home)
	e.GET("/register", authHandler.RegisterPage)
	e.POST("/register", authHandler.Register)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)

	e.GET("/users/:username", userHandler.Show)
	e.POST("/users/:username/delete", userHandler.Delete)

	e.GET("/users/:username/feedback/add", feedbackHandler.AddPage)
	e.POST("/users/:username/feedback/add", feedbackHandler.Add)
	e.GET("/feedback/:id/update", feedbackHandler.EditPage)
	e.POST("/feedback/:id/update", feedbackHandler.Update)
	e.POST("/feedback/:id/delete", feedbackHandler.Delete)
}

// errorHandler renders the error page for anything a handler returned
// unhandled: echo's own routing errors pass through as-is, domain errors go
// through the HTTP mapping.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	} else {
		mapped := apperrors.MapErrorToHTTP(err)
		code, message = mapped.StatusCode, mapped.Message
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	if rerr := c.Render(code, "error.html", map[string]interface{}{"Code": code, "Message": message}); rerr != nil {
		_ = c.String(code, message)
	}
}
