package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"feedbackhub/internal/errors"
	"feedbackhub/internal/forms"
	"feedbackhub/internal/service"
	"feedbackhub/internal/session"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	users    service.UserService
	sessions *session.Manager
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(users service.UserService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions}
}

// Home redirects the root path to the registration form.
func (h *AuthHandler) Home(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/register")
}

// RegisterPage renders the empty registration form.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", formPage{
		Form:    &forms.RegisterForm{},
		Flashes: h.sessions.Flashes(c),
	})
}

// Register processes a registration submission. On success the session is
// bound to the new username and the client is sent to its profile.
func (h *AuthHandler) Register(c echo.Context) error {
	var form forms.RegisterForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	fieldErrs, err := forms.Validate(&form)
	if err != nil {
		return err
	}
	if len(fieldErrs) > 0 {
		return h.renderRegister(c, &form, fieldErrs)
	}

	user, err := h.users.Register(c.Request().Context(), form.Username, form.Password, form.Email, form.FirstName, form.LastName)
	if err == errors.ErrUsernameTaken {
		return h.renderRegister(c, &form, forms.FieldErrors{
			"username": {"Username taken. Please pick another."},
		})
	}
	if err != nil {
		return err
	}

	if err := h.sessions.Set(c, user.Username); err != nil {
		return err
	}
	_ = h.sessions.Flash(c, "success", "Welcome! Successfully Created Your Account!")
	return c.Redirect(http.StatusSeeOther, "/users/"+user.Username)
}

func (h *AuthHandler) renderRegister(c echo.Context, form *forms.RegisterForm, fieldErrs forms.FieldErrors) error {
	return c.Render(http.StatusBadRequest, "register.html", formPage{
		Form:    form,
		Errors:  fieldErrs,
		Flashes: h.sessions.Flashes(c),
	})
}

// LoginPage renders the login form. Authenticated clients are sent straight
// to their profile.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if username, ok := h.sessions.Current(c); ok {
		return c.Redirect(http.StatusFound, "/users/"+username)
	}
	return c.Render(http.StatusOK, "login.html", formPage{
		Form:    &forms.LoginForm{},
		Flashes: h.sessions.Flashes(c),
	})
}

// Login processes a login submission.
func (h *AuthHandler) Login(c echo.Context) error {
	if username, ok := h.sessions.Current(c); ok {
		return c.Redirect(http.StatusFound, "/users/"+username)
	}

	var form forms.LoginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	fieldErrs, err := forms.Validate(&form)
	if err != nil {
		return err
	}
	if len(fieldErrs) > 0 {
		return h.renderLogin(c, &form, fieldErrs)
	}

	user, err := h.users.Authenticate(c.Request().Context(), form.Username, form.Password)
	if err == errors.ErrInvalidCredentials {
		return h.renderLogin(c, &form, forms.FieldErrors{
			"username": {"Invalid username/password."},
		})
	}
	if err != nil {
		return err
	}

	if err := h.sessions.Set(c, user.Username); err != nil {
		return err
	}
	_ = h.sessions.Flash(c, "primary", "Welcome Back, "+user.Username+"!")
	return c.Redirect(http.StatusSeeOther, "/users/"+user.Username)
}

func (h *AuthHandler) renderLogin(c echo.Context, form *forms.LoginForm, fieldErrs forms.FieldErrors) error {
	return c.Render(http.StatusBadRequest, "login.html", formPage{
		Form:    form,
		Errors:  fieldErrs,
		Flashes: h.sessions.Flashes(c),
	})
}

// Logout clears the session and returns to the root page.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Clear(c); err != nil {
		return err
	}
	_ = h.sessions.Flash(c, "info", "Goodbye!")
	return c.Redirect(http.StatusFound, "/")
}
