package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"feedbackhub/internal/errors"
	"feedbackhub/internal/service"
	"feedbackhub/internal/session"
)

// UserHandler handles the profile page and account deletion. Both routes are
// self-only: the session username must match the username in the path.
type UserHandler struct {
	users    service.UserService
	feedback service.FeedbackService
	sessions *session.Manager
}

// NewUserHandler creates a new user handler.
func NewUserHandler(users service.UserService, feedback service.FeedbackService, sessions *session.Manager) *UserHandler {
	return &UserHandler{users: users, feedback: feedback, sessions: sessions}
}

func (h *UserHandler) requireSelf(c echo.Context) (string, error) {
	username := c.Param("username")
	if current, ok := h.sessions.Current(c); !ok || current != username {
		return "", errors.ErrUnauthorized
	}
	return username, nil
}

// Show renders the profile page with the user's feedback.
func (h *UserHandler) Show(c echo.Context) error {
	username, err := h.requireSelf(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	user, err := h.users.Get(ctx, username)
	if err != nil {
		return err
	}
	entries, err := h.feedback.ListByUser(ctx, username)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "user_show.html", userPage{
		User:     user,
		Feedback: entries,
		Flashes:  h.sessions.Flashes(c),
	})
}

// Delete removes the account, cascading to its feedback, and ends the session.
func (h *UserHandler) Delete(c echo.Context) error {
	username, err := h.requireSelf(c)
	if err != nil {
		return err
	}

	if err := h.users.Delete(c.Request().Context(), username); err != nil {
		return err
	}
	if err := h.sessions.Clear(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/login")
}
