package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"feedbackhub/internal/errors"
	"feedbackhub/internal/forms"
	"feedbackhub/internal/model"
	"feedbackhub/internal/service"
	"feedbackhub/internal/session"
)

// FeedbackHandler handles feedback creation, editing and deletion. Creation is
// self-only on the path username; editing and deletion are owner-only on the
// feedback row.
type FeedbackHandler struct {
	feedback service.FeedbackService
	sessions *session.Manager
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(feedback service.FeedbackService, sessions *session.Manager) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback, sessions: sessions}
}

func (h *FeedbackHandler) requireSelf(c echo.Context) (string, error) {
	username := c.Param("username")
	if current, ok := h.sessions.Current(c); !ok || current != username {
		return "", errors.ErrUnauthorized
	}
	return username, nil
}

// requireOwned loads the feedback entry from the :id param and checks the
// session user owns it. The session is checked first so anonymous clients get
// 401 without touching the store.
func (h *FeedbackHandler) requireOwned(c echo.Context) (*model.Feedback, error) {
	current, ok := h.sessions.Current(c)
	if !ok {
		return nil, errors.ErrUnauthorized
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return nil, errors.ErrFeedbackNotFound
	}

	feedback, err := h.feedback.Get(c.Request().Context(), uint(id))
	if err != nil {
		return nil, err
	}
	if feedback.Username != current {
		return nil, errors.ErrUnauthorized
	}
	return feedback, nil
}

// AddPage renders the empty feedback form.
func (h *FeedbackHandler) AddPage(c echo.Context) error {
	username, err := h.requireSelf(c)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "feedback_new.html", feedbackPage{
		Form:     &forms.FeedbackForm{},
		Flashes:  h.sessions.Flashes(c),
		Username: username,
	})
}

// Add processes a feedback creation submission.
func (h *FeedbackHandler) Add(c echo.Context) error {
	username, err := h.requireSelf(c)
	if err != nil {
		return err
	}

	var form forms.FeedbackForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	fieldErrs, err := forms.Validate(&form)
	if err != nil {
		return err
	}
	if len(fieldErrs) > 0 {
		return c.Render(http.StatusBadRequest, "feedback_new.html", feedbackPage{
			Form:     &form,
			Errors:   fieldErrs,
			Flashes:  h.sessions.Flashes(c),
			Username: username,
		})
	}

	if _, err := h.feedback.Create(c.Request().Context(), form.Title, form.Content, username); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/users/"+username)
}

// EditPage renders the edit form prefilled with the stored entry.
func (h *FeedbackHandler) EditPage(c echo.Context) error {
	feedback, err := h.requireOwned(c)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "feedback_edit.html", feedbackPage{
		Form:     &forms.FeedbackForm{Title: feedback.Title, Content: feedback.Content},
		Flashes:  h.sessions.Flashes(c),
		Username: feedback.Username,
		ID:       feedback.ID,
	})
}

// Update processes an edit submission; only title and content change.
func (h *FeedbackHandler) Update(c echo.Context) error {
	feedback, err := h.requireOwned(c)
	if err != nil {
		return err
	}

	var form forms.FeedbackForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	fieldErrs, err := forms.Validate(&form)
	if err != nil {
		return err
	}
	if len(fieldErrs) > 0 {
		return c.Render(http.StatusBadRequest, "feedback_edit.html", feedbackPage{
			Form:     &form,
			Errors:   fieldErrs,
			Flashes:  h.sessions.Flashes(c),
			Username: feedback.Username,
			ID:       feedback.ID,
		})
	}

	if _, err := h.feedback.Update(c.Request().Context(), feedback.ID, form.Title, form.Content); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/users/"+feedback.Username)
}

// Delete removes a feedback entry.
func (h *FeedbackHandler) Delete(c echo.Context) error {
	feedback, err := h.requireOwned(c)
	if err != nil {
		return err
	}

	if err := h.feedback.Delete(c.Request().Context(), feedback.ID); err != nil {
		return err
	}
	_ = h.sessions.Flash(c, "info", "Feedback deleted!")
	return c.Redirect(http.StatusSeeOther, "/users/"+feedback.Username)
}
