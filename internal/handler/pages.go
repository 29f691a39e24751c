package handler

import (
	"feedbackhub/internal/forms"
	"feedbackhub/internal/model"
	"feedbackhub/internal/session"
)

// formPage feeds the register and login templates.
type formPage struct {
	Form    interface{}
	Errors  forms.FieldErrors
	Flashes []session.Flash
}

// userPage feeds the profile template.
type userPage struct {
	User     *model.User
	Feedback []model.Feedback
	Flashes  []session.Flash
}

// feedbackPage feeds the feedback add/edit templates.
type feedbackPage struct {
	Form     *forms.FeedbackForm
	Errors   forms.FieldErrors
	Flashes  []session.Flash
	Username string
	ID       uint
}
