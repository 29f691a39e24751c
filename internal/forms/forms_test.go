package forms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegisterForm(t *testing.T) {
	tests := []struct {
		name       string
		form       RegisterForm
		wantFields []string
	}{
		{
			name: "valid",
			form: RegisterForm{
				Username: "alice", Password: "secret123",
				Email: "alice@example.com", FirstName: "Alice", LastName: "Anderson",
			},
		},
		{
			name: "missing username",
			form: RegisterForm{
				Password: "secret123", Email: "alice@example.com",
				FirstName: "Alice", LastName: "Anderson",
			},
			wantFields: []string{"username"},
		},
		{
			name: "short password and bad email",
			form: RegisterForm{
				Username: "alice", Password: "abc",
				Email: "not-an-email", FirstName: "Alice", LastName: "Anderson",
			},
			wantFields: []string{"password", "email"},
		},
		{
			name: "username too long",
			form: RegisterForm{
				Username: strings.Repeat("a", 21), Password: "secret123",
				Email: "alice@example.com", FirstName: "Alice", LastName: "Anderson",
			},
			wantFields: []string{"username"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fieldErrs, err := Validate(&tt.form)
			require.NoError(t, err)

			if len(tt.wantFields) == 0 {
				assert.Empty(t, fieldErrs)
				return
			}
			assert.Len(t, fieldErrs, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.NotEmpty(t, fieldErrs[field], "expected messages for %q", field)
			}
		})
	}
}

func TestValidateFeedbackForm(t *testing.T) {
	fieldErrs, err := Validate(&FeedbackForm{Title: "hello", Content: "world"})
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)

	fieldErrs, err = Validate(&FeedbackForm{Title: strings.Repeat("x", 101)})
	require.NoError(t, err)
	assert.NotEmpty(t, fieldErrs["title"])
	assert.NotEmpty(t, fieldErrs["content"])
}

func TestValidateRunsFreshEachTime(t *testing.T) {
	form := FeedbackForm{}
	fieldErrs, err := Validate(&form)
	require.NoError(t, err)
	require.NotEmpty(t, fieldErrs)

	form.Title = "now valid"
	form.Content = "content"
	fieldErrs, err = Validate(&form)
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
}
