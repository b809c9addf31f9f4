package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Name     string `validate:"required,min=2,max=50"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func TestValidator_Valid(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	err = v.Struct(testPayload{Name: "Ada", Email: "ada@x.com", Password: "secret1"})
	require.NoError(t, err)
}

func TestValidator_OneMessagePerViolatedRule(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	err = v.Struct(testPayload{Name: "A", Email: "not-an-email", Password: "123"})
	require.Error(t, err)

	var verrs *Errors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs.Messages, 3)

	// Joined for display.
	joined := verrs.Error()
	for _, msg := range verrs.Messages {
		assert.Contains(t, joined, msg)
	}
}

func TestValidator_TranslatedMessages(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	err = v.Struct(testPayload{Name: "Ada", Email: "ada@x.com", Password: ""})
	require.Error(t, err)

	var verrs *Errors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs.Messages, 1)
	assert.Contains(t, verrs.Messages[0], "Password")
	assert.Contains(t, verrs.Messages[0], "required")
}
