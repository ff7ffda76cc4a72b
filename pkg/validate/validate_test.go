package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	pkgerrors "github.com/trendoralabs/trendora-backend/pkg/errors"
)

type sampleInput struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"omitempty,phone"`
}

func TestStructReportsFieldDetails(t *testing.T) {
	err := Struct(sampleInput{Email: "not-an-email"})
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())

	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	require.Equal(t, "must be a valid email", details["email"])
}

func TestStructAcceptsValidInput(t *testing.T) {
	require.NoError(t, Struct(sampleInput{Email: "shopper@example.com", Phone: "+15551234567"}))
}

func TestPhone(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"+15551234567", true},
		{"15551234567", true},
		{"555123456", true},
		{"+1555", false},
		{"not-a-phone", false},
		{"+1555123456789012345", false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Phone(tc.value), "value %q", tc.value)
	}
}
