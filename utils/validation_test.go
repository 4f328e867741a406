package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestIsValidMobile(t *testing.T) {
	cases := []struct {
		name   string
		mobile string
		want   bool
	}{
		{"valid", "0712345678", true},
		{"valid all digits", "9999999999", true},
		{"too short", "071234567", false},
		{"too long", "07123456789", false},
		{"empty", "", false},
		{"letters", "07123abc78", false},
		{"with plus", "+712345678", false},
		{"with spaces", "071 234 56", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidMobile(tc.mobile); got != tc.want {
				t.Errorf("IsValidMobile(%q) = %v, want %v", tc.mobile, got, tc.want)
			}
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	type payload struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=6"`
	}

	v := validator.New()

	t.Run("nil error", func(t *testing.T) {
		if got := SanitizeValidationError(nil); got != "" {
			t.Errorf("expected empty string for nil error, got %q", got)
		}
	})

	t.Run("non-validation error", func(t *testing.T) {
		if got := SanitizeValidationError(errors.New("boom")); got != "Invalid request body" {
			t.Errorf("expected generic message, got %q", got)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		err := v.Struct(payload{})
		got := SanitizeValidationError(err)
		if !strings.Contains(got, "email is required") {
			t.Errorf("expected required-email message, got %q", got)
		}
		if !strings.Contains(got, "password is required") {
			t.Errorf("expected required-password message, got %q", got)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		err := v.Struct(payload{Email: "not-an-email", Password: "secret123"})
		got := SanitizeValidationError(err)
		if !strings.Contains(got, "email must be a valid email address") {
			t.Errorf("expected email-format message, got %q", got)
		}
	})

	t.Run("too short password", func(t *testing.T) {
		err := v.Struct(payload{Email: "user@test.com", Password: "abc"})
		got := SanitizeValidationError(err)
		if !strings.Contains(got, "password must be at least 6 characters") {
			t.Errorf("expected min-length message, got %q", got)
		}
	})
}
