// Package validate provides pure input checkers used ahead of any side
// effect, plus struct-tag validation for request bodies.
package validate

import (
	"encoding/base64"
	"regexp"
	"strings"
	"unicode"

	"github.com/kylejryan/medical-claims-portal/internal/apperr"

	"github.com/go-playground/validator/v10"
)

var (
	base64Rx = regexp.MustCompile(`^([A-Za-z0-9+/]{4})*([A-Za-z0-9+/]{3}=|[A-Za-z0-9+/]{2}==)?$`)

	v = validator.New()
)

// Struct validates a request struct against its `validate` tags.
func Struct(s any) error {
	if err := v.Struct(s); err != nil {
		return apperr.Validationf("%s", err.Error())
	}
	return nil
}

// Base64 checks that s looks like well-formed standard base64. Beyond the
// format regex it decodes a short prefix to catch truncated payloads.
func Base64(s string) error {
	if s == "" {
		return apperr.Validationf("base64 string is required")
	}
	if !base64Rx.MatchString(s) {
		return apperr.Validationf("invalid base64 string format")
	}
	probe := s
	if len(probe) > 100 {
		probe = probe[:100]
	}
	if _, err := base64.StdEncoding.DecodeString(probe); err != nil {
		return apperr.Validationf("invalid base64 string")
	}
	return nil
}

// Password enforces the registration password policy: at least 8 characters
// with one uppercase letter, one lowercase letter, one digit and one of
// !@#$%^&*(),.?":{}|<>.
func Password(pw string) error {
	if len(pw) < 8 {
		return apperr.Validationf("password must be at least 8 characters long")
	}
	var upper, lower, digit, special bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(`!@#$%^&*(),.?":{}|<>`, r):
			special = true
		}
	}
	if !upper || !lower || !digit || !special {
		return apperr.Validationf("password must contain at least one uppercase letter, one lowercase letter, one number, and one special character")
	}
	return nil
}

// Name checks that a display name has at least 2 non-space characters.
func Name(n string) error {
	if len(strings.TrimSpace(n)) < 2 {
		return apperr.Validationf("name must be at least 2 characters long")
	}
	return nil
}

// DocumentID checks the `{userId}/{timestamp}-{suffix}` shape.
func DocumentID(id string) error {
	if id == "" || !strings.Contains(id, "/") {
		return apperr.Validationf("invalid document ID format")
	}
	return nil
}

// ClaimID checks the `{timestamp}-{suffix}` shape.
func ClaimID(id string) error {
	if id == "" || !strings.Contains(id, "-") {
		return apperr.Validationf("invalid claim ID format")
	}
	return nil
}
