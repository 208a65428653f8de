package validate

import (
	"errors"
	"testing"

	"github.com/kylejryan/medical-claims-portal/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid unpadded", input: "abcd"},
		{name: "valid padded", input: "YWJjZGU="},
		{name: "valid jpeg prefix", input: "/9j/AAAA"},
		{name: "empty", input: "", wantErr: true},
		{name: "illegal characters", input: "not-base64!!", wantErr: true},
		{name: "truncated group", input: "abcde", wantErr: true},
		{name: "interior padding", input: "ab==cd==", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Base64(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, apperr.ErrValidation), "want validation error, got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPassword(t *testing.T) {
	require.NoError(t, Password("Str0ng!pass"))

	for _, pw := range []string{
		"short1!A",       // meets policy at exactly 8
		"Str0ng!pass",    // typical
		"Aa1!aaaaaaaaaa", // long
	} {
		assert.NoError(t, Password(pw), pw)
	}
	for _, pw := range []string{
		"",
		"Sh0r!t",       // too short
		"alllower1!",   // no upper
		"ALLUPPER1!",   // no lower
		"NoDigits!!",   // no digit
		"NoSpecial11A", // no special
	} {
		err := Password(pw)
		require.Error(t, err, pw)
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	}
}

func TestName(t *testing.T) {
	assert.NoError(t, Name("Jo"))
	assert.Error(t, Name("J"))
	assert.Error(t, Name("  "))
}

func TestDocumentID(t *testing.T) {
	assert.NoError(t, DocumentID("user@example.com/1700000000000-01HX"))
	assert.Error(t, DocumentID(""))
	assert.Error(t, DocumentID("no-slash-here"))
}

func TestClaimID(t *testing.T) {
	assert.NoError(t, ClaimID("1700000000000-01HX"))
	assert.Error(t, ClaimID(""))
	assert.Error(t, ClaimID("nodash"))
}

func TestStruct(t *testing.T) {
	type req struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required"`
	}
	assert.NoError(t, Struct(req{Email: "a@b.co", Password: "x"}))

	err := Struct(req{Email: "not-an-email", Password: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	assert.Error(t, Struct(req{Email: "a@b.co"}))
}
