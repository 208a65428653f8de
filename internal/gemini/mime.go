package gemini

import (
	"strings"

	"github.com/kylejryan/medical-claims-portal/internal/apperr"
)

// signatures maps base64-encoded leading bytes to MIME types. The prefixes
// are what the binary magic numbers of each format encode to, so sniffing
// works directly on the encoded payload without decoding it.
var signatures = []struct {
	prefix string
	mime   string
}{
	{"/9j/", "image/jpeg"},
	{"iVBORw0KGgo", "image/png"},
	{"R0lGODlh", "image/gif"},
	{"UklGRg==", "image/webp"},
	{"JVBERi0", "application/pdf"},
}

// DetectMIME sniffs the MIME type of a base64-encoded document from its
// leading bytes. Unrecognized signatures fail with ErrUnsupportedFormat
// before any remote call is made.
func DetectMIME(encoded string) (string, error) {
	for _, s := range signatures {
		if strings.HasPrefix(encoded, s.prefix) {
			return s.mime, nil
		}
	}
	return "", apperr.ErrUnsupportedFormat
}
