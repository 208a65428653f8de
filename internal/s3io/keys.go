package s3io

import (
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Documents are stored under {userId}/{millis}-{suffix}. The prefix is an
// authorization hint only; real ownership is verified against claims.

// NewDocumentID mints a fresh document key scoped to userID. The ULID
// suffix keeps the timestamp-plus-random shape collision-free.
func NewDocumentID(userID string) string {
	return fmt.Sprintf("%s/%d-%s", userID, time.Now().UnixMilli(), ulid.Make().String())
}

// OwnerOf returns the user prefix of a document id, or "" if the id does
// not have the expected shape.
func OwnerOf(documentID string) string {
	owner, rest, ok := strings.Cut(documentID, "/")
	if !ok || owner == "" || rest == "" {
		return ""
	}
	return owner
}
