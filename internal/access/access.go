// Package access enforces ownership on the read side before any claim data
// or document URL leaves the system.
package access

import (
	"context"
	"fmt"
	"time"

	"github.com/kylejryan/medical-claims-portal/internal/apperr"
	"github.com/kylejryan/medical-claims-portal/internal/models"
)

// ClaimReader is the claim-store surface the read side needs.
type ClaimReader interface {
	GetByID(ctx context.Context, id string) (models.Claim, error)
	ListByUser(ctx context.Context, userID string) ([]models.Claim, error)
}

// URLSigner produces time-limited read URLs for stored documents.
type URLSigner interface {
	PresignedURL(ctx context.Context, documentID string, ttl time.Duration) (string, error)
}

// Claim loads a claim and verifies the caller owns it. A claim owned by
// someone else fails with apperr.ErrForbidden regardless of how valid the
// id looks.
func Claim(ctx context.Context, claims ClaimReader, userID, claimID string) (models.Claim, error) {
	c, err := claims.GetByID(ctx, claimID)
	if err != nil {
		return models.Claim{}, err
	}
	if c.UserID != userID {
		return models.Claim{}, fmt.Errorf("%w: claim belongs to another user", apperr.ErrForbidden)
	}
	return c, nil
}

// DocumentURL verifies the caller owns a claim referencing documentID, then
// signs a read URL for it. Ownership is established indirectly by scanning
// the caller's claims; result sets are small and never paginated, so the
// linear scan is acceptable here.
func DocumentURL(ctx context.Context, claims ClaimReader, signer URLSigner, userID, documentID string, ttl time.Duration) (string, error) {
	owned, err := claims.ListByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	found := false
	for _, c := range owned {
		if c.DocumentID == documentID {
			found = true
			break
		}
	}
	if !found {
		return "", fmt.Errorf("%w: no claim references this document", apperr.ErrForbidden)
	}
	return signer.PresignedURL(ctx, documentID, ttl)
}
