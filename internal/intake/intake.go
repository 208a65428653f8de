// Package intake orchestrates claim creation: document storage, field
// extraction and claim persistence as one unit of work.
package intake

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/kylejryan/medical-claims-portal/internal/apperr"
	"github.com/kylejryan/medical-claims-portal/internal/models"
	"github.com/kylejryan/medical-claims-portal/internal/validate"
)

// DocumentStore persists raw document bytes under a user-scoped id.
type DocumentStore interface {
	Upload(ctx context.Context, userID string, data []byte) (string, error)
}

// Extractor converts a base64-encoded document into structured claim
// fields.
type Extractor interface {
	Process(ctx context.Context, encoded string) (map[string]any, error)
}

// ClaimStore persists claim records.
type ClaimStore interface {
	Create(ctx context.Context, userID, documentID string, extractedData map[string]any) (models.Claim, error)
}

// Service sequences the intake pipeline. Step order is fixed: store the
// document, extract, record the claim. There is no rollback today — a
// failed extraction or claim write leaves the stored document in place —
// but each step carries a compensation hook so future cleanup logic has a
// seam.
type Service struct {
	Docs      DocumentStore
	Extractor Extractor
	Claims    ClaimStore
}

// step is one stage of the pipeline. compensate runs in reverse order when
// a later step fails; every hook is currently a no-op.
type step struct {
	name       string
	run        func(ctx context.Context) error
	compensate func(ctx context.Context)
}

// Submit validates and runs the full pipeline for one document, returning
// the persisted claim with status PENDING. Validation happens before any
// side effect: a malformed payload causes zero store calls.
func (s *Service) Submit(ctx context.Context, userID, encodedDocument string) (models.Claim, error) {
	if err := validate.Base64(encodedDocument); err != nil {
		return models.Claim{}, err
	}
	data, err := base64.StdEncoding.DecodeString(encodedDocument)
	if err != nil {
		return models.Claim{}, apperr.Validationf("invalid base64 string")
	}

	var (
		documentID string
		extracted  map[string]any
		claim      models.Claim
	)
	steps := []step{
		{
			name: "store document",
			run: func(ctx context.Context) error {
				documentID, err = s.Docs.Upload(ctx, userID, data)
				return err
			},
			compensate: func(context.Context) {},
		},
		{
			name: "extract fields",
			run: func(ctx context.Context) error {
				extracted, err = s.Extractor.Process(ctx, encodedDocument)
				return err
			},
			compensate: func(context.Context) {},
		},
		{
			name: "record claim",
			run: func(ctx context.Context) error {
				claim, err = s.Claims.Create(ctx, userID, documentID, extracted)
				return err
			},
			compensate: func(context.Context) {},
		},
	}

	for i, st := range steps {
		if err := st.run(ctx); err != nil {
			for j := i - 1; j >= 0; j-- {
				steps[j].compensate(ctx)
			}
			return models.Claim{}, fmt.Errorf("%s: %w", st.name, err)
		}
	}
	return claim, nil
}
