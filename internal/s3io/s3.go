// Package s3io provides the durable document store backed by S3, including
// presigned read URLs.
package s3io

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"github.com/kylejryan/medical-claims-portal/internal/apperr"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// DefaultURLTTL is the presigned URL lifetime when the caller does not
// specify one.
const DefaultURLTTL = time.Hour

// API is the subset of the S3 client used by the store.
type API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Presigner defines the interface for presigning S3 read requests.
type Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Store is the document store.
type Store struct {
	Client  API
	Presign Presigner
	Bucket  string
}

// Upload writes raw document bytes under a fresh id scoped to userID and
// returns the id.
func (s *Store) Upload(ctx context.Context, userID string, data []byte) (string, error) {
	documentID := NewDocumentID(userID)
	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(documentID),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/octet-stream"),
	})
	if err != nil {
		return "", apperr.Storage(err)
	}
	return documentID, nil
}

// PresignedURL produces a time-limited read-only URL for a stored document.
// It does not check that the caller owns the document; that happens one
// layer up.
func (s *Store) PresignedURL(ctx context.Context, documentID string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultURLTTL
	}
	req, err := s.Presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(documentID),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", apperr.Storage(err)
	}
	return req.URL, nil
}

// Get fetches the raw bytes of a stored document.
func (s *Store) Get(ctx context.Context, documentID string) ([]byte, error) {
	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(documentID),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Storage(err)
	}
	defer out.Body.Close()
	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return data, nil
}
