package ddb

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kylejryan/medical-claims-portal/internal/apperr"
	"github.com/kylejryan/medical-claims-portal/internal/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDB is a function-field fake for the DynamoDB API subset.
type fakeDB struct {
	PutItemFunc func(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItemFunc func(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	QueryFunc   func(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

func (f *fakeDB) PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return f.PutItemFunc(ctx, in, optFns...)
}

func (f *fakeDB) GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return f.GetItemFunc(ctx, in, optFns...)
}

func (f *fakeDB) Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return f.QueryFunc(ctx, in, optFns...)
}

func TestNewClaimID_Shape(t *testing.T) {
	id := NewClaimID()
	assert.Contains(t, id, "-", "want {timestamp}-{suffix}")
	assert.NotEqual(t, id, NewClaimID())
}

func TestUserRepo_GetByEmail_NotFound(t *testing.T) {
	db := &fakeDB{QueryFunc: func(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
		assert.Equal(t, EmailIndex, *in.IndexName)
		return &dynamodb.QueryOutput{}, nil
	}}
	repo := &UserRepo{DB: db, Table: "users"}

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.True(t, errors.Is(err, apperr.ErrNotFound), "got %v", err)
}

func TestUserRepo_Put_GuardsAgainstOverwrite(t *testing.T) {
	var captured *dynamodb.PutItemInput
	db := &fakeDB{PutItemFunc: func(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
		captured = in
		return &dynamodb.PutItemOutput{}, nil
	}}
	repo := &UserRepo{DB: db, Table: "users"}

	require.NoError(t, repo.Put(context.Background(), models.User{ID: "u-1", Email: "alice@example.com"}))
	require.NotNil(t, captured)
	assert.True(t, strings.Contains(*captured.ConditionExpression, "attribute_not_exists"))
}

func TestClaimRepo_Create(t *testing.T) {
	var written models.Claim
	db := &fakeDB{PutItemFunc: func(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
		require.NoError(t, attributevalue.UnmarshalMap(in.Item, &written))
		return &dynamodb.PutItemOutput{}, nil
	}}
	repo := &ClaimRepo{DB: db, Table: "claims"}

	extracted := map[string]any{"claim_details": map[string]any{"claim_number": "CN-7"}}
	c, err := repo.Create(context.Background(), "alice@example.com", "alice@example.com/1-x", extracted)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, c.Status, "creation always starts PENDING")
	assert.Equal(t, c.ID, written.ID)
	assert.Contains(t, c.ID, "-")
	assert.Equal(t, "alice@example.com", written.UserID)
	assert.Equal(t, "alice@example.com/1-x", written.DocumentID)
	assert.Equal(t, c.CreatedAt, c.UpdatedAt)
}

func TestClaimRepo_ListByUser_Empty(t *testing.T) {
	db := &fakeDB{QueryFunc: func(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
		assert.Equal(t, UserIdIndex, *in.IndexName)
		return &dynamodb.QueryOutput{}, nil
	}}
	repo := &ClaimRepo{DB: db, Table: "claims"}

	claims, err := repo.ListByUser(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Empty(t, claims)
}

func TestClaimRepo_UpdateStatus(t *testing.T) {
	existing := models.Claim{
		ID:            "1-a",
		UserID:        "alice@example.com",
		DocumentID:    "alice@example.com/1-x",
		Status:        models.StatusPending,
		ExtractedData: map[string]any{"claim_details": map[string]any{"claim_number": "CN-7"}},
		CreatedAt:     "2026-01-01T00:00:00Z",
		UpdatedAt:     "2026-01-01T00:00:00Z",
	}
	item, err := attributevalue.MarshalMap(existing)
	require.NoError(t, err)

	var written models.Claim
	db := &fakeDB{
		GetItemFunc: func(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: item}, nil
		},
		PutItemFunc: func(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			require.NoError(t, attributevalue.UnmarshalMap(in.Item, &written))
			return &dynamodb.PutItemOutput{}, nil
		},
	}
	repo := &ClaimRepo{DB: db, Table: "claims"}

	c, err := repo.UpdateStatus(context.Background(), "1-a", models.StatusCompleted, nil)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, c.Status)
	assert.Equal(t, existing.ExtractedData, c.ExtractedData, "nil payload keeps existing data")
	assert.NotEqual(t, existing.UpdatedAt, written.UpdatedAt)
	assert.Equal(t, existing.CreatedAt, written.CreatedAt)
}

func TestClaimRepo_UpdateStatus_Absent(t *testing.T) {
	db := &fakeDB{GetItemFunc: func(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
		return &dynamodb.GetItemOutput{}, nil
	}}
	repo := &ClaimRepo{DB: db, Table: "claims"}

	_, err := repo.UpdateStatus(context.Background(), "999-zzz", models.StatusFailed, nil)
	assert.True(t, errors.Is(err, apperr.ErrNotFound), "got %v", err)
}
