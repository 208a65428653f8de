package ddb

import (
	"context"

	"github.com/kylejryan/medical-claims-portal/internal/apperr"
	"github.com/kylejryan/medical-claims-portal/internal/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// UserIdIndex is the GSI keyed on the claim owner attribute.
const UserIdIndex = "UserIdIndex"

// ClaimRepo wraps a DynamoDB client and table name for claim records.
type ClaimRepo struct {
	DB    API
	Table string
}

// Create persists a new claim with status PENDING and a freshly minted id.
func (r *ClaimRepo) Create(ctx context.Context, userID, documentID string, extractedData map[string]any) (models.Claim, error) {
	now := NowISO()
	c := models.Claim{
		ID:            NewClaimID(),
		UserID:        userID,
		DocumentID:    documentID,
		Status:        models.StatusPending,
		ExtractedData: extractedData,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := r.put(ctx, c); err != nil {
		return models.Claim{}, err
	}
	return c, nil
}

// GetByID fetches a claim by id. Returns apperr.ErrNotFound when absent.
func (r *ClaimRepo) GetByID(ctx context.Context, id string) (models.Claim, error) {
	out, err := r.DB.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &r.Table,
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return models.Claim{}, apperr.Storage(err)
	}
	if out.Item == nil {
		return models.Claim{}, apperr.ErrNotFound
	}
	var c models.Claim
	if err := attributevalue.UnmarshalMap(out.Item, &c); err != nil {
		return models.Claim{}, apperr.Storage(err)
	}
	return c, nil
}

// ListByUser returns every claim owned by userID via UserIdIndex. The full
// result set is returned per call; this design never paginates.
func (r *ClaimRepo) ListByUser(ctx context.Context, userID string) ([]models.Claim, error) {
	out, err := r.DB.Query(ctx, &dynamodb.QueryInput{
		TableName:              &r.Table,
		IndexName:              awsStr(UserIdIndex),
		KeyConditionExpression: awsStr("userId = :userId"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, apperr.Storage(err)
	}
	claims := make([]models.Claim, 0, len(out.Items))
	for _, item := range out.Items {
		var c models.Claim
		if err := attributevalue.UnmarshalMap(item, &c); err != nil {
			return nil, apperr.Storage(err)
		}
		claims = append(claims, c)
	}
	return claims, nil
}

// UpdateStatus merges a new status (and optionally fresh extracted data)
// into an existing claim, bumping its updated timestamp. This is a plain
// read-modify-write with no concurrency control; concurrent updates race
// and the later write wins. No current flow invokes it.
func (r *ClaimRepo) UpdateStatus(ctx context.Context, id string, status models.ClaimStatus, extractedData map[string]any) (models.Claim, error) {
	if !status.Valid() {
		return models.Claim{}, apperr.Validationf("invalid claim status %q", status)
	}
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return models.Claim{}, err
	}
	c.Status = status
	if extractedData != nil {
		c.ExtractedData = extractedData
	}
	c.UpdatedAt = NowISO()
	if err := r.put(ctx, c); err != nil {
		return models.Claim{}, err
	}
	return c, nil
}

func (r *ClaimRepo) put(ctx context.Context, c models.Claim) error {
	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return apperr.Storage(err)
	}
	if _, err := r.DB.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &r.Table,
		Item:      item,
	}); err != nil {
		return apperr.Storage(err)
	}
	return nil
}
