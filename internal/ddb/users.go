package ddb

import (
	"context"

	"github.com/kylejryan/medical-claims-portal/internal/apperr"
	"github.com/kylejryan/medical-claims-portal/internal/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// EmailIndex is the GSI keyed on the user email attribute.
const EmailIndex = "EmailIndex"

// UserRepo wraps a DynamoDB client and table name for user records.
type UserRepo struct {
	DB    API
	Table string
}

// Put inserts a new user record, refusing to overwrite an existing id.
func (r *UserRepo) Put(ctx context.Context, u models.User) error {
	item, err := attributevalue.MarshalMap(u)
	if err != nil {
		return apperr.Storage(err)
	}
	_, err = r.DB.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &r.Table,
		Item:                item,
		ConditionExpression: awsStr("attribute_not_exists(id)"),
	})
	if err != nil {
		return apperr.Storage(err)
	}
	return nil
}

// GetByEmail looks a user up through EmailIndex with a case-sensitive exact
// match. Returns apperr.ErrNotFound when no record exists.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	out, err := r.DB.Query(ctx, &dynamodb.QueryInput{
		TableName:              &r.Table,
		IndexName:              awsStr(EmailIndex),
		KeyConditionExpression: awsStr("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return models.User{}, apperr.Storage(err)
	}
	if len(out.Items) == 0 {
		return models.User{}, apperr.ErrNotFound
	}
	var u models.User
	if err := attributevalue.UnmarshalMap(out.Items[0], &u); err != nil {
		return models.User{}, apperr.Storage(err)
	}
	return u, nil
}
