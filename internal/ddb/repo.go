// Package ddb provides DynamoDB repositories for user and claim records.
package ddb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/oklog/ulid/v2"
)

// API is the subset of the DynamoDB client used by the repositories,
// extracted so tests can substitute fakes.
type API interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// awsStr is a helper to get a pointer to a string literal.
func awsStr(s string) *string { return &s }

// NowISO returns the current time in ISO8601 format.
func NowISO() string { return time.Now().UTC().Format(time.RFC3339) }

// NewClaimID mints a claim id of the form {millis}-{suffix}. The suffix is
// a ULID, which keeps the historical timestamp-plus-random shape while
// making collisions practically impossible.
func NewClaimID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), ulid.Make().String())
}
