// Package awsutil provides utilities for loading AWS configuration.
package awsutil

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Load loads the AWS configuration. The returned endpoint is non-empty when
// AWS_ENDPOINT_URL points at a local stack (e.g. http://localstack:4566).
func Load(ctx context.Context, region string) (aws.Config, string, error) {
	cfg, err := awsCfg.LoadDefaultConfig(ctx, awsCfg.WithRegion(region))
	return cfg, os.Getenv("AWS_ENDPOINT_URL"), err
}

// S3Options applies the local endpoint override to an S3 client.
// Path-style addressing is required by LocalStack.
func S3Options(endpoint string) func(o *s3.Options) {
	return func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	}
}

// DynamoOptions applies the local endpoint override to a DynamoDB client.
func DynamoOptions(endpoint string) func(o *dynamodb.Options) {
	return func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}
}
