// Package main serves GET /documents/{id}/presigned-url, handing out a
// time-limited read URL for a document the caller owns a claim for.
package main

import (
	"context"
	"net/http"
	"net/url"

	"github.com/kylejryan/medical-claims-portal/internal/access"
	"github.com/kylejryan/medical-claims-portal/internal/api"
	"github.com/kylejryan/medical-claims-portal/internal/authz"
	"github.com/kylejryan/medical-claims-portal/internal/awsutil"
	"github.com/kylejryan/medical-claims-portal/internal/config"
	"github.com/kylejryan/medical-claims-portal/internal/ddb"
	"github.com/kylejryan/medical-claims-portal/internal/httpx"
	"github.com/kylejryan/medical-claims-portal/internal/logging"
	"github.com/kylejryan/medical-claims-portal/internal/s3io"
	"github.com/kylejryan/medical-claims-portal/internal/validate"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// App holds the application state for the presign Lambda.
type App struct {
	env    config.Env
	log    *zap.Logger
	claims *ddb.ClaimRepo
	docs   *s3io.Store
}

func main() {
	_ = godotenv.Load()
	env := config.MustLoad().Require("ClaimsTable", "Bucket")
	log := logging.New(env.LogLevel)

	cfg, endpoint, err := awsutil.Load(context.Background(), env.Region)
	if err != nil {
		log.Fatal("load aws config", zap.Error(err))
	}
	s3c := s3.NewFromConfig(cfg, awsutil.S3Options(endpoint))
	app := &App{
		env: env,
		log: log,
		claims: &ddb.ClaimRepo{
			DB:    dynamodb.NewFromConfig(cfg, awsutil.DynamoOptions(endpoint)),
			Table: env.ClaimsTable,
		},
		docs: &s3io.Store{
			Client:  s3c,
			Presign: s3.NewPresignClient(s3c),
			Bucket:  env.Bucket,
		},
	}
	lambda.Start(app.handler)
}

func (a *App) handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	id, err := authz.Identity(req, a.env.DevBypassAuth)
	if err != nil {
		return httpx.Error(http.StatusUnauthorized, "Unauthorized")
	}

	// Document ids contain a slash, so the path parameter arrives escaped.
	documentID, _ := url.QueryUnescape(req.PathParameters["id"])
	if documentID == "" {
		return httpx.Error(http.StatusBadRequest, "document ID is required")
	}
	if err := validate.DocumentID(documentID); err != nil {
		return httpx.FromError(err)
	}

	signed, err := access.DocumentURL(ctx, a.claims, a.docs, id.Email, documentID, s3io.DefaultURLTTL)
	if err != nil {
		a.log.Warn("document url denied",
			zap.String("user", id.Email),
			zap.String("documentId", documentID),
			zap.Error(err))
		return httpx.FromError(err)
	}
	return httpx.Success(api.PresignedURLResponse{
		URL:       signed,
		ExpiresIn: int(s3io.DefaultURLTTL.Seconds()),
	})
}
