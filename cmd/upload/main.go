// Package main runs the claim intake pipeline for POST /upload: store the
// document, extract structured fields, persist the claim.
package main

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kylejryan/medical-claims-portal/internal/api"
	"github.com/kylejryan/medical-claims-portal/internal/authz"
	"github.com/kylejryan/medical-claims-portal/internal/awsutil"
	"github.com/kylejryan/medical-claims-portal/internal/config"
	"github.com/kylejryan/medical-claims-portal/internal/ddb"
	"github.com/kylejryan/medical-claims-portal/internal/gemini"
	"github.com/kylejryan/medical-claims-portal/internal/httpx"
	"github.com/kylejryan/medical-claims-portal/internal/intake"
	"github.com/kylejryan/medical-claims-portal/internal/logging"
	"github.com/kylejryan/medical-claims-portal/internal/s3io"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// App holds the application state for the upload Lambda.
type App struct {
	env    config.Env
	log    *zap.Logger
	intake *intake.Service
}

func main() {
	_ = godotenv.Load()
	env := config.MustLoad().Require("ClaimsTable", "Bucket", "GeminiAPIKey")
	log := logging.New(env.LogLevel)

	ctx := context.Background()
	cfg, endpoint, err := awsutil.Load(ctx, env.Region)
	if err != nil {
		log.Fatal("load aws config", zap.Error(err))
	}
	extractor, err := gemini.New(ctx, env.GeminiAPIKey)
	if err != nil {
		log.Fatal("gemini client", zap.Error(err))
	}

	app := &App{
		env: env,
		log: log,
		intake: &intake.Service{
			Docs: &s3io.Store{
				Client: s3.NewFromConfig(cfg, awsutil.S3Options(endpoint)),
				Bucket: env.Bucket,
			},
			Extractor: extractor,
			Claims: &ddb.ClaimRepo{
				DB:    dynamodb.NewFromConfig(cfg, awsutil.DynamoOptions(endpoint)),
				Table: env.ClaimsTable,
			},
		},
	}
	lambda.Start(app.handler)
}

func (a *App) handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	id, err := authz.Identity(req, a.env.DevBypassAuth)
	if err != nil {
		return httpx.Error(http.StatusUnauthorized, "Unauthorized")
	}

	if req.Body == "" {
		return httpx.Error(http.StatusBadRequest, "request body is required")
	}
	var in api.UploadRequest
	if err := json.Unmarshal([]byte(req.Body), &in); err != nil {
		return httpx.Error(http.StatusBadRequest, "invalid json")
	}
	if in.Document == "" {
		return httpx.Error(http.StatusBadRequest, "document is required")
	}

	claim, err := a.intake.Submit(ctx, id.Email, in.Document)
	if err != nil {
		a.log.Error("intake failed", zap.String("user", id.Email), zap.Error(err))
		return httpx.FromError(err)
	}

	a.log.Info("claim created",
		zap.String("claimId", claim.ID),
		zap.String("documentId", claim.DocumentID))
	return httpx.Success(api.UploadResponse{
		ClaimID:    claim.ID,
		DocumentID: claim.DocumentID,
		Status:     claim.Status,
	})
}
