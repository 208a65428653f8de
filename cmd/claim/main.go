// Package main serves GET /claims/{id}, returning a single claim after an
// ownership check.
package main

import (
	"context"
	"net/http"

	"github.com/kylejryan/medical-claims-portal/internal/access"
	"github.com/kylejryan/medical-claims-portal/internal/authz"
	"github.com/kylejryan/medical-claims-portal/internal/awsutil"
	"github.com/kylejryan/medical-claims-portal/internal/config"
	"github.com/kylejryan/medical-claims-portal/internal/ddb"
	"github.com/kylejryan/medical-claims-portal/internal/httpx"
	"github.com/kylejryan/medical-claims-portal/internal/logging"
	"github.com/kylejryan/medical-claims-portal/internal/validate"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// App holds the application state for the single-claim Lambda.
type App struct {
	env    config.Env
	log    *zap.Logger
	claims *ddb.ClaimRepo
}

func main() {
	_ = godotenv.Load()
	env := config.MustLoad().Require("ClaimsTable")
	log := logging.New(env.LogLevel)

	cfg, endpoint, err := awsutil.Load(context.Background(), env.Region)
	if err != nil {
		log.Fatal("load aws config", zap.Error(err))
	}
	app := &App{
		env: env,
		log: log,
		claims: &ddb.ClaimRepo{
			DB:    dynamodb.NewFromConfig(cfg, awsutil.DynamoOptions(endpoint)),
			Table: env.ClaimsTable,
		},
	}
	lambda.Start(app.handler)
}

func (a *App) handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	id, err := authz.Identity(req, a.env.DevBypassAuth)
	if err != nil {
		return httpx.Error(http.StatusUnauthorized, "Unauthorized")
	}

	claimID := req.PathParameters["id"]
	if claimID == "" {
		return httpx.Error(http.StatusBadRequest, "claim ID is required")
	}
	if err := validate.ClaimID(claimID); err != nil {
		return httpx.FromError(err)
	}

	claim, err := access.Claim(ctx, a.claims, id.Email, claimID)
	if err != nil {
		a.log.Warn("claim access denied",
			zap.String("user", id.Email),
			zap.String("claimId", claimID),
			zap.Error(err))
		return httpx.FromError(err)
	}
	return httpx.Success(claim)
}
