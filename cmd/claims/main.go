// Package main lists the claims owned by the current user (GET /claims).
package main

import (
	"context"
	"net/http"

	"github.com/kylejryan/medical-claims-portal/internal/authz"
	"github.com/kylejryan/medical-claims-portal/internal/awsutil"
	"github.com/kylejryan/medical-claims-portal/internal/config"
	"github.com/kylejryan/medical-claims-portal/internal/ddb"
	"github.com/kylejryan/medical-claims-portal/internal/httpx"
	"github.com/kylejryan/medical-claims-portal/internal/logging"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// App holds the application state for the claims-list Lambda.
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

	// A user with no claims gets an empty list, not an error.
	claims, err := a.claims.ListByUser(ctx, id.Email)
	if err != nil {
		a.log.Error("list claims failed", zap.String("user", id.Email), zap.Error(err))
		return httpx.FromError(err)
	}
	return httpx.Success(claims)
}
