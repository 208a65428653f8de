// Package main serves POST /auth/register and POST /auth/login.
package main

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kylejryan/medical-claims-portal/internal/api"
	"github.com/kylejryan/medical-claims-portal/internal/auth"
	"github.com/kylejryan/medical-claims-portal/internal/awsutil"
	"github.com/kylejryan/medical-claims-portal/internal/config"
	"github.com/kylejryan/medical-claims-portal/internal/ddb"
	"github.com/kylejryan/medical-claims-portal/internal/httpx"
	"github.com/kylejryan/medical-claims-portal/internal/logging"
	"github.com/kylejryan/medical-claims-portal/internal/token"
	"github.com/kylejryan/medical-claims-portal/internal/validate"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// App holds the application state for the auth Lambda.
type App struct {
	log *zap.Logger
	svc *auth.Service
}

func main() {
	_ = godotenv.Load() // best effort, local dev only
	env := config.MustLoad().Require("UsersTable", "JWTSecret")
	log := logging.New(env.LogLevel)

	cfg, endpoint, err := awsutil.Load(context.Background(), env.Region)
	if err != nil {
		log.Fatal("load aws config", zap.Error(err))
	}
	tokens, err := token.New(env.JWTSecret)
	if err != nil {
		log.Fatal("token service", zap.Error(err))
	}

	users := &ddb.UserRepo{
		DB:    dynamodb.NewFromConfig(cfg, awsutil.DynamoOptions(endpoint)),
		Table: env.UsersTable,
	}
	app := &App{log: log, svc: auth.New(users, tokens, ddb.NowISO)}
	lambda.Start(app.handler)
}

// handler routes on the request path, mirroring the API layout.
func (a *App) handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if req.Body == "" {
		return httpx.Error(http.StatusBadRequest, "request body is required")
	}
	switch req.Path {
	case "/auth/register":
		return a.register(ctx, req.Body)
	case "/auth/login":
		return a.login(ctx, req.Body)
	}
	return httpx.Error(http.StatusBadRequest, "invalid endpoint")
}

func (a *App) register(ctx context.Context, body string) (events.APIGatewayProxyResponse, error) {
	var in api.RegisterRequest
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		return httpx.Error(http.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return httpx.FromError(err)
	}
	if err := validate.Password(in.Password); err != nil {
		return httpx.FromError(err)
	}
	if err := validate.Name(in.Name); err != nil {
		return httpx.FromError(err)
	}

	tok, err := a.svc.Register(ctx, in.Email, in.Password, in.Name)
	if err != nil {
		a.log.Error("register failed", zap.String("email", in.Email), zap.Error(err))
		return httpx.FromError(err)
	}
	return httpx.Success(api.TokenResponse{Token: tok})
}

func (a *App) login(ctx context.Context, body string) (events.APIGatewayProxyResponse, error) {
	var in api.LoginRequest
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		return httpx.Error(http.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return httpx.FromError(err)
	}

	tok, err := a.svc.Login(ctx, in.Email, in.Password)
	if err != nil {
		a.log.Warn("login failed", zap.String("email", in.Email), zap.Error(err))
		return httpx.FromError(err)
	}
	return httpx.Success(api.TokenResponse{Token: tok})
}
