// Package main is the API Gateway token authorizer: it verifies the bearer
// credential and attaches the caller identity to the request context.
package main

import (
	"context"
	"errors"
	"strings"

	"github.com/kylejryan/medical-claims-portal/internal/config"
	"github.com/kylejryan/medical-claims-portal/internal/logging"
	"github.com/kylejryan/medical-claims-portal/internal/token"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Returning this exact error makes API Gateway deny the request with a
// transport-level 401 and no custom body. The underlying reason (bad
// signature, expiry, malformed token) is deliberately never surfaced.
var errUnauthorized = errors.New("Unauthorized")

// App holds the application state for the authorizer Lambda.
type App struct {
	log    *zap.Logger
	tokens *token.Service
}

func main() {
	_ = godotenv.Load()
	env := config.MustLoad().Require("JWTSecret")
	log := logging.New(env.LogLevel)

	tokens, err := token.New(env.JWTSecret)
	if err != nil {
		log.Fatal("token service", zap.Error(err))
	}
	app := &App{log: log, tokens: tokens}
	lambda.Start(app.handler)
}

func (a *App) handler(ctx context.Context, ev events.APIGatewayCustomAuthorizerRequest) (events.APIGatewayCustomAuthorizerResponse, error) {
	raw := strings.TrimSpace(strings.TrimPrefix(ev.AuthorizationToken, "Bearer "))
	if raw == "" {
		return events.APIGatewayCustomAuthorizerResponse{}, errUnauthorized
	}

	id, err := a.tokens.Verify(raw)
	if err != nil {
		a.log.Warn("token rejected", zap.Error(err))
		return events.APIGatewayCustomAuthorizerResponse{}, errUnauthorized
	}

	return events.APIGatewayCustomAuthorizerResponse{
		PrincipalID: id.UserID,
		PolicyDocument: events.APIGatewayCustomAuthorizerPolicy{
			Version: "2012-10-17",
			Statement: []events.IAMPolicyStatement{{
				Action:   []string{"execute-api:Invoke"},
				Effect:   "Allow",
				Resource: []string{ev.MethodArn},
			}},
		},
		Context: map[string]any{
			"userId": id.UserID,
			"email":  id.Email,
		},
	}, nil
}
