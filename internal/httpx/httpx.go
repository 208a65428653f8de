// Package httpx builds the uniform JSON response envelope returned by every
// handler: {"success":true,"data":...} or {"success":false,"error":{...}}.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kylejryan/medical-claims-portal/internal/apperr"

	"github.com/aws/aws-lambda-go/events"
)

// corsHeaders are attached to every response.
var corsHeaders = map[string]string{
	"Content-Type":                     "application/json",
	"Access-Control-Allow-Origin":      "*",
	"Access-Control-Allow-Credentials": "true",
}

type errorBody struct {
	Message string `json:"message"`
}

type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *errorBody `json:"error,omitempty"`
}

// Success creates a 200 response wrapping v in the success envelope.
func Success(v any) (events.APIGatewayProxyResponse, error) {
	return respond(http.StatusOK, envelope{Success: true, Data: v})
}

// Error creates an error response with the given status code and message.
func Error(status int, msg string) (events.APIGatewayProxyResponse, error) {
	return respond(status, envelope{Success: false, Error: &errorBody{Message: msg}})
}

// FromError maps err onto the HTTP status for its taxonomy class and
// formats the error envelope. Unknown errors become a generic 500.
func FromError(err error) (events.APIGatewayProxyResponse, error) {
	switch {
	case errors.Is(err, apperr.ErrValidation),
		errors.Is(err, apperr.ErrAlreadyExists),
		errors.Is(err, apperr.ErrUnsupportedFormat):
		return Error(http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrInvalidCredential),
		errors.Is(err, apperr.ErrInvalidToken):
		return Error(http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, apperr.ErrForbidden):
		return Error(http.StatusForbidden, "Forbidden")
	case errors.Is(err, apperr.ErrNotFound):
		return Error(http.StatusNotFound, "Not Found")
	default:
		return Error(http.StatusInternalServerError, "Internal Server Error")
	}
}

func respond(status int, env envelope) (events.APIGatewayProxyResponse, error) {
	b, _ := json.Marshal(env)
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    corsHeaders,
		Body:       string(b),
	}, nil
}
