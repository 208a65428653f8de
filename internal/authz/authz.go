// Package authz extracts the authenticated identity a custom authorizer
// attached to an API Gateway request.
package authz

import (
	"strings"

	"github.com/kylejryan/medical-claims-portal/internal/apperr"
	"github.com/kylejryan/medical-claims-portal/internal/models"

	"github.com/aws/aws-lambda-go/events"
)

const devBypassHeader = "x-user-sub"

// headerLookup returns the value of a header key from a map,
// case-insensitively.
func headerLookup(h map[string]string, key string) string {
	if len(h) == 0 {
		return ""
	}
	lk := strings.ToLower(key)
	for k, v := range h {
		if strings.ToLower(k) == lk {
			return v
		}
	}
	return ""
}

// stringIf returns the string value of an any if it is a non-empty string.
func stringIf(v any) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return ""
}

// fromClaimsMap digs identity fields out of a Cognito-style "claims" map.
func fromClaimsMap(raw any) models.Identity {
	m, ok := raw.(map[string]any)
	if !ok {
		return models.Identity{}
	}
	return models.Identity{
		UserID: stringIf(m["userId"]),
		Email:  stringIf(m["email"]),
	}
}

// Identity extracts the caller identity from a REST (v1) request. The
// custom authorizer writes userId and email into the request context; Email
// is the canonical ownership key downstream. Fails with
// apperr.ErrInvalidToken when no identity is present.
func Identity(req events.APIGatewayProxyRequest, devBypass bool) (models.Identity, error) {
	// Dev bypass: trust a raw header during local testing only.
	if devBypass {
		if sub := strings.TrimSpace(headerLookup(req.Headers, devBypassHeader)); sub != "" {
			return models.Identity{UserID: sub, Email: sub}, nil
		}
	}

	if m := req.RequestContext.Authorizer; m != nil {
		id := models.Identity{
			UserID: stringIf(m["userId"]),
			Email:  stringIf(m["email"]),
		}
		if id.Email == "" {
			id = fromClaimsMap(m["claims"])
		}
		if id.Email != "" {
			return id, nil
		}
	}

	return models.Identity{}, apperr.ErrInvalidToken
}
