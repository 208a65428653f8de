// Package config loads configuration from environment variables.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Env holds the configuration values for the application. Each Lambda only
// touches the subset it needs; unset optional values stay empty.
type Env struct {
	Region        string `envconfig:"AWS_REGION" default:"us-east-1"`
	UsersTable    string `envconfig:"USERS_TABLE"`
	ClaimsTable   string `envconfig:"CLAIMS_TABLE"`
	Bucket        string `envconfig:"DOCUMENTS_BUCKET"`
	JWTSecret     string `envconfig:"JWT_SECRET"`
	GeminiAPIKey  string `envconfig:"GEMINI_API_KEY"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	DevBypassAuth bool   `envconfig:"DEV_BYPASS_AUTH"`
}

// MustLoad reads the environment and returns an Env, panicking on a
// malformed variable. Presence of per-Lambda values is enforced by Require.
func MustLoad() Env {
	var e Env
	if err := envconfig.Process("", &e); err != nil {
		panic(fmt.Errorf("config: %w", err))
	}
	return e
}

// Require panics unless every named field is non-empty. Field names match
// the struct fields above.
func (e Env) Require(fields ...string) Env {
	vals := map[string]string{
		"UsersTable":   e.UsersTable,
		"ClaimsTable":  e.ClaimsTable,
		"Bucket":       e.Bucket,
		"JWTSecret":    e.JWTSecret,
		"GeminiAPIKey": e.GeminiAPIKey,
	}
	for _, f := range fields {
		if vals[f] == "" {
			panic(fmt.Errorf("config: missing required %s", f))
		}
	}
	return e
}
