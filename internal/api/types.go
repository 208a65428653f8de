// Package api contains types for the API requests and responses.
package api

import "github.com/kylejryan/medical-claims-portal/internal/models"

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries a freshly issued credential.
type TokenResponse struct {
	Token string `json:"token"`
}

// UploadRequest is the payload for POST /upload.
type UploadRequest struct {
	Document string `json:"document"`
}

// UploadResponse summarizes the claim created by the intake pipeline.
type UploadResponse struct {
	ClaimID    string             `json:"claimId"`
	DocumentID string             `json:"documentId"`
	Status     models.ClaimStatus `json:"status"`
}

// PresignedURLResponse carries a time-limited document read URL.
type PresignedURLResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expiresIn"`
}
