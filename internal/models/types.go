// Package models defines the data models used in the application.
package models

// ClaimStatus represents the processing status of a medical claim.
type ClaimStatus string

// Possible values for ClaimStatus. Only StatusPending is set by the intake
// pipeline today; the remaining transitions are reserved for UpdateStatus.
const (
	StatusPending    ClaimStatus = "PENDING"
	StatusProcessing ClaimStatus = "PROCESSING"
	StatusCompleted  ClaimStatus = "COMPLETED"
	StatusFailed     ClaimStatus = "FAILED"
)

// Valid reports whether s is one of the defined claim statuses.
func (s ClaimStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// User is an identity record. Email is unique and is the canonical
// user-identity key in every downstream ownership check; ID is a generated
// surrogate carried in token subjects.
type User struct {
	ID           string `dynamodbav:"id" json:"id"`
	Email        string `dynamodbav:"email" json:"email"`
	PasswordHash string `dynamodbav:"password" json:"-"`
	Name         string `dynamodbav:"name" json:"name"`
	CreatedAt    string `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt    string `dynamodbav:"updatedAt" json:"updatedAt"`
}

// Claim represents one submitted insurance claim owned by a single user.
// ExtractedData is the structured payload from the extraction model; it is
// schema-constrained at that boundary and stored opaquely here.
type Claim struct {
	ID            string         `dynamodbav:"id" json:"id"`
	UserID        string         `dynamodbav:"userId" json:"userId"`
	DocumentID    string         `dynamodbav:"documentId" json:"documentId"`
	Status        ClaimStatus    `dynamodbav:"status" json:"status"`
	ExtractedData map[string]any `dynamodbav:"extractedData" json:"extractedData"`
	CreatedAt     string         `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt     string         `dynamodbav:"updatedAt" json:"updatedAt"`
}

// Identity is the authenticated caller established by the authorizer.
type Identity struct {
	UserID string
	Email  string
}
