// Package dto contains Data Transfer Objects for API requests and responses
package dto

import "time"

// LoginRequest represents the request payload for account login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=100"`
}

// LoginResponse represents the successful login response
type LoginResponse struct {
	Message      string     `json:"message"`
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
	TokenType    string     `json:"token_type"`
	ExpiresAt    time.Time  `json:"expires_at"`
	Account      AccountDTO `json:"account"`
}

// LogoutResponse represents the response after a session is ended
type LogoutResponse struct {
	Message string `json:"message"`
}

// Common error codes for auth operations
const (
	ErrorAccountNotFound       = "ACCOUNT_NOT_FOUND"
	ErrorIncorrectCredentials  = "INCORRECT_CREDENTIALS"
	ErrorAccountInactive       = "ACCOUNT_INACTIVE"
	ErrorEmailAlreadyExists    = "EMAIL_ALREADY_EXISTS"
	ErrorUsernameAlreadyExists = "USERNAME_ALREADY_EXISTS"
	ErrorUnderage              = "UNDERAGE"
	ErrorBirthDateInFuture     = "BIRTH_DATE_IN_FUTURE"
	ErrorInvalidCategory       = "INVALID_CATEGORY"
)
