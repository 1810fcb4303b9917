// Package dto contains Data Transfer Objects for API requests and responses
package dto

import "time"

// RegisterCustomerRequest represents the customer registration form data
type RegisterCustomerRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=150,username_format"`
	Email           string `json:"email" validate:"required,email,max=255"`
	Password        string `json:"password" validate:"required,min=8,max=100"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	BirthDate       string `json:"birth_date" validate:"required,datetime=2006-01-02"`
}

// RegisterCompanyRequest represents the company registration form data
type RegisterCompanyRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=150,username_format"`
	Email           string `json:"email" validate:"required,email,max=255"`
	Password        string `json:"password" validate:"required,min=8,max=100"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Category        string `json:"category" validate:"required,max=30"`
}

// RegisterResponse represents the response after successful registration
type RegisterResponse struct {
	Message      string     `json:"message"`
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
	TokenType    string     `json:"token_type"`
	ExpiresAt    time.Time  `json:"expires_at"`
	Account      AccountDTO `json:"account"`
}

// AccountDTO represents account data for API responses
type AccountDTO struct {
	ID        uint      `json:"id"`
	UUID      string    `json:"uuid"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  *bool     `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
