// Package businessflow contains the core business logic and use cases for the service marketplace
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Account-related errors
	ErrAccountNotFound       = errors.New("account not found")
	ErrAccountInactive       = errors.New("account is inactive")
	ErrIncorrectPassword     = errors.New("incorrect password")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// Registration errors
	ErrBirthDateInFuture = errors.New("birth date is in the future")
	ErrUnderage          = errors.New("customer must be at least 18 years old")
	ErrInvalidCategory   = errors.New("invalid category")

	// Role errors
	ErrNotACompany  = errors.New("only companies can create services")
	ErrNotACustomer = errors.New("only customers can request services")

	// Profile errors
	ErrCompanyProfileNotFound  = errors.New("company profile not found")
	ErrCustomerProfileNotFound = errors.New("customer profile not found")

	// Catalog errors
	ErrServiceNotFound       = errors.New("service not found")
	ErrCategoryNotAuthorized = errors.New("category is outside the company's declared specialty")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error with a code, message, and underlying error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error classification helpers used by the handler layer.

func IsEmailAlreadyExists(err error) bool {
	return errors.Is(err, ErrEmailAlreadyExists)
}

func IsUsernameAlreadyExists(err error) bool {
	return errors.Is(err, ErrUsernameAlreadyExists)
}

func IsBirthDateInFuture(err error) bool {
	return errors.Is(err, ErrBirthDateInFuture)
}

func IsUnderage(err error) bool {
	return errors.Is(err, ErrUnderage)
}

func IsInvalidCategory(err error) bool {
	return errors.Is(err, ErrInvalidCategory)
}

func IsNotACompany(err error) bool {
	return errors.Is(err, ErrNotACompany)
}

func IsNotACustomer(err error) bool {
	return errors.Is(err, ErrNotACustomer)
}

func IsAccountNotFound(err error) bool {
	return errors.Is(err, ErrAccountNotFound)
}

func IsAccountInactive(err error) bool {
	return errors.Is(err, ErrAccountInactive)
}

func IsServiceNotFound(err error) bool {
	return errors.Is(err, ErrServiceNotFound)
}

func IsCompanyProfileNotFound(err error) bool {
	return errors.Is(err, ErrCompanyProfileNotFound)
}

func IsCustomerProfileNotFound(err error) bool {
	return errors.Is(err, ErrCustomerProfileNotFound)
}

func IsCategoryNotAuthorized(err error) bool {
	return errors.Is(err, ErrCategoryNotAuthorized)
}

func IsIncorrectCredentials(err error) bool {
	return errors.Is(err, ErrIncorrectPassword) || errors.Is(err, ErrAccountNotFound)
}
