// Package testing provides test utilities and database setup for testing the marketplace
package testing

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	mrand "math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/netfix-app/netfix/models"
	"github.com/netfix-app/netfix/utils"
)

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	DB *TestDB
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{DB: db}
}

// CreateTestAccount creates an account with the given role and a random
// username/email pair.
func (tf *TestFixtures) CreateTestAccount(role string) (*models.Account, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("TestPass123!"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	suffix := mrand.Intn(90000000) + 10000000

	account := &models.Account{
		UUID:         uuid.New(),
		Username:     fmt.Sprintf("%s_%d", role, suffix),
		Email:        fmt.Sprintf("%s.%d@example.com", role, suffix),
		PasswordHash: string(hashedPassword),
		Role:         role,
		IsActive:     utils.ToPtr(true),
	}

	if err := tf.DB.DB.Create(account).Error; err != nil {
		return nil, fmt.Errorf("failed to create test account: %w", err)
	}

	return account, nil
}

// CreateTestCustomer creates a customer account with an adult birth date and
// its profile.
func (tf *TestFixtures) CreateTestCustomer() (*models.Account, *models.CustomerProfile, error) {
	account, err := tf.CreateTestAccount(models.RoleCustomer)
	if err != nil {
		return nil, nil, err
	}

	profile := &models.CustomerProfile{
		AccountID: account.ID,
		BirthDate: time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC),
	}
	if err := tf.DB.DB.Create(profile).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to create test customer profile: %w", err)
	}

	return account, profile, nil
}

// CreateTestCompany creates a company account in the given category and its
// profile.
func (tf *TestFixtures) CreateTestCompany(category models.Category) (*models.Account, *models.CompanyProfile, error) {
	account, err := tf.CreateTestAccount(models.RoleCompany)
	if err != nil {
		return nil, nil, err
	}

	profile := &models.CompanyProfile{
		AccountID: account.ID,
		Category:  category,
	}
	if err := tf.DB.DB.Create(profile).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to create test company profile: %w", err)
	}

	return account, profile, nil
}

// CreateTestService publishes a service under the given company.
func (tf *TestFixtures) CreateTestService(companyID uint, category models.Category, priceHour float64) (*models.Service, error) {
	suffix := mrand.Intn(90000000) + 10000000

	service := &models.Service{
		CompanyID:   companyID,
		Name:        fmt.Sprintf("Service %d", suffix),
		Description: "Test service description",
		PriceHour:   priceHour,
		Category:    category,
	}

	if err := tf.DB.DB.Create(service).Error; err != nil {
		return nil, fmt.Errorf("failed to create test service: %w", err)
	}

	return service, nil
}

// CreateTestServiceRequest books a service for a customer at the service's
// current hourly rate.
func (tf *TestFixtures) CreateTestServiceRequest(customerID, serviceID uint, hours int, priceHour float64) (*models.ServiceRequest, error) {
	request := &models.ServiceRequest{
		CustomerID: customerID,
		ServiceID:  serviceID,
		Hours:      hours,
		Location:   "123 Test Street",
		Price:      priceHour * float64(hours),
		Status:     models.RequestStatusPending,
	}

	if err := tf.DB.DB.Create(request).Error; err != nil {
		return nil, fmt.Errorf("failed to create test service request: %w", err)
	}

	return request, nil
}

// GenerateSecureToken returns a URL-safe random token of the given byte length.
func GenerateSecureToken(length int) (string, error) {
	b := make([]byte, length)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// CreateTestSession creates an active session for an account
func (tf *TestFixtures) CreateTestSession(accountID uint) (*models.AccountSession, error) {
	sessionToken, err := GenerateSecureToken(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate secure session token: %w", err)
	}

	refreshToken, err := GenerateSecureToken(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate secure refresh token: %w", err)
	}

	ipAddress := "127.0.0.1"
	userAgent := "Test User Agent"

	session := &models.AccountSession{
		CorrelationID: uuid.New(),
		AccountID:     accountID,
		SessionToken:  sessionToken,
		RefreshToken:  &refreshToken,
		ExpiresAt:     time.Now().Add(24 * time.Hour),
		IsActive:      utils.ToPtr(true),
		IPAddress:     &ipAddress,
		UserAgent:     &userAgent,
	}

	if err := tf.DB.DB.Create(session).Error; err != nil {
		return nil, fmt.Errorf("failed to create test session: %w", err)
	}

	return session, nil
}
