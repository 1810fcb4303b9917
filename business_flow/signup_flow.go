// Package businessflow contains the core business logic and use cases for the service marketplace
package businessflow

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/netfix-app/netfix/app/dto"
	"github.com/netfix-app/netfix/app/services"
	"github.com/netfix-app/netfix/models"
	"github.com/netfix-app/netfix/repository"
	"github.com/netfix-app/netfix/utils"
)

// SignupFlow handles customer and company registration
type SignupFlow interface {
	RegisterCustomer(ctx context.Context, req *dto.RegisterCustomerRequest, metadata *ClientMetadata) (*dto.RegisterResponse, error)
	RegisterCompany(ctx context.Context, req *dto.RegisterCompanyRequest, metadata *ClientMetadata) (*dto.RegisterResponse, error)
}

// SignupFlowImpl implements the signup business flow
type SignupFlowImpl struct {
	accountRepo  repository.AccountRepository
	customerRepo repository.CustomerProfileRepository
	companyRepo  repository.CompanyProfileRepository
	sessionRepo  repository.AccountSessionRepository
	tokenService services.TokenService
	db           *gorm.DB
}

// NewSignupFlow creates a new signup flow instance
func NewSignupFlow(
	accountRepo repository.AccountRepository,
	customerRepo repository.CustomerProfileRepository,
	companyRepo repository.CompanyProfileRepository,
	sessionRepo repository.AccountSessionRepository,
	tokenService services.TokenService,
	db *gorm.DB,
) SignupFlow {
	return &SignupFlowImpl{
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
		companyRepo:  companyRepo,
		sessionRepo:  sessionRepo,
		tokenService: tokenService,
		db:           db,
	}
}

// RegisterCustomer creates a customer account with its profile in a single
// transaction. A failed age check leaves no account behind.
func (s *SignupFlowImpl) RegisterCustomer(ctx context.Context, req *dto.RegisterCustomerRequest, metadata *ClientMetadata) (*dto.RegisterResponse, error) {
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, NewBusinessError("REGISTRATION_VALIDATION_FAILED", "Invalid birth date", err)
	}

	if err := s.validateBirthDate(birthDate); err != nil {
		return nil, NewBusinessError("REGISTRATION_VALIDATION_FAILED", "Registration validation failed", err)
	}

	email := utils.NormalizeEmail(req.Email)
	if err := s.validateUniqueness(ctx, email, req.Username); err != nil {
		return nil, NewBusinessError("REGISTRATION_VALIDATION_FAILED", "Registration validation failed", err)
	}

	var account *models.Account
	var tokens struct {
		access  string
		refresh string
	}

	err = repository.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		account, err = s.createAccount(txCtx, req.Username, email, req.Password, models.RoleCustomer)
		if err != nil {
			return err
		}

		profile := &models.CustomerProfile{
			AccountID: account.ID,
			BirthDate: birthDate,
		}
		if err := s.customerRepo.Save(txCtx, profile); err != nil {
			return err
		}

		tokens.access, tokens.refresh, err = s.tokenService.GenerateTokens(account.ID)
		if err != nil {
			return err
		}

		return s.createSession(txCtx, account.ID, tokens.access, tokens.refresh, metadata)
	})
	if err != nil {
		return nil, NewBusinessError("REGISTRATION_FAILED", "Customer registration failed", err)
	}

	return &dto.RegisterResponse{
		Message:      "Registration completed successfully",
		AccessToken:  tokens.access,
		RefreshToken: tokens.refresh,
		TokenType:    "Bearer",
		ExpiresAt:    utils.UTCNowAdd(utils.AccessTokenTTL),
		Account:      ToAccountDTO(*account),
	}, nil
}

// RegisterCompany creates a company account with its profile in a single
// transaction.
func (s *SignupFlowImpl) RegisterCompany(ctx context.Context, req *dto.RegisterCompanyRequest, metadata *ClientMetadata) (*dto.RegisterResponse, error) {
	category := models.Category(req.Category)
	if !models.IsValidCompanyCategory(category) {
		return nil, NewBusinessError("REGISTRATION_VALIDATION_FAILED", "Registration validation failed", ErrInvalidCategory)
	}

	email := utils.NormalizeEmail(req.Email)
	if err := s.validateUniqueness(ctx, email, req.Username); err != nil {
		return nil, NewBusinessError("REGISTRATION_VALIDATION_FAILED", "Registration validation failed", err)
	}

	var account *models.Account
	var tokens struct {
		access  string
		refresh string
	}

	err := repository.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		account, err = s.createAccount(txCtx, req.Username, email, req.Password, models.RoleCompany)
		if err != nil {
			return err
		}

		profile := &models.CompanyProfile{
			AccountID: account.ID,
			Category:  category,
		}
		if err := s.companyRepo.Save(txCtx, profile); err != nil {
			return err
		}

		tokens.access, tokens.refresh, err = s.tokenService.GenerateTokens(account.ID)
		if err != nil {
			return err
		}

		return s.createSession(txCtx, account.ID, tokens.access, tokens.refresh, metadata)
	})
	if err != nil {
		return nil, NewBusinessError("REGISTRATION_FAILED", "Company registration failed", err)
	}

	return &dto.RegisterResponse{
		Message:      "Registration completed successfully",
		AccessToken:  tokens.access,
		RefreshToken: tokens.refresh,
		TokenType:    "Bearer",
		ExpiresAt:    utils.UTCNowAdd(utils.AccessTokenTTL),
		Account:      ToAccountDTO(*account),
	}, nil
}

// Private helper methods

func (s *SignupFlowImpl) validateBirthDate(birthDate time.Time) error {
	today := utils.Today()
	if birthDate.After(today) {
		return ErrBirthDateInFuture
	}

	profile := models.CustomerProfile{BirthDate: birthDate}
	if profile.Age(today) < utils.AdultAge {
		return ErrUnderage
	}

	return nil
}

func (s *SignupFlowImpl) validateUniqueness(ctx context.Context, email, username string) error {
	existing, err := s.accountRepo.ByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailAlreadyExists
	}

	existing, err = s.accountRepo.ByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUsernameAlreadyExists
	}

	return nil
}

func (s *SignupFlowImpl) createAccount(ctx context.Context, username, email, password, role string) (*models.Account, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		UUID:         uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		IsActive:     utils.ToPtr(true),
	}

	if err := s.accountRepo.Save(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

func (s *SignupFlowImpl) createSession(ctx context.Context, accountID uint, accessToken, refreshToken string, metadata *ClientMetadata) error {
	ipAddress := "127.0.0.1"
	userAgent := ""
	if metadata != nil {
		ipAddress = metadata.IPAddress
		userAgent = metadata.UserAgent
	}

	session := &models.AccountSession{
		CorrelationID: uuid.New(),
		AccountID:     accountID,
		SessionToken:  accessToken,
		RefreshToken:  &refreshToken,
		IPAddress:     &ipAddress,
		UserAgent:     &userAgent,
		IsActive:      utils.ToPtr(true),
		ExpiresAt:     utils.UTCNowAdd(utils.SessionTTL),
	}

	return s.sessionRepo.Save(ctx, session)
}
