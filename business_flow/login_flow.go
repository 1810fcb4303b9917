// Package businessflow contains the core business logic and use cases for the service marketplace
package businessflow

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/netfix-app/netfix/app/dto"
	"github.com/netfix-app/netfix/app/services"
	"github.com/netfix-app/netfix/models"
	"github.com/netfix-app/netfix/repository"
	"github.com/netfix-app/netfix/utils"
)

// LoginFlow handles account authentication and session teardown
type LoginFlow interface {
	Login(ctx context.Context, req *dto.LoginRequest, metadata *ClientMetadata) (*dto.LoginResponse, error)
	Logout(ctx context.Context, sessionToken string) (*dto.LogoutResponse, error)
}

// LoginFlowImpl implements the login business flow
type LoginFlowImpl struct {
	accountRepo  repository.AccountRepository
	sessionRepo  repository.AccountSessionRepository
	tokenService services.TokenService
	db           *gorm.DB
}

// NewLoginFlow creates a new login flow instance
func NewLoginFlow(
	accountRepo repository.AccountRepository,
	sessionRepo repository.AccountSessionRepository,
	tokenService services.TokenService,
	db *gorm.DB,
) LoginFlow {
	return &LoginFlowImpl{
		accountRepo:  accountRepo,
		sessionRepo:  sessionRepo,
		tokenService: tokenService,
		db:           db,
	}
}

// Login verifies the credentials and opens a fresh session. Lookup and
// password failures surface through the same error predicate so responses
// don't reveal which part was wrong.
func (l *LoginFlowImpl) Login(ctx context.Context, req *dto.LoginRequest, metadata *ClientMetadata) (*dto.LoginResponse, error) {
	email := utils.NormalizeEmail(req.Email)

	account, err := l.accountRepo.ByEmail(ctx, email)
	if err != nil {
		return nil, NewBusinessError("LOGIN_FAILED", "Login failed", err)
	}
	if account == nil {
		return nil, NewBusinessError("LOGIN_FAILED", "Login failed", ErrAccountNotFound)
	}

	if !utils.IsTrue(account.IsActive) {
		return nil, NewBusinessError("LOGIN_FAILED", "Login failed", ErrAccountInactive)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, NewBusinessError("LOGIN_FAILED", "Login failed", ErrIncorrectPassword)
	}

	var tokens struct {
		access  string
		refresh string
	}

	err = repository.WithTransaction(ctx, l.db, func(txCtx context.Context) error {
		var err error
		tokens.access, tokens.refresh, err = l.tokenService.GenerateTokens(account.ID)
		if err != nil {
			return err
		}

		if err := l.createSession(txCtx, account.ID, tokens.access, tokens.refresh, metadata); err != nil {
			return err
		}

		return l.accountRepo.UpdateLastLogin(txCtx, account.ID)
	})
	if err != nil {
		return nil, NewBusinessError("LOGIN_FAILED", "Login failed", err)
	}

	return &dto.LoginResponse{
		Message:      "Login successful",
		AccessToken:  tokens.access,
		RefreshToken: tokens.refresh,
		TokenType:    "Bearer",
		ExpiresAt:    utils.UTCNowAdd(utils.AccessTokenTTL),
		Account:      ToAccountDTO(*account),
	}, nil
}

// Logout deactivates the session behind the presented token.
func (l *LoginFlowImpl) Logout(ctx context.Context, sessionToken string) (*dto.LogoutResponse, error) {
	session, err := l.sessionRepo.BySessionToken(ctx, sessionToken)
	if err != nil {
		return nil, NewBusinessError("LOGOUT_FAILED", "Logout failed", err)
	}
	if session == nil {
		return nil, NewBusinessError("LOGOUT_FAILED", "Logout failed", ErrSessionNotFound)
	}

	if err := l.sessionRepo.ExpireSession(ctx, session.ID); err != nil {
		return nil, NewBusinessError("LOGOUT_FAILED", "Logout failed", err)
	}

	return &dto.LogoutResponse{Message: "Logged out successfully"}, nil
}

func (l *LoginFlowImpl) createSession(ctx context.Context, accountID uint, accessToken, refreshToken string, metadata *ClientMetadata) error {
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

	return l.sessionRepo.Save(ctx, session)
}
