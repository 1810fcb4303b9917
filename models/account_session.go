// Package models contains domain entities and business models for the service marketplace
package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/netfix-app/netfix/utils"
)

// AccountSession records an issued access/refresh token pair for an account.
type AccountSession struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CorrelationID uuid.UUID `gorm:"type:uuid;not null;index:idx_sessions_correlation_id" json:"correlation_id"`
	AccountID     uint      `gorm:"not null;index:idx_sessions_account_id" json:"account_id"`
	Account       Account   `gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE" json:"account,omitempty"`
	SessionToken  string    `gorm:"size:255;not null;uniqueIndex:uk_sessions_session_token" json:"-"` // Never serialize token
	RefreshToken  *string   `gorm:"size:255;uniqueIndex:uk_sessions_refresh_token" json:"-"`          // Never serialize refresh token
	IPAddress     *string   `gorm:"size:45" json:"ip_address,omitempty"`
	UserAgent     *string   `gorm:"type:text" json:"user_agent,omitempty"`
	IsActive      *bool     `gorm:"default:true;index:idx_sessions_is_active" json:"is_active"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	ExpiresAt     time.Time `gorm:"not null;index:idx_sessions_expires_at" json:"expires_at"`
}

func (AccountSession) TableName() string {
	return "account_sessions"
}

// AccountSessionFilter represents filter criteria for session queries
type AccountSessionFilter struct {
	ID            *uint
	CorrelationID *uuid.UUID
	AccountID     *uint
	IsActive      *bool
}

func (s *AccountSession) IsExpired() bool {
	return utils.IsExpired(s.ExpiresAt)
}

func (s *AccountSession) IsValid() bool {
	return utils.IsTrue(s.IsActive) && !s.IsExpired()
}
