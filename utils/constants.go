package utils

import (
	"time"
)

// Token and session time constants
const (
	// AccessTokenTTL is the time-to-live for access tokens
	AccessTokenTTL = 24 * time.Hour

	// RefreshTokenTTL is the time-to-live for refresh tokens
	RefreshTokenTTL = 30 * 24 * time.Hour

	// SessionTTL is the lifetime of a persisted account session
	SessionTTL = 30 * 24 * time.Hour
)

// Cache keys
const (
	// MostRequestedCacheKey stores the serialized home-view ranking
	MostRequestedCacheKey = "home:most_requested"

	// MostRequestedCacheTTL bounds staleness of the home-view ranking
	MostRequestedCacheTTL = 1 * time.Minute

	// MostRequestedLimit is how many services the home view ranks
	MostRequestedLimit = 5
)

// Misc
const (
	// AdultAge is the minimum age for customer registration
	AdultAge = 18

	// CORSMaxAge caps preflight cache duration (seconds)
	CORSMaxAge = 3600
)
