// Package businessflow contains the core business logic and use cases for the service marketplace
package businessflow

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/netfix-app/netfix/app/dto"
	"github.com/netfix-app/netfix/config"
	"github.com/netfix-app/netfix/repository"
	"github.com/netfix-app/netfix/utils"
)

// HomeFlow handles the landing page ranking
type HomeFlow interface {
	GetHome(ctx context.Context) (*dto.HomeResponse, error)
}

// HomeFlowImpl implements the home business flow
type HomeFlowImpl struct {
	serviceRepo repository.ServiceRepository
	rc          *redis.Client
	cacheConfig *config.CacheConfig
}

// NewHomeFlow creates a new home flow instance
func NewHomeFlow(
	serviceRepo repository.ServiceRepository,
	rc *redis.Client,
	cacheConfig *config.CacheConfig,
) HomeFlow {
	return &HomeFlowImpl{
		serviceRepo: serviceRepo,
		rc:          rc,
		cacheConfig: cacheConfig,
	}
}

// GetHome returns the five most requested services, ranked by request count
// with ties broken newest-first. The ranking is served from cache when fresh.
func (h *HomeFlowImpl) GetHome(ctx context.Context) (*dto.HomeResponse, error) {
	cacheKey := redisKey(h.cacheConfig, utils.MostRequestedCacheKey)

	// Try redis first
	if h.rc != nil {
		if bs, err := h.rc.Get(ctx, cacheKey).Bytes(); err == nil && len(bs) > 0 {
			var out dto.HomeResponse
			if err := json.Unmarshal(bs, &out); err == nil {
				return &out, nil
			}
		}
	}

	ranked, err := h.serviceRepo.MostRequested(ctx, utils.MostRequestedLimit)
	if err != nil {
		return nil, NewBusinessError("HOME_RANKING_FAILED", "Home ranking failed", err)
	}

	out := &dto.HomeResponse{
		MostRequested: make([]dto.MostRequestedServiceDTO, 0, len(ranked)),
	}
	for _, r := range ranked {
		out.MostRequested = append(out.MostRequested, dto.MostRequestedServiceDTO{
			ServiceDTO:   ToServiceDTO(r.Service),
			RequestCount: r.RequestCount,
		})
	}

	// Cache the ranking briefly; a stale entry only delays new requests
	// from showing on the landing page.
	if h.rc != nil {
		if bs, err := json.Marshal(out); err == nil {
			_ = h.rc.Set(ctx, cacheKey, bs, utils.MostRequestedCacheTTL).Err()
		}
	}

	return out, nil
}

func redisKey(cfg *config.CacheConfig, key string) string {
	if cfg == nil || cfg.RedisPrefix == "" {
		return key
	}
	return cfg.RedisPrefix + key
}
