// Package scheduler contains background jobs that run alongside the HTTP server
package scheduler

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/netfix-app/netfix/app/dto"
	businessflow "github.com/netfix-app/netfix/business_flow"
	"github.com/netfix-app/netfix/config"
	"github.com/netfix-app/netfix/repository"
	"github.com/netfix-app/netfix/utils"
)

// RankingScheduler periodically recomputes the most-requested ranking and
// writes it to Redis so the landing page is served warm even after the cached
// entry expires.
type RankingScheduler struct {
	serviceRepo repository.ServiceRepository
	rc          *redis.Client
	cacheCfg    *config.CacheConfig
	interval    time.Duration
	logger      *log.Logger
}

// NewRankingScheduler creates a new ranking scheduler
func NewRankingScheduler(
	serviceRepo repository.ServiceRepository,
	rc *redis.Client,
	cacheCfg *config.CacheConfig,
	interval time.Duration,
	logger *log.Logger,
) *RankingScheduler {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if logger == nil {
		logger = log.Default()
	}

	return &RankingScheduler{
		serviceRepo: serviceRepo,
		rc:          rc,
		cacheCfg:    cacheCfg,
		interval:    interval,
		logger:      logger,
	}
}

// Start launches the refresh loop. The returned cancel function stops it.
func (s *RankingScheduler) Start(parent context.Context) func() {
	ctx, cancel := context.WithCancel(parent)

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.refreshOnce(ctx)
			}
		}
	}()

	return cancel
}

func (s *RankingScheduler) refreshOnce(ctx context.Context) {
	if s.rc == nil {
		return
	}

	refreshCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	ranked, err := s.serviceRepo.MostRequested(refreshCtx, utils.MostRequestedLimit)
	if err != nil {
		s.logger.Printf("scheduler: most requested ranking failed: %v", err)
		return
	}

	out := &dto.HomeResponse{
		MostRequested: make([]dto.MostRequestedServiceDTO, 0, len(ranked)),
	}
	for _, r := range ranked {
		out.MostRequested = append(out.MostRequested, dto.MostRequestedServiceDTO{
			ServiceDTO:   businessflow.ToServiceDTO(r.Service),
			RequestCount: r.RequestCount,
		})
	}

	bs, err := json.Marshal(out)
	if err != nil {
		s.logger.Printf("scheduler: marshal ranking failed: %v", err)
		return
	}

	cacheKey := utils.MostRequestedCacheKey
	if s.cacheCfg != nil && s.cacheCfg.RedisPrefix != "" {
		cacheKey = s.cacheCfg.RedisPrefix + cacheKey
	}

	if err := s.rc.Set(refreshCtx, cacheKey, bs, utils.MostRequestedCacheTTL).Err(); err != nil {
		s.logger.Printf("scheduler: cache ranking failed: %v", err)
		return
	}

	s.logger.Printf("scheduler: refreshed most-requested ranking with %d services", len(out.MostRequested))
}
