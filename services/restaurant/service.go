package restaurant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	settingsRepo "goldenfish/database/repository/settings"
	"goldenfish/models"
	"goldenfish/services/ordering"
	"goldenfish/utils"

	"go.uber.org/zap"
)

const settingsCacheKey = "settings:restaurant"

// DefaultRestaurantService implements RestaurantService.
type DefaultRestaurantService struct {
	Repo     settingsRepo.SettingsRepository
	Distance ordering.DistanceProvider
	CacheTTL time.Duration
}

func (s *DefaultRestaurantService) Config(ctx context.Context) (*models.RestaurantConfig, error) {
	logger := utils.GetLogger()
	cacheClient := utils.GetCacheClient()

	cached, err := cacheClient.Get(ctx, settingsCacheKey).Result()
	if err == nil {
		var cfg models.RestaurantConfig
		if err := json.Unmarshal([]byte(cached), &cfg); err == nil {
			return &cfg, nil
		}
		logger.Warn("Failed to unmarshal cached settings, reloading", zap.Error(err))
	}

	cfg, err := s.Repo.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load restaurant configuration: %w", err)
	}
	s.storeCache(ctx, cfg)
	return cfg, nil
}

func (s *DefaultRestaurantService) Engine(ctx context.Context) (*ordering.Engine, error) {
	cfg, err := s.Config(ctx)
	if err != nil {
		return nil, err
	}
	eng := ordering.NewEngine(*cfg)
	eng.Distance = s.Distance
	return eng, nil
}

func (s *DefaultRestaurantService) Update(ctx context.Context, cfg *models.RestaurantConfig) error {
	if err := s.Repo.Save(cfg); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *DefaultRestaurantService) SetClosure(ctx context.Context, closure models.TemporaryClosure) error {
	if closure.Enabled && closure.StartDate != "" && closure.EndDate != "" && closure.EndDate < closure.StartDate {
		return fmt.Errorf("closure end date %s is before start date %s", closure.EndDate, closure.StartDate)
	}
	if err := s.Repo.SetClosure(closure); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *DefaultRestaurantService) SetPromotionActive(ctx context.Context, ruleID string, active bool) error {
	if err := s.Repo.SetPromotionActive(ruleID, active); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *DefaultRestaurantService) RefreshCache(ctx context.Context) error {
	cfg, err := s.Repo.Get()
	if err != nil {
		return fmt.Errorf("failed to load restaurant configuration: %w", err)
	}
	s.storeCache(ctx, cfg)
	return nil
}

func (s *DefaultRestaurantService) storeCache(ctx context.Context, cfg *models.RestaurantConfig) {
	logger := utils.GetLogger()
	data, err := json.Marshal(cfg)
	if err != nil {
		logger.Warn("Failed to marshal settings for cache", zap.Error(err))
		return
	}
	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if err := utils.GetCacheClient().Set(ctx, settingsCacheKey, data, ttl).Err(); err != nil {
		logger.Warn("Failed to cache settings", zap.Error(err))
	}
}

func (s *DefaultRestaurantService) invalidate(ctx context.Context) {
	if err := utils.GetCacheClient().Del(ctx, settingsCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate settings cache", zap.Error(err))
	}
}
