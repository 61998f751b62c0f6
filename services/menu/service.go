package menu

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	menuRepo "goldenfish/database/repository/menu"
	"goldenfish/models"
	"goldenfish/utils"

	"go.uber.org/zap"
)

const menuCacheKey = "menu:full"

// DefaultMenuService implements MenuService.
type DefaultMenuService struct {
	Repo     menuRepo.MenuRepository
	CacheTTL time.Duration
}

func (s *DefaultMenuService) GetMenu(ctx context.Context) (*models.Menu, error) {
	logger := utils.GetLogger()
	cacheClient := utils.GetCacheClient()

	cached, err := cacheClient.Get(ctx, menuCacheKey).Result()
	if err == nil {
		var m models.Menu
		if err := json.Unmarshal([]byte(cached), &m); err == nil {
			return &m, nil
		}
		logger.Warn("Failed to unmarshal cached menu, rebuilding", zap.Error(err))
	}

	m, err := s.buildMenu()
	if err != nil {
		return nil, err
	}
	s.storeCache(ctx, m)
	return m, nil
}

func (s *DefaultMenuService) RefreshCache(ctx context.Context) error {
	m, err := s.buildMenu()
	if err != nil {
		return err
	}
	s.storeCache(ctx, m)
	return nil
}

func (s *DefaultMenuService) SetProductAvailability(ctx context.Context, productID int, available bool) error {
	if err := s.Repo.SetProductAvailability(productID, available); err != nil {
		return err
	}
	if err := utils.GetCacheClient().Del(ctx, menuCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate menu cache", zap.Error(err))
	}
	return nil
}

func (s *DefaultMenuService) buildMenu() (*models.Menu, error) {
	categories, err := s.Repo.GetCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to assemble menu: %w", err)
	}
	products, err := s.Repo.GetProducts()
	if err != nil {
		return nil, fmt.Errorf("failed to assemble menu: %w", err)
	}
	opts, err := s.Repo.GetOptions()
	if err != nil {
		return nil, fmt.Errorf("failed to assemble menu: %w", err)
	}
	return &models.Menu{Categories: categories, Products: products, Options: opts}, nil
}

func (s *DefaultMenuService) storeCache(ctx context.Context, m *models.Menu) {
	logger := utils.GetLogger()
	data, err := json.Marshal(m)
	if err != nil {
		logger.Warn("Failed to marshal menu for cache", zap.Error(err))
		return
	}
	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if err := utils.GetCacheClient().Set(ctx, menuCacheKey, data, ttl).Err(); err != nil {
		logger.Warn("Failed to cache menu", zap.Error(err))
	}
}
