package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"tastetrack/internal/cache"
	"tastetrack/internal/errors"
	"tastetrack/internal/model"
	"tastetrack/internal/repository"
)

const itemCacheTTL = 5 * time.Minute

// ItemService handles menu catalog and daily menu operations.
type ItemService interface {
	CreateItem(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)
	UpdateItem(ctx context.Context, item *model.MenuItem) error
	DeleteItem(ctx context.Context, itemID int) error
	GetItem(ctx context.Context, itemID int) (*model.MenuItem, error)
	ListItems(ctx context.Context) ([]model.MenuItem, error)

	ListDailyItems(ctx context.Context) ([]model.DailyMenuEntry, error)
	AddDailyItem(ctx context.Context, itemID int) error
	UpdateDailyItemStatus(ctx context.Context, dailyItemID int, status string) error
}

type itemService struct {
	repo  repository.ItemRepository
	cache *cache.Client
}

// NewItemService creates a new item service.
func NewItemService(repo repository.ItemRepository, cache *cache.Client) ItemService {
	return &itemService{repo: repo, cache: cache}
}

func (s *itemService) cacheKey(itemID int) string {
	return fmt.Sprintf("item:%d", itemID)
}

// CreateItem adds a menu item to the catalog.
func (s *itemService) CreateItem(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	log.Printf("item %q created with id %d", item.ItemName, item.ItemID)
	return item, nil
}

// UpdateItem updates a catalog entry and drops it from the cache.
func (s *itemService) UpdateItem(ctx context.Context, item *model.MenuItem) error {
	if err := s.repo.Update(ctx, item); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrItemNotFound
		}
		return fmt.Errorf("update item %d: %w", item.ItemID, err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(item.ItemID))
	log.Printf("item %d updated", item.ItemID)
	return nil
}

// DeleteItem removes a catalog entry. Sales history keeps its own copy of the
// item name, so deleting a sold item does not damage past sales.
func (s *itemService) DeleteItem(ctx context.Context, itemID int) error {
	if err := s.repo.Delete(ctx, itemID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrItemNotFound
		}
		return fmt.Errorf("delete item %d: %w", itemID, err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(itemID))
	log.Printf("item %d deleted", itemID)
	return nil
}

// GetItem retrieves a menu item, cache-aside.
func (s *itemService) GetItem(ctx context.Context, itemID int) (*model.MenuItem, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(itemID)); data != nil {
		var cached model.MenuItem
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrItemNotFound
		}
		return nil, fmt.Errorf("find item %d: %w", itemID, err)
	}

	if payload, err := json.Marshal(item); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(itemID), payload, itemCacheTTL)
	}
	return item, nil
}

// ListItems lists the full catalog.
func (s *itemService) ListItems(ctx context.Context) ([]model.MenuItem, error) {
	return s.repo.List(ctx)
}

// ListDailyItems lists the daily menu with item names and prices.
func (s *itemService) ListDailyItems(ctx context.Context) ([]model.DailyMenuEntry, error) {
	return s.repo.ListDaily(ctx)
}

// AddDailyItem puts a catalog item on today's menu.
func (s *itemService) AddDailyItem(ctx context.Context, itemID int) error {
	if _, err := s.repo.FindByID(ctx, itemID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrItemNotFound
		}
		return fmt.Errorf("find item %d: %w", itemID, err)
	}
	if err := s.repo.AddDaily(ctx, itemID); err != nil {
		return fmt.Errorf("add daily item %d: %w", itemID, err)
	}
	log.Printf("item %d added to daily menu", itemID)
	return nil
}

// UpdateDailyItemStatus flips a daily menu entry's status.
func (s *itemService) UpdateDailyItemStatus(ctx context.Context, dailyItemID int, status string) error {
	if err := s.repo.UpdateDailyStatus(ctx, dailyItemID, status); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrItemNotFound
		}
		return fmt.Errorf("update daily item %d: %w", dailyItemID, err)
	}
	return nil
}
