package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tastetrack/internal/model"
)

// ItemRepository defines menu catalog persistence operations.
type ItemRepository interface {
	Create(ctx context.Context, item *model.MenuItem) error
	Update(ctx context.Context, item *model.MenuItem) error
	Delete(ctx context.Context, itemID int) error
	FindByID(ctx context.Context, itemID int) (*model.MenuItem, error)
	List(ctx context.Context) ([]model.MenuItem, error)
	ListDaily(ctx context.Context) ([]model.DailyMenuEntry, error)
	AddDaily(ctx context.Context, itemID int) error
	UpdateDailyStatus(ctx context.Context, dailyItemID int, status string) error
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

// Create creates a new menu item.
func (r *itemRepository) Create(ctx context.Context, item *model.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Update updates name and price of an existing menu item.
func (r *itemRepository) Update(ctx context.Context, item *model.MenuItem) error {
	res := r.db.WithContext(ctx).Model(&model.MenuItem{}).
		Where("item_id = ?", item.ItemID).
		Updates(map[string]interface{}{
			"item_name":  item.ItemName,
			"item_price": item.ItemPrice,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a menu item.
func (r *itemRepository) Delete(ctx context.Context, itemID int) error {
	res := r.db.WithContext(ctx).Where("item_id = ?", itemID).Delete(&model.MenuItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindByID finds a menu item by id.
func (r *itemRepository) FindByID(ctx context.Context, itemID int) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := r.db.WithContext(ctx).Where("item_id = ?", itemID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// List lists the full catalog.
func (r *itemRepository) List(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	if err := r.db.WithContext(ctx).Order("item_id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListDaily lists daily menu entries joined with catalog data.
func (r *itemRepository) ListDaily(ctx context.Context) ([]model.DailyMenuEntry, error) {
	var entries []model.DailyMenuEntry
	err := r.db.WithContext(ctx).
		Table("daily_items").
		Select("daily_items.id, daily_items.date, daily_items.item_id, daily_items.status, menu_items.item_name, menu_items.item_price").
		Joins("JOIN menu_items ON menu_items.item_id = daily_items.item_id").
		Order("daily_items.id").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// AddDaily puts a menu item on today's menu.
func (r *itemRepository) AddDaily(ctx context.Context, itemID int) error {
	today := time.Now().Truncate(24 * time.Hour)
	entry := &model.DailyItem{
		Date:   &today,
		ItemID: itemID,
		Status: "available",
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

// UpdateDailyStatus flips the status of a daily menu entry.
func (r *itemRepository) UpdateDailyStatus(ctx context.Context, dailyItemID int, status string) error {
	res := r.db.WithContext(ctx).Model(&model.DailyItem{}).
		Where("id = ?", dailyItemID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
