package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tastetrack/internal/model"
)

// SaleRepository defines staging and completed-sale persistence operations.
// Staging methods are keyed by terminal so each till works against its own
// in-progress order.
type SaleRepository interface {
	// WithTransaction runs fn against a repository bound to one database
	// transaction; any error rolls back everything fn did.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo SaleRepository) error) error

	FindStagedForUpdate(ctx context.Context, terminalID string, itemID int) (*model.StagedLine, error)
	SaveStaged(ctx context.Context, line *model.StagedLine) error
	DeleteStaged(ctx context.Context, terminalID string, itemID int) (int64, error)
	ListStaged(ctx context.Context, terminalID string) ([]model.CurrentSaleLine, error)
	ListStagedForUpdate(ctx context.Context, terminalID string) ([]model.StagedLine, error)
	ClearStaged(ctx context.Context, terminalID string) error

	FindItemNames(ctx context.Context, itemIDs []int) (map[int]string, error)

	CreateSale(ctx context.Context, sale *model.Sale) error
	CreateSaleLines(ctx context.Context, lines []model.SaleLine) error
	FindSaleByID(ctx context.Context, orderID int) (*model.Sale, error)
	ListSales(ctx context.Context) ([]model.Sale, error)
	ListSaleLines(ctx context.Context, orderID int) ([]model.SaleLine, error)
}

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository.
func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepository{db: db}
}

// WithTransaction executes fn within a database transaction.
func (r *saleRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo SaleRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &saleRepository{db: tx})
	})
}

// FindStagedForUpdate fetches the staged line for an item with a row lock, so
// concurrent merges of the same item serialize instead of losing updates.
func (r *saleRepository) FindStagedForUpdate(ctx context.Context, terminalID string, itemID int) (*model.StagedLine, error) {
	var line model.StagedLine
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("terminal_id = ? AND item_id = ?", terminalID, itemID).
		First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// SaveStaged inserts or updates a staged line.
func (r *saleRepository) SaveStaged(ctx context.Context, line *model.StagedLine) error {
	return r.db.WithContext(ctx).Save(line).Error
}

// DeleteStaged removes the staged line for an item, returning rows affected.
func (r *saleRepository) DeleteStaged(ctx context.Context, terminalID string, itemID int) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("terminal_id = ? AND item_id = ?", terminalID, itemID).
		Delete(&model.StagedLine{})
	return res.RowsAffected, res.Error
}

// ListStaged returns the current order's lines joined with item names.
// Insertion order; nothing depends on it. The join is LEFT so a line whose
// catalog item was deleted stays visible with an empty name instead of
// vanishing while its value still counts toward the sale.
func (r *saleRepository) ListStaged(ctx context.Context, terminalID string) ([]model.CurrentSaleLine, error) {
	var lines []model.CurrentSaleLine
	err := r.db.WithContext(ctx).
		Table("staged_lines").
		Select("staged_lines.id, staged_lines.item_id, staged_lines.quantity, staged_lines.line_value, COALESCE(menu_items.item_name, '') AS item_name").
		Joins("LEFT JOIN menu_items ON menu_items.item_id = staged_lines.item_id").
		Where("staged_lines.terminal_id = ?", terminalID).
		Order("staged_lines.id").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// ListStagedForUpdate locks and returns every staged line of a terminal.
// Checkout uses this so no concurrent add or remove can slip between the
// snapshot and the clear.
func (r *saleRepository) ListStagedForUpdate(ctx context.Context, terminalID string) ([]model.StagedLine, error) {
	var lines []model.StagedLine
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("terminal_id = ?", terminalID).
		Order("id").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// ClearStaged removes every staged line of a terminal.
func (r *saleRepository) ClearStaged(ctx context.Context, terminalID string) error {
	return r.db.WithContext(ctx).
		Where("terminal_id = ?", terminalID).
		Delete(&model.StagedLine{}).Error
}

// FindItemNames resolves menu item names for the given ids. Items deleted
// from the catalog are simply absent from the result.
func (r *saleRepository) FindItemNames(ctx context.Context, itemIDs []int) (map[int]string, error) {
	if len(itemIDs) == 0 {
		return map[int]string{}, nil
	}
	var items []model.MenuItem
	if err := r.db.WithContext(ctx).Where("item_id IN ?", itemIDs).Find(&items).Error; err != nil {
		return nil, err
	}
	names := make(map[int]string, len(items))
	for _, item := range items {
		names[item.ItemID] = item.ItemName
	}
	return names, nil
}

// CreateSale inserts a completed sale; the generated order id is written back
// into sale.OrderID.
func (r *saleRepository) CreateSale(ctx context.Context, sale *model.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

// CreateSaleLines batch-inserts the completed sale's lines.
func (r *saleRepository) CreateSaleLines(ctx context.Context, lines []model.SaleLine) error {
	if len(lines) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(lines, 100).Error
}

// FindSaleByID finds a completed sale by order id.
func (r *saleRepository) FindSaleByID(ctx context.Context, orderID int) (*model.Sale, error) {
	var sale model.Sale
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&sale).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}

// ListSales lists completed sales, newest first.
func (r *saleRepository) ListSales(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	if err := r.db.WithContext(ctx).Order("order_date DESC").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// ListSaleLines lists the lines of one completed sale.
func (r *saleRepository) ListSaleLines(ctx context.Context, orderID int) ([]model.SaleLine, error) {
	var lines []model.SaleLine
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id").Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}
