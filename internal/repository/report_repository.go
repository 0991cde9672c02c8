package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tastetrack/internal/model"
)

// ReportRepository defines read-only aggregation queries over sales history.
type ReportRepository interface {
	ItemWise(ctx context.Context, start, end *time.Time) ([]model.ItemWiseRow, error)
	OrderWise(ctx context.Context, start, end *time.Time) ([]model.Sale, error)
	SalesDetail(ctx context.Context, start, end time.Time) ([]model.SaleLine, error)
	SalesComparison(ctx context.Context, start, end time.Time) ([]model.DailySalesRow, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository.
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// dayStart returns midnight of t's day in t's own location. Every range bound
// goes through here so "today" means the same calendar day regardless of the
// deployment timezone.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// rangeScope applies an optional [start, end] day range on sales.order_date.
func rangeScope(q *gorm.DB, start, end *time.Time) *gorm.DB {
	if start != nil {
		q = q.Where("sales.order_date >= ?", dayStart(*start))
	}
	if end != nil {
		q = q.Where("sales.order_date < ?", dayStart(*end).AddDate(0, 0, 1))
	}
	return q
}

// ItemWise aggregates sold quantity and value per item over the range.
func (r *reportRepository) ItemWise(ctx context.Context, start, end *time.Time) ([]model.ItemWiseRow, error) {
	var rows []model.ItemWiseRow
	q := r.db.WithContext(ctx).
		Table("sale_lines").
		Select("sale_lines.item_id, sale_lines.item_name, SUM(sale_lines.quantity) AS total_quantity, SUM(sale_lines.value) AS total_value").
		Joins("JOIN sales ON sales.order_id = sale_lines.order_id")
	q = rangeScope(q, start, end)
	err := q.Group("sale_lines.item_id, sale_lines.item_name").
		Order("sale_lines.item_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// OrderWise lists completed sales in the range, newest first.
func (r *reportRepository) OrderWise(ctx context.Context, start, end *time.Time) ([]model.Sale, error) {
	var sales []model.Sale
	q := r.db.WithContext(ctx).Model(&model.Sale{})
	q = rangeScope(q, start, end)
	if err := q.Order("order_date DESC").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// SalesDetail returns every sold line in the range.
func (r *reportRepository) SalesDetail(ctx context.Context, start, end time.Time) ([]model.SaleLine, error) {
	var lines []model.SaleLine
	err := r.db.WithContext(ctx).
		Table("sale_lines").
		Select("sale_lines.*").
		Joins("JOIN sales ON sales.order_id = sale_lines.order_id").
		Where("sales.order_date >= ? AND sales.order_date < ?",
			dayStart(start), dayStart(end).AddDate(0, 0, 1)).
		Order("sale_lines.order_id, sale_lines.id").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// SalesComparison aggregates total value and order count per day in the range.
func (r *reportRepository) SalesComparison(ctx context.Context, start, end time.Time) ([]model.DailySalesRow, error) {
	var rows []model.DailySalesRow
	err := r.db.WithContext(ctx).
		Table("sales").
		Select("DATE(order_date) AS order_date, SUM(total_value) AS total_value, COUNT(*) AS total_orders").
		Where("order_date >= ? AND order_date < ?",
			dayStart(start), dayStart(end).AddDate(0, 0, 1)).
		Group("DATE(order_date)").
		Order("order_date").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
