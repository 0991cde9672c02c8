package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"tastetrack/internal/errors"
	"tastetrack/internal/model"
	"tastetrack/internal/repository"
)

// ReportService exposes read-only sales reporting.
type ReportService interface {
	ItemWiseReport(ctx context.Context, start, end *time.Time) ([]model.ItemWiseRow, error)
	OrderWiseReport(ctx context.Context, start, end *time.Time) ([]model.Sale, error)
	SalesReport(ctx context.Context, start, end time.Time) ([]model.SaleLine, error)
	SalesComparisonReport(ctx context.Context, start, end time.Time) ([]model.DailySalesRow, error)
	DashboardSummary(ctx context.Context) (*model.DashboardSummary, error)
}

type reportService struct {
	repo repository.ReportRepository
}

// NewReportService creates a new report service.
func NewReportService(repo repository.ReportRepository) ReportService {
	return &reportService{repo: repo}
}

func validateRange(start, end time.Time) error {
	if start.After(end) {
		return errors.ErrInvalidDateRange
	}
	return nil
}

func (s *reportService) ItemWiseReport(ctx context.Context, start, end *time.Time) ([]model.ItemWiseRow, error) {
	if start != nil && end != nil {
		if err := validateRange(*start, *end); err != nil {
			return nil, err
		}
	}
	return s.repo.ItemWise(ctx, start, end)
}

func (s *reportService) OrderWiseReport(ctx context.Context, start, end *time.Time) ([]model.Sale, error) {
	if start != nil && end != nil {
		if err := validateRange(*start, *end); err != nil {
			return nil, err
		}
	}
	return s.repo.OrderWise(ctx, start, end)
}

func (s *reportService) SalesReport(ctx context.Context, start, end time.Time) ([]model.SaleLine, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	return s.repo.SalesDetail(ctx, start, end)
}

func (s *reportService) SalesComparisonReport(ctx context.Context, start, end time.Time) ([]model.DailySalesRow, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	return s.repo.SalesComparison(ctx, start, end)
}

// DashboardSummary combines today's totals with the current month's.
func (s *reportService) DashboardSummary(ctx context.Context) (*model.DashboardSummary, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	todaySales, err := s.repo.OrderWise(ctx, &today, &today)
	if err != nil {
		return nil, fmt.Errorf("today's sales: %w", err)
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)
	monthly, err := s.repo.SalesComparison(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("monthly sales: %w", err)
	}

	summary := &model.DashboardSummary{
		TodayTotalSales:   decimal.Zero,
		TodayTotalOrders:  len(todaySales),
		MonthlyTotalSales: decimal.Zero,
		LastUpdated:       now,
	}
	for _, sale := range todaySales {
		summary.TodayTotalSales = summary.TodayTotalSales.Add(sale.TotalValue)
	}
	for _, day := range monthly {
		summary.MonthlyTotalSales = summary.MonthlyTotalSales.Add(day.TotalValue)
		summary.MonthlyTotalOrders += day.TotalOrders
	}
	return summary, nil
}
