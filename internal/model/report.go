package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemWiseRow aggregates sold quantity and value per menu item.
type ItemWiseRow struct {
	ItemID        int             `json:"itemId"`
	ItemName      string          `json:"itemName"`
	TotalQuantity int             `json:"totalQuantity"`
	TotalValue    decimal.Decimal `json:"totalValue"`
}

// DailySalesRow aggregates total value and order count per calendar day.
type DailySalesRow struct {
	OrderDate   time.Time       `json:"orderDate"`
	TotalValue  decimal.Decimal `json:"totalValue"`
	TotalOrders int             `json:"totalOrders"`
}

// DashboardSummary is the manager's at-a-glance view.
type DashboardSummary struct {
	TodayTotalSales    decimal.Decimal `json:"todayTotalSales"`
	TodayTotalOrders   int             `json:"todayTotalOrders"`
	MonthlyTotalSales  decimal.Decimal `json:"monthlyTotalSales"`
	MonthlyTotalOrders int             `json:"monthlyTotalOrders"`
	LastUpdated        time.Time       `json:"lastUpdated"`
}
